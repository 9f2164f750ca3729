package hamt_test

import (
	"log"
	"math/rand"
	"os"
	"testing"

	"github.com/lleo/stringutil"
	"github.com/pkg/errors"
)

var numKvs = 8 * 1024

type strKeyVal struct {
	Key string
	Val int
}

var KVS []strKeyVal

var Inc = stringutil.Lower.Inc

func TestMain(m *testing.M) {
	log.SetFlags(log.Lshortfile)

	var logfile, err = os.Create("test.log")
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to os.Create(\"test.log\")"))
	}
	defer logfile.Close()

	log.SetOutput(logfile)

	log.Println("TestMain: and so it begins...")

	KVS = buildKeyVals(numKvs)

	var xit = m.Run()

	log.Println("TestMain: the end.")
	os.Exit(xit)
}

func buildKeyVals(num int) []strKeyVal {
	var kvs = make([]strKeyVal, num)

	var s = "aaa"
	for i := 0; i < num; i++ {
		kvs[i] = strKeyVal{s, i}
		s = Inc(s)
	}

	return kvs
}

func genRandomizedKvs(kvs []strKeyVal) []strKeyVal {
	var randKvs = make([]strKeyVal, len(kvs))
	copy(randKvs, kvs)

	//From: https://en.wikipedia.org/wiki/Fisher%E2%80%93Yates_shuffle#The_modern_algorithm
	for i := len(randKvs) - 1; i > 0; i-- {
		var j = rand.Intn(i + 1)
		randKvs[i], randKvs[j] = randKvs[j], randKvs[i]
	}

	return randKvs
}
