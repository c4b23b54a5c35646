package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/cubalt/verify"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteReport(t *testing.T) {
	is := is.New(t)
	report := &verify.Report{
		Samples: 5,
		Workers: 1,
		Checks:  []verify.Check{{Name: "associativity", Runs: 5}},
	}
	var buf bytes.Buffer
	is.NoErr(writeReport(&buf, report))
	assert.Contains(t, buf.String(), "samples: 5")
	assert.Contains(t, buf.String(), "name: associativity")

	assert.ErrorContains(t, writeReport(failingWriter{}, report), "disk full")
}
