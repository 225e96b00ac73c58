package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type syncBuffer struct {
	bytes.Buffer
}

func (b *syncBuffer) Sync() error {
	return nil
}

type runTest struct {
	args   []string
	stdin  string
	code   int
	stdout string
}

var runTests = []runTest{
	{nil, "1+2*3", exitOK, "7\n"},
	{nil, "(1+2)*3\n", exitOK, "9\n"},
	{nil, "2^3^2", exitOK, "512\n"},
	{nil, "-2^2", exitOK, "-4\n"},
	{nil, "--5", exitOK, "5\n"},
	{nil, "3/0", exitOK, "+Inf\n"},
	{nil, "1/4", exitOK, "0.25\n"},
	{nil, "", exitOK, ""},
	{nil, " \n\t", exitOK, ""},
	{nil, "3+@", exitLexError, ""},
	{nil, "(1+2", exitParseError, ""},
	{nil, "1 2", exitParseError, ""},
	{nil, "1+", exitParseError, ""},
	{[]string{"-e", "2*21"}, "ignored", exitOK, "42\n"},
	{[]string{"--expr", ""}, "1+1", exitOK, ""},
	{[]string{"--tokens"}, "1+2", exitOK, "(NUMBER:1) (+) (NUMBER:2) (EOF)\n3\n"},
	{[]string{"extra"}, "1", exitFailure, ""},
	{[]string{"--bogus"}, "1", exitFailure, ""},
}

func TestRun(t *testing.T) {
	for _, test := range runTests {
		t.Logf("running %q with input %q", test.args, test.stdin)
		var stdout bytes.Buffer
		var stderr syncBuffer
		code := run(test.args, strings.NewReader(test.stdin), &stdout, &stderr)
		assert.Equal(t, test.code, code)
		assert.Equal(t, test.stdout, stdout.String())
	}
}

func TestRun_ErrorMessages(t *testing.T) {
	var stdout bytes.Buffer
	var stderr syncBuffer
	code := run(nil, strings.NewReader("3+@"), &stdout, &stderr)
	assert.Equal(t, exitLexError, code)
	assert.Contains(t, stderr.String(), "unexpected character '@'")

	stderr.Reset()
	code = run(nil, strings.NewReader("(1+2"), &stdout, &stderr)
	assert.Equal(t, exitParseError, code)
	assert.Contains(t, stderr.String(), "missing )")
}

func TestRun_Ast(t *testing.T) {
	var stdout bytes.Buffer
	var stderr syncBuffer
	code := run([]string{"--ast"}, strings.NewReader("-1"), &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	out := stdout.String()
	assert.Contains(t, out, "UnaryNode")
	assert.Contains(t, out, "NumberNode")
	assert.True(t, strings.HasSuffix(out, "-1\n"), out)
}

func TestRun_Help(t *testing.T) {
	var stdout bytes.Buffer
	var stderr syncBuffer
	code := run([]string{"--help"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), "--expr")
}
