package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/jcgregorio/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logger.Logger {
	return logger.NewFromOptions(&logger.Options{SyncWriter: os.Stderr})
}

func TestRepl(t *testing.T) {
	color.NoColor = true
	in := strings.NewReader("1+2*3\n\n3+@\n(1+2\n2^3^2\n")
	var out bytes.Buffer
	err := repl(in, &out, testLogger())
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"> 7",
		"> > 1:3: error: unexpected character '@'",
		"> 1:5: error: missing )",
		"> 512",
		"> ",
		"",
	}, "\n"), out.String())
}

func TestRepl_NoTrailingNewline(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	err := repl(strings.NewReader("--5"), &out, testLogger())
	require.NoError(t, err)
	assert.Equal(t, "> 5\n> \n", out.String())
}
