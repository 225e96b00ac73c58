// Command calc reads one arithmetic expression from standard input and prints
// its value.
package main

import (
	"bytes"
	"calc"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/jcgregorio/logger"
	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	exitOK = iota
	exitFailure
	exitLexError
	exitParseError
)

type options struct {
	Expr    string `short:"e" long:"expr" value-name:"EXPR" description:"evaluate EXPR instead of standard input"`
	Tokens  bool   `long:"tokens" description:"print the token stream before the result"`
	Ast     bool   `long:"ast" description:"print the expression tree before the result"`
	Verbose bool   `short:"v" long:"verbose" description:"log debug output"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr logger.SyncWriter) int {
	var opts options
	psr := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	rest, err := psr.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	log := logger.NewFromOptions(&logger.Options{
		SyncWriter:   stderr,
		IncludeDebug: opts.Verbose,
	})
	if len(rest) > 0 {
		log.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
		return exitFailure
	}

	var source []byte
	if psr.FindOptionByLongName("expr").IsSet() {
		source = []byte(opts.Expr)
	} else {
		source, err = io.ReadAll(stdin)
		if err != nil {
			log.Error(errors.Wrap(err, "failed to read standard input"))
			return exitFailure
		}
	}
	if len(bytes.Trim(source, " \t\n")) == 0 {
		log.Debug("empty input, nothing to evaluate")
		return exitOK
	}

	if opts.Tokens {
		tokens, err := calc.ScanTokens(source)
		if err != nil {
			return fail(log, err)
		}
		strs := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			strs = append(strs, tok.String())
		}
		fmt.Fprintln(stdout, strings.Join(strs, " "))
	}

	node, err := calc.Parse(source)
	if err != nil {
		return fail(log, err)
	}
	log.Debugf("parsed %s", node)
	if opts.Ast {
		fmt.Fprintln(stdout, repr.String(node, repr.Indent("  ")))
	}

	result := calc.Evaluate(node)
	log.Debugf("result %v", result)
	fmt.Fprintln(stdout, calc.Format(result))
	return exitOK
}

// fail logs err and maps it to the exit status for its error class.
func fail(log *logger.Logger, err error) int {
	log.Error(err)
	var lexErr *calc.LexError
	if errors.As(err, &lexErr) {
		return exitLexError
	}
	var parseErr *calc.ParseError
	if errors.As(err, &parseErr) {
		return exitParseError
	}
	return exitFailure
}
