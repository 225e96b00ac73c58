// Command calcrepl evaluates one arithmetic expression per input line.
package main

import (
	"bufio"
	"calc"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jcgregorio/logger"
	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const prompt = "> "

type options struct {
	NoColor bool `long:"no-color" description:"disable coloured error output"`
	Verbose bool `short:"v" long:"verbose" description:"log debug output"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if opts.NoColor {
		color.NoColor = true
	}
	log := logger.NewFromOptions(&logger.Options{
		SyncWriter:   os.Stderr,
		IncludeDebug: opts.Verbose,
	})
	if err := repl(os.Stdin, os.Stdout, log); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var errColor = color.New(color.FgRed)

// repl reads lines from in until EOF. Every line is evaluated on its own, and
// a malformed line only discards that line.
func repl(in io.Reader, out io.Writer, log *logger.Logger) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			fmt.Fprintln(out)
			return errors.Wrap(sc.Err(), "failed to read input")
		}
		line := sc.Text()
		if strings.Trim(line, " \t") == "" {
			continue
		}
		v, err := calc.Eval([]byte(line))
		if err != nil {
			log.Debugf("rejected %q: %s", line, err)
			errColor.Fprintln(out, err)
			continue
		}
		fmt.Fprintln(out, calc.Format(v))
	}
}
