package main

import (
	"bufio"
	"log"
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"

	"github.com/zephyrtronium/fraccalc"
)

const usage = `fraccalc

Usage:
  fraccalc [options] [--] [EXPR...]
  fraccalc -h

Arguments:
  EXPR  Expressions to evaluate. If none are given, expressions are read
        from stdin, one per line.

Options:
  -r, --radians          Measure angles in radians instead of degrees.
  -f, --fraction         Show inexact results as fractions too.
  -d, --max-denom=N      Largest denominator in fraction mode. [default: 16]
  -y, --hyphen           Read 1-3/8 as the mixed number 1 3/8.
  -t, --trade            Round results to the nearest 1/STEP.
  -s, --step=STEP        Trade rounding denominator. [default: 16]
  -p, --precision=N      Decimal places to show. [default: 6]
  -e, --echo             Print the postfix form of each expression.
  -i, --interactive      Invert interactive mode.
  -h, --help             Display this help.

If stdin is a terminal and no expressions are given, fraccalc starts an
interactive session. Type "help" there for a list of commands.
`

func main() {
	log.SetFlags(0)
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	s := fraccalc.DefaultSettings()
	if radians, _ := opts.Bool("--radians"); radians {
		s.Angle = fraccalc.Radians
	}
	s.FractionMode, _ = opts.Bool("--fraction")
	s.HyphenMixed, _ = opts.Bool("--hyphen")
	s.TradeMode, _ = opts.Bool("--trade")
	s.MaxDenom = intopt(opts, "--max-denom")
	s.TradeStep = intopt(opts, "--step")
	s.Precision = int(intopt(opts, "--precision"))
	if err := s.Validate(); err != nil {
		log.Fatal(err)
	}

	c := newCalc(s, os.Stdout)
	c.echo, _ = opts.Bool("--echo")

	exprs, _ := opts["EXPR"].([]string)
	if len(exprs) != 0 {
		failed := false
		for _, e := range exprs {
			if c.eval(e) != nil {
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
		return
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	if invert, _ := opts.Bool("--interactive"); invert {
		interactive = !interactive
	}
	if interactive {
		repl(c)
		return
	}
	if err := batch(c, bufio.NewScanner(os.Stdin)); err != nil {
		log.Fatal(err)
	}
}

// intopt gets an integer option, exiting on a malformed value.
func intopt(opts docopt.Opts, name string) int64 {
	s, err := opts.String(name)
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		log.Fatalf("%s must be an integer, not %q", name, s)
	}
	return n
}

// batch runs each line of input as a command until the input ends or a quit
// command.
func batch(c *calc, in *bufio.Scanner) error {
	for in.Scan() {
		if c.line(in.Text()) == errQuit {
			return nil
		}
	}
	return in.Err()
}
