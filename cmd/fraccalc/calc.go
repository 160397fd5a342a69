package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/zephyrtronium/fraccalc"
)

// historyLen is the number of results kept for the history command.
const historyLen = 20

var (
	errQuit   = errors.New("quit")
	errNoLast = errors.New("no result yet")
)

type entry struct {
	expr  string
	shown string
	input string
}

// calc is the state of a calculator session: settings, the memory register,
// the last result, and recent history.
type calc struct {
	s       fraccalc.Settings
	mem     fraccalc.Memory
	last    *fraccalc.Value
	history []entry
	echo    bool
	out     io.Writer
	// pending is text to place in the next input line, from mr or ans.
	pending string
}

func newCalc(s fraccalc.Settings, out io.Writer) *calc {
	return &calc{s: s, out: out}
}

type command struct {
	help string
	run  func(c *calc, arg string) error
}

var commands map[string]command

func init() {
	// Assigned in init because the help command refers to the table.
	commands = map[string]command{
		"m+":      {"add the last result to memory", (*calc).memAdd},
		"m-":      {"subtract the last result from memory", (*calc).memSub},
		"mr":      {"recall memory into the next input", (*calc).memRecall},
		"mc":      {"clear memory", (*calc).memClear},
		"ans":     {"recall the last result into the next input", (*calc).ans},
		"deg":     {"measure angles in degrees", setAngle(fraccalc.Degrees)},
		"rad":     {"measure angles in radians", setAngle(fraccalc.Radians)},
		"frac":    {"toggle fraction display of inexact results", toggle(func(s *fraccalc.Settings) *bool { return &s.FractionMode })},
		"trade":   {"toggle rounding to the trade step", toggle(func(s *fraccalc.Settings) *bool { return &s.TradeMode })},
		"hyphen":  {"toggle reading 1-3/8 as a mixed number", toggle(func(s *fraccalc.Settings) *bool { return &s.HyphenMixed })},
		"denom":   {"N: set the largest fraction denominator", setInt(func(s *fraccalc.Settings, n int64) { s.MaxDenom = n })},
		"step":    {"N: set the trade step denominator", setInt(func(s *fraccalc.Settings, n int64) { s.TradeStep = n })},
		"prec":    {"N: set the decimal places shown", setInt(func(s *fraccalc.Settings, n int64) { s.Precision = int(n) })},
		"history": {"list recent results", (*calc).listHistory},
		"help":    {"show this help", (*calc).help},
		"quit":    {"leave", func(*calc, string) error { return errQuit }},
	}
}

// line runs one line of input, either a command or an expression. Errors are
// reported to the output; the result is the error for callers that stop or
// count failures.
func (c *calc) line(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	name, arg, _ := strings.Cut(text, " ")
	if cmd, ok := commands[strings.ToLower(name)]; ok {
		err := cmd.run(c, strings.TrimSpace(arg))
		if err != nil && err != errQuit {
			fmt.Fprintln(c.out, "error:", err)
		}
		return err
	}
	return c.eval(text)
}

// eval evaluates an expression and shows the result.
func (c *calc) eval(expr string) error {
	e, err := fraccalc.Parse(expr, fraccalc.WithSettings(c.s))
	if err != nil {
		c.report(expr, err)
		return err
	}
	if c.echo {
		fmt.Fprintf(c.out, "%v : ", e)
	}
	v, err := fraccalc.NewContext(c.s).Eval(e)
	if err != nil {
		c.report(expr, err)
		return err
	}
	r, err := fraccalc.FormatValue(v, c.s)
	if err != nil {
		c.report(expr, err)
		return err
	}
	shown := display(r, c.s)
	fmt.Fprintln(c.out, shown)
	c.last = &v
	c.history = append(c.history, entry{expr: expr, shown: shown, input: r.Input})
	if len(c.history) > historyLen {
		c.history = c.history[len(c.history)-historyLen:]
	}
	return nil
}

// report prints an evaluation error. Errors with positions get a caret under
// the offending token.
func (c *calc) report(expr string, err error) {
	var ie fraccalc.InputError
	if errors.As(err, &ie) && ie.Pos() > 0 {
		fmt.Fprintf(c.out, "%s\n%*s\n", expr, ie.Pos(), "^")
	}
	fmt.Fprintf(c.out, "error: %v (%v)\n", err, fraccalc.KindOf(err))
}

// display formats a rendered value the way the calculator shows it.
func display(r fraccalc.Rendered, s fraccalc.Settings) string {
	switch {
	case s.TradeMode:
		return r.Trade + "  (" + r.TradeDecimal + " in)"
	case s.FractionMode && r.Fraction != "" && r.Fraction != r.Decimal:
		return r.Decimal + " = " + r.Fraction
	default:
		return r.Decimal
	}
}

func (c *calc) memAdd(string) error {
	if c.last == nil {
		return errNoLast
	}
	return c.mem.AddValue(*c.last)
}

func (c *calc) memSub(string) error {
	if c.last == nil {
		return errNoLast
	}
	return c.mem.SubValue(*c.last)
}

func (c *calc) memRecall(string) error {
	c.pending = c.mem.Recall()
	fmt.Fprintln(c.out, "M =", c.pending)
	return nil
}

func (c *calc) memClear(string) error {
	c.mem.Clear()
	return nil
}

func (c *calc) ans(string) error {
	if len(c.history) == 0 {
		return errNoLast
	}
	c.pending = c.history[len(c.history)-1].input
	fmt.Fprintln(c.out, "ans =", c.pending)
	return nil
}

func (c *calc) listHistory(string) error {
	for i := len(c.history) - 1; i >= 0; i-- {
		h := c.history[i]
		fmt.Fprintf(c.out, "%s = %s\n", h.expr, h.shown)
	}
	return nil
}

func (c *calc) help(string) error {
	names := make([]string, 0, len(commands))
	for k := range commands {
		names = append(names, k)
	}
	slices.Sort(names)
	for _, k := range names {
		fmt.Fprintf(c.out, "  %-8s %s\n", k, commands[k].help)
	}
	fmt.Fprintln(c.out, "functions:", strings.Join(fraccalc.FuncNames(), " "))
	fmt.Fprintln(c.out, "settings:", c.status())
	return nil
}

// status summarizes the current settings.
func (c *calc) status() string {
	var b strings.Builder
	b.WriteString(c.s.Angle.String())
	if c.s.FractionMode {
		b.WriteString(" FRAC ≤" + strconv.FormatInt(c.s.MaxDenom, 10))
	}
	if c.s.TradeMode {
		b.WriteString(" TRADE 1/" + strconv.FormatInt(c.s.TradeStep, 10))
	}
	if c.s.HyphenMixed {
		b.WriteString(" HYPHEN")
	}
	b.WriteString(" PREC " + strconv.Itoa(c.s.Precision))
	return b.String()
}

func setAngle(m fraccalc.AngleMode) func(*calc, string) error {
	return func(c *calc, _ string) error {
		c.s.Angle = m
		fmt.Fprintln(c.out, c.status())
		return nil
	}
}

func toggle(field func(*fraccalc.Settings) *bool) func(*calc, string) error {
	return func(c *calc, _ string) error {
		p := field(&c.s)
		*p = !*p
		fmt.Fprintln(c.out, c.status())
		return nil
	}
}

// setInt creates a command that sets an integer setting. Values the settings
// reject leave the setting unchanged.
func setInt(set func(*fraccalc.Settings, int64)) func(*calc, string) error {
	return func(c *calc, arg string) error {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("need an integer, not %q", arg)
		}
		s := c.s
		set(&s, n)
		if err := s.Validate(); err != nil {
			return err
		}
		c.s = s
		fmt.Fprintln(c.out, c.status())
		return nil
	}
}
