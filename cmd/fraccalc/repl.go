package main

import (
	"fmt"
	"io"
	"log"
	"slices"
	"strings"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/fraccalc"
)

// repl runs an interactive session on the terminal until EOF or quit.
func repl(c *calc) {
	cli := liner.NewLiner()
	defer cli.Close()
	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(complete)

	fmt.Fprintln(c.out, `fraccalc: type an expression, or "help"`)
	for {
		var (
			line string
			err  error
		)
		prompt := c.s.Angle.String() + "> "
		if c.pending != "" {
			line, err = cli.PromptWithSuggestion(prompt, c.pending, -1)
			c.pending = ""
		} else {
			line, err = cli.Prompt(prompt)
		}
		switch err {
		case nil:
			if strings.TrimSpace(line) != "" {
				cli.AppendHistory(line)
			}
		case liner.ErrPromptAborted:
			// Ctrl-C abandons the current line only.
			continue
		case io.EOF:
			fmt.Fprintln(c.out)
			return
		default:
			log.Fatal(err)
		}
		if c.line(line) == errQuit {
			return
		}
	}
}

// complete completes function and command names ending at the cursor, which
// is a rune index into line.
func complete(line string, pos int) (head string, completions []string, tail string) {
	r := []rune(line)
	head, tail = string(r[:pos]), string(r[pos:])
	prefix := strings.TrimRightFunc(head, func(r rune) bool {
		return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
	})
	word := strings.ToLower(head[len(prefix):])
	head = prefix
	if word == "" {
		return head, nil, tail
	}
	for _, name := range fraccalc.FuncNames() {
		if strings.HasPrefix(name, word) {
			completions = append(completions, name)
		}
	}
	if strings.TrimSpace(head) == "" {
		for name := range commands {
			if strings.HasPrefix(name, word) {
				completions = append(completions, name)
			}
		}
		slices.Sort(completions)
	}
	return head, completions, tail
}
