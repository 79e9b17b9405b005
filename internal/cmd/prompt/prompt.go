// Package prompt asks the user to confirm changes and path corrections.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/agentstation/sherlock/pkg/resolver"
)

// Prompter reads answers from a terminal. It implements both the client's
// Confirmer and resolver.Resolver.
type Prompter struct {
	in       *bufio.Reader
	out      io.Writer
	useColor bool
}

// New returns a Prompter reading from in and asking on out.
func New(in io.Reader, out io.Writer, useColor bool) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, useColor: useColor}
}

// Confirm asks question and returns true for "y" or "yes". Anything else,
// including end of input, declines.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintf(p.out, "%s (y/N): ", question)
	return yes(p.readLine()), nil
}

// Resolve offers the best suggestion for a mistyped segment.
func (p *Prompter) Resolve(ctx context.Context, req resolver.Request) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	best := req.Suggestions[0].Key
	where := "at the top level"
	if len(req.Parent) > 0 {
		where = "under " + req.Parent.String()
	}
	fmt.Fprintf(p.out, "%q does not exist %s. Did you mean %s? (y/N): ", req.Segment, where, p.highlight(best))
	return yes(p.readLine()), nil
}

func (p *Prompter) highlight(s string) string {
	if !p.useColor {
		return fmt.Sprintf("%q", s)
	}
	c := color.New(color.Bold, color.FgCyan)
	c.EnableColor()
	return c.Sprint(s)
}

func (p *Prompter) readLine() string {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "n"
	}
	return line
}

func yes(response string) bool {
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
