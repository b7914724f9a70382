// Package repl drives a minilisp.Session from lines of text.
package repl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/mattn/minilisp"
)

// ErrQuit is returned by Line for the :quit command.
var ErrQuit = errors.New("quit")

type Options struct {
	// Prompt is printed before each line when Interactive is set.
	Prompt string
	// Interactive keeps going after errors and reports them inline.
	Interactive bool
	// FailFast makes batch mode stop at the first failing line.
	FailFast bool
	// JSON prints results as JSON instead of s-expressions.
	JSON  bool
	Color bool
}

type REPL struct {
	s    *minilisp.Session
	out  io.Writer
	opts Options
	red  *color.Color
}

func New(s *minilisp.Session, out io.Writer, opts Options) *REPL {
	red := color.New(color.FgRed)
	if opts.Color {
		red.EnableColor()
	} else {
		red.DisableColor()
	}
	return &REPL{
		s:    s,
		out:  out,
		opts: opts,
		red:  red,
	}
}

func (r *REPL) print(n *minilisp.Node) error {
	if n == nil {
		return nil
	}
	if !r.opts.JSON {
		_, err := fmt.Fprintln(r.out, n)
		return err
	}
	b, err := json.Marshal(n)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, string(b))
	return err
}

// Report prints err the way the line loop does.
func (r *REPL) Report(err error) error {
	_, werr := r.red.Fprintln(r.out, err)
	return werr
}

// Line evaluates one line of input, or runs it as a command when it
// starts with ':', and prints the result.
func (r *REPL) Line(line string) error {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, ":") {
		return r.command(trimmed[1:])
	}
	ret, err := r.s.EvalLine(line)
	if err != nil {
		return err
	}
	return r.print(ret)
}

func (r *REPL) command(line string) error {
	name, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		name, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	switch name {
	case "quit", "q":
		return ErrQuit
	case "help":
		s, err := minilisp.Help()
		if err != nil {
			return errors.Wrap(err, "load help")
		}
		_, err = fmt.Fprint(r.out, s)
		return err
	case "env":
		_, err := fmt.Fprintln(r.out, strings.Join(r.s.Env().Names(), " "))
		return err
	case "tokens":
		tokens, err := minilisp.Tokenize(arg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(r.out, "%q\n", tokens)
		return err
	case "tree":
		tokens, err := minilisp.Tokenize(arg)
		if err != nil {
			return err
		}
		node, err := minilisp.Parse(tokens)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(r.out, minilisp.Dump(node))
		return err
	case "json":
		ret, err := r.s.EvalLine(arg)
		if err != nil {
			return err
		}
		if ret == nil {
			return nil
		}
		b, err := json.Marshal(ret)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.out, string(b))
		return err
	}
	return errors.Errorf("unknown command :%s", name)
}

// Run reads lines from in until EOF or :quit. A failing line is reported
// and the loop moves on to the next one; batch runs return every failure
// together once the input is exhausted. With FailFast a batch run returns
// the first failure unreported instead.
func (r *REPL) Run(in io.Reader) error {
	var result *multierror.Error
	scanner := bufio.NewScanner(in)
	for n := 1; ; n++ {
		if r.opts.Interactive {
			fmt.Fprint(r.out, r.opts.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		err := r.Line(scanner.Text())
		if err == nil {
			continue
		}
		if errors.Is(err, ErrQuit) {
			break
		}
		if !r.opts.Interactive {
			err = errors.Wrapf(err, "line %d", n)
			if r.opts.FailFast {
				return err
			}
			result = multierror.Append(result, err)
		}
		if werr := r.Report(err); werr != nil {
			return errors.Wrap(werr, "report")
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}
	return result.ErrorOrNil()
}
