package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/mattn/minilisp"
	"github.com/mattn/minilisp/repl"
)

// interactive runs the REPL on a raw terminal so that lines can be edited
// and recalled with the arrow keys.
func interactive(s *minilisp.Session, opts repl.Options) error {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return errors.Wrap(err, "make terminal raw")
	}
	defer term.Restore(fd, state)

	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	t := term.NewTerminal(screen, opts.Prompt)
	r := repl.New(s, t, opts)
	for {
		line, err := t.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read line")
		}
		if err := r.Line(line); err != nil {
			if errors.Is(err, repl.ErrQuit) {
				return nil
			}
			if err := r.Report(err); err != nil {
				return errors.Wrap(err, "report")
			}
		}
	}
}
