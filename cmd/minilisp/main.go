package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/jcgregorio/logger"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	cli "github.com/urfave/cli/v2"

	"github.com/mattn/minilisp"
	"github.com/mattn/minilisp/repl"
)

var log = logger.NewFromOptions(&logger.Options{
	SyncWriter: os.Stderr,
})

func newSession(c *cli.Context) *minilisp.Session {
	if !c.Bool("verbose") {
		return minilisp.NewSession(nil, nil)
	}
	return minilisp.NewSession(nil, logger.NewFromOptions(&logger.Options{
		SyncWriter:   os.Stderr,
		IncludeDebug: true,
	}))
}

func options(c *cli.Context) repl.Options {
	return repl.Options{
		Prompt:    c.String("prompt"),
		JSON:      c.Bool("json"),
		FailFast:  c.Bool("fail-fast"),
		Color:     !c.Bool("no-color") && isatty.IsTerminal(os.Stdout.Fd()),
	}
}

func run(c *cli.Context) error {
	if c.NArg() > 1 {
		cli.ShowAppHelpAndExit(c, 2)
	}

	s := newSession(c)
	opts := options(c)

	if c.NArg() == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			opts.Interactive = true
			return interactive(s, opts)
		}
		return batch(repl.New(s, os.Stdout, opts).Run(os.Stdin))
	}

	f, err := os.Open(c.Args().First())
	if err != nil {
		return errors.Wrap(err, "open script")
	}
	defer f.Close()
	return batch(repl.New(s, os.Stdout, opts).Run(f))
}

// batch turns the failures a batch run already reported into a short
// summary so they are not printed twice.
func batch(err error) error {
	if merr, ok := err.(*multierror.Error); ok {
		return errors.Errorf("%d line(s) failed", len(merr.Errors))
	}
	return err
}

func examples(c *cli.Context) error {
	lines, err := minilisp.Examples()
	if err != nil {
		return errors.Wrap(err, "load examples")
	}
	s := newSession(c)
	for _, line := range lines {
		ret, err := s.EvalLine(line)
		if err != nil {
			fmt.Printf("%s => %v\n", line, err)
			continue
		}
		fmt.Printf("%s => %v\n", line, ret)
	}
	return nil
}

func main() {
	app := &cli.App{
		Name:      "minilisp",
		Usage:     "evaluate arithmetic s-expressions, one line at a time",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "prompt",
				Value:   "> ",
				Usage:   "interactive prompt",
				EnvVars: []string{"MINILISP_PROMPT"},
			},
			&cli.BoolFlag{
				Name:    "json",
				Usage:   "print results as JSON",
				EnvVars: []string{"MINILISP_JSON"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "log tokens and trees to stderr",
				EnvVars: []string{"MINILISP_VERBOSE"},
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Usage:   "never colour error output",
				EnvVars: []string{"MINILISP_NO_COLOR", "NO_COLOR"},
			},
			&cli.BoolFlag{
				Name:    "fail-fast",
				Usage:   "in batch mode, stop at the first failing line",
				EnvVars: []string{"MINILISP_FAIL_FAST"},
			},
		},
		Action: run,
		Commands: []*cli.Command{
			{
				Name:   "examples",
				Usage:  "evaluate the bundled examples",
				Action: examples,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
