package minilisp

import (
	"io"
	"path"
	"strings"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/minilisp/statik"
)

//go:generate statik -src=doc

func readDoc(name string) ([]byte, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, err
	}
	f, err := statikFS.Open(path.Join("/", name))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// Help returns the interactive help text.
func Help() (string, error) {
	b, err := readDoc("help.txt")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Examples returns the bundled example lines.
func Examples() ([]string, error) {
	b, err := readDoc("examples.lisp")
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(string(b), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
