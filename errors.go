package minilisp

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedString = errors.New("unterminated string")
	ErrUnbalancedParens   = errors.New("unbalanced parentheses")
	ErrTrailingTokens     = errors.New("unexpected tokens after expression")
	ErrNotFound           = errors.New("not found")
	ErrNotCallable        = errors.New("not callable")
	ErrNotEvaluable       = errors.New("not evaluable")
	ErrExpectedNumber     = errors.New("expected Number")
	ErrArity              = errors.New("wrong number of arguments")
	ErrEmptyApplication   = errors.New("empty application")
	ErrNotSerializable    = errors.New("not serializable")
)

// Class is the category an Error belongs to.
type Class int

const (
	LexError Class = iota
	ParseError
	NameError
	TypeError
	ArityError
	EvalError
)

func (c Class) String() string {
	switch c {
	case LexError:
		return "LexError"
	case ParseError:
		return "ParseError"
	case NameError:
		return "NameError"
	case TypeError:
		return "TypeError"
	case ArityError:
		return "ArityError"
	case EvalError:
		return "EvalError"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Error is returned by every stage of the pipeline. Err is one of the
// package sentinels; Name holds the symbol or builtin involved, if any,
// and Pos the rune offset (lexer) or token index (parser), or -1.
type Error struct {
	Class Class
	Err   error
	Name  string
	Pos   int
}

func newError(c Class, err error, name string) *Error {
	return &Error{Class: c, Err: err, Name: name, Pos: -1}
}

func (e *Error) Error() string {
	s := e.Class.String() + ": " + e.Err.Error()
	if e.Name != "" {
		s += ": " + e.Name
	}
	if e.Pos >= 0 {
		s += fmt.Sprintf(" (at %d)", e.Pos)
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Err
}
