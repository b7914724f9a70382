package minilisp

import (
	"strings"
)

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// Tokenize splits src into parens, quoted strings and bare words.
// A quoted string is only recognised at the start of a token and runs
// to the next '"' with no escapes; both quotes are kept.
func Tokenize(src string) ([]string, error) {
	tokens := []string{}
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, buf.String())
			buf.Reset()
		}
	}

	rs := []rune(src)
	for pos := 0; pos < len(rs); pos++ {
		r := rs[pos]
		switch {
		case isSpace(r):
			flush()
		case r == '(' || r == ')':
			flush()
			tokens = append(tokens, string(r))
		case r == '"' && buf.Len() == 0:
			end := pos + 1
			for end < len(rs) && rs[end] != '"' {
				end++
			}
			if end == len(rs) {
				err := newError(LexError, ErrUnterminatedString, "")
				err.Pos = pos
				return nil, err
			}
			tokens = append(tokens, string(rs[pos:end+1]))
			pos = end
		default:
			buf.WriteRune(r)
		}
	}
	flush()
	return tokens, nil
}
