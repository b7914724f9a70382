package minilisp

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOps(t *testing.T) {
	fns, err := filepath.Glob("testdata/*.lisp")
	require.NoError(t, err)
	require.NotEmpty(t, fns)

	for _, fn := range fns {
		t.Log(fn)
		f, err := os.Open(fn)
		require.NoError(t, err)

		var buf bytes.Buffer
		s := NewSession(nil, nil)
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			ret, err := s.EvalLine(scanner.Text())
			if err != nil {
				buf.WriteString(err.Error() + "\n")
				continue
			}
			buf.WriteString(ret.String() + "\n")
		}
		require.NoError(t, scanner.Err())
		f.Close()

		b, err := os.ReadFile(strings.TrimSuffix(fn, ".lisp") + ".out")
		require.NoError(t, err)
		if diff := cmp.Diff(string(b), buf.String()); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", fn, diff)
		}
	}
}

func callOp(t *testing.T, name string, args ...*Node) (*Node, error) {
	t.Helper()
	fn, ok := ops[name]
	require.True(t, ok, name)
	return fn(args)
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		args []float64
		want float64
	}{
		{"+", nil, 0},
		{"+", []float64{1, 2, 3}, 6},
		{"*", nil, 1},
		{"*", []float64{2, 3}, 6},
		{"*", []float64{7}, 7},
		{"-", []float64{5}, 5},
		{"-", []float64{10, 4, 1}, 5},
		{"/", []float64{8}, 8},
		{"/", []float64{100, 5, 2}, 10},
	}
	for _, test := range tests {
		args := make([]*Node, len(test.args))
		for i, f := range test.args {
			args[i] = Number(f)
		}
		got, err := callOp(t, test.name, args...)
		require.NoError(t, err)
		assert.Equal(t, NodeNumber, got.Type())
		assert.Equal(t, test.want, got.Float(), "%s %v", test.name, test.args)
	}
}

func TestArithmeticErrors(t *testing.T) {
	for _, name := range []string{"-", "/"} {
		_, err := callOp(t, name)
		assert.ErrorIs(t, err, ErrArity)
		var lerr *Error
		require.ErrorAs(t, err, &lerr)
		assert.Equal(t, ArityError, lerr.Class)
		assert.Equal(t, name, lerr.Name)
	}
	for _, name := range []string{"+", "-", "*", "/"} {
		_, err := callOp(t, name, Number(1), String(`"a"`))
		assert.ErrorIs(t, err, ErrExpectedNumber, name)
		_, err = callOp(t, name, Symbol("x"))
		assert.ErrorIs(t, err, ErrExpectedNumber, name)
	}
}

func TestDivideByZero(t *testing.T) {
	got, err := callOp(t, "/", Number(1), Number(0))
	require.NoError(t, err)
	assert.Equal(t, "+Inf", got.String())

	got, err = callOp(t, "/", Number(0), Number(0))
	require.NoError(t, err)
	assert.Equal(t, "NaN", got.String())
}
