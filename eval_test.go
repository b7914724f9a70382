package minilisp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalString(t *testing.T, env *Env, src string) (*Node, error) {
	t.Helper()
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	node, err := Parse(tokens)
	if err != nil {
		return nil, err
	}
	return Eval(node, env)
}

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"(+ 1 2)", 3},
		{"(* 2 3)", 6},
		{"(+ (* 2 3) (/ 10 2))", 11},
		{"(- 10 (- 5 2) 1)", 6},
		{"(/ 100 (* 2 5) 2)", 5},
		{"(* (+ 1 1) (+ 1 1) (+ 1 1))", 8},
		{"42", 42},
	}
	env := NewEnv()
	for _, test := range tests {
		got, err := evalString(t, env, test.input)
		require.NoError(t, err, test.input)
		require.Equal(t, NodeNumber, got.Type(), test.input)
		assert.Equal(t, test.want, got.Float(), test.input)
	}
}

func TestEvalSelf(t *testing.T) {
	env := NewEnv()
	for _, n := range []*Node{Bool(true), Number(1.5), String(`"s"`)} {
		got, err := Eval(n, env)
		require.NoError(t, err)
		assert.True(t, n.Equal(got))
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		input string
		class Class
		err   error
		name  string
	}{
		{"(foo 1 2)", NameError, ErrNotFound, "foo"},
		{"bar", NameError, ErrNotFound, "bar"},
		{"()", EvalError, ErrEmptyApplication, ""},
		{"(1 2)", TypeError, ErrNotCallable, "1"},
		{"((+ 1 2) 3)", TypeError, ErrNotCallable, "(+ 1 2)"},
		{"(-)", ArityError, ErrArity, "-"},
		{`(+ 1 "x")`, TypeError, ErrExpectedNumber, "+"},
		{"(+ 1 (* 2 nope))", NameError, ErrNotFound, "nope"},
	}
	env := NewEnv()
	for _, test := range tests {
		_, err := evalString(t, env, test.input)
		require.Error(t, err, test.input)
		assert.True(t, errors.Is(err, test.err), "%s: %v", test.input, err)
		var lerr *Error
		require.ErrorAs(t, err, &lerr)
		assert.Equal(t, test.class, lerr.Class, test.input)
		assert.Equal(t, test.name, lerr.Name, test.input)
	}
}

func TestEvalShortCircuit(t *testing.T) {
	env := NewEnv()
	calls := 0
	env.Bind("count", Func("count", func(args []*Node) (*Node, error) {
		calls++
		return Number(0), nil
	}))
	_, err := evalString(t, env, "(+ (count) (missing) (count))")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, calls)
}

func TestEvalFunc(t *testing.T) {
	env := NewEnv()
	_, err := Eval(Func("f", doPlus), env)
	assert.ErrorIs(t, err, ErrNotEvaluable)

	_, err = Eval(nil, env)
	assert.ErrorIs(t, err, ErrNotEvaluable)
	_, err = Eval(List(nil, Number(1)), env)
	assert.ErrorIs(t, err, ErrNotEvaluable)

	got, err := Eval(List(Func("f", doPlus), Number(2), Number(3)), env)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.Float())

	got, err = Eval(Symbol("*"), env)
	require.NoError(t, err)
	assert.Equal(t, NodeFunc, got.Type())
}

func TestEvalDoesNotBind(t *testing.T) {
	env := NewEnv()
	before := env.Names()
	_, err := evalString(t, env, "(+ 1 (foo))")
	require.Error(t, err)
	_, err = evalString(t, env, "(/ 1 2)")
	require.NoError(t, err)
	assert.Equal(t, before, env.Names())
}
