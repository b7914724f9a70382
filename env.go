package minilisp

import (
	"sort"
)

// Env is a flat symbol table. It is not safe for concurrent use.
type Env struct {
	vars map[string]*Node
}

// NewEnv returns an Env holding the builtin operators.
func NewEnv() *Env {
	env := &Env{
		vars: make(map[string]*Node),
	}
	for name, fn := range ops {
		env.Bind(name, Func(name, fn))
	}
	return env
}

// Bind inserts or replaces the value bound to name.
func (e *Env) Bind(name string, v *Node) {
	e.vars[name] = v
}

// Lookup returns a copy of the value bound to name.
func (e *Env) Lookup(name string) (*Node, bool) {
	v, ok := e.vars[name]
	if !ok {
		return nil, false
	}
	return v.Copy(), true
}

func (e *Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
