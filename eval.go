package minilisp

func evalList(env *Env, nodes []*Node) ([]*Node, error) {
	ret := make([]*Node, 0, len(nodes))
	for _, node := range nodes {
		v, err := Eval(node, env)
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}

func call(env *Env, node *Node) (*Node, error) {
	if len(node.list) == 0 {
		return nil, newError(EvalError, ErrEmptyApplication, "")
	}
	head := node.list[0]
	fn := head
	if head == nil || head.t != NodeFunc {
		var err error
		fn, err = Eval(head, env)
		if err != nil {
			return nil, err
		}
	}
	if fn.t != NodeFunc {
		name := head.String()
		return nil, newError(TypeError, ErrNotCallable, name)
	}
	args, err := evalList(env, node.list[1:])
	if err != nil {
		return nil, err
	}
	return fn.Builtin().Fn(args)
}

// Eval evaluates node against env. A Func is only valid in the head of an
// application; everywhere else it is rejected.
func Eval(node *Node, env *Env) (*Node, error) {
	if node == nil {
		return nil, newError(TypeError, ErrNotEvaluable, "nil")
	}
	switch node.t {
	case NodeBool, NodeNumber, NodeString:
		return node, nil
	case NodeSymbol:
		name := node.Text()
		v, ok := env.Lookup(name)
		if !ok {
			return nil, newError(NameError, ErrNotFound, name)
		}
		return v, nil
	case NodeList:
		return call(env, node)
	}
	return nil, newError(TypeError, ErrNotEvaluable, node.String())
}
