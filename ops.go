package minilisp

var ops map[string]Fn

func init() {
	ops = make(map[string]Fn)
	ops["+"] = doPlus
	ops["-"] = doMinus
	ops["*"] = doMul
	ops["/"] = doDiv
}

// numbers checks that every argument of the builtin name is a Number.
func numbers(name string, args []*Node) ([]float64, error) {
	fs := make([]float64, len(args))
	for i, arg := range args {
		if arg == nil || arg.t != NodeNumber {
			return nil, newError(TypeError, ErrExpectedNumber, name)
		}
		fs[i] = arg.Float()
	}
	return fs, nil
}

// fold applies op left to right. When start is nil the first argument is
// the seed and at least one argument is required.
func fold(name string, args []*Node, start *float64, op func(a, b float64) float64) (*Node, error) {
	fs, err := numbers(name, args)
	if err != nil {
		return nil, err
	}
	var ret float64
	if start != nil {
		ret = *start
	} else {
		if len(fs) == 0 {
			return nil, newError(ArityError, ErrArity, name)
		}
		ret, fs = fs[0], fs[1:]
	}
	for _, f := range fs {
		ret = op(ret, f)
	}
	return Number(ret), nil
}

func seed(f float64) *float64 {
	return &f
}

func doPlus(args []*Node) (*Node, error) {
	return fold("+", args, seed(0), func(a, b float64) float64 { return a + b })
}

func doMinus(args []*Node) (*Node, error) {
	return fold("-", args, nil, func(a, b float64) float64 { return a - b })
}

func doMul(args []*Node) (*Node, error) {
	return fold("*", args, seed(1), func(a, b float64) float64 { return a * b })
}

// doDiv never fails on a zero divisor: the result is Inf or NaN.
func doDiv(args []*Node) (*Node, error) {
	return fold("/", args, nil, func(a, b float64) float64 { return a / b })
}
