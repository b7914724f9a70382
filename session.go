package minilisp

// Logger is the subset of github.com/jcgregorio/logger used here.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warningf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})   {}
func (nopLogger) Warningf(string, ...interface{}) {}

// Session evaluates lines of input against one Env. Only one line may be
// in flight at a time.
type Session struct {
	env *Env
	log Logger
}

// NewSession returns a Session over env. A nil env gets a fresh NewEnv and
// a nil log discards everything.
func NewSession(env *Env, log Logger) *Session {
	if env == nil {
		env = NewEnv()
	}
	if log == nil {
		log = nopLogger{}
	}
	return &Session{
		env: env,
		log: log,
	}
}

func (s *Session) Env() *Env {
	return s.env
}

// EvalLine evaluates every expression on line in order and returns the
// value of the last one. A blank line yields nil and no error.
func (s *Session) EvalLine(line string) (*Node, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	s.log.Debugf("tokens: %q", tokens)

	nodes, err := ParseAll(tokens)
	if err != nil {
		return nil, err
	}

	var ret *Node
	for _, node := range nodes {
		s.log.Debugf("tree:\n%s", Dump(node))
		ret, err = Eval(node, s.env)
		if err != nil {
			s.log.Warningf("%s: %v", node, err)
			return nil, err
		}
	}
	return ret, nil
}
