package minilisp

import (
	"bytes"
	"fmt"
	"strconv"
)

type NodeType int

const (
	NodeBool NodeType = iota
	NodeNumber
	NodeString
	NodeSymbol
	NodeList
	NodeFunc
)

func (t NodeType) String() string {
	switch t {
	case NodeBool:
		return "Boolean"
	case NodeNumber:
		return "Number"
	case NodeString:
		return "String"
	case NodeSymbol:
		return "Symbol"
	case NodeList:
		return "List"
	case NodeFunc:
		return "Function"
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}

// Fn is a native function. It receives already evaluated arguments and
// must not modify them.
type Fn func(args []*Node) (*Node, error)

// Builtin is the payload of a NodeFunc.
type Builtin struct {
	Name string
	Fn   Fn
}

// Node is an expression: a literal, a symbol, a list or a function value.
type Node struct {
	t    NodeType
	v    interface{}
	list []*Node
}

func Bool(b bool) *Node {
	return &Node{t: NodeBool, v: b}
}

func Number(f float64) *Node {
	return &Node{t: NodeNumber, v: f}
}

// String returns a string literal. s is kept verbatim, quotes included.
func String(s string) *Node {
	return &Node{t: NodeString, v: s}
}

func Symbol(name string) *Node {
	return &Node{t: NodeSymbol, v: name}
}

func List(items ...*Node) *Node {
	if items == nil {
		items = []*Node{}
	}
	return &Node{t: NodeList, list: items}
}

func Func(name string, fn Fn) *Node {
	return &Node{t: NodeFunc, v: &Builtin{Name: name, Fn: fn}}
}

// Nil is the expression an empty token sequence parses to.
func Nil() *Node {
	return Symbol("nil")
}

func (n *Node) Type() NodeType {
	return n.t
}

// Float returns the value of a NodeNumber, or 0.
func (n *Node) Float() float64 {
	f, _ := n.v.(float64)
	return f
}

// Text returns the text of a NodeString or the name of a NodeSymbol.
func (n *Node) Text() string {
	s, _ := n.v.(string)
	return s
}

func (n *Node) Truth() bool {
	b, _ := n.v.(bool)
	return b
}

func (n *Node) Items() []*Node {
	return n.list
}

// Builtin returns the payload of a NodeFunc, or nil.
func (n *Node) Builtin() *Builtin {
	b, _ := n.v.(*Builtin)
	return b
}

type Parser struct {
	tokens []string
	pos    int
}

func NewParser(tokens []string) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

func (p *Parser) Pos() int {
	return p.pos
}

// More reports whether tokens remain.
func (p *Parser) More() bool {
	return p.pos < len(p.tokens)
}

func (p *Parser) peek() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) next() (string, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *Parser) unbalanced(pos int) error {
	err := newError(ParseError, ErrUnbalancedParens, "")
	err.Pos = pos
	return err
}

// ParseParen reads list elements up to and including the closing paren.
// open is the index of the opening paren.
func (p *Parser) ParseParen(open int) (*Node, error) {
	items := []*Node{}
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, p.unbalanced(open)
		}
		if tok == ")" {
			p.pos++
			return List(items...), nil
		}
		child, err := p.ParseAny()
		if err != nil {
			return nil, err
		}
		items = append(items, child)
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isNumber(tok string) bool {
	if tok == "" || !isDigit(tok[0]) {
		return false
	}
	for i := 1; i < len(tok); i++ {
		if !isDigit(tok[i]) && tok[i] != '.' {
			return false
		}
	}
	return true
}

// ParsePrimitive classifies a leaf token. A token shaped like a number
// that does not parse as one, such as "1.2.3", is a Symbol. A literal too
// large for a float64 is the infinity ParseFloat returns.
func (p *Parser) ParsePrimitive(tok string) *Node {
	if isNumber(tok) {
		f, err := strconv.ParseFloat(tok, 64)
		if err == nil {
			return Number(f)
		}
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return Number(f)
		}
	}
	if tok != "" && tok[0] == '"' {
		return String(tok)
	}
	return Symbol(tok)
}

func (p *Parser) ParseAny() (*Node, error) {
	pos := p.pos
	tok, ok := p.next()
	if !ok {
		return nil, p.unbalanced(pos)
	}
	switch tok {
	case "(":
		return p.ParseParen(pos)
	case ")":
		return nil, p.unbalanced(pos)
	}
	return p.ParsePrimitive(tok), nil
}

// Parse builds a single expression from tokens. An empty sequence parses
// to Nil().
func Parse(tokens []string) (*Node, error) {
	p := NewParser(tokens)
	if !p.More() {
		return Nil(), nil
	}
	node, err := p.ParseAny()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		if tok == ")" {
			return nil, p.unbalanced(p.pos)
		}
		err := newError(ParseError, ErrTrailingTokens, tok)
		err.Pos = p.pos
		return nil, err
	}
	return node, nil
}

// ParseAll builds every top-level expression in tokens, in order.
func ParseAll(tokens []string) ([]*Node, error) {
	p := NewParser(tokens)
	nodes := []*Node{}
	for p.More() {
		node, err := p.ParseAny()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	var buf bytes.Buffer
	switch n.t {
	case NodeList:
		fmt.Fprint(&buf, "(")
		for i, item := range n.list {
			if i > 0 {
				fmt.Fprint(&buf, " ")
			}
			fmt.Fprint(&buf, item)
		}
		fmt.Fprint(&buf, ")")
	case NodeNumber:
		buf.WriteString(strconv.FormatFloat(n.Float(), 'g', -1, 64))
	case NodeBool:
		buf.WriteString(strconv.FormatBool(n.Truth()))
	case NodeFunc:
		fmt.Fprintf(&buf, "#<builtin %s>", n.Builtin().Name)
	default:
		buf.WriteString(n.Text())
	}
	return buf.String()
}
