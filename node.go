package minilisp

import (
	"encoding/json"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Equal compares n and o structurally. Function values are never equal,
// not even to themselves.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.t != o.t {
		return false
	}
	switch n.t {
	case NodeFunc:
		return false
	case NodeList:
		if len(n.list) != len(o.list) {
			return false
		}
		for i := range n.list {
			if !n.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	}
	return n.v == o.v
}

// Copy returns a deep copy of n. Builtins are shared.
func (n *Node) Copy() *Node {
	if n == nil {
		return nil
	}
	c := *n
	if n.t == NodeList {
		c.list = make([]*Node, len(n.list))
		for i, item := range n.list {
			c.list[i] = item.Copy()
		}
	}
	return &c
}

func (n *Node) MarshalJSON() ([]byte, error) {
	switch n.t {
	case NodeBool:
		return json.Marshal(n.Truth())
	case NodeNumber:
		return json.Marshal(n.Float())
	case NodeString:
		s := strings.TrimSuffix(strings.TrimPrefix(n.Text(), `"`), `"`)
		return json.Marshal(s)
	case NodeSymbol:
		return json.Marshal(map[string]string{"symbol": n.Text()})
	case NodeList:
		return json.Marshal(n.list)
	}
	return nil, newError(TypeError, ErrNotSerializable, n.Builtin().Name)
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// Dump renders the internal structure of n for debugging.
func Dump(n *Node) string {
	return dumper.Sdump(n)
}
