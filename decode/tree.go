package decode

import (
	"strings"

	"github.com/baoilleach/deepsmiles/token"
)

type node struct {
	text     string
	parent   int
	children []int
}

// Tree is the spanning tree of a molecule, in the order atoms are written.
// Node 0 is the root. Ring bonds are not edges of the tree; they are kept as
// ring-closure numbers appended to the text of both of their atoms.
type Tree struct {
	nodes    []node
	closures int
}

// Add adds an atom with the given parent, or a root if parent is -1, and
// returns its index.
func (t *Tree) Add(text string, parent int) int {
	i := len(t.nodes)
	t.nodes = append(t.nodes, node{text: text, parent: parent})
	if parent >= 0 {
		t.nodes[parent].children = append(t.nodes[parent].children, i)
	}
	return i
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

// Append extends the text of node i.
func (t *Tree) Append(i int, text string) {
	t.nodes[i].text += text
}

func (t *Tree) Parent(i int) int {
	return t.nodes[i].parent
}

// Ancestor returns the node steps parent links above from.
func (t *Tree) Ancestor(from, steps int) (int, bool) {
	cur := from
	for range steps {
		cur = t.Parent(cur)
		if cur < 0 {
			return -1, false
		}
	}
	return cur, true
}

// AddRingClosure closes a ring of the given size at node from: the atom
// size-1 steps up the tree receives a new ring-closure number and so does
// from, preceded by bond.
func (t *Tree) AddRingClosure(from, size int, bond string) bool {
	if size < 1 || from < 0 {
		return false
	}
	to, ok := t.Ancestor(from, size-1)
	if !ok {
		return false
	}
	t.closures++
	sym := token.FormatRing(t.closures)
	t.nodes[from].text += bond + sym
	t.nodes[to].text += sym
	return true
}

// String writes the tree as SMILES. Every child but the last is
// parenthesized.
func (t *Tree) String() string {
	if len(t.nodes) == 0 {
		return ""
	}
	type item struct {
		node int
		lit  string
	}
	var (
		buf      = &strings.Builder{}
		stack    = []item{{node: 0}}
		openLit  = item{node: -1, lit: "("}
		closeLit = item{node: -1, lit: ")"}
	)
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.node < 0 {
			buf.WriteString(it.lit)
			continue
		}
		n := &t.nodes[it.node]
		buf.WriteString(n.text)
		kids := n.children
		if len(kids) == 0 {
			continue
		}
		stack = append(stack, item{node: kids[len(kids)-1]})
		for j := len(kids) - 2; j >= 0; j-- {
			stack = append(stack, closeLit, item{node: kids[j]}, openLit)
		}
	}
	return buf.String()
}
