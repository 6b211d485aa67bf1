// Package model defines core data structures for locstostms.
package model

import "strings"

// Kind classifies a syntax node for the purpose of statement-line resolution.
// The set is closed: grammar node types are mapped onto it once, when the
// tree is built.
type Kind int

const (
	Other Kind = iota
	Statement
	Declaration
	VariableBinding
	EnumConstant
	Comment
)

func (k Kind) String() string {
	switch k {
	case Statement:
		return "statement"
	case Declaration:
		return "declaration"
	case VariableBinding:
		return "variable"
	case EnumConstant:
		return "enum-constant"
	case Comment:
		return "comment"
	default:
		return "other"
	}
}

// Node is a syntax tree node annotated with its physical line span.
type Node struct {
	Kind      Kind
	Type      string // grammar node type, e.g. "if_statement"
	BeginLine int    // 1-based
	EndLine   int    // 1-based, >= BeginLine
	Children  []*Node

	// parent is a lookup-only back reference; the tree is owned top-down.
	parent *Node
}

// NewNode returns a node with no parent and no children.
func NewNode(kind Kind, typ string, begin, end int) *Node {
	return &Node{Kind: kind, Type: typ, BeginLine: begin, EndLine: end}
}

// AddChild appends child to n and sets its parent link. It returns child so
// trees can be built inline.
func (n *Node) AddChild(child *Node) *Node {
	child.parent = n
	n.Children = append(n.Children, child)
	return child
}

// Parent returns the enclosing node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// SingleLine reports whether n begins and ends on the same physical line.
func (n *Node) SingleLine() bool {
	return n.BeginLine == n.EndLine
}

// Pair associates a member line with the owner line of its statement.
type Pair struct {
	Owner  int
	Member int
}

// FileResult is the outcome of mapping one source file.
type FileResult struct {
	Name   string // dot-qualified name, e.g. org.foo.Bar
	Path   string // resolved source file
	Ext    string // source extension including the dot
	Owners int    // number of statement lines
	Pairs  []Pair
}

// Artifact returns the slash-qualified file name used in output lines,
// e.g. org/foo/Bar.java.
func (r FileResult) Artifact() string {
	return strings.ReplaceAll(r.Name, ".", "/") + r.Ext
}
