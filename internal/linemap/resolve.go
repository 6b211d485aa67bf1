package linemap

import "github.com/phobologic/locstostms/internal/model"

// excluded reports whether nodes of kind k are skipped entirely, together
// with their descendants.
func excluded(k model.Kind) bool {
	switch k {
	case model.Comment, model.EnumConstant:
		return true
	case model.Statement, model.Declaration, model.VariableBinding, model.Other:
		return false
	}
	return false
}

// anchors reports whether an ancestor of kind k can own the lines of a
// single-line fragment nested inside it.
func anchors(k model.Kind) bool {
	switch k {
	case model.Statement, model.VariableBinding, model.Declaration:
		return true
	case model.EnumConstant, model.Comment, model.Other:
		return false
	}
	return false
}

// Resolve returns the owner line of leaf, which must have a parent.
//
// The owner defaults to the parent's begin line. A single-line statement
// owns itself. When the parent is confined to one line (a parameter, a
// binary operand), the owner is the begin line of the nearest ancestor,
// starting at the parent, that is a statement, variable binding or
// declaration; the default stands if the root is reached first.
func Resolve(leaf *model.Node) int {
	parent := leaf.Parent()
	line := parent.BeginLine

	switch {
	case leaf.Kind == model.Statement && leaf.SingleLine():
		line = leaf.BeginLine
	case parent.SingleLine():
		for anc := parent; anc != nil; anc = anc.Parent() {
			if anchors(anc.Kind) {
				line = anc.BeginLine
				break
			}
		}
	}
	return line
}
