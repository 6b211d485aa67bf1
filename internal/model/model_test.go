package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddChildSetsParent(t *testing.T) {
	t.Parallel()

	root := NewNode(Other, "program", 1, 3)
	decl := root.AddChild(NewNode(Declaration, "class_declaration", 1, 3))
	leaf := decl.AddChild(NewNode(Other, "identifier", 1, 1))

	require.Len(t, root.Children, 1)
	assert.Same(t, decl, root.Children[0])
	assert.Nil(t, root.Parent())
	assert.Same(t, root, decl.Parent())
	assert.Same(t, decl, leaf.Parent())
	assert.False(t, decl.IsLeaf())
	assert.True(t, leaf.IsLeaf())
	assert.True(t, leaf.SingleLine())
	assert.False(t, decl.SingleLine())
}

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{Statement, "statement"},
		{Declaration, "declaration"},
		{VariableBinding, "variable"},
		{EnumConstant, "enum-constant"},
		{Comment, "comment"},
		{Other, "other"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestArtifact(t *testing.T) {
	t.Parallel()

	r := FileResult{Name: "org.foo.Bar", Ext: ".java"}
	assert.Equal(t, "org/foo/Bar.java", r.Artifact())

	r = FileResult{Name: "Bar", Ext: ".py"}
	assert.Equal(t, "Bar.py", r.Artifact())
}
