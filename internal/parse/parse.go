// Package parse builds line-annotated syntax trees from source files using
// tree-sitter.
package parse

import (
	"context"
	"errors"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/locstostms/internal/lang"
	"github.com/phobologic/locstostms/internal/model"
)

// ErrSyntax is wrapped by every *Error.
var ErrSyntax = errors.New("syntax error")

// Error reports the first unparseable position of a source file.
type Error struct {
	Path   string
	Line   int
	Column int
	Type   string // offending node type, "ERROR" or the missing token
}

func (e *Error) Error() string {
	if e.Type != "" && e.Type != "ERROR" {
		return fmt.Sprintf("%s:%d:%d: %v: missing %s", e.Path, e.Line, e.Column, ErrSyntax, e.Type)
	}
	return fmt.Sprintf("%s:%d:%d: %v", e.Path, e.Line, e.Column, ErrSyntax)
}

func (e *Error) Unwrap() error {
	return ErrSyntax
}

// Parser turns source text of one language into a model.Node tree.
// A Parser is not safe for concurrent use.
type Parser struct {
	lang   *lang.Language
	parser *sitter.Parser
}

// New creates a Parser for l.
func New(l *lang.Language) *Parser {
	return &Parser{lang: l, parser: l.NewParser()}
}

// ParseFile reads and parses the file at path.
func (p *Parser) ParseFile(ctx context.Context, path string) (*model.Node, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	root, err := p.Parse(ctx, source)
	if err != nil {
		var perr *Error
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return root, nil
}

// Parse parses source and returns the root of its syntax tree. Only named
// grammar nodes become model nodes; anonymous tokens such as punctuation
// and keywords are folded into their parent. String and character
// literals are leaves. Empty source yields a childless root of the
// language's root type on line 1. Any error or missing node fails the
// whole parse.
func (p *Parser) Parse(ctx context.Context, source []byte) (*model.Node, error) {
	if len(source) == 0 {
		return model.NewNode(p.lang.Classify(p.lang.Root), p.lang.Root, 1, 1), nil
	}

	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		bad := firstError(root)
		if bad == nil {
			bad = root
		}
		return nil, &Error{
			Path:   "<input>",
			Line:   int(bad.StartPoint().Row) + 1,
			Column: int(bad.StartPoint().Column) + 1,
			Type:   bad.Type(),
		}
	}

	return p.convert(root), nil
}

func (p *Parser) convert(n *sitter.Node) *model.Node {
	begin, end := lines(n)
	node := model.NewNode(p.lang.Classify(n.Type()), n.Type(), begin, end)
	if p.lang.IsToken(n.Type()) {
		return node
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		node.AddChild(p.convert(n.NamedChild(i)))
	}
	return node
}

// lines returns the 1-based begin and end lines of n. An end point at
// column 0 of a later row means the node stops at the previous line's
// newline.
func lines(n *sitter.Node) (int, int) {
	start, stop := n.StartPoint(), n.EndPoint()
	begin := int(start.Row) + 1
	end := int(stop.Row) + 1
	if stop.Column == 0 && stop.Row > start.Row {
		end--
	}
	return begin, end
}

// firstError returns the first ERROR or MISSING node in document order.
func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstError(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}
