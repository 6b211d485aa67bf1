package lang

import (
	"github.com/smacker/go-tree-sitter/ruby"

	"github.com/phobologic/locstostms/internal/model"
)

func init() {
	Languages["ruby"] = &Language{
		Name:       "ruby",
		Extensions: []string{".rb"},
		Root:       "program",
		lang:       ruby.GetLanguage(),
		kinds:      kindTable(rubyKinds),
		tokens:     tokenSet("string"),
	}
}

// Ruby's grammar names control flow after the keyword rather than with a
// _statement suffix.
var rubyKinds = map[model.Kind][]string{
	model.Statement: {
		"if",
		"unless",
		"elsif",
		"else",
		"while",
		"until",
		"for",
		"case",
		"when",
		"begin",
		"rescue",
		"ensure",
		"return",
		"break",
		"next",
		"redo",
		"retry",
		"yield",
		"if_modifier",
		"unless_modifier",
		"while_modifier",
		"until_modifier",
		"rescue_modifier",
	},
	model.Declaration: {
		"method",
		"singleton_method",
		"class",
		"singleton_class",
		"module",
	},
	model.VariableBinding: {
		"assignment",
		"operator_assignment",
	},
	model.Comment: {
		"comment",
	},
}
