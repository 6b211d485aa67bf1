package lang

import (
	"github.com/smacker/go-tree-sitter/golang"

	"github.com/phobologic/locstostms/internal/model"
)

func init() {
	Languages["go"] = &Language{
		Name:       "go",
		Extensions: []string{".go"},
		Root:       "source_file",
		lang:       golang.GetLanguage(),
		kinds:      kindTable(goKinds),
		tokens:     tokenSet("interpreted_string_literal", "raw_string_literal"),
	}
}

var goKinds = map[model.Kind][]string{
	model.Statement: {
		"block",
		"expression_statement",
		"send_statement",
		"inc_statement",
		"dec_statement",
		"assignment_statement",
		"short_var_declaration",
		"labeled_statement",
		"fallthrough_statement",
		"break_statement",
		"continue_statement",
		"goto_statement",
		"return_statement",
		"go_statement",
		"defer_statement",
		"if_statement",
		"for_statement",
		"expression_switch_statement",
		"type_switch_statement",
		"select_statement",
		"expression_case",
		"type_case",
		"default_case",
		"communication_case",
	},
	model.Declaration: {
		"function_declaration",
		"method_declaration",
		"type_declaration",
		"var_declaration",
		"const_declaration",
		"type_spec",
	},
	model.VariableBinding: {
		"var_spec",
		"const_spec",
	},
	model.Comment: {
		"comment",
	},
}
