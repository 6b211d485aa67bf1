package lang

import (
	"github.com/smacker/go-tree-sitter/python"

	"github.com/phobologic/locstostms/internal/model"
)

func init() {
	Languages["python"] = &Language{
		Name:       "python",
		Extensions: []string{".py"},
		Root:       "module",
		lang:       python.GetLanguage(),
		kinds:      kindTable(pythonKinds),
		tokens:     tokenSet("string"),
	}
}

var pythonKinds = map[model.Kind][]string{
	model.Statement: {
		"block",
		"expression_statement",
		"return_statement",
		"pass_statement",
		"break_statement",
		"continue_statement",
		"raise_statement",
		"assert_statement",
		"delete_statement",
		"global_statement",
		"nonlocal_statement",
		"import_statement",
		"import_from_statement",
		"if_statement",
		"elif_clause",
		"else_clause",
		"for_statement",
		"while_statement",
		"try_statement",
		"except_clause",
		"finally_clause",
		"with_statement",
		"match_statement",
	},
	model.Declaration: {
		"function_definition",
		"class_definition",
		"decorated_definition",
	},
	model.VariableBinding: {
		"assignment",
		"augmented_assignment",
	},
	model.Comment: {
		"comment",
	},
}
