package lang

import (
	"github.com/smacker/go-tree-sitter/java"

	"github.com/phobologic/locstostms/internal/model"
)

func init() {
	Languages["java"] = &Language{
		Name:       "java",
		Extensions: []string{".java"},
		Root:       "program",
		lang:       java.GetLanguage(),
		kinds:      kindTable(javaKinds),
		tokens:     tokenSet("string_literal", "character_literal", "text_block"),
	}
}

// Package and import declarations are deliberately absent from the
// declaration group: they never own the lines of nested fragments.
var javaKinds = map[model.Kind][]string{
	model.Statement: {
		"block",
		"expression_statement",
		"labeled_statement",
		"if_statement",
		"while_statement",
		"do_statement",
		"for_statement",
		"enhanced_for_statement",
		"assert_statement",
		"break_statement",
		"continue_statement",
		"return_statement",
		"yield_statement",
		"throw_statement",
		"synchronized_statement",
		"try_statement",
		"try_with_resources_statement",
		"catch_clause",
		"finally_clause",
		"switch_expression",
		"switch_block_statement_group",
		"switch_rule",
		"explicit_constructor_invocation",
		"local_variable_declaration",
	},
	model.Declaration: {
		"class_declaration",
		"interface_declaration",
		"enum_declaration",
		"record_declaration",
		"annotation_type_declaration",
		"annotation_type_element_declaration",
		"method_declaration",
		"constructor_declaration",
		"compact_constructor_declaration",
		"field_declaration",
		"constant_declaration",
		"static_initializer",
	},
	model.VariableBinding: {
		"variable_declarator",
	},
	model.EnumConstant: {
		"enum_constant",
	},
	model.Comment: {
		"comment",
		"line_comment",
		"block_comment",
	},
}
