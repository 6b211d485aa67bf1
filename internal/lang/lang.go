// Package lang provides a language registry mapping file extensions to
// tree-sitter languages and their node classification tables.
package lang

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/locstostms/internal/model"
)

// Default is the language used when none is configured.
const Default = "java"

// Language holds tree-sitter configuration for a supported language.
type Language struct {
	Name       string
	Extensions []string
	Root       string // type of the tree root
	lang       *sitter.Language

	// kinds maps grammar node types onto the closed model.Kind set.
	// Types not listed classify as model.Other.
	kinds map[string]model.Kind

	// tokens are node types kept whole: their named children are dropped.
	tokens map[string]struct{}
}

// GetLanguage returns the tree-sitter Language pointer.
func (l *Language) GetLanguage() *sitter.Language {
	return l.lang
}

// NewParser creates a fresh tree-sitter parser for this language.
// Each goroutine must use its own parser (not thread-safe).
func (l *Language) NewParser() *sitter.Parser {
	p := sitter.NewParser()
	p.SetLanguage(l.lang)
	return p
}

// Extension returns the primary file extension, including the dot.
func (l *Language) Extension() string {
	return l.Extensions[0]
}

// Classify returns the kind of a grammar node type.
func (l *Language) Classify(nodeType string) model.Kind {
	if k, ok := l.kinds[nodeType]; ok {
		return k
	}
	return model.Other
}

// IsToken reports whether nodes of nodeType are indivisible leaves.
func (l *Language) IsToken(nodeType string) bool {
	_, ok := l.tokens[nodeType]
	return ok
}

// Languages maps language names to their configuration.
// Populated by init() functions in per-language files.
var Languages = map[string]*Language{}

// Lookup returns the registered language called name.
func Lookup(name string) (*Language, error) {
	l, ok := Languages[name]
	if !ok {
		return nil, fmt.Errorf("unsupported language %q (supported: %s)", name, strings.Join(Names(), ", "))
	}
	return l, nil
}

// Names returns the registered language names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Languages))
	for name := range Languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// extensionMap is built lazily after all init() functions have run.
var extensionMap map[string]string
var extensionOnce sync.Once

func getExtensionMap() map[string]string {
	extensionOnce.Do(func() {
		extensionMap = make(map[string]string)
		for _, l := range Languages {
			for _, ext := range l.Extensions {
				extensionMap[ext] = l.Name
			}
		}
	})
	return extensionMap
}

// ForExtension returns the language name for a file extension, or "" if unsupported.
func ForExtension(ext string) string {
	return getExtensionMap()[ext]
}

// kindTable builds a classification table from per-kind type lists.
func kindTable(groups map[model.Kind][]string) map[string]model.Kind {
	table := make(map[string]model.Kind)
	for kind, types := range groups {
		for _, t := range types {
			table[t] = kind
		}
	}
	return table
}

func tokenSet(types ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}
