// Package discover resolves qualified names to source files across a list
// of candidate source roots.
package discover

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/phobologic/locstostms/internal/lang"
)

var skipDirs = map[string]struct{}{
	"__pycache__":   {},
	"node_modules":  {},
	".git":          {},
	".hg":           {},
	".svn":          {},
	"venv":          {},
	".venv":         {},
	"build":         {},
	"dist":          {},
	"target":        {},
	"out":           {},
	".gradle":       {},
	".idea":         {},
	".mypy_cache":   {},
	".pytest_cache": {},
}

// SourcePath converts a dot-qualified name such as org.foo.Bar into the
// relative path of its source file, org/foo/Bar<ext>.
func SourcePath(name, ext string) string {
	return filepath.FromSlash(strings.ReplaceAll(name, ".", "/")) + ext
}

// Locate returns the source file of name in the first root that contains
// it. Roots are consulted in order and the rest are ignored once one
// matches. It reports false if no root has the file.
func Locate(roots []string, name, ext string) (string, bool) {
	rel := SourcePath(name, ext)
	for _, root := range roots {
		path := filepath.Join(root, rel)
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		return path, true
	}
	return "", false
}

// Options controls Classes.
type Options struct {
	// SkipTests drops files that look like test sources.
	SkipTests bool
}

// Classes walks root and returns the sorted qualified names of every source
// file of language l. Hidden and build directories are skipped, as are
// files excluded by git or the root's .gitignore.
func Classes(root string, l *lang.Language, opts Options) ([]string, error) {
	exts := make(map[string]struct{}, len(l.Extensions))
	for _, ext := range l.Extensions {
		exts[ext] = struct{}{}
	}
	gitFiles := gitLsFiles(root)
	var gi *ignore.GitIgnore
	if gitFiles == nil {
		gi = loadGitignore(root)
	}

	var names []string

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip errors
		}

		name := d.Name()

		if d.IsDir() {
			if path == root {
				return nil
			}
			if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}

		// Skip symlinks
		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		ext := filepath.Ext(name)
		if _, ok := exts[ext]; !ok {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		if gitFiles != nil {
			if _, ok := gitFiles[filepath.ToSlash(rel)]; !ok {
				return nil
			}
		} else if gi != nil && gi.MatchesPath(rel) {
			return nil
		}

		if opts.SkipTests && IsTestFile(rel) {
			return nil
		}

		names = append(names, QualifiedName(rel, ext))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(names)
	return names, nil
}

// QualifiedName converts a root-relative source path back into a
// dot-qualified name.
func QualifiedName(rel, ext string) string {
	rel = strings.TrimSuffix(filepath.ToSlash(rel), ext)
	return strings.ReplaceAll(rel, "/", ".")
}

var testDirs = map[string]struct{}{
	"test":      {},
	"tests":     {},
	"spec":      {},
	"__tests__": {},
}

// IsTestFile reports whether a relative path looks like a test source,
// either by a test directory component or by file naming convention.
func IsTestFile(rel string) bool {
	parts := strings.Split(filepath.ToSlash(rel), "/")
	for _, dir := range parts[:len(parts)-1] {
		if _, ok := testDirs[dir]; ok {
			return true
		}
	}

	base := parts[len(parts)-1]
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	switch {
	case strings.HasSuffix(stem, "_test"), strings.HasSuffix(stem, "_spec"):
		return true
	case strings.HasPrefix(stem, "test_"):
		return true
	case strings.HasSuffix(stem, "Test"), strings.HasSuffix(stem, "Tests"), strings.HasSuffix(stem, "IT"):
		return strings.HasSuffix(base, ".java")
	}
	return false
}

func gitLsFiles(root string) map[string]struct{} {
	gitDir := filepath.Join(root, ".git")
	info, err := os.Stat(gitDir)
	if err != nil || !info.IsDir() {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "ls-files", "--cached", "--others", "--exclude-standard")
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return nil
	}

	files := make(map[string]struct{})
	for _, line := range strings.Split(strings.TrimRight(string(out), "\n"), "\n") {
		if line != "" {
			files[line] = struct{}{}
		}
	}
	return files
}

func loadGitignore(root string) *ignore.GitIgnore {
	path := filepath.Join(root, ".gitignore")
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return gi
}
