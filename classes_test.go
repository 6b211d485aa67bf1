package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunClasses(t *testing.T) {
	t.Parallel()
	src := createSampleSources(t)
	writeTestFile(t, src, "org/foo/BarTest.java", "class BarTest {}\n")
	writeTestFile(t, src, "notes.txt", "not a source")

	var stdout, stderr bytes.Buffer
	err := run([]string{"classes", "--srcDirs", src}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "Baz\norg.foo.Bar\norg.foo.BarTest\n", stdout.String())

	stdout.Reset()
	err = run([]string{"classes", "--skip-tests", "--srcDirs", src}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "Baz\norg.foo.Bar\n", stdout.String())
}

func TestRunClassesDeduplicatesAcrossDirs(t *testing.T) {
	t.Parallel()
	first := createSampleSources(t)
	second := t.TempDir()
	writeTestFile(t, second, "Baz.java", "class Baz {}\n")
	writeTestFile(t, second, "Qux.java", "class Qux {}\n")

	var stdout, stderr bytes.Buffer
	err := run([]string{"classes", "--srcDirs", first, "--srcDirs", second}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "Baz\norg.foo.Bar\nQux\n", stdout.String())
}

func TestRunClassesLanguage(t *testing.T) {
	t.Parallel()
	src := t.TempDir()
	writeTestFile(t, src, "pkg/mod.py", "x = 1\n")
	writeTestFile(t, src, "Main.java", "class Main {}\n")

	var stdout, stderr bytes.Buffer
	err := run([]string{"classes", "--lang", "python", "--srcDirs", src}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "pkg.mod\n", stdout.String())
}

func TestRunClassesRequiresSrcDirs(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run([]string{"classes"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--srcDirs")
}
