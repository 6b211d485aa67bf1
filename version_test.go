package main

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunVersion(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run([]string{"version"}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "locstostms "+version.Core()+"\n", stdout.String())
}

func TestRunVersionBuildInfo(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run([]string{"version", "--build-info"}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "locstostms "+version.String())
	assert.Contains(t, out, "Go version: "+runtime.Version())
	assert.Contains(t, out, "OS/Arch:")
}

func TestRunVersionRejectsArgs(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run([]string{"version", "extra"}, &stdout, &stderr)
	require.Error(t, err)
}
