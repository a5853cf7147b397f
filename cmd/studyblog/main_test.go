package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "studyblog dev\n", out)
}

func TestPostsQuery(t *testing.T) {
	out, err := run(t, "posts", "--query", "python")
	require.NoError(t, err)
	assert.Contains(t, out, "Python Programming Cheat Sheet")
	assert.Contains(t, out, "Object-Oriented Programming Fundamentals")
	assert.NotContains(t, out, "Database Management Systems")
	assert.Contains(t, out, `for "python"`)
}

func TestPostsExactTag(t *testing.T) {
	out, err := run(t, "posts", "--tag", "SQL")
	require.NoError(t, err)
	assert.Contains(t, out, "Database Management Systems")
	assert.Equal(t, 2, strings.Count(out, "\n"), out)
}

func TestPostsTagLike(t *testing.T) {
	out, err := run(t, "posts", "--tag-like", "data")
	require.NoError(t, err)
	assert.Contains(t, out, "Database Management Systems")
	assert.Contains(t, out, "Data Structures and Algorithms Study Notes")
	assert.NotContains(t, out, "Python Programming Cheat Sheet")
}

func TestTags(t *testing.T) {
	out, err := run(t, "tags")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 19)
	assert.Equal(t, "Algorithms", lines[0])
	assert.Equal(t, "Web Development", lines[len(lines)-1])
}

func TestShowPlain(t *testing.T) {
	out, err := run(t, "show", "3", "--plain")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Python Programming Cheat Sheet\n"), out)
	assert.Contains(t, out, "January 25, 2024")
	assert.Contains(t, out, "- NumPy: Numerical computing\n")
}

func TestShowUnknown(t *testing.T) {
	_, err := run(t, "show", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestCustomSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.yaml")
	seed := `posts:
  - id: "a"
    title: "Graph Theory"
    summary: "Vertices and edges"
    author: "Ada"
    date: "2024-03-01"
    tags: ["Math"]
    read_time: 4
    content: "# Graphs"
`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	out, err := run(t, "--seed", path, "tags")
	require.NoError(t, err)
	assert.Equal(t, "Math\n", out)
}

func TestBadConfigFile(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "tags")
	require.Error(t, err)
}
