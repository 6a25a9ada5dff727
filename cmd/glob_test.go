// Copyright © 2026 The qassert authors

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterExcludes_ByName(t *testing.T) {
	paths := []string{
		"desc/app.yaml",
		"desc/vendor_board.yaml",
		"lib/drivers.hcl",
	}
	result := filterExcludes(paths, []string{"vendor_board.yaml"})
	assert.Equal(t, []string{"desc/app.yaml", "lib/drivers.hcl"}, result)
}

func TestFilterExcludes_ByDirectory(t *testing.T) {
	paths := []string{
		"desc/app.yaml",
		"build/output.yaml",
		"build/sub/deep.hcl",
		"lib/drivers.hcl",
	}
	result := filterExcludes(paths, []string{"build"})
	assert.Equal(t, []string{"desc/app.yaml", "lib/drivers.hcl"}, result)
}

func TestFilterExcludes_GlobPattern(t *testing.T) {
	paths := []string{
		"desc/app.yaml",
		"desc/generated_foo.yaml",
		"desc/generated_bar.json",
		"lib/drivers.hcl",
	}
	result := filterExcludes(paths, []string{"generated_*"})
	assert.Equal(t, []string{"desc/app.yaml", "lib/drivers.hcl"}, result)
}

func TestFilterExcludes_MultiplePatterns(t *testing.T) {
	paths := []string{
		"desc/app.yaml",
		"build/output.yaml",
		"desc/vendor_board.yaml",
		"lib/drivers.hcl",
	}
	result := filterExcludes(paths, []string{"build", "vendor_board.yaml"})
	assert.Equal(t, []string{"desc/app.yaml", "lib/drivers.hcl"}, result)
}

func TestFilterExcludes_NoMatches(t *testing.T) {
	paths := []string{
		"desc/app.yaml",
		"lib/drivers.hcl",
	}
	result := filterExcludes(paths, []string{"nonexistent"})
	assert.Equal(t, []string{"desc/app.yaml", "lib/drivers.hcl"}, result)
}

func TestFilterExcludes_EmptyExcludes(t *testing.T) {
	paths := []string{"desc/app.yaml"}
	result := filterExcludes(paths, nil)
	assert.Equal(t, []string{"desc/app.yaml"}, result)
}

func TestMatchesAny_FullPath(t *testing.T) {
	assert.True(t, matchesAny("desc/app.yaml", []string{"desc/*.yaml"}))
	assert.False(t, matchesAny("lib/app.yaml", []string{"desc/*.yaml"}))
}

func TestMatchesAny_BaseName(t *testing.T) {
	assert.True(t, matchesAny("deep/nested/vendor_board.yaml", []string{"vendor_board.yaml"}))
}

func TestMatchesAny_Component(t *testing.T) {
	assert.True(t, matchesAny("project/build/output.yaml", []string{"build"}))
	assert.False(t, matchesAny("project/desc/output.yaml", []string{"build"}))
}

func TestSplitPath(t *testing.T) {
	components := splitPath("a/b/c.yaml")
	assert.Equal(t, []string{"a", "b", "c.yaml"}, components)
	assert.Equal(t, []string{"a", "b"}, splitPath("./a//b/"))
}

func TestExpandArgs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.yaml", "b.yml", "c.json", "d.hcl", "notes.txt", "sub/e.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o600))
	}

	got, err := expandArgs([]string{"plain.yaml", dir + "/..."}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"plain.yaml",
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "b.yml"),
		filepath.Join(dir, "c.json"),
		filepath.Join(dir, "d.hcl"),
		filepath.Join(dir, "sub", "e.yaml"),
	}, got)

	got, err = expandArgs([]string{dir + "/..."}, []string{"sub", "*.json"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "b.yml"),
		filepath.Join(dir, "d.hcl"),
	}, got)

	_, err = expandArgs([]string{filepath.Join(dir, "missing") + "/..."}, nil)
	assert.Error(t, err)
}
