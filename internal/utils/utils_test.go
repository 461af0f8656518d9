package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `toml:"name"`
	Count int    `toml:"count"`
}

func TestSaveAndLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	require.NoError(t, SaveTOMLFile(sample{Name: "words", Count: 3}, path))
	assert.True(t, FileExists(path))

	var got sample
	require.NoError(t, LoadTOMLFile(path, &got))
	assert.Equal(t, sample{Name: "words", Count: 3}, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestParseTOMLWithRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.toml")
	require.NoError(t, os.WriteFile(path, []byte("[index]\nword_list = \"a.txt\"\ncache_size = 4\nenabled = true\n"), 0644))

	data, err := ParseTOMLWithRecovery(path)
	require.NoError(t, err)

	section, ok := ExtractSection(data, "index")
	require.True(t, ok)

	s, ok := ExtractString(section, "word_list")
	assert.True(t, ok)
	assert.Equal(t, "a.txt", s)

	n, ok := ExtractInt64(section, "cache_size")
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	b, ok := ExtractBool(section, "enabled")
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = ExtractInt64(section, "word_list")
	assert.False(t, ok)
	_, ok = ExtractSection(data, "missing")
	assert.False(t, ok)
}

func TestFileExistsAndFind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat animal 3\n"), 0644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "nope.txt")))

	found, err := FindFileInPaths("words.txt", []string{t.TempDir(), dir})
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = FindFileInPaths("nope.txt", []string{dir})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheckDirStatus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	result := CheckDirStatus(dir)
	assert.True(t, result.Exists)
	assert.True(t, result.Writable)
	assert.NoError(t, result.Error)
}
