package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizes(t *testing.T) {
	c := New([]string{" Addle ", "ADDLE", "dazzle", "", "don't", "word2", "blaze"})

	assert.Equal(t, []string{"addle", "blaze", "dazzle"}, c.Words(), "lowercased, deduplicated, sorted, non-letters dropped")
	assert.Equal(t, 3, c.Len())
	assert.False(t, c.IsEmpty())
}

func TestContains(t *testing.T) {
	c := New([]string{"addle"})
	assert.True(t, c.Contains("addle"))
	assert.True(t, c.Contains(" ADDLE "))
	assert.False(t, c.Contains("dazzle"))
}

func TestEmpty(t *testing.T) {
	c := Empty()
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.Len())
	assert.False(t, c.Contains("anything"))
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "monday.txt"), "addle\ndazzle\n\n# a comment\nblaze\n")
	writeFile(t, filepath.Join(dir, "tuesday.txt"), "DAZZLE\nlibel\n")
	writeFile(t, filepath.Join(dir, "notes.md"), "not a word list\n")

	c, err := LoadFiles(filepath.Join(dir, "*.txt"))
	require.NoError(t, err)
	assert.Equal(t, []string{"addle", "blaze", "dazzle", "libel"}, c.Words())
}

func TestLoadFilesNoMatches(t *testing.T) {
	c, err := LoadFiles(filepath.Join(t.TempDir(), "*.txt"))
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestLoadFilesBadPattern(t *testing.T) {
	_, err := LoadFiles("[")
	assert.Error(t, err)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
