package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/uikit/internal/style"
)

func TestListThemes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mine.css"), []byte(":root { --ui-color-primary-500: #123456; }"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.css"), 0o755))

	themes, err := listThemes(dir)
	require.NoError(t, err)

	bundled := style.ListEmbeddedThemes()
	require.Len(t, themes, len(bundled)+1)
	for i, name := range bundled {
		assert.Equal(t, name, themes[i].Name)
		assert.Equal(t, "bundled", themes[i].Source)
		assert.NotZero(t, themes[i].Size)
		assert.Empty(t, themes[i].Updated)
	}

	mine := themes[len(themes)-1]
	assert.Equal(t, "mine", mine.Name)
	assert.Equal(t, filepath.Join(dir, "mine.css"), mine.Source)
	assert.NotEmpty(t, mine.Updated)

	var buf bytes.Buffer
	writeThemes(&buf, themes)
	assert.Contains(t, buf.String(), "NAME")
	assert.Contains(t, buf.String(), "mine")
}

func TestListThemes_MissingDir(t *testing.T) {
	themes, err := listThemes(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Len(t, themes, len(style.ListEmbeddedThemes()))
}

func TestWriteTokens(t *testing.T) {
	var buf bytes.Buffer
	writeTokens(&buf, map[string]string{"--b": "2px", "--a": "#fff"})
	assert.Equal(t, "--a: #fff;\n--b: 2px;\n", buf.String())
}
