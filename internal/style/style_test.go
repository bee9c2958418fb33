package style

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SharesSheets(t *testing.T) {
	c := NewCache(4, nil)

	a := c.Get(":host { display: block; }")
	b := c.Get(":host { display: block; }")
	assert.Same(t, a, b)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, Hash(":host { display: block; }"), a.Hash)
	assert.Len(t, a.Hash, 64)
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache(2, nil)

	a := c.Get("a")
	c.Get("b")
	c.Get("a")
	c.Get("c")

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 1, c.Evictions())

	_, ok := c.Lookup(Hash("b"))
	assert.False(t, ok, "b was least recently used")

	got, ok := c.Lookup(a.Hash)
	require.True(t, ok)
	assert.Same(t, a, got)
}

func TestCache_Unbounded(t *testing.T) {
	c := NewCache(0, nil)
	for i := 0; i < 500; i++ {
		c.Get(strings.Repeat("x", i+1))
	}
	assert.Equal(t, 500, c.Len())
	assert.Zero(t, c.Evictions())
}

func TestCache_RemoveAndPurge(t *testing.T) {
	c := NewCache(8, nil)
	s := c.Get("a")
	c.Get("b")

	assert.True(t, c.Remove(s.Hash))
	assert.False(t, c.Remove(s.Hash))
	assert.Equal(t, 1, c.Len())

	c.Purge()
	assert.Zero(t, c.Len())
	assert.Equal(t, 8, c.Capacity())
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name   string
		parts  []string
		values []any
		want   string
	}{
		{"no_values", []string{":host{}"}, nil, ":host{}"},
		{"string", []string{"a { color: ", "; }"}, []any{"red"}, "a { color: red; }"},
		{"number", []string{"a { gap: ", "px; }"}, []any{2}, "a { gap: 2px; }"},
		{"false_is_empty", []string{"a", "b"}, []any{false}, "ab"},
		{"nil_is_empty", []string{"a", "b"}, []any{nil}, "ab"},
		{"zero_is_empty", []string{"a", "b"}, []any{0}, "ab"},
		{"empty_string", []string{"a", "b"}, []any{""}, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Interpolate(tt.parts, tt.values...))
		})
	}
}

func TestCSS_UsesDefaultCache(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	c := NewCache(4, nil)
	SetDefault(c)

	s := CSS([]string{"a { color: ", "; }"}, "blue")
	assert.Equal(t, "a { color: blue; }", s.CSS)
	got, ok := c.Lookup(s.Hash)
	require.True(t, ok)
	assert.Same(t, s, got)
}

func TestDocument_AddGlobalOnce(t *testing.T) {
	d := NewDocument(NewCache(4, nil))

	assert.True(t, d.AddGlobal("ui-button-group { gap: 2px; }"))
	assert.False(t, d.AddGlobal("ui-button-group { gap: 2px; }"))
	assert.True(t, d.AddGlobal("body { margin: 0; }"))

	sheets := d.AdoptedStyleSheets()
	require.Len(t, sheets, 2)
	assert.Equal(t, "ui-button-group { gap: 2px; }", sheets[0].CSS)
}

func TestDocument_ReplaceKeepsPosition(t *testing.T) {
	d := NewDocument(NewCache(4, nil))
	d.AddGlobal("first")
	old := d.Replace("", "theme-v1")
	d.AddGlobal("last")

	d.Replace(old.Hash, "theme-v2")

	var got []string
	for _, s := range d.AdoptedStyleSheets() {
		got = append(got, s.CSS)
	}
	assert.Equal(t, []string{"first", "theme-v2", "last"}, got)
}

func TestListEmbeddedThemes(t *testing.T) {
	names := ListEmbeddedThemes()
	assert.Equal(t, []string{"contrast", "dark", "default"}, names)
	assert.NotContains(t, names, "_focus")
}

func TestLoadTheme_Bundled(t *testing.T) {
	theme, err := LoadTheme("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultThemeName, theme.Name)
	assert.True(t, theme.Bundled)
	assert.Equal(t, "#3b82f6", theme.Tokens()["--ui-color-primary-500"])
}

func TestLoadTheme_BundledImports(t *testing.T) {
	theme, err := LoadTheme("contrast", "")
	require.NoError(t, err)
	assert.NotContains(t, theme.CSS, "@import")

	tokens := theme.Tokens()
	assert.Equal(t, "#1d4ed8", tokens["--ui-color-primary-500"])
	assert.Equal(t, "1px dashed var(--ui-color-primary-500)", tokens["--ui-focus-ring"])
	assert.Equal(t, "0.75rem", tokens["--ui-space-3"], "inherited from default")
}

func TestLoadTheme_UserOverridesBundled(t *testing.T) {
	dir := t.TempDir()
	css := `@import "default.css";
:root { --ui-color-primary-500: #ff00ff; }`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dark.css"), []byte(css), 0644))

	theme, err := LoadTheme("dark", dir)
	require.NoError(t, err)
	assert.False(t, theme.Bundled)
	assert.Equal(t, filepath.Join(dir, "dark.css"), theme.Path)
	assert.Equal(t, "#ff00ff", theme.Tokens()["--ui-color-primary-500"])
	assert.Equal(t, "1.5", theme.Tokens()["--ui-line-height"], "bundled import resolved")
}

func TestLoadTheme_NotFound(t *testing.T) {
	_, err := LoadTheme("nope", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme not found")
}

func TestResolveImports(t *testing.T) {
	dir := t.TempDir()
	write := func(name, css string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(css), 0644))
	}
	write("_grandchild.css", ".grandchild { color: blue; }")
	write("_child.css", "@import \"_grandchild.css\";\n.child { color: green; }")
	write("_a.css", "@import \"_b.css\";\n.a {}")
	write("_b.css", "@import \"_a.css\";\n.b {}")

	t.Run("nested", func(t *testing.T) {
		out := ResolveImports("@import \"_child.css\";\n.main {}", dir, nil)
		assert.Contains(t, out, ".grandchild")
		assert.Contains(t, out, ".child")
		assert.Contains(t, out, ".main")
		assert.NotContains(t, out, "@import")
	})

	t.Run("circular", func(t *testing.T) {
		out := ResolveImports("@import \"_a.css\";", dir, nil)
		assert.Contains(t, out, ".a")
		assert.Contains(t, out, ".b")
		assert.Contains(t, out, "/* circular import skipped: _a.css */")
	})

	t.Run("url_form", func(t *testing.T) {
		out := ResolveImports("@import url(\"_grandchild.css\");", dir, nil)
		assert.Contains(t, out, ".grandchild")
	})

	t.Run("missing", func(t *testing.T) {
		out := ResolveImports("@import \"missing.css\";", dir, nil)
		assert.Equal(t, "/* import not found: missing.css */", out)
	})

	t.Run("embedded_fallback", func(t *testing.T) {
		out := ResolveImports("@import \"_focus.css\";", dir, nil)
		assert.Contains(t, out, "--ui-focus-ring")
	})
}

func TestTheme_Reload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.css")
	require.NoError(t, os.WriteFile(path, []byte(":root { --ui-color-text: #000; }"), 0644))

	theme, err := LoadThemeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mine", theme.Name)

	changed, err := theme.Reload()
	require.NoError(t, err)
	assert.False(t, changed)

	require.NoError(t, os.WriteFile(path, []byte(":root { --ui-color-text: #fff; }"), 0644))
	changed, err = theme.Reload()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "#fff", theme.Tokens()["--ui-color-text"])

	bundled, err := LoadTheme("dark", "")
	require.NoError(t, err)
	changed, err = bundled.Reload()
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestWatcher_ReloadSwapsAdoptedSheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.css")
	require.NoError(t, os.WriteFile(path, []byte("a {}"), 0644))

	theme, err := LoadThemeFile(path)
	require.NoError(t, err)

	doc := NewDocument(NewCache(8, nil))
	doc.AddGlobal("first")
	w, err := NewWatcher(theme, doc, nil)
	require.NoError(t, err)
	defer w.Stop()

	var calls int
	w.OnChange(func(*Theme) { calls++ })

	require.NoError(t, os.WriteFile(path, []byte("b {}"), 0644))
	w.reload()
	w.reload()

	sheets := doc.AdoptedStyleSheets()
	require.Len(t, sheets, 2)
	assert.Equal(t, "b {}", sheets[1].CSS)
	assert.Equal(t, 1, calls, "unchanged content does not notify")

	_, ok := doc.Cache().Lookup(Hash("a {}"))
	assert.False(t, ok, "stale sheet dropped from cache")
}

func TestWatcher_PicksUpFileWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.css")
	require.NoError(t, os.WriteFile(path, []byte("a {}"), 0644))

	theme, err := LoadThemeFile(path)
	require.NoError(t, err)
	w, err := NewWatcher(theme, nil, nil)
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan string, 8)
	w.OnChange(func(th *Theme) {
		select {
		case changed <- th.CSS:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(path, []byte("b {}"), 0644))

	// A truncating write may surface as more than one event.
	timeout := time.After(3 * time.Second)
	for {
		select {
		case css := <-changed:
			if css == "b {}" {
				return
			}
		case <-timeout:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatcher_BundledIsNotWatched(t *testing.T) {
	theme, err := LoadTheme("default", "")
	require.NoError(t, err)
	w, err := NewWatcher(theme, nil, nil)
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	assert.False(t, w.running)
	require.NoError(t, w.Stop())
}
