package style

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

//go:embed themes/*.css
var embeddedThemes embed.FS

// DefaultThemeName is the name of the built-in theme.
const DefaultThemeName = "default"

var (
	importRegex = regexp.MustCompile(`@import\s+(?:url\s*\(\s*)?["']([^"']+)["']\s*\)?;?`)
	tokenRegex  = regexp.MustCompile(`(--[a-zA-Z0-9-]+)\s*:\s*([^;]+);`)
)

// Theme is a resolved stylesheet of design tokens.
type Theme struct {
	Name    string
	Path    string // empty for bundled themes
	CSS     string // @import statements already inlined
	ModTime time.Time
	Bundled bool
}

// GetEmbeddedTheme returns the raw CSS of a bundled theme or partial.
func GetEmbeddedTheme(name string) (string, bool) {
	name = strings.TrimSuffix(name, ".css")
	data, err := embeddedThemes.ReadFile("themes/" + name + ".css")
	if err != nil {
		return "", false
	}
	return string(data), true
}

// ListEmbeddedThemes returns bundled theme names, excluding partials
// (files starting with "_").
func ListEmbeddedThemes() []string {
	entries, err := fs.ReadDir(embeddedThemes, "themes")
	if err != nil {
		return []string{DefaultThemeName}
	}
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "_") || filepath.Ext(name) != ".css" {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".css"))
	}
	sort.Strings(names)
	return names
}

// LoadTheme resolves a theme by name: a file in dir takes precedence over a
// bundled theme of the same name. An empty name loads the default theme.
func LoadTheme(name, dir string) (*Theme, error) {
	if name == "" {
		name = DefaultThemeName
	}

	if dir != "" {
		path := filepath.Join(dir, name+".css")
		if _, err := os.Stat(path); err == nil {
			return LoadThemeFile(path)
		}
	}

	css, ok := GetEmbeddedTheme(name)
	if !ok {
		return nil, fmt.Errorf("theme not found: %s", name)
	}
	return &Theme{
		Name:    name,
		CSS:     ResolveImports(css, "", nil),
		Bundled: true,
	}, nil
}

// LoadThemeFile loads a theme from a CSS file.
func LoadThemeFile(path string) (*Theme, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat theme: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	return &Theme{
		Name:    strings.TrimSuffix(filepath.Base(path), ".css"),
		Path:    path,
		CSS:     ResolveImports(string(data), filepath.Dir(path), nil),
		ModTime: info.ModTime(),
	}, nil
}

// Reload re-reads a file-backed theme. It reports whether the resolved CSS
// changed. Bundled themes never change.
func (t *Theme) Reload() (bool, error) {
	if t.Bundled || t.Path == "" {
		return false, nil
	}
	fresh, err := LoadThemeFile(t.Path)
	if err != nil {
		return false, err
	}
	changed := fresh.CSS != t.CSS
	t.CSS = fresh.CSS
	t.ModTime = fresh.ModTime
	return changed, nil
}

// Tokens returns the custom properties (--name: value) declared by the
// theme. Later declarations override earlier ones.
func (t *Theme) Tokens() map[string]string {
	return Tokens(t.CSS)
}

// Tokens extracts custom property declarations from css.
func Tokens(css string) map[string]string {
	out := make(map[string]string)
	for _, m := range tokenRegex.FindAllStringSubmatch(css, -1) {
		out[m[1]] = strings.TrimSpace(m[2])
	}
	return out
}

// ResolveImports inlines @import statements. Relative imports resolve
// against baseDir first and then against the bundled themes; seen guards
// against cycles.
func ResolveImports(css, baseDir string, seen map[string]bool) string {
	if seen == nil {
		seen = make(map[string]bool)
	}

	return importRegex.ReplaceAllStringFunc(css, func(stmt string) string {
		m := importRegex.FindStringSubmatch(stmt)
		if len(m) < 2 {
			return stmt
		}
		target := m[1]

		key := target
		if baseDir != "" && !filepath.IsAbs(target) {
			key = filepath.Join(baseDir, target)
		}
		if seen[key] {
			return "/* circular import skipped: " + target + " */"
		}
		seen[key] = true

		if baseDir != "" || filepath.IsAbs(target) {
			if data, err := os.ReadFile(key); err == nil {
				return ResolveImports(string(data), filepath.Dir(key), seen)
			}
		}
		if data, ok := GetEmbeddedTheme(filepath.Base(target)); ok {
			return ResolveImports(data, "", seen)
		}
		return "/* import not found: " + target + " */"
	})
}
