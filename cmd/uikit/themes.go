package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/uikit/internal/style"
)

var themesOpts struct {
	tokens string
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Long: `List bundled themes and user themes from the themes directory
(styles.themes_dir, default ~/.config/uikit/themes).

A user theme with the same name as a bundled one takes precedence.

Examples:
  # List themes
  uikit themes

  # Print the design tokens a theme declares
  uikit themes --tokens contrast`,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)

	themesCmd.Flags().StringVar(&themesOpts.tokens, "tokens", "",
		"Print the design tokens of the named theme")
}

// ThemeInfo describes one available theme.
type ThemeInfo struct {
	Name    string
	Size    uint64
	Source  string // "bundled" or the file path
	Updated string
}

func runThemes(cmd *cobra.Command, args []string) error {
	dir := getConfig().ThemesPath()
	if themesOpts.tokens != "" {
		theme, err := style.LoadTheme(themesOpts.tokens, dir)
		if err != nil {
			return err
		}
		writeTokens(os.Stdout, theme.Tokens())
		return nil
	}

	themes, err := listThemes(dir)
	if err != nil {
		return err
	}
	writeThemes(os.Stdout, themes)
	return nil
}

// listThemes returns bundled themes followed by the *.css files in dir.
// A missing dir yields only the bundled themes.
func listThemes(dir string) ([]ThemeInfo, error) {
	var out []ThemeInfo
	for _, name := range style.ListEmbeddedThemes() {
		css, _ := style.GetEmbeddedTheme(name)
		out = append(out, ThemeInfo{Name: name, Size: uint64(len(css)), Source: "bundled"})
	}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return out, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read themes directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".css" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			getLogger().Debug("skipping theme", "file", entry.Name(), "error", err)
			continue
		}
		out = append(out, ThemeInfo{
			Name:    strings.TrimSuffix(entry.Name(), ".css"),
			Size:    uint64(info.Size()),
			Source:  filepath.Join(dir, entry.Name()),
			Updated: humanize.Time(info.ModTime()),
		})
	}
	return out, nil
}

func writeThemes(w io.Writer, themes []ThemeInfo) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSIZE\tSOURCE\tUPDATED")
	for _, t := range themes {
		updated := t.Updated
		if updated == "" {
			updated = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Name, humanize.Bytes(t.Size), t.Source, updated)
	}
	tw.Flush()
}

func writeTokens(w io.Writer, tokens map[string]string) {
	for _, name := range slices.Sorted(maps.Keys(tokens)) {
		fmt.Fprintf(w, "%s: %s;\n", name, tokens[name])
	}
}
