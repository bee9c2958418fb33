package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/uikit/internal/tui"
)

var demoOpts struct {
	theme   string
	noMouse bool
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Launch the terminal playground",
	Long: `Launch the terminal playground: a button group with a dropdown and a
form with a required radio group, laid out on terminal cells.

Clicks go through the same event paths as in a browser, so the dropdown
closes on outside clicks and flips when scrolled out of room.

Key bindings:
  o, space    Open/close the dropdown
  p           Cycle placement (top, right, bottom, bottom-end, left)
  w           Cycle width mode
  f           Toggle flip
  +           Cycle offset
  s           Toggle separated button group
  ←/→         Move the radio selection
  enter       Submit the form
  r           Reset the form
  j/k, ↑/↓    Scroll
  t           Next bundled theme
  ?           Show help
  q           Quit`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringVar(&demoOpts.theme, "theme", "",
		"Theme to load (overrides styles.theme)")
	demoCmd.Flags().BoolVar(&demoOpts.noMouse, "no-mouse", false,
		"Disable mouse support")
}

func runDemo(cmd *cobra.Command, args []string) error {
	c := getConfig()
	if demoOpts.theme != "" {
		c.Styles.Theme = demoOpts.theme
	}
	if demoOpts.noMouse {
		c.TUI.Mouse = false
	}

	return tui.Run(cmd.Context(), tui.RunOptions{
		Config: c,
		Logger: getLogger(),
	})
}
