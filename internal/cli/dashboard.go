package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zenv-lang/zenvhub/internal/tui"
)

// dashboardCmd launches the interactive TUI dashboard.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Launch the interactive TUI dashboard",
	Long: `Launch an interactive terminal dashboard showing the package
catalog, published badges, and live server health. Data refreshes every
5 seconds from the hub.

Key bindings:
  Tab / Shift+Tab  Navigate between tabs
  1 / 2 / 3        Jump directly to Packages / Badges / Server
  /                Filter packages (type to search, Esc to clear)
  r                Force an immediate refresh
  q / Ctrl+C       Quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(tui.New(app), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
