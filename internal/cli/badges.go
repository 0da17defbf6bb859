package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List published badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print(formatter.Format(app.ListBadges(cmd.Context())))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(badgesCmd)
}
