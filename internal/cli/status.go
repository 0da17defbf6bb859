package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show hub server health",
	RunE: func(cmd *cobra.Command, args []string) error {
		status := app.CheckStatus(cmd.Context())
		fmt.Print(formatter.Format(status))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
