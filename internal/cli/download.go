package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var downloadFile string

var downloadCmd = &cobra.Command{
	Use:   "download <name@version | purl>",
	Short: "Download a package artifact",
	Long: `Download a package artifact from the hub. The package may be
referenced as "name@version" (version defaults to latest when omitted)
or as a purl like "pkg:zenv/my-tool@1.2.0".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Download(cmd.Context(), args[0], downloadFile); err != nil {
			return err
		}
		// The outcome lands in the notification queue either way.
		for _, n := range app.Store.Notifications.Get() {
			fmt.Println(n.Message)
		}
		return nil
	},
}

func init() {
	downloadCmd.Flags().StringVarP(&downloadFile, "file", "f", "", "destination path (default {name}-{version}.tar.gz)")
	rootCmd.AddCommand(downloadCmd)
}
