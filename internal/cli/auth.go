package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <username> <password>",
	Short: "Log in to the hub",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Login(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Logged in as %s\n", args[0])
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register <username> <email> <password>",
	Short: "Create a hub account",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Register(cmd.Context(), args[0], args[1], args[2]); err != nil {
			return err
		}
		fmt.Printf("Registered %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
}
