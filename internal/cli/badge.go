package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zenv-lang/zenvhub/badge"
)

var (
	badgeColor    string
	badgeLogo     string
	badgeStyle    string
	badgeShields  bool
	badgeMarkdown bool
)

var badgeCmd = &cobra.Command{
	Use:   "badge [label] [value]",
	Short: "Generate a badge image URL",
	Long: `Generate a shareable badge image URL. Missing label, value, or
color fall back to defaults; labels containing reserved URL characters
are percent-encoded. With --markdown, an embeddable snippet is printed
instead of the bare URL.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := badge.Params{Color: badgeColor, Logo: badgeLogo, Style: badgeStyle}
		if len(args) > 0 {
			p.Label = args[0]
		}
		if len(args) > 1 {
			p.Value = args[1]
		}

		var url string
		if badgeShields {
			url = badge.ShieldsURL(app.BaseURL(), p)
		} else {
			url = badge.CustomURL(app.BaseURL(), p)
		}

		if badgeMarkdown {
			fmt.Println(badge.Markdown(p, url))
		} else {
			fmt.Println(url)
		}
		return nil
	},
}

func init() {
	badgeCmd.Flags().StringVar(&badgeColor, "color", "", "badge color (default "+badge.DefaultColor+")")
	badgeCmd.Flags().StringVar(&badgeLogo, "logo", "", "logo path segment")
	badgeCmd.Flags().StringVar(&badgeStyle, "style", "", "shields style (requires --logo)")
	badgeCmd.Flags().BoolVar(&badgeShields, "shields", false, "use the shields-compatible endpoint")
	badgeCmd.Flags().BoolVar(&badgeMarkdown, "markdown", false, "print a markdown snippet")
	rootCmd.AddCommand(badgeCmd)
}
