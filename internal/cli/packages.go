package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zenv-lang/zenvhub"
)

var (
	searchTerm string
	recentN    int
)

// packageRow is the display projection of a package.
type packageRow struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Author    string `json:"author"`
	License   string `json:"license"`
	Downloads int    `json:"downloads_count"`
	Size      string `json:"size"`
	PURL      string `json:"purl"`
}

func toRows(pkgs []zenvhub.Package) []packageRow {
	rows := make([]packageRow, 0, len(pkgs))
	for _, p := range pkgs {
		license := p.License
		if license != "" && !zenvhub.ValidLicense(license) {
			license += " (invalid SPDX)"
		}
		rows = append(rows, packageRow{
			Name:      p.Name,
			Version:   p.Version,
			Author:    p.Author,
			License:   license,
			Downloads: p.Downloads,
			Size:      zenvhub.FormatSize(p.Size),
			PURL:      zenvhub.PackageURL(p),
		})
	}
	return rows
}

var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "List published packages",
	Long: `List the packages published on the hub. Use --search for a
case-insensitive substring match over name, description, and author, or
--recent to show only the newest N entries.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pkgs := app.ListPackages(cmd.Context())
		pkgs = zenvhub.Search(pkgs, searchTerm)
		if recentN > 0 {
			pkgs = zenvhub.Recent(pkgs, recentN)
		}
		fmt.Print(formatter.Format(toRows(pkgs)))
		return nil
	},
}

func init() {
	packagesCmd.Flags().StringVar(&searchTerm, "search", "", "filter by substring match")
	packagesCmd.Flags().IntVar(&recentN, "recent", 0, "show only the first N packages")
	rootCmd.AddCommand(packagesCmd)
}
