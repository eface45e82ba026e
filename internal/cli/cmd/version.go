package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/listnav/internal/cli/styles"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"about"},
	Short:   "Show version and build information",
	Long:    `Display version, commit, build date, Go version and repository URL.`,
	RunE:    runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "print build information as JSON")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if versionJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(a.BuildInfo)
	}

	fmt.Fprintln(out, styles.NewAboutRenderer(a.Theme).Render(a.BuildInfo))
	return nil
}
