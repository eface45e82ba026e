package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/listnav/internal/application/usecase"
	"github.com/bnema/listnav/internal/cli/styles"
)

var (
	importFile        string
	importFormat      string
	importDescription string
)

var sourcesCmd = &cobra.Command{
	Use:     "sources",
	Aliases: []string{"source"},
	Short:   "Manage item sources",
	Long: `List the built-in item sources and the user sources stored in the local
database, import new ones, or delete them.`,
}

var sourcesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List item sources",
	RunE:    runSourcesList,
}

var sourcesImportCmd = &cobra.Command{
	Use:   "import <name>",
	Short: "Import an item source",
	Long: `Import items from a file or stdin into a named user source, replacing any
source of the same name.

Text format, one item per line:
  Fruits
    Apple
    !Durian        # leading "!" marks the item disabled
  Vegetables
    Carrot

Indentation (two spaces or a tab per level) nests an item under the line
above it. JSON input is an array of {"id","label","disabled","parent"}.

Examples:
  listnav sources import groceries --file groceries.txt
  cat tree.json | listnav sources import tree --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runSourcesImport,
}

var sourcesDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a user item source",
	Args:    cobra.ExactArgs(1),
	RunE:    runSourcesDelete,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
	sourcesCmd.AddCommand(sourcesListCmd)
	sourcesCmd.AddCommand(sourcesImportCmd)
	sourcesCmd.AddCommand(sourcesDeleteCmd)

	sourcesImportCmd.Flags().StringVarP(&importFile, "file", "f", "-", "input file, - for stdin")
	sourcesImportCmd.Flags().StringVar(&importFormat, "format", "", "input format: text or json (default from file extension)")
	sourcesImportCmd.Flags().StringVarP(&importDescription, "description", "d", "", "source description")
}

func runSourcesList(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	sources, err := a.LoadItemsUC.List(a.Ctx())
	if err != nil {
		return fmt.Errorf("list sources: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.Theme.RenderSources(sources))
	return nil
}

func runSourcesImport(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	format, err := resolveImportFormat(importFormat, importFile)
	if err != nil {
		return err
	}

	var r io.Reader = cmd.InOrStdin()
	if importFile != "-" {
		f, err := os.Open(importFile)
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()
		r = f
	}

	src, err := a.ImportSourceUC.Import(a.Ctx(), usecase.ImportSourceInput{
		Name:        args[0],
		Description: importDescription,
		Format:      format,
		Reader:      r,
	})
	if err != nil {
		return err
	}

	renderer := styles.NewConfigRenderer(a.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSuccess(
		fmt.Sprintf("imported %d items into %s", src.Count, src.Name)))
	return nil
}

func runSourcesDelete(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if err := a.ImportSourceUC.Delete(a.Ctx(), args[0]); err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(a.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSuccess("deleted "+args[0]))
	return nil
}

// resolveImportFormat honors an explicit format, else guesses from the file
// extension. Stdin defaults to text.
func resolveImportFormat(format, file string) (usecase.ImportFormat, error) {
	switch strings.ToLower(format) {
	case "text", "txt":
		return usecase.ImportText, nil
	case "json":
		return usecase.ImportJSON, nil
	case "":
	default:
		return "", fmt.Errorf("unknown import format %q (want text or json)", format)
	}

	if strings.EqualFold(filepath.Ext(file), ".json") {
		return usecase.ImportJSON, nil
	}
	return usecase.ImportText, nil
}
