package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/listnav/internal/cli"
	"github.com/bnema/listnav/internal/cli/styles"
	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/infrastructure/config"
)

var schemaWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show the effective configuration, print its JSON schema, or list file locations.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Print every setting after defaults, the config file and LISTNAV_* environment overrides are merged.`,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the configuration JSON schema",
	Long: `Print the JSON schema of config.toml.

With --write the schema is stored next to the config file instead, where
editors with TOML schema support pick it up.`,
	RunE: runConfigSchema,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config, data and log locations",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configPathCmd)
	configSchemaCmd.Flags().BoolVarP(&schemaWrite, "write", "w", false, "write config.schema.json next to the config file")
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	renderer := styles.NewConfigRenderer(a.Theme)
	out := cmd.OutOrStdout()
	if a.ConfigErr != nil {
		fmt.Fprintln(out, renderer.RenderError(fmt.Errorf("showing defaults: %w", a.ConfigErr)))
	}

	for _, section := range configSections(a.Config) {
		fmt.Fprint(out, renderer.RenderSection(section.title, section.pairs))
	}
	fmt.Fprintln(out)
	return nil
}

type configSection struct {
	title string
	pairs [][2]string
}

func configSections(cfg *config.Config) []configSection {
	combobox := [][2]string{
		{"filter_mode", string(cfg.Combobox.FilterMode)},
		{"match", string(cfg.Combobox.Match)},
	}
	return []configSection{
		{"listbox", listPairs(cfg.Listbox)},
		{"tabs", listPairs(cfg.Tabs)},
		{"combobox", combobox},
		{"combobox.list", listPairs(cfg.Combobox.List)},
		{"logging", [][2]string{
			{"level", cfg.Logging.Level},
			{"format", cfg.Logging.Format},
			{"enable_file_log", strconv.FormatBool(cfg.Logging.EnableFileLog)},
			{"log_dir", cfg.Logging.LogDir},
			{"max_size_mb", strconv.Itoa(cfg.Logging.MaxSizeMB)},
			{"max_backups", strconv.Itoa(cfg.Logging.MaxBackups)},
			{"max_age", strconv.Itoa(cfg.Logging.MaxAge)},
			{"compress", strconv.FormatBool(cfg.Logging.Compress)},
		}},
		{"database", [][2]string{{"path", cfg.Database.Path}}},
		{"demo", [][2]string{
			{"source", cfg.Demo.Source},
			{"tree_source", cfg.Demo.TreeSource},
			{"mouse", strconv.FormatBool(cfg.Demo.Mouse)},
			{"width", strconv.Itoa(cfg.Demo.Width)},
		}},
	}
}

func listPairs(cfg entity.ListConfig) [][2]string {
	return [][2]string{
		{"orientation", string(cfg.Orientation)},
		{"text_direction", string(cfg.TextDirection)},
		{"wrap", strconv.FormatBool(cfg.Wrap)},
		{"skip_disabled", strconv.FormatBool(cfg.SkipDisabled)},
		{"focus_mode", string(cfg.FocusMode)},
		{"selection_mode", string(cfg.SelectionMode)},
		{"multi", strconv.FormatBool(cfg.Multi)},
		{"disabled", strconv.FormatBool(cfg.Disabled)},
		{"readonly", strconv.FormatBool(cfg.Readonly)},
		{"typeahead_delay", cfg.TypeaheadDelay.String()},
	}
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if schemaWrite {
		dir := filepath.Dir(configFile(a))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
		if err := config.WriteSchemaFile(dir); err != nil {
			return err
		}
		renderer := styles.NewConfigRenderer(a.Theme)
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSuccess("schema written to "+dir))
		return nil
	}

	data, err := config.Schema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	renderer := styles.NewConfigRenderer(a.Theme)
	logDir := a.Config.Logging.LogDir
	if logDir == "" {
		logDir = "(disabled)"
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderPaths([]styles.PathEntry{
		{Label: "config", Path: configFile(a), Icon: styles.IconConfig},
		{Label: "database", Path: a.DatabasePath(), Icon: styles.IconDatabase},
		{Label: "logs", Path: logDir, Icon: styles.IconLogs},
	}))
	return nil
}

func configFile(a *cli.App) string {
	if a.Manager != nil {
		return a.Manager.GetConfigFile()
	}
	path, err := config.GetConfigFile()
	if err != nil {
		return "(unknown)"
	}
	return path
}
