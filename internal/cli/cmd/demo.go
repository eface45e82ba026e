package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/listnav/internal/application/usecase"
	"github.com/bnema/listnav/internal/cli"
	"github.com/bnema/listnav/internal/cli/model"
	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/infrastructure/config"
	"github.com/bnema/listnav/internal/logging"
	"github.com/bnema/listnav/internal/ui/mainloop"
)

// maxTabs caps the tabs demo; one tab per item source.
const maxTabs = 6

var (
	demoSource string
	demoMouse  bool
	demoWidth  int
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run an interactive pattern demo",
	Long: `Run a listbox, tabs, combobox or tree demo in the terminal.

Settings come from config.toml and are reloaded live while the demo runs.
Press F1 for the key bindings and Ctrl+C to quit.`,
}

var demoListboxCmd = &cobra.Command{
	Use:   "listbox",
	Short: "Listbox over an item source",
	Example: `  listnav demo listbox --source fruits
  LISTNAV_LISTBOX_MULTI=true listnav demo listbox`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDemo(cmd, "listbox", func(a *cli.App, opts model.DemoOptions) (model.Demo, error) {
			out, err := a.LoadItemsUC.Load(opts.Ctx, demoSourceName(a.Config.Demo.Source))
			if err != nil {
				return nil, err
			}
			return model.NewListboxModel(opts, out.Flat()), nil
		})
	},
}

var demoTabsCmd = &cobra.Command{
	Use:   "tabs",
	Short: "Tab list with one tab per item source",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDemo(cmd, "tabs", func(a *cli.App, opts model.DemoOptions) (model.Demo, error) {
			pages, err := tabPages(opts.Ctx, a.LoadItemsUC)
			if err != nil {
				return nil, err
			}
			return model.NewTabsModel(opts, pages), nil
		})
	},
}

var demoComboboxCmd = &cobra.Command{
	Use:   "combobox",
	Short: "Filtering combobox with inline completion",
	Long: `Combobox over an item source. Nested sources open a tree popup.

The filter mode comes from combobox.filter_mode: manual, auto-select or
highlight.`,
	Example: `  listnav demo combobox --source us-states
  LISTNAV_COMBOBOX_FILTER_MODE=highlight listnav demo combobox
  listnav demo combobox --source filesystem-tree`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDemo(cmd, "combobox", func(a *cli.App, opts model.DemoOptions) (model.Demo, error) {
			out, err := a.LoadItemsUC.Load(opts.Ctx, demoSourceName(a.Config.Demo.Source))
			if err != nil {
				return nil, err
			}
			src := model.ComboboxSource{Items: out.Flat()}
			if out.Nested() {
				src.Tree = out.Tree()
			}
			return model.NewComboboxModel(opts, src), nil
		})
	},
}

var demoTreeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Expandable tree over a nested item source",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDemo(cmd, "tree", func(a *cli.App, opts model.DemoOptions) (model.Demo, error) {
			out, err := a.LoadItemsUC.Load(opts.Ctx, demoSourceName(a.Config.Demo.TreeSource))
			if err != nil {
				return nil, err
			}
			return model.NewTreeModel(opts, out.Tree()), nil
		})
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	for _, c := range []*cobra.Command{demoListboxCmd, demoTabsCmd, demoComboboxCmd, demoTreeCmd} {
		c.Flags().StringVarP(&demoSource, "source", "s", "", "item source (default from demo.source)")
		c.Flags().BoolVarP(&demoMouse, "mouse", "m", false, "enable pointer input (default from demo.mouse)")
		c.Flags().IntVarP(&demoWidth, "width", "w", 0, "label width in cells (default from demo.width)")
		demoCmd.AddCommand(c)
	}
}

func demoSourceName(configured string) string {
	if demoSource != "" {
		return demoSource
	}
	return configured
}

type demoFactory func(a *cli.App, opts model.DemoOptions) (model.Demo, error)

// runDemo builds a demo and runs it on the alternate screen. Timer and
// config callbacks reach the model through the loop's RunMsg.
func runDemo(cmd *cobra.Command, pattern string, build demoFactory) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	ctx := logging.WithPattern(a.TUIContext(), pattern, "demo-"+pattern)
	log := logging.FromContext(ctx)

	loop := model.NewLoop()
	opts := model.DemoOptions{
		Ctx:       ctx,
		Theme:     a.Theme,
		Scheduler: loop.Scheduler(),
		Config:    a.Config,
		Title:     "listnav " + pattern,
		Width:     a.Config.Demo.Width,
		Mouse:     a.Config.Demo.Mouse,
	}
	if cmd.Flags().Changed("width") {
		opts.Width = demoWidth
	}
	if cmd.Flags().Changed("mouse") {
		opts.Mouse = demoMouse
	}

	demo, err := build(a, opts)
	if err != nil {
		return err
	}

	reload := watchConfig(ctx, a.Manager, loop, demo)
	if reload != nil {
		defer reload.Destroy()
	}

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(cmd.Context())}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(demo, progOpts...)
	loop.Attach(p)

	log.Info().Str("title", opts.Title).Bool("mouse", opts.Mouse).Msg("demo started")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run %s demo: %w", pattern, err)
	}
	log.Info().Msg("demo finished")
	return nil
}

// watchConfig forwards live reloads to demo. Bursts of file events collapse
// into one ApplyConfig per loop turn.
func watchConfig(ctx context.Context, mgr *config.Manager, loop *model.Loop, demo model.Demo) *mainloop.Coalescer {
	if mgr == nil {
		return nil
	}
	log := logging.FromContext(ctx)
	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
		return nil
	}

	reload := mainloop.NewCoalescer(loop.Post)
	mgr.OnConfigChange(func(cfg *config.Config) {
		reload.Post("config", func() {
			log.Debug().Msg("applying reloaded config")
			demo.ApplyConfig(cfg)
		})
	})
	return reload
}

// tabPages makes one page per built-in or stored source, previewing its
// first items.
func tabPages(ctx context.Context, uc *usecase.LoadItemsUseCase) ([]model.TabPage, error) {
	sources, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(sources) > maxTabs {
		sources = sources[:maxTabs]
	}

	pages := make([]model.TabPage, 0, len(sources))
	for _, src := range sources {
		out, err := uc.Load(ctx, src.Name)
		if err != nil {
			return nil, err
		}
		lines := make([]string, 0, len(out.Items))
		for _, it := range out.Items {
			lines = append(lines, it.Label)
		}
		pages = append(pages, model.TabPage{
			Item:  entity.Item{ID: entity.ItemID(src.Name), Label: src.Name},
			Lines: lines,
		})
	}
	return pages, nil
}
