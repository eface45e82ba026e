package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/listnav/internal/application/usecase"
	"github.com/bnema/listnav/internal/cli/styles"
	"github.com/bnema/listnav/internal/domain/collection"
	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/infrastructure/config"
	"github.com/bnema/listnav/internal/logging"
	"github.com/bnema/listnav/internal/ui/component"
	"github.com/bnema/listnav/internal/ui/input"
	"github.com/bnema/listnav/internal/ui/mainloop"
)

// ErrUnknownPattern is returned for a --pattern outside listbox, tabs, combobox and tree.
var ErrUnknownPattern = errors.New("unknown pattern")

var (
	simPattern string
	simKeys    string
	simSource  string
	simStep    time.Duration
	simJSON    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Replay a key script against a pattern and print its state",
	Long: `Feed a comma-separated key script to a listbox, tabs, combobox or tree and
print the resulting snapshot. Timers run on a virtual clock that advances by
--step after every key, so typeahead and completion behave as they would
for a user typing at that pace.

Quoted steps type one key per character. Modifiers join with "+".`,
	Example: `  listnav simulate --keys 'ArrowDown, ArrowDown, Enter'
  listnav simulate --pattern combobox --source us-states --keys '"new", ArrowDown' --json
  listnav simulate --pattern tree --source filesystem-tree --keys 'ArrowRight, ArrowDown'
  LISTNAV_LISTBOX_MULTI=true listnav simulate --keys 'Shift+ArrowDown, Shift+ArrowDown'`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().StringVarP(&simPattern, "pattern", "p", "listbox", "pattern: listbox, tabs, combobox or tree")
	simulateCmd.Flags().StringVarP(&simKeys, "keys", "k", "", "key script, e.g. 'ArrowDown, Shift+End, \"ap\"'")
	simulateCmd.Flags().StringVarP(&simSource, "source", "s", "", "item source (default from demo config)")
	simulateCmd.Flags().DurationVar(&simStep, "step", 0, "virtual time between keys")
	simulateCmd.Flags().BoolVar(&simJSON, "json", false, "print the snapshot as JSON")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	keys, err := input.ParseKeySequence(simKeys)
	if err != nil {
		return err
	}

	name := simSource
	if name == "" {
		name = a.Config.Demo.Source
		if simPattern == "tree" {
			name = a.Config.Demo.TreeSource
		}
	}
	ctx := logging.WithComponent(a.Ctx(), "simulate")
	src, err := a.LoadItemsUC.Load(ctx, name)
	if err != nil {
		return err
	}

	res, err := runSimulation(ctx, simulation{
		Pattern: simPattern,
		Source:  src,
		Config:  a.Config,
		Keys:    keys,
		Step:    simStep,
	})
	if err != nil {
		return err
	}

	if simJSON {
		return writeSimulationJSON(cmd.OutOrStdout(), res)
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderSimulation(a.Theme, res, a.Config.Demo.Width))
	return nil
}

// simulation is one scripted run against a fresh pattern.
type simulation struct {
	Pattern string
	Source  *usecase.LoadItemsOutput
	Config  *config.Config
	Keys    []entity.KeyEvent
	Step    time.Duration
}

// simulateResult holds the final snapshot; exactly one of List, Tabs and
// Combobox is set.
type simulateResult struct {
	Pattern  string                      `json:"pattern"`
	Source   string                      `json:"source"`
	Keys     int                         `json:"keys"`
	Handled  int                         `json:"handled"`
	Elapsed  string                      `json:"elapsed"`
	List     *component.ListSnapshot     `json:"list,omitempty"`
	Tabs     *component.TabsSnapshot     `json:"tabs,omitempty"`
	Combobox *component.ComboboxSnapshot `json:"combobox,omitempty"`
}

// driver adapts one pattern to the simulation loop.
type driver interface {
	focus()
	key(ev entity.KeyEvent) bool
	snapshot(res *simulateResult)
	destroy()
}

func runSimulation(ctx context.Context, sim simulation) (*simulateResult, error) {
	clock := mainloop.NewManualScheduler(time.Unix(0, 0).UTC())
	start := clock.Now()

	d, err := newDriver(ctx, sim, clock)
	if err != nil {
		return nil, err
	}
	defer d.destroy()

	log := logging.FromContext(ctx)
	res := &simulateResult{Pattern: sim.Pattern, Source: sim.Source.Source.Name, Keys: len(sim.Keys)}

	d.focus()
	clock.Flush()
	for _, ev := range sim.Keys {
		if d.key(ev) {
			res.Handled++
		}
		if sim.Step > 0 {
			clock.Advance(sim.Step)
		} else {
			clock.Flush()
		}
	}
	elapsed := clock.Now().Sub(start)
	res.Elapsed = elapsed.String()
	d.snapshot(res)

	log.Debug().
		Int("keys", res.Keys).
		Int("handled", res.Handled).
		Dur("elapsed", elapsed).
		Msg("simulation finished")
	return res, nil
}

func newDriver(ctx context.Context, sim simulation, clock *mainloop.ManualScheduler) (driver, error) {
	cfg := sim.Config
	switch sim.Pattern {
	case "listbox":
		return &listDriver{p: component.NewListPattern(ctx, component.ListOptions{
			ID:        "sim-listbox",
			Config:    cfg.Listbox,
			Items:     collection.NewView(sim.Source.Flat()),
			Scheduler: clock,
		})}, nil

	case "tabs":
		items := sim.Source.Flat()
		tabs := make([]component.Tab, len(items))
		for i, it := range items {
			tabs[i] = component.Tab{Item: it, Panel: "panel-" + string(it.ID)}
		}
		return &tabsDriver{p: component.NewTabsPattern(ctx, component.TabsOptions{
			ID:        "sim-tabs",
			Config:    cfg.Tabs,
			Tabs:      tabs,
			Scheduler: clock,
		})}, nil

	case "tree":
		treeCfg := cfg.Listbox
		treeCfg.Orientation = entity.OrientationVertical
		return &treeDriver{p: component.NewTreePattern(ctx, component.TreeOptions{
			ID:        "sim-tree",
			Config:    treeCfg,
			Roots:     sim.Source.Tree(),
			Scheduler: clock,
		})}, nil

	case "combobox":
		opts := component.ComboboxOptions{
			ID: "sim-combobox",
			Config: component.ComboboxConfig{
				FilterMode: cfg.Combobox.FilterMode,
				Match:      cfg.Combobox.Match,
				List:       cfg.Combobox.List,
			},
			Source:    collection.NewView(sim.Source.Flat()),
			Scheduler: clock,
		}
		if sim.Source.Nested() {
			opts.Tree = sim.Source.Tree()
		}
		return &comboDriver{p: component.NewComboboxPattern(ctx, opts)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, sim.Pattern)
}

type listDriver struct{ p *component.ListPattern }

func (d *listDriver) focus()                      { d.p.OnFocusIn() }
func (d *listDriver) key(ev entity.KeyEvent) bool { return d.p.OnKeydown(ev) }
func (d *listDriver) destroy()                    { d.p.Destroy() }
func (d *listDriver) snapshot(res *simulateResult) {
	snap := d.p.Snapshot()
	res.List = &snap
}

type tabsDriver struct{ p *component.TabsPattern }

func (d *tabsDriver) focus()                      { d.p.OnFocusIn() }
func (d *tabsDriver) key(ev entity.KeyEvent) bool { return d.p.OnKeydown(ev) }
func (d *tabsDriver) destroy()                    { d.p.Destroy() }
func (d *tabsDriver) snapshot(res *simulateResult) {
	snap := d.p.Snapshot()
	res.Tabs = &snap
}

type treeDriver struct{ p *component.TreePattern }

func (d *treeDriver) focus()                      { d.p.List().OnFocusIn() }
func (d *treeDriver) key(ev entity.KeyEvent) bool { return d.p.OnKeydown(ev) }
func (d *treeDriver) destroy()                    { d.p.Destroy() }
func (d *treeDriver) snapshot(res *simulateResult) {
	snap := d.p.Snapshot()
	res.List = &snap
}

// comboDriver types printable keys into the input the way the demo does.
type comboDriver struct{ p *component.ComboboxPattern }

func (d *comboDriver) focus()   { d.p.OnFocus() }
func (d *comboDriver) destroy() { d.p.Destroy() }

func (d *comboDriver) key(ev entity.KeyEvent) bool {
	if ev.Key == entity.KeyBackspace && ev.Mods.None() {
		return input.Backspace(d.p)
	}
	if d.p.OnKeydown(ev) {
		return true
	}
	if r, ok := ev.Printable(); ok {
		input.TypeRune(d.p, r)
		return true
	}
	return false
}

func (d *comboDriver) snapshot(res *simulateResult) {
	snap := d.p.Snapshot()
	res.Combobox = &snap
}

func writeSimulationJSON(w io.Writer, res *simulateResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// renderSimulation renders the final state the way the demos draw it,
// followed by a one-line summary.
func renderSimulation(theme *styles.Theme, res *simulateResult, width int) string {
	var body, summary string
	switch {
	case res.Tabs != nil:
		snap := res.Tabs
		body = theme.RenderTabBar(snap.List, width) + "\n" +
			theme.RenderPanel(snap.Panels, func(p component.PanelState) string { return p.ID }, width)
		summary = fmt.Sprintf("active: %s  selected: [%s]", activeID(snap.List.ActiveIndex, snap.List.Items), joinItemIDs(snap.List.Value))

	case res.Combobox != nil:
		snap := res.Combobox
		body = theme.RenderComboInput(snap.Text, snap.SelectionStart, snap.SelectionEnd, true, width)
		if snap.Open {
			body += "\n" + theme.RenderOptions(snap.Items, width, 0, 0)
		}
		summary = fmt.Sprintf("text: %q  open: %t  active: %s  value: [%s]",
			snap.Text, snap.Open, orNone(string(snap.ActiveDescendant)), joinItemIDs(snap.Value))

	case res.List != nil:
		snap := res.List
		body = theme.RenderOptions(snap.Items, width, 0, 0)
		summary = fmt.Sprintf("active: %s  value: [%s]", activeID(snap.ActiveIndex, snap.Items), joinItemIDs(snap.Value))
		if snap.Typeahead != "" {
			summary += fmt.Sprintf("  typeahead: %q", snap.Typeahead)
		}
	}

	summary += fmt.Sprintf("  keys: %d/%d", res.Handled, res.Keys)
	return body + "\n" + theme.Subtle.Render(summary)
}

func activeID(i int, items []component.ItemSnapshot) string {
	for _, it := range items {
		if it.Index == i {
			return string(it.ID)
		}
	}
	return "none"
}

func joinItemIDs(ids []entity.ItemID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
