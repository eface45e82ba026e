// Package model holds the Bubble Tea hosts that drive the interaction patterns.
package model

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/listnav/internal/application/port"
	"github.com/bnema/listnav/internal/cli/styles"
	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/infrastructure/config"
	"github.com/bnema/listnav/internal/logging"
	"github.com/bnema/listnav/internal/ui/input"
	"github.com/bnema/listnav/internal/ui/mainloop"
)

// RunMsg carries a callback that must run on the program's update loop.
type RunMsg func()

// Loop posts callbacks from timer and watcher goroutines into a tea.Program.
// Callbacks posted before Attach are delivered once the program is attached.
// Post must not be called from inside Update, since Send blocks until the
// loop receives.
type Loop struct {
	mu      sync.Mutex
	prog    *tea.Program
	pending []func()
}

// NewLoop creates a detached loop.
func NewLoop() *Loop {
	return &Loop{}
}

// Attach connects the loop to a program and flushes queued callbacks.
func (l *Loop) Attach(p *tea.Program) {
	l.mu.Lock()
	l.prog = p
	pending := l.pending
	l.pending = nil
	l.mu.Unlock()

	for _, fn := range pending {
		p.Send(RunMsg(fn))
	}
}

// Post delivers fn to the update loop.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	p := l.prog
	if p == nil {
		l.pending = append(l.pending, fn)
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()
	p.Send(RunMsg(fn))
}

// Scheduler returns a wall-clock scheduler whose callbacks run on the loop.
func (l *Loop) Scheduler() port.Scheduler {
	return mainloop.NewClockScheduler(l.Post)
}

// DemoOptions holds what every demo host needs.
type DemoOptions struct {
	Ctx       context.Context
	Theme     *styles.Theme
	Scheduler port.Scheduler
	Config    *config.Config
	Title     string
	Width     int
	Mouse     bool
}

// Demo is a tea.Model whose pattern can take a new configuration.
type Demo interface {
	tea.Model
	// ApplyConfig runs on the update loop after a live config reload.
	ApplyConfig(cfg *config.Config)
}

// demoBase holds the chrome shared by every demo. Models embedding it use
// pointer receivers so timer callbacks mutate the live model.
type demoBase struct {
	ctx    context.Context
	theme  *styles.Theme
	title  string
	keys   styles.DemoKeyMap
	help   help.Model
	timers *mainloop.Timers
	hover  *input.HoverDebouncer
	// destroy releases the hosted pattern on quit.
	destroy func()

	width    int
	height   int
	rows     int
	offset   int
	mouse    bool
	showHelp bool
	focused  bool
	status   string
}

func newDemoBase(opts DemoOptions, keys styles.DemoKeyMap) demoBase {
	width := opts.Width
	if width <= 0 {
		width = 40
	}
	return demoBase{
		ctx:     opts.Ctx,
		theme:   opts.Theme,
		title:   opts.Title,
		keys:    keys,
		help:    styles.NewStyledHelp(opts.Theme),
		timers:  mainloop.NewTimers(opts.Scheduler),
		width:   width,
		height:  24,
		rows:    10,
		mouse:   opts.Mouse,
		focused: true,
	}
}

// handleCommon processes messages every demo treats the same way. It
// reports whether msg was consumed.
func (b *demoBase) handleCommon(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case RunMsg:
		msg()
		return true, nil

	case tea.WindowSizeMsg:
		b.height = msg.Height
		b.help.Width = msg.Width
		if msg.Width > 0 && b.width > msg.Width {
			b.width = msg.Width
		}
		b.rows = max(3, msg.Height-b.chromeRows())
		return true, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keys.Quit):
			b.timers.Destroy()
			if b.destroy != nil {
				b.destroy()
			}
			return true, tea.Quit
		case key.Matches(msg, b.keys.Help):
			b.showHelp = !b.showHelp
			return true, nil
		}
	}
	return false, nil
}

// chromeRows counts the lines frame adds around the body.
func (b *demoBase) chromeRows() int {
	if b.showHelp {
		return 9
	}
	return 5
}

// keyEvents translates a key message, logging each event at trace level.
func (b *demoBase) keyEvents(msg tea.KeyMsg) []entity.KeyEvent {
	events := input.FromTeaKey(msg)
	log := logging.FromContext(b.ctx)
	for _, ev := range events {
		log.Trace().Str("key", ev.String()).Msg("key event")
	}
	return events
}

// mouseMods maps mouse modifiers; terminals report no Meta.
func mouseMods(msg tea.MouseMsg) entity.Modifiers {
	return entity.Modifiers{Ctrl: msg.Ctrl, Shift: msg.Shift, Alt: msg.Alt}
}

func (b *demoBase) frame(body, status string) string {
	t := b.theme
	header := t.Title.Render(b.title)
	if !b.focused {
		header += " " + t.Subtle.Render("(focus outside)")
	}

	helpView := b.help.ShortHelpView(b.keys.ShortHelp())
	if b.showHelp {
		helpView = b.help.FullHelpView(b.keys.FullHelp())
	}

	parts := []string{header, "", body, "", t.Subtle.Render(status)}
	if b.status != "" {
		parts = append(parts, t.WarningStyle.Render(b.status))
	}
	parts = append(parts, helpView)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// flash shows msg in the status line until the next one replaces it.
func (b *demoBase) flash(msg string) {
	b.status = msg
	b.timers.Schedule("status.clear", 3*time.Second, func() { b.status = "" })
}
