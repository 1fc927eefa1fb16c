package ui

import (
	"context"
	"os"
	"sync"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"github.com/oakwood-commons/spatialnav/internal/watch"
	"github.com/oakwood-commons/spatialnav/pkg/focus"
)

// RunConfig configures an interactive session.
type RunConfig struct {
	Options
	StartKeys []string
	// ConfigPath is watched for style changes when set.
	ConfigPath string
}

// poster forwards scheduler callbacks to the program so they run on the
// event loop. Callbacks that fire before the program is attached are queued
// and sent once it is.
type poster struct {
	mu      sync.Mutex
	prog    *tea.Program
	pending []func()
}

func (p *poster) attach(prog *tea.Program) {
	p.mu.Lock()
	p.prog = prog
	queued := p.pending
	p.pending = nil
	p.mu.Unlock()
	if len(queued) == 0 {
		return
	}
	// Send blocks until the program loop is running.
	go func() {
		for _, fn := range queued {
			prog.Send(runMsg{fn: fn})
		}
	}()
}

func (p *poster) post(fn func()) {
	p.mu.Lock()
	prog := p.prog
	if prog == nil {
		p.pending = append(p.pending, fn)
	}
	p.mu.Unlock()
	if prog != nil {
		prog.Send(runMsg{fn: fn})
	}
}

func (p *poster) send(msg tea.Msg) {
	p.mu.Lock()
	prog := p.prog
	p.mu.Unlock()
	if prog != nil {
		prog.Send(msg)
	}
}

// Run starts the Bubble Tea program. Width/height of 0 auto-detect the
// terminal size, falling back to 80x24.
func Run(ctx context.Context, cfg RunConfig, opts ...tea.ProgramOption) error {
	p := &poster{}
	mopts := cfg.Options
	mopts.Scheduler = focus.AfterFuncScheduler{Post: p.post}
	mopts.Width, mopts.Height = resolveSize(cfg.Width, cfg.Height)

	m, err := NewModel(mopts)
	if err != nil {
		return err
	}
	if len(cfg.StartKeys) > 0 {
		ApplyStartupKeys(m, cfg.StartKeys)
	}
	m.smooth = true

	if cfg.ConfigPath != "" {
		w, err := watch.New(cfg.ConfigPath,
			watch.WithLogger(m.log.WithName("watch")),
			watch.OnStyle(func(s focus.Style) { p.send(StyleReloadMsg{Style: s}) }),
			watch.OnError(func(err error) { p.send(ConfigErrorMsg{Err: err}) }),
		)
		if err != nil {
			m.log.Error(err, "config watch disabled", "path", cfg.ConfigPath)
		} else {
			defer func() { _ = w.Close() }()
			if err := w.Start(ctx); err != nil {
				return err
			}
		}
	}

	opts = append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithWindowSize(mopts.Width, mopts.Height),
	}, opts...)
	prog := tea.NewProgram(m, opts...)
	p.attach(prog)

	final, err := prog.Run()
	if fm, ferr := finalModel(final); ferr == nil {
		fm.Manager.Close()
		fm.Toasts.Close()
	}
	return err
}

func resolveSize(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			if width <= 0 {
				width = w
			}
			if height <= 0 {
				height = h
			}
		}
	}
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}
