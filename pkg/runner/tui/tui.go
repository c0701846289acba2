// Package tui is the interactive countdown view. The readout is always
// recomputed from the countdown's end instant, so a suspended terminal shows
// the right remaining time on the next tick.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"stillpoint.dev/still/pkg/app"
	"stillpoint.dev/still/pkg/journal"
	"stillpoint.dev/still/pkg/journal/viewmodel"
	"stillpoint.dev/still/pkg/store"
	"stillpoint.dev/still/pkg/timer"
	"stillpoint.dev/still/pkg/timeutil"
)

const tickInterval = 250 * time.Millisecond

var (
	readoutStyle = lipgloss.NewStyle().Bold(true).Padding(1, 2)
	barDoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	barRestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	helpStyle    = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// Run starts the countdown view for the given service.
func Run(ctx context.Context, svc *app.Service, p store.Persistence) error {
	if svc == nil {
		return errors.New("tui requires a journal service")
	}
	doc, err := svc.Document(ctx)
	if err != nil {
		return err
	}

	m := model{
		ctx:       ctx,
		svc:       svc,
		countdown: timer.New(doc.TimerDurationSec),
		stats:     viewmodel.BuildStats(doc, journal.Today()),
	}
	if p != nil {
		if ch, err := p.Watch(ctx); err == nil {
			m.events = ch
		}
	}

	_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()
	return err
}

type tickMsg time.Time

type storeChangedMsg struct{}

type model struct {
	ctx       context.Context
	svc       *app.Service
	countdown *timer.Countdown
	events    <-chan store.Event

	stats    viewmodel.Stats
	width    int
	finished bool
	err      error
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tick(), m.waitForStoreChange())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) waitForStoreChange() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s", " ":
			if !m.countdown.Running() {
				m.finished = false
				if _, err := m.svc.StartSession(m.ctx, m.countdown.DurationSec()); err != nil {
					m.err = err
					return m, nil
				}
				m.countdown.Start(time.Now())
				m.refreshStats()
			}
			return m, nil
		case "r":
			// Clears only run-state; the session stays recorded.
			m.countdown.Reset()
			m.finished = false
			return m, nil
		}
		return m, nil

	case tickMsg:
		if m.countdown.Running() {
			if _, finished := m.countdown.Sync(time.Time(msg)); finished {
				m.finished = true
				m.refreshStats()
			}
		}
		return m, tick()

	case storeChangedMsg:
		if err := m.svc.Reload(m.ctx); err == nil {
			m.refreshStats()
			if doc, err := m.svc.Document(m.ctx); err == nil && !m.countdown.Running() {
				m.countdown = timer.New(doc.TimerDurationSec)
			}
		}
		return m, m.waitForStoreChange()
	}

	return m, nil
}

func (m *model) refreshStats() {
	doc, err := m.svc.Document(m.ctx)
	if err != nil {
		m.err = err
		return
	}
	m.stats = viewmodel.BuildStats(doc, journal.Today())
}

func (m model) View() string {
	now := time.Now()
	readout := readoutStyle.Render(timeutil.FormatClock(m.countdown.Remaining(now)))

	width := m.width
	if width <= 0 {
		width = 40
	}
	barWidth := width - 4
	if barWidth < 10 {
		barWidth = 10
	}
	done := int(m.countdown.Progress(now) * float64(barWidth))
	bar := barDoneStyle.Render(strings.Repeat("█", done)) +
		barRestStyle.Render(strings.Repeat("░", barWidth-done))

	status := faintStyle.Render("press s to sit")
	if m.countdown.Running() {
		status = faintStyle.Render("sitting…")
	}
	if m.finished {
		status = "session complete \a"
	}
	if m.err != nil {
		status = m.err.Error()
	}

	stats := faintStyle.Render(fmt.Sprintf("today %d • total %d • insights %d • ideas %d",
		m.stats.Today, m.stats.Meditations, m.stats.Insights, m.stats.Ideas))

	help := helpStyle.Render("s start • r reset • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, readout, bar, status, stats, help)
}
