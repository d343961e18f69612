package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/cli/formatter"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/safety"
)

// watchTickMsg drives the location poll loop.
type watchTickMsg time.Time

const watchPollInterval = time.Second

// watchModel is the bubbletea model behind "safety watch". It polls the
// tracker for the latest fix and shows a spinner until one arrives.
type watchModel struct {
	tracker *safety.Tracker
	spin    spinner.Model
	fix     *safety.Position
	updates int
}

func newWatchModel(tracker *safety.Tracker) watchModel {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(formatter.ColorPurple)),
	)
	return watchModel{
		tracker: tracker,
		spin:    sp,
	}
}

func watchTick() tea.Cmd {
	return tea.Tick(watchPollInterval, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, watchTick())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC, msg.Type == tea.KeyEsc, msg.String() == "q":
			return m, tea.Quit
		}

	case spinner.TickMsg:
		if m.fix == nil {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}

	case watchTickMsg:
		if pos := m.tracker.CurrentLocation(); pos != nil {
			if m.fix == nil || !pos.At.Equal(m.fix.At) {
				m.updates++
			}
			m.fix = pos
		}
		return m, watchTick()
	}

	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Safety Watch"))
	b.WriteString("\n\n")

	if reason := m.tracker.Reason(); reason != "" {
		b.WriteString("  " + formatter.Dim("Reason: "+reason) + "\n")
	}

	switch {
	case !m.tracker.HasPermission():
		b.WriteString("  " + formatter.Dim("Location permission denied; safety mode stays armed without fixes.") + "\n")
	case m.fix == nil:
		b.WriteString("  " + m.spin.View() + formatter.Dim("Acquiring fix...") + "\n")
	default:
		b.WriteString("  " + formatter.Coords(m.fix.Lat, m.fix.Lng, m.fix.AccuracyM) + "\n")
		b.WriteString("  " + formatter.Dim("Last fix "+m.fix.At.Format("15:04:05")) + "\n")
		b.WriteString("  " + formatter.Dim(plural(m.updates, "update")+" since start") + "\n")
	}

	b.WriteString("\n  " + formatter.Dim("q: quit") + "\n")
	return b.String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
