package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/codemarket/internal/logtail"
)

// activityState holds the activity log view.
type activityState struct {
	lines   []string
	follow  bool
	err     error
	version uint64 // bumped on every load
	shown   uint64
	// ticker identifies the live refresh loop; older ticks are dropped.
	ticker int
}

type activityMsg struct {
	lines []string
	err   error
}

type activityTickMsg struct {
	ticker int
	at     time.Time
}

func activityTickCmd(ticker int) tea.Cmd {
	return tea.Tick(ActivityRefreshInterval, func(t time.Time) tea.Msg {
		return activityTickMsg{ticker: ticker, at: t}
	})
}

// loadActivityCmd reads the tail of the session log.
func loadActivityCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(path) == "" {
			return activityMsg{}
		}
		lines, err := logtail.Read(path, ActivityLineLimit)
		return activityMsg{lines: lines, err: err}
	}
}

func (m *Model) initActivityViewport() {
	m.activityViewport = viewport.New(0, 0)
	m.activity.follow = true
}

func (m *Model) handleActivity(msg activityMsg) {
	m.activity.err = msg.err
	if msg.err == nil {
		m.activity.lines = msg.lines
	}
	m.activity.version++
	m.updateActivityViewport()
}

func (m *Model) updateActivityViewport() {
	m.activityViewport.Width = max(m.width-4, 0)
	m.activityViewport.Height = max(m.contentHeight()-2, 0)
	m.activityViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))

	if m.activity.shown != m.activity.version || m.activity.version == 0 {
		m.activityViewport.SetContent(m.renderActivityContent())
		m.activity.shown = m.activity.version
	}
	if m.activity.follow {
		m.activityViewport.GotoBottom()
	}
}

func (m Model) renderActivityContent() string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	width := m.activityViewport.Width

	if m.activity.err != nil {
		return bg.Render("Cannot read log: "+m.activity.err.Error(), styles.DangerText)
	}
	if len(m.activity.lines) == 0 {
		return bg.Render("No activity yet", styles.MutedText)
	}

	out := make([]string, 0, len(m.activity.lines))
	for _, line := range m.activity.lines {
		out = append(out, bg.FillLine(m.colorizeEntry(logtail.Parse(line), styles, bg, width), width))
	}
	return strings.Join(out, "\n")
}

// colorizeEntry renders one record as "time LEVEL [component] message k=v".
func (m Model) colorizeEntry(e logtail.Entry, styles Styles, bg BgStyle, width int) string {
	if e.Raw != "" {
		return bg.Render(clip(e.Raw, width), styles.Text)
	}

	var parts []string
	if !e.Time.IsZero() {
		parts = append(parts, bg.Render(e.Time.Local().Format("15:04:05"), styles.FaintText))
	}
	level := strings.ToUpper(strings.TrimSpace(e.Level))
	if level == "" {
		level = "INFO"
	}
	parts = append(parts, bg.Render(level, levelStyle(level, styles)))
	if e.Component != "" {
		parts = append(parts, bg.Render("["+e.Component+"]", styles.InfoText))
	}
	if e.Message != "" {
		parts = append(parts, bg.Render(e.Message, styles.Text))
	}
	for _, k := range logtail.SortedKeys(e.Fields) {
		parts = append(parts, bg.Render(k+"=", styles.FaintText)+bg.Render(e.Fields[k], styles.AccentText))
	}
	return clip(strings.Join(parts, bg.Space()), width)
}

func levelStyle(level string, styles Styles) lipgloss.Style {
	switch level {
	case "ERROR", "FATAL", "PANIC":
		return styles.DangerText
	case "WARN":
		return styles.WarningText.Bold(true)
	case "DEBUG", "TRACE":
		return styles.InfoText
	default:
		return styles.SuccessText
	}
}

func (m Model) activityTitle() string {
	title := "Activity"
	if m.logPath != "" {
		title += " · " + m.logPath
	}
	if !m.activity.follow {
		title += " (paused)"
	}
	return title
}

// renderActivity renders the activity view.
func (m Model) renderActivity() string {
	return m.renderTitledBox(m.activityTitle(), m.activityViewport.View(), m.width, m.contentHeight(), true)
}

func (m Model) handleActivityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleFollow):
		m.activity.follow = !m.activity.follow
		if m.activity.follow {
			m.activityViewport.GotoBottom()
		}
	case key.Matches(msg, m.keys.Down):
		m.activityViewport.ScrollDown(1)
		m.activity.follow = false
	case key.Matches(msg, m.keys.Up):
		m.activityViewport.ScrollUp(1)
		m.activity.follow = false
	case key.Matches(msg, m.keys.HalfPageDown):
		m.activityViewport.HalfPageDown()
		m.activity.follow = false
	case key.Matches(msg, m.keys.HalfPageUp):
		m.activityViewport.HalfPageUp()
		m.activity.follow = false
	case key.Matches(msg, m.keys.Top):
		m.activityViewport.GotoTop()
		m.activity.follow = false
	case key.Matches(msg, m.keys.Bottom):
		m.activityViewport.GotoBottom()
		m.activity.follow = true
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Activity):
		m.currentView = ViewMarket
	}
	return m, nil
}
