package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = "codemarket"

// renderHeader renders the top status line: logo, counts, filter and the
// busy marker.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Render(" · ", styles.FaintText)

	st := m.snapshot.State
	forSale := st.Count() - st.SoldCount()

	parts := []string{
		bg.Render(logo, styles.Logo),
		bg.Render(fmt.Sprintf("%d %s", st.Count(), plural(st.Count(), "listing", "listings")), styles.Text),
		bg.Render(fmt.Sprintf("%d for sale", forSale), styles.SuccessText),
		bg.Render(fmt.Sprintf("%d sold", st.SoldCount()), styles.DangerText),
	}
	if m.width >= LayoutCompactWidth {
		parts = append(parts, bg.Render("Filter: "+m.filter.label(), styles.MutedText))
	}
	if m.busy {
		parts = append(parts, bg.Render("working…", styles.WarningText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Padding(0, 1).
		Render(strings.Join(parts, sep))
}

// renderCommandBar renders the key hints for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.currentView == ViewActivity:
		follow := "Pause"
		if !m.activity.follow {
			follow = "Follow"
		}
		commands = []cmd{
			{"Space", follow},
			{"j/k", "Scroll"},
			{"g/G", "Top/Bottom"},
			{"l", "Market"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"a", "Upload"},
			{"e", "Edit"},
			{"d", "Delete"},
			{"b", "Buy"},
			{"f", m.filter.label()},
			{"l", "Activity"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

// renderFooter renders the bottom line with the total count and last action.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)

	count := m.snapshot.State.Count()
	left := bg.Render(fmt.Sprintf("Total %d %s", count, plural(count, "listing", "listings")), styles.MutedText)

	right := ""
	if last := m.snapshot.LastAction; last != "" {
		right = bg.Render(fmt.Sprintf("last: %s · rev %d · %s", last, m.snapshot.Revision,
			m.snapshot.LastUpdated.Format("15:04:05")), styles.FaintText)
	}
	gap := max(m.width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Background)).
		Width(m.width).
		Padding(0, 1).
		Render(left + bg.Spaces(gap) + right)
}
