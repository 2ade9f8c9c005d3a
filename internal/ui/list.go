package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/codemarket/internal/market"
	"github.com/five82/codemarket/internal/prefs"
)

// Filter narrows which listings the list pane shows.
type Filter string

const (
	FilterAll     Filter = prefs.FilterAll
	FilterForSale Filter = prefs.FilterForSale
	FilterSold    Filter = prefs.FilterSold
)

// next cycles All → For sale → Sold → All.
func (f Filter) next() Filter {
	switch f {
	case FilterAll:
		return FilterForSale
	case FilterForSale:
		return FilterSold
	default:
		return FilterAll
	}
}

func (f Filter) label() string {
	switch f {
	case FilterForSale:
		return "For sale"
	case FilterSold:
		return "Sold"
	default:
		return "All"
	}
}

func (f Filter) keep(l market.Listing) bool {
	switch f {
	case FilterForSale:
		return !l.SoldOut
	case FilterSold:
		return l.SoldOut
	default:
		return true
	}
}

// visibleListings returns the listings that pass the current filter, in
// store order.
func (m Model) visibleListings() []market.Listing {
	all := m.snapshot.State.Listings
	out := make([]market.Listing, 0, len(all))
	for _, l := range all {
		if m.filter.keep(l) {
			out = append(out, l)
		}
	}
	return out
}

// selectable reports whether the list may select l.
func (m Model) selectable(l market.Listing) bool {
	return !(l.SoldOut && m.present.LockSoldRows)
}

// syncCursor moves the cursor onto the selected listing when it is visible
// and keeps it in range otherwise.
func (m *Model) syncCursor() {
	rows := m.visibleListings()
	if id, ok := m.snapshot.State.Selected.ID(); ok {
		for i, l := range rows {
			if l.ID == id {
				m.cursor = i
				return
			}
		}
	}
	m.cursor = min(m.cursor, len(rows)-1)
	m.cursor = max(m.cursor, 0)
}

// stepCursor returns the index of the nearest selectable row from the cursor
// in direction dir, or -1 when there is none.
func (m Model) stepCursor(dir int) int {
	rows := m.visibleListings()
	for i := m.cursor + dir; i >= 0 && i < len(rows); i += dir {
		if m.selectable(rows[i]) {
			return i
		}
	}
	return -1
}

// edgeCursor returns the first (dir > 0) or last (dir < 0) selectable row.
func (m Model) edgeCursor(dir int) int {
	rows := m.visibleListings()
	if dir > 0 {
		for i := range rows {
			if m.selectable(rows[i]) {
				return i
			}
		}
		return -1
	}
	for i := len(rows) - 1; i >= 0; i-- {
		if m.selectable(rows[i]) {
			return i
		}
	}
	return -1
}

// listTitle returns the list pane title.
func (m Model) listTitle() string {
	visible := len(m.visibleListings())
	total := m.snapshot.State.Count()
	if m.filter == FilterAll {
		return fmt.Sprintf("Code market (%d)", total)
	}
	return fmt.Sprintf("Code market · %s (%d/%d)", m.filter.label(), visible, total)
}

// renderList renders the visible listings as stacked cards.
func (m Model) renderList(width, height int, bgColor string) string {
	styles := m.theme.Styles()
	rows := m.visibleListings()
	if len(rows) == 0 {
		msg := market.EmptyListMessage
		if m.snapshot.State.Count() > 0 {
			msg = "No " + strings.ToLower(m.filter.label()) + " listings"
		}
		return lipgloss.NewStyle().
			Background(lipgloss.Color(bgColor)).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(styles.MutedText.Background(lipgloss.Color(bgColor)).Render(msg))
	}

	var cards []string
	for i, l := range rows {
		selected := m.snapshot.State.Selected.Is(l.ID)
		view := market.Row(l, selected, m.present)
		cards = append(cards, m.renderRow(view, i == m.cursor, width, bgColor))
	}

	lines := strings.Split(strings.Join(cards, "\n"), "\n")
	return strings.Join(scrollWindow(lines, m.cursorLine(rows), height), "\n")
}

// cursorLine is the first rendered line of the cursor row.
func (m Model) cursorLine(rows []market.Listing) int {
	line := 0
	for i := 0; i < m.cursor && i < len(rows); i++ {
		line += rowHeight(market.Row(rows[i], false, m.present))
	}
	return line
}

func rowHeight(v market.RowView) int {
	h := 3 + len(v.Preview) // title, description, preview, hint/blank
	if v.Truncated {
		h++
	}
	return h
}

// scrollWindow keeps focus line visible within height lines.
func scrollWindow(lines []string, focus, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	start := max(focus-height/2, 0)
	start = min(start, len(lines)-height)
	return lines[start : start+height]
}

// renderRow renders one listing card:
//
//	▌ #2 Tower of Hanoi solver          8,000 KRW
//	  Python · Classic three-peg puzzle…
//	  def hanoi(n, src, dst, via):
//	  ...
//	  unlock after purchase
func (m Model) renderRow(v market.RowView, cursor bool, width int, bgColor string) string {
	if v.Selected {
		bgColor = m.theme.SelectionBg
	}
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	titleStyle := styles.Text.Bold(true)
	descStyle := styles.MutedText
	priceStyle := styles.PriceText
	if v.Selected {
		sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		titleStyle = sel.Bold(true)
		descStyle = sel
	}
	if v.SoldOut {
		priceStyle = styles.DangerText
		descStyle = styles.FaintText
		if !v.Selectable {
			titleStyle = styles.FaintText
		}
	}

	marker := bg.Spaces(2)
	if cursor {
		marker = bg.Render("▌", styles.AccentText) + bg.Space()
	}

	price := v.PriceLabel
	if v.Badge != "" {
		price = v.Badge + " · " + price
	}
	id := fmt.Sprintf("#%d ", v.ID)
	titleWidth := max(width-2-len(id)-lipgloss.Width(price)-2, 6)
	title := truncate(v.Title, titleWidth)
	gap := max(width-2-len(id)-lipgloss.Width(title)-lipgloss.Width(price), 1)

	var lines []string
	lines = append(lines, marker+
		bg.Render(id, styles.FaintText)+
		bg.Render(title, titleStyle)+
		bg.Spaces(gap)+
		bg.Render(price, priceStyle))

	meta := v.Language
	if desc := firstLine(v.Description); desc != "" {
		meta += " · " + desc
	}
	lines = append(lines, bg.Spaces(2)+bg.Render(truncate(meta, width-2), descStyle))

	for _, code := range v.Preview {
		lines = append(lines, bg.Spaces(2)+bg.Render(clip(code, width-2), styles.CodeText))
	}
	if v.Truncated {
		lines = append(lines, bg.Spaces(2)+bg.Render(market.PreviewMore, styles.FaintText))
	}
	lines = append(lines, bg.Spaces(2)+bg.Render(v.LockedHint, styles.FaintText.Italic(true)))

	for i, line := range lines {
		lines[i] = bg.FillLine(line, width)
	}
	return strings.Join(lines, "\n")
}
