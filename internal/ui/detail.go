package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/five82/codemarket/internal/market"
)

func (m *Model) initDetailViewport() {
	m.detailViewport = viewport.New(0, 0)
}

// updateDetailViewport re-renders the detail pane content for the current
// selection and pane size.
func (m *Model) updateDetailViewport() {
	width, height := m.detailPaneSize()
	m.detailViewport.Width = max(width-4, 0)
	m.detailViewport.Height = max(height-2, 0)
	m.detailViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.detailBg()))

	if sel := m.snapshot.State.Selected; sel != m.detailFor {
		m.detailViewport.GotoTop()
		m.detailFor = sel
	}

	l, ok := m.snapshot.State.SelectedListing()
	if !ok {
		m.detailViewport.SetContent(m.renderEmptyDetail(m.detailViewport.Width, m.detailViewport.Height))
		return
	}
	m.detailViewport.SetContent(m.renderDetailContent(market.Detail(l, m.present), m.detailViewport.Width))
}

func (m Model) renderEmptyDetail(width, height int) string {
	styles := m.theme.Styles().WithBackground(m.detailBg())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		styles.MutedText.Render(market.EmptySelectionMessage),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.detailBg())))
}

// renderDetailContent lays out the selected listing: heading, price, the
// full description, the code block and the buy control.
func (m Model) renderDetailContent(v market.DetailView, width int) string {
	bg := NewBgStyle(m.detailBg())
	styles := m.theme.Styles()
	rule := bg.Render(strings.Repeat("─", max(width, 1)), styles.FaintText)

	var lines []string
	heading := bg.Render(v.Title, styles.Text.Bold(true))
	if v.Badge != "" {
		heading += bg.Space() + styles.Badge.Render(v.Badge)
	}
	lines = append(lines, heading)
	lines = append(lines, bg.Render(v.Language+" · "+v.CreatedAt, styles.MutedText))

	priceStyle := styles.PriceText
	if v.SoldOut {
		priceStyle = styles.MutedText
	}
	lines = append(lines, bg.Render(v.PriceLabel, priceStyle))
	lines = append(lines, "", rule)

	for _, line := range strings.Split(wordwrap.String(v.Description, max(width, 10)), "\n") {
		lines = append(lines, bg.Render(line, styles.Text))
	}
	lines = append(lines, "", rule)

	codeStyle := styles.CodeText
	if v.CodeMuted {
		codeStyle = styles.FaintText
	}
	for _, line := range strings.Split(v.Code, "\n") {
		lines = append(lines, bg.Render(clip(line, width), codeStyle))
	}
	lines = append(lines, "", rule, m.renderBuyControl(v, bg))

	for i, line := range lines {
		lines[i] = bg.FillLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderBuyControl(v market.DetailView, bg BgStyle) string {
	styles := m.theme.Styles()
	if !v.BuyEnabled {
		return bg.Render("[ "+v.BuyLabel+" ]", styles.FaintText)
	}
	button := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Background)).
		Background(lipgloss.Color(m.theme.Accent)).
		Bold(true).
		Padding(0, 1).
		Render(v.BuyLabel)
	return button + bg.Space() + bg.Render("press b", styles.FaintText)
}

// detailBg is the detail pane background; the pane is focused while a
// listing is selected.
func (m Model) detailBg() string {
	if m.snapshot.State.Selected.IsNone() {
		return m.theme.SurfaceAlt
	}
	return m.theme.FocusBg
}

// detailPaneSize returns the outer size of the detail pane.
func (m Model) detailPaneSize() (int, int) {
	return m.width - m.listPaneWidth(), m.contentHeight()
}

// listPaneWidth returns the outer width of the list pane.
func (m Model) listPaneWidth() int {
	if m.width >= LayoutExtraWideWidth {
		return m.width * 40 / 100
	}
	return m.width * 50 / 100
}

// contentHeight is the height left after the header, command bar and footer.
func (m Model) contentHeight() int {
	return max(m.height-3, 0)
}
