package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/lazyfloat/internal/layout"
	"github.com/five82/lazyfloat/internal/panel"
	"github.com/five82/lazyfloat/internal/state"
)

// Panel titles.
const (
	menuTitle    = "Hello"
	actionsTitle = "World"
)

// View implements tea.Model. Nothing is drawn once the program is exiting.
func (m Model) View() string {
	if m.app.Exit {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	frame := layout.Calculate(m.width, m.height)
	body := m.renderPanels(frame.Panels)
	if frame.Footer.Empty() {
		return body
	}
	return body + "\n" + m.renderFooter(frame.Footer.Width)
}

// renderPanels draws the menu, gap and actions regions side by side.
func (m Model) renderPanels(regions layout.Regions) string {
	styles := m.theme.PanelStyles()

	menu := panel.NewMenu(menuTitle, styles)
	actions := panel.NewActions(actionsTitle, styles)
	actions.Notice = m.currentNotice()

	blocks := []string{
		menu.Render(regions.Menu(), m.app.Focused(state.FocusMenu)),
		blankBlock(regions.Gap()),
		actions.Render(regions.Actions(), m.app.Focused(state.FocusActions)),
	}

	parts := blocks[:0]
	for _, b := range blocks {
		if b != "" {
			parts = append(parts, b)
		}
	}
	if len(parts) == 0 {
		return blankBlock(regions.Menu())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// currentNotice returns what the actions panel should show under its
// placeholder.
func (m Model) currentNotice() panel.Notice {
	if m.pending {
		return panel.Notice{Kind: panel.NoticePending, Text: m.spinner.View() + " Logging in"}
	}
	return m.notice
}

// renderFooter draws the status row: brand, counter value and key hints.
func (m Model) renderFooter(width int) string {
	fs := m.theme.footerStyles()

	left := fs.Brand.Render(" LazyFloat ") + " " +
		fs.Label.Render("Value: ") + fs.Counter.Render(strconv.FormatInt(m.app.Counter, 10))
	hints := m.help.ShortHelpView(m.keys.ShortHelp())

	line := left + "  " + hints
	line = ansi.Truncate(line, width, "")
	if pad := width - ansi.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}

// blankBlock returns r filled with spaces, or "" for an empty rect.
func blankBlock(r layout.Rect) string {
	if r.Empty() {
		return ""
	}
	row := strings.Repeat(" ", r.Width)
	rows := make([]string, r.Height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
