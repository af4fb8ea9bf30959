// Package panel renders the bordered regions that make up the LazyFloat
// screen. Panels are immediate-mode: they hold no state between frames and
// draw purely from their fields, the focus flag and the region they are given.
package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/lazyfloat/internal/layout"
)

// Panel draws itself into a region. The result is exactly region.Height lines
// of region.Width cells, or "" for an empty region. focused only selects
// styling.
type Panel interface {
	Render(region layout.Rect, focused bool) string
}

// Styles carries the lipgloss styles panels draw with. The ui package builds
// one from the active theme.
type Styles struct {
	Border      lipgloss.Style
	FocusBorder lipgloss.Style
	Title       lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Info        lipgloss.Style
	Success     lipgloss.Style
	Danger      lipgloss.Style
	MenuLabel   lipgloss.Style
	ActionLabel lipgloss.Style
}

// PlainStyles returns unstyled Styles, useful in tests and as a fallback.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Border:      plain,
		FocusBorder: plain,
		Title:       plain,
		Text:        plain,
		Muted:       plain,
		Info:        plain,
		Success:     plain,
		Danger:      plain,
		MenuLabel:   plain,
		ActionLabel: plain,
	}
}

// frame describes one bordered box.
type frame struct {
	title      string
	label      string
	labelStyle lipgloss.Style
	body       []string
	styles     Styles
	focused    bool
}

// render draws f into region. Focused frames use a thick border so the
// emphasis survives on terminals without colour.
func (f frame) render(region layout.Rect) string {
	w, h := region.Width, region.Height
	if w <= 0 || h <= 0 {
		return ""
	}
	if w < 2 || h < 2 {
		return blank(w, h)
	}

	border := lipgloss.NormalBorder()
	borderStyle := f.styles.Border
	if f.focused {
		border = lipgloss.ThickBorder()
		borderStyle = f.styles.FocusBorder
	}

	innerW, innerH := w-2, h-2
	lines := make([]string, 0, h)

	lines = append(lines, f.topEdge(border, borderStyle, innerW))
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(f.body) {
			content = f.body[i]
		}
		lines = append(lines,
			borderStyle.Render(border.Left)+fit(content, innerW)+borderStyle.Render(border.Right))
	}
	lines = append(lines, f.bottomEdge(border, borderStyle, innerW))

	return strings.Join(lines, "\n")
}

func (f frame) topEdge(border lipgloss.Border, style lipgloss.Style, width int) string {
	title := ""
	if f.title != "" && width > 2 {
		title = ansi.Truncate(" "+f.title+" ", width, "")
	}
	rest := width - ansi.StringWidth(title)
	return style.Render(border.TopLeft) +
		f.styles.Title.Render(title) +
		style.Render(strings.Repeat(border.Top, rest)+border.TopRight)
}

// bottomEdge draws the bottom border with the label centred in it.
func (f frame) bottomEdge(border lipgloss.Border, style lipgloss.Style, width int) string {
	label := ansi.Truncate(f.label, width, "")
	lw := ansi.StringWidth(label)
	left := (width - lw) / 2
	right := width - lw - left
	return style.Render(border.BottomLeft+strings.Repeat(border.Bottom, left)) +
		f.labelStyle.Render(label) +
		style.Render(strings.Repeat(border.Bottom, right)+border.BottomRight)
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	t := ansi.Truncate(s, width, "")
	if pad := width - ansi.StringWidth(t); pad > 0 {
		t += strings.Repeat(" ", pad)
	}
	return t
}

// center pads s on the left so it sits in the middle of width cells. Text
// wider than width is truncated.
func center(s string, width int) string {
	if width <= 0 {
		return ""
	}
	t := ansi.Truncate(s, width, "")
	left := (width - ansi.StringWidth(t)) / 2
	return strings.Repeat(" ", left) + t
}

func blank(w, h int) string {
	row := strings.Repeat(" ", w)
	rows := make([]string, h)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

var (
	_ Panel = Menu{}
	_ Panel = Actions{}
)
