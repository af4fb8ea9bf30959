package panel

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/lazyfloat/internal/layout"
)

// ActionsPlaceholder is the static line shown in the actions panel.
const ActionsPlaceholder = "This is some test test for my layout"

const actionsLabel = "Actions"

// NoticeKind selects how a Notice is styled.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticePending
	NoticeSuccess
	NoticeError
)

// Notice is a transient one-line message shown under the placeholder, such
// as the outcome of the last login.
type Notice struct {
	Kind NoticeKind
	Text string
}

// Empty reports whether there is nothing to show.
func (n Notice) Empty() bool {
	return n.Text == ""
}

// Actions is the activity/log panel.
type Actions struct {
	Title       string
	Placeholder string
	Notice      Notice
	Styles      Styles
}

// NewActions returns an Actions panel showing the default placeholder.
func NewActions(title string, styles Styles) Actions {
	return Actions{Title: title, Placeholder: ActionsPlaceholder, Styles: styles}
}

// Render implements Panel.
func (a Actions) Render(region layout.Rect, focused bool) string {
	innerW := region.Width - 2

	body := []string{a.Styles.Text.Render(center(a.Placeholder, innerW))}
	if !a.Notice.Empty() {
		body = append(body, "", a.noticeStyle().Render(center(a.Notice.Text, innerW)))
	}

	return frame{
		title:      a.Title,
		label:      actionsLabel,
		labelStyle: a.Styles.ActionLabel,
		body:       body,
		styles:     a.Styles,
		focused:    focused,
	}.render(region)
}

func (a Actions) noticeStyle() lipgloss.Style {
	switch a.Notice.Kind {
	case NoticePending:
		return a.Styles.Info
	case NoticeSuccess:
		return a.Styles.Success
	case NoticeError:
		return a.Styles.Danger
	default:
		return a.Styles.Muted
	}
}
