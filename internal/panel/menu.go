package panel

import (
	"strings"

	"github.com/five82/lazyfloat/internal/layout"
)

// MenuEntries are the fixed menu items. They are display-only: nothing
// selects or activates them yet.
var MenuEntries = []string{"Login", "View Projects", "Settings", "Exit"}

const (
	menuLabel = "Menu"

	// Inner padding: columns on each side, rows above the list.
	menuPadX = 2
	menuPadY = 1
)

// Menu is the navigation panel.
type Menu struct {
	Title   string
	Entries []string
	Styles  Styles
}

// NewMenu returns a Menu listing MenuEntries.
func NewMenu(title string, styles Styles) Menu {
	return Menu{Title: title, Entries: MenuEntries, Styles: styles}
}

// Render implements Panel.
func (m Menu) Render(region layout.Rect, focused bool) string {
	innerW := region.Width - 2
	textW := innerW - 2*menuPadX
	pad := strings.Repeat(" ", min(menuPadX, max(innerW, 0)))

	body := make([]string, 0, menuPadY+len(m.Entries))
	for i := 0; i < menuPadY; i++ {
		body = append(body, "")
	}
	for _, entry := range m.Entries {
		body = append(body, pad+m.Styles.Text.Render(fit(entry, textW)))
	}

	return frame{
		title:      m.Title,
		label:      menuLabel,
		labelStyle: m.Styles.MenuLabel,
		body:       body,
		styles:     m.Styles,
		focused:    focused,
	}.render(region)
}
