// Package layout partitions the terminal area into panel regions.
package layout

// Proportions of the horizontal split.
const (
	// MenuPercent is the share of the width given to the menu panel.
	MenuPercent = 30

	// GapWidth is the fixed number of columns between the two panels.
	GapWidth = 2

	// FooterHeight is the number of rows reserved below the panels.
	FooterHeight = 1

	// minFooterAreaHeight is the smallest area that still gets a footer;
	// anything shorter gives every row to the panels.
	minFooterAreaHeight = 3
)

// Rect is a rectangular region of the terminal. Width and Height are never
// negative in values produced by this package.
type Rect struct {
	X, Y, Width, Height int
}

// Area returns the number of cells covered by r.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the first column after r.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Regions is the result of splitting an area: menu, gap and actions, left to
// right.
type Regions [3]Rect

func (r Regions) Menu() Rect    { return r[0] }
func (r Regions) Gap() Rect     { return r[1] }
func (r Regions) Actions() Rect { return r[2] }

// Split divides area along the horizontal axis into three regions: 30% of
// the width, a two-column gap, and whatever remains. Each region shares the
// area's Y and height. Degenerate areas yield zero-sized regions.
//
// Algorithm:
//   - menu: width * 30 / 100 (floored)
//   - gap: min(2, width - menu)
//   - actions: width - menu - gap
func Split(area Rect) Regions {
	area = clamp(area)

	menuW := area.Width * MenuPercent / 100
	gapW := min(GapWidth, area.Width-menuW)
	actionsW := area.Width - menuW - gapW

	return Regions{
		{X: area.X, Y: area.Y, Width: menuW, Height: area.Height},
		{X: area.X + menuW, Y: area.Y, Width: gapW, Height: area.Height},
		{X: area.X + menuW + gapW, Y: area.Y, Width: actionsW, Height: area.Height},
	}
}

// Frame holds the geometry of one full screen.
type Frame struct {
	Panels Regions
	Footer Rect
}

// Calculate computes the frame for a terminal of the given dimensions. The
// bottom row is reserved for the footer when the terminal is at least three
// rows tall; the remaining rows are split by Split.
func Calculate(width, height int) Frame {
	area := clamp(Rect{Width: width, Height: height})

	body := area
	var footer Rect
	if area.Height >= minFooterAreaHeight {
		body.Height = area.Height - FooterHeight
		footer = Rect{X: area.X, Y: area.Y + body.Height, Width: area.Width, Height: FooterHeight}
	}

	return Frame{Panels: Split(body), Footer: footer}
}

func clamp(r Rect) Rect {
	r.Width = max(r.Width, 0)
	r.Height = max(r.Height, 0)
	return r
}
