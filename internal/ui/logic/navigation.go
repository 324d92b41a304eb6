package logic

// Navigator moves the cursor over a grid of cards laid out row by row
type Navigator struct {
	columns     int
	visibleRows int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{columns: 1, visibleRows: 1}
}

// UpdateLayout records the current grid geometry
func (n *Navigator) UpdateLayout(columns, visibleRows int) {
	if columns < 1 {
		columns = 1
	}
	if visibleRows < 1 {
		visibleRows = 1
	}
	n.columns = columns
	n.visibleRows = visibleRows
}

// Columns returns the number of cards per row
func (n *Navigator) Columns() int {
	return n.columns
}

// Target returns the index the cursor lands on when moving in direction
// from index over total cards. Vertical moves that would leave the grid
// stay put; horizontal moves wrap across rows.
func (n *Navigator) Target(index, total int, direction string) int {
	if total <= 0 {
		return 0
	}
	page := n.columns * n.visibleRows

	switch direction {
	case "up":
		if index-n.columns >= 0 {
			return index - n.columns
		}
		return index
	case "down":
		if index+n.columns < total {
			return index + n.columns
		}
		// Jump to the last card when the row below is shorter
		if index/n.columns < (total-1)/n.columns {
			return total - 1
		}
		return index
	case "left":
		return clamp(index-1, total)
	case "right":
		return clamp(index+1, total)
	case "pageup":
		return clamp(index-page, total)
	case "pagedown":
		return clamp(index+page, total)
	case "home":
		return 0
	case "end":
		return total - 1
	}
	return clamp(index, total)
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
