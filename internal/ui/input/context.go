package input

import (
	"luxegems/internal/domain"
	"luxegems/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State      state.AppState
	Cols       int
	Categories []string
	Materials  []string
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of cards in the grid
func (c *ModelContext) TotalItems() int {
	return len(c.State.Fetch.Items)
}

// Columns returns the number of cards per grid row
func (c *ModelContext) Columns() int {
	if c.Cols < 1 {
		return 1
	}
	return c.Cols
}

// CurrentItemID returns the id of the card under the cursor
func (c *ModelContext) CurrentItemID() string {
	if item, ok := c.State.SelectedItem(); ok {
		return item.ID
	}
	return ""
}

func (c *ModelContext) Filters() domain.FilterState {
	return c.State.Filters
}

// Options returns the selectable values for a picker dimension
func (c *ModelContext) Options(field domain.FilterField) []string {
	switch field {
	case domain.FilterCategory:
		if len(c.Categories) > 0 {
			return c.Categories
		}
		return domain.DefaultCategories
	case domain.FilterMaterial:
		if len(c.Materials) > 0 {
			return c.Materials
		}
		return domain.DefaultMaterials
	}
	return nil
}
