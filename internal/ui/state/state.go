// Package state holds the storefront's UI state as immutable snapshots.
// Every transition returns a new value; nothing here performs I/O.
package state

import (
	"luxegems/internal/domain"
)

// Phase is the presentation selected for the item area
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseEmpty
	PhasePopulated
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseEmpty:
		return "empty"
	case PhasePopulated:
		return "populated"
	}
	return "unknown"
}

// FetchState tracks the listing and the request that owns it.
// Seq is the sequence number of the most recently issued request; only
// a result carrying that number is applied.
type FetchState struct {
	Loading bool
	Items   []domain.Item
	Total   int
	HasMore bool
	Seq     uint64
	// Loaded is true once any request has been applied
	Loaded bool
}

// Begin marks a new request as outstanding and returns its sequence number.
// Loading is set even when earlier requests are still in flight.
func (f FetchState) Begin() (FetchState, uint64) {
	f.Seq++
	f.Loading = true
	return f, f.Seq
}

// Succeed applies a listing for request seq. The items replace the current
// list verbatim. A result for a superseded request is discarded and
// reported as not applied.
func (f FetchState) Succeed(seq uint64, page domain.ItemsPage) (FetchState, bool) {
	if seq != f.Seq {
		return f, false
	}
	f.Items = page.Items
	f.Total = page.Total
	f.HasMore = page.HasMore
	f.Loading = false
	f.Loaded = true
	return f, true
}

// Fail settles request seq without touching the displayed list
func (f FetchState) Fail(seq uint64) (FetchState, bool) {
	if seq != f.Seq {
		return f, false
	}
	f.Loading = false
	return f, true
}

// Phase selects loading, empty or populated
func (f FetchState) Phase() Phase {
	switch {
	case f.Loading:
		return PhaseLoading
	case len(f.Items) == 0:
		return PhaseEmpty
	default:
		return PhasePopulated
	}
}

// AppState is the storefront snapshot rendered by the views
type AppState struct {
	Filters       domain.FilterState
	Fetch         FetchState
	SelectedIndex int
	StatusMessage string
}

// NewAppState returns the state at program start: no filters, loading
// until the initial fetch settles.
func NewAppState() AppState {
	return AppState{Fetch: FetchState{Loading: true}}
}

// SetFilter replaces one filter dimension. changed is false when the
// value is already in effect.
func (s AppState) SetFilter(field domain.FilterField, value string) (next AppState, changed bool) {
	next = s
	next.Filters = s.Filters.SetFilter(field, value)
	return next, next.Filters != s.Filters
}

// ReplaceFilters swaps the whole snapshot
func (s AppState) ReplaceFilters(filters domain.FilterState) (next AppState, changed bool) {
	next = s
	next.Filters = filters
	return next, filters != s.Filters
}

// WithFetch installs a new fetch snapshot and keeps the cursor in range
func (s AppState) WithFetch(f FetchState) AppState {
	s.Fetch = f
	s.SelectedIndex = clamp(s.SelectedIndex, len(f.Items))
	return s
}

// WithStatus sets the status line
func (s AppState) WithStatus(msg string) AppState {
	s.StatusMessage = msg
	return s
}

// Move shifts the grid cursor by delta, clamped to the list
func (s AppState) Move(delta int) AppState {
	s.SelectedIndex = clamp(s.SelectedIndex+delta, len(s.Fetch.Items))
	return s
}

// MoveTo places the grid cursor at index, clamped to the list
func (s AppState) MoveTo(index int) AppState {
	s.SelectedIndex = clamp(index, len(s.Fetch.Items))
	return s
}

// SelectedItem returns the item under the cursor
func (s AppState) SelectedItem() (domain.Item, bool) {
	if s.Fetch.Phase() != PhasePopulated || s.SelectedIndex >= len(s.Fetch.Items) {
		return domain.Item{}, false
	}
	return s.Fetch.Items[s.SelectedIndex], true
}

// FindItem looks an item up by id in the current listing
func (s AppState) FindItem(id string) (domain.Item, bool) {
	for _, item := range s.Fetch.Items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.Item{}, false
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
