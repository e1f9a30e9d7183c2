package state

import (
	"formgrid/internal/domain"
)

// Screen identifies which top-level view is active
type Screen int

const (
	ScreenList Screen = iota
	ScreenEdit
)

// AppState contains all the application state
type AppState struct {
	Screen Screen

	// Changelist data
	Products []domain.Product // current page, in display order
	Total    int              // records matching the filter across all pages
	Cursor   int              // row index on the current page

	// Search and filter state
	FilterQuery string
	IsFiltered  bool

	// Editor state
	EditID    int64 // 0 when creating a new record
	HasErrors bool  // editor redisplayed with validation errors

	// UI state
	StatusMessage string
	ShowHelp      bool
	PendingAction string // bulk action awaiting confirmation
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// ProductIDs returns the IDs of the current page's rows in display order
func (s *AppState) ProductIDs() []int64 {
	ids := make([]int64, len(s.Products))
	for i, p := range s.Products {
		ids[i] = p.ID
	}
	return ids
}

// ClampCursor keeps the cursor inside the current page
func (s *AppState) ClampCursor() {
	if s.Cursor >= len(s.Products) {
		s.Cursor = len(s.Products) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// CurrentProduct returns the product under the cursor
func (s *AppState) CurrentProduct() (domain.Product, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Products) {
		return domain.Product{}, false
	}
	return s.Products[s.Cursor], true
}
