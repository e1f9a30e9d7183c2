package selection

// Scope is the semantic extent of the current selection
type Scope int

const (
	// ScopeNone means nothing is selected
	ScopeNone Scope = iota
	// ScopePage means the selection covers checked rows on the visible page
	ScopePage
	// ScopeAllAcross means the user asserted the selection covers every
	// record matching the current filter, not just the visible page
	ScopeAllAcross
)

func (s Scope) String() string {
	switch s {
	case ScopePage:
		return "page"
	case ScopeAllAcross:
		return "all"
	default:
		return "none"
	}
}

// Row is one selectable record on the current page
type Row struct {
	ID      int64
	Checked bool
}

// State holds selection state for one attached page
type State struct {
	Rows        []Row
	Scope       Scope
	LastClicked int // index of the last directly toggled row, for range selection
	Across      bool
	AskAcross   bool // whether the "select all across pages?" question is offered
	ShowCounter bool
	SelectAll   bool // header toggle state
	Marked      map[int64]bool // rows carrying the selected visual mark
	Total       int // records matching the current filter across all pages
}

// Event types
type ChangedEvent struct {
	Added   []int64
	Removed []int64
	Count   int
}

type ClearedEvent struct{}

type AllAcrossEvent struct {
	Total int
}
