package selection

import (
	"formgrid/internal/ui/services/events"
)

// Service handles row selection logic for the changelist
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new selection service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			LastClicked: -1,
			ShowCounter: true,
			Marked:      make(map[int64]bool),
		},
		bus: bus,
	}
}

// Attach installs the row set for the current page. Row order is fixed from
// here on; range selection operates on positions in this slice, never on a
// live re-query. Total is the number of records matching the current filter
// across all pages.
func (s *Service) Attach(ids []int64, total int) {
	rows := make([]Row, len(ids))
	for i, id := range ids {
		rows[i] = Row{ID: id}
	}
	s.state = &State{
		Rows:        rows,
		Scope:       ScopeNone,
		LastClicked: -1,
		ShowCounter: true,
		Marked:      make(map[int64]bool),
		Total:       total,
	}
}

// ToggleAll sets every row's checked state at once, like the header toggle.
// Checking everything offers the upgrade to an across-pages selection;
// unchecking resets to no selection.
func (s *Service) ToggleAll(checked bool) {
	var added []int64
	for i := range s.state.Rows {
		row := &s.state.Rows[i]
		if row.Checked == checked {
			continue
		}
		row.Checked = checked
		if checked {
			added = append(added, row.ID)
		}
	}
	s.state.SelectAll = checked

	if checked && len(s.state.Rows) > 0 {
		s.state.Scope = ScopePage
		s.state.AskAcross = true
		s.syncMarks()
		s.bus.Publish(ChangedEvent{Added: added, Count: s.Count()})
		return
	}

	s.state.Scope = ScopeNone
	s.state.Across = false
	s.state.AskAcross = false
	s.state.ShowCounter = true
	s.syncMarks()
	s.bus.Publish(ClearedEvent{})
}

// RowClicked toggles the row at index i. With shift held and a prior click
// on a different row, the new checked value is applied to every row between
// the two positions inclusive, in either direction.
func (s *Service) RowClicked(i int, shift bool) {
	if i < 0 || i >= len(s.state.Rows) {
		return
	}

	s.state.Rows[i].Checked = !s.state.Rows[i].Checked
	value := s.state.Rows[i].Checked

	if shift && s.state.LastClicked >= 0 && s.state.LastClicked < len(s.state.Rows) && s.state.LastClicked != i {
		start, end := s.state.LastClicked, i
		if start > end {
			start, end = end, start
		}
		for j := start; j <= end; j++ {
			s.state.Rows[j].Checked = value
		}
	}

	s.state.LastClicked = i
	s.Recount()
}

// ConfirmAcross upgrades the selection to every record matching the current
// filter. The counter is hidden in favor of the across banner.
func (s *Service) ConfirmAcross() {
	s.state.Across = true
	s.state.Scope = ScopeAllAcross
	s.state.AskAcross = false
	s.state.ShowCounter = false
	s.state.SelectAll = true
	for i := range s.state.Rows {
		s.state.Rows[i].Checked = true
	}
	s.syncMarks()
	s.bus.Publish(AllAcrossEvent{Total: s.state.Total})
}

// ClearAcross reverses ConfirmAcross: drops the across flag, unchecks the
// header toggle and every row, and restores the counter.
func (s *Service) ClearAcross() {
	s.state.Across = false
	s.state.AskAcross = false
	s.state.SelectAll = false
	s.state.ShowCounter = true
	s.state.Scope = ScopeNone
	for i := range s.state.Rows {
		s.state.Rows[i].Checked = false
	}
	s.syncMarks()
	s.bus.Publish(ClearedEvent{})
}

// Recount recomputes the counter and scope from the actual checked rows.
// Any manual change drops an across-pages assertion.
func (s *Service) Recount() {
	count := s.Count()

	if count == len(s.state.Rows) && count > 0 {
		s.state.SelectAll = true
		s.state.AskAcross = true
	} else {
		s.state.SelectAll = false
		s.state.AskAcross = false
		s.state.Across = false
		s.state.ShowCounter = true
	}

	if count == 0 {
		s.state.Scope = ScopeNone
	} else {
		s.state.Scope = ScopePage
	}

	s.syncMarks()
	s.bus.Publish(ChangedEvent{Count: count})
}

// syncMarks applies the selected visual mark to checked rows. Marking is a
// set membership operation: re-adding or re-removing is a no-op.
func (s *Service) syncMarks() {
	for _, row := range s.state.Rows {
		if row.Checked {
			s.Mark(row.ID)
		} else {
			s.Unmark(row.ID)
		}
	}
}

// Mark adds the selected visual mark to a row. Idempotent.
func (s *Service) Mark(id int64) {
	s.state.Marked[id] = true
}

// Unmark removes the selected visual mark from a row. Idempotent.
func (s *Service) Unmark(id int64) {
	delete(s.state.Marked, id)
}

// IsMarked reports whether a row carries the selected visual mark
func (s *Service) IsMarked(id int64) bool {
	return s.state.Marked[id]
}

// Count returns the number of checked rows on the page
func (s *Service) Count() int {
	count := 0
	for _, row := range s.state.Rows {
		if row.Checked {
			count++
		}
	}
	return count
}

// Scope returns the current selection scope
func (s *Service) Scope() Scope {
	return s.state.Scope
}

// Across reports whether the selection applies to every matching record
func (s *Service) Across() bool {
	return s.state.Across
}

// AskAcross reports whether the across-pages question should be shown
func (s *Service) AskAcross() bool {
	return s.state.AskAcross && !s.state.Across
}

// ShowCounter reports whether the selection counter should be shown
func (s *Service) ShowCounter() bool {
	return s.state.ShowCounter
}

// SelectAllToggle reports the state of the header select-all toggle
func (s *Service) SelectAllToggle() bool {
	return s.state.SelectAll
}

// IsChecked reports whether the row at index i is checked
func (s *Service) IsChecked(i int) bool {
	if i < 0 || i >= len(s.state.Rows) {
		return false
	}
	return s.state.Rows[i].Checked
}

// CheckedIDs returns the IDs of checked rows in page order
func (s *Service) CheckedIDs() []int64 {
	var ids []int64
	for _, row := range s.state.Rows {
		if row.Checked {
			ids = append(ids, row.ID)
		}
	}
	return ids
}

// Total returns the number of records matching the filter across all pages
func (s *Service) Total() int {
	return s.state.Total
}

// Len returns the number of rows on the attached page
func (s *Service) Len() int {
	return len(s.state.Rows)
}
