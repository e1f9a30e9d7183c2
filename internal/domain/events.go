package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventRecordsLoaded   EventType = "RecordsLoaded"
	EventRecordsChanged  EventType = "RecordsChanged"
	EventActionRequested EventType = "ActionRequested"
	EventActionApplied   EventType = "ActionApplied"
	EventRecordSaved     EventType = "RecordSaved"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// RecordsLoadedEvent is emitted when a changelist page has been loaded
type RecordsLoadedEvent struct {
	Page Page
}

func (e RecordsLoadedEvent) Type() EventType { return EventRecordsLoaded }

// RecordsChangedEvent is emitted when stored records were mutated and
// the current page should be reloaded
type RecordsChangedEvent struct{}

func (e RecordsChangedEvent) Type() EventType { return EventRecordsChanged }

// ActionScope describes which records a bulk action applies to
type ActionScope int

const (
	// ScopeChecked applies the action to the explicitly checked rows only
	ScopeChecked ActionScope = iota
	// ScopeAcrossPages applies the action to every record matching the
	// current filter, not just the visible page
	ScopeAcrossPages
)

// ActionRequestedEvent is emitted when a bulk action should run
type ActionRequestedEvent struct {
	Action string // "delete", "stock_on", "stock_off"
	Scope  ActionScope
	IDs    []int64 // checked row IDs, used when Scope == ScopeChecked
	Filter string  // current filter, used when Scope == ScopeAcrossPages
}

func (e ActionRequestedEvent) Type() EventType { return EventActionRequested }

// ActionAppliedEvent is emitted after a bulk action has run
type ActionAppliedEvent struct {
	Action   string
	Affected int64
}

func (e ActionAppliedEvent) Type() EventType { return EventActionApplied }

// RecordSavedEvent is emitted when the editor has saved a product
type RecordSavedEvent struct {
	ProductID int64
}

func (e RecordSavedEvent) Type() EventType { return EventRecordSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	DBPath   string
	PageSize int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
