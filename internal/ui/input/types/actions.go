package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type PageAction struct {
	Direction string // "next", "prev"
}

func (a PageAction) Type() string { return "page" }

// Selection actions
type ToggleRowAction struct {
	Range bool // apply the toggle across the range from the last clicked row
}

func (a ToggleRowAction) Type() string { return "toggle_row" }

type ToggleAllAction struct{}

func (a ToggleAllAction) Type() string { return "toggle_all" }

type ConfirmAcrossAction struct{}

func (a ConfirmAcrossAction) Type() string { return "confirm_across" }

type ClearSelectionAction struct{}

func (a ClearSelectionAction) Type() string { return "clear_selection" }

// Bulk actions
type RequestActionAction struct {
	Name string // "delete", "stock_on", "stock_off"
}

func (a RequestActionAction) Type() string { return "request_action" }

type ApplyActionAction struct {
	Name string
}

func (a ApplyActionAction) Type() string { return "apply_action" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // optional payload, e.g. the pending action name
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
}

func (a SubmitTextAction) Type() string { return "submit_text" }

// Editor actions
type OpenEditorAction struct {
	New bool
}

func (a OpenEditorAction) Type() string { return "open_editor" }

type CloseEditorAction struct{}

func (a CloseEditorAction) Type() string { return "close_editor" }

type FocusFieldAction struct {
	Direction string // "next", "prev"
}

func (a FocusFieldAction) Type() string { return "focus_field" }

type EditRuneAction struct {
	Rune rune
}

func (a EditRuneAction) Type() string { return "edit_rune" }

type EditBackspaceAction struct{}

func (a EditBackspaceAction) Type() string { return "edit_backspace" }

type ToggleFieldAction struct{}

func (a ToggleFieldAction) Type() string { return "toggle_field" }

type CycleOptionAction struct {
	Direction int // +1 or -1
}

func (a CycleOptionAction) Type() string { return "cycle_option" }

type AddBlockAction struct{}

func (a AddBlockAction) Type() string { return "add_block" }

type RemoveBlockAction struct{}

func (a RemoveBlockAction) Type() string { return "remove_block" }

type SaveRecordAction struct{}

func (a SaveRecordAction) Type() string { return "save_record" }

// Other actions
type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
