package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"formgrid/internal/ui/input/types"
)

// EditorMode handles keys while the record editor is open. Typing edits the
// focused field directly, so most keys turn into edit actions rather than
// commands.
type EditorMode struct{}

func NewEditorMode() *EditorMode {
	return &EditorMode{}
}

func (m *EditorMode) Name() string {
	return "editor"
}

func (m *EditorMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *EditorMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *EditorMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		return []types.Action{
			types.CloseEditorAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case tea.KeyCtrlS:
		return []types.Action{types.SaveRecordAction{}}, true

	case tea.KeyTab, tea.KeyDown:
		return []types.Action{types.FocusFieldAction{Direction: "next"}}, true

	case tea.KeyShiftTab, tea.KeyUp:
		return []types.Action{types.FocusFieldAction{Direction: "prev"}}, true

	case tea.KeyLeft:
		return []types.Action{types.CycleOptionAction{Direction: -1}}, true

	case tea.KeyRight:
		return []types.Action{types.CycleOptionAction{Direction: 1}}, true

	case tea.KeySpace:
		return []types.Action{types.ToggleFieldAction{}}, true

	case tea.KeyBackspace:
		return []types.Action{types.EditBackspaceAction{}}, true

	case tea.KeyCtrlN:
		return []types.Action{types.AddBlockAction{}}, true

	case tea.KeyCtrlD:
		if ctx.CanRemoveBlock() {
			return []types.Action{types.RemoveBlockAction{}}, true
		}
		return nil, true

	case tea.KeyRunes:
		actions := make([]types.Action, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			actions = append(actions, types.EditRuneAction{Rune: r})
		}
		return actions, true
	}

	return nil, false
}
