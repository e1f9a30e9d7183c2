package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"formgrid/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		if ctx.HasSelection() {
			return []types.Action{types.ClearSelectionAction{}}, true
		}
		return nil, false

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.PageAction{Direction: "prev"}}, true

	case tea.KeyRight:
		return []types.Action{types.PageAction{Direction: "next"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeySpace:
		return []types.Action{types.ToggleRowAction{}}, true

	case tea.KeyEnter:
		return []types.Action{types.OpenEditorAction{}}, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case "h", "[":
		return []types.Action{types.PageAction{Direction: "prev"}}, true
	case "l", "]":
		return []types.Action{types.PageAction{Direction: "next"}}, true
	case "v":
		// Range toggle: the shift-click analogue
		return []types.Action{types.ToggleRowAction{Range: true}}, true
	case "a":
		return []types.Action{types.ToggleAllAction{}}, true
	case "y":
		if ctx.AskAcross() {
			return []types.Action{types.ConfirmAcrossAction{}}, true
		}
		return nil, false
	case "n":
		return []types.Action{types.OpenEditorAction{New: true}}, true
	case "d":
		if ctx.HasSelection() {
			return []types.Action{
				types.RequestActionAction{Name: "delete"},
				types.ChangeModeAction{Mode: types.ModeConfirm, Data: "delete"},
			}, true
		}
		return nil, false
	case "s":
		if ctx.HasSelection() {
			return []types.Action{types.ApplyActionAction{Name: "stock_on"}}, true
		}
		return nil, false
	case "S":
		if ctx.HasSelection() {
			return []types.Action{types.ApplyActionAction{Name: "stock_off"}}, true
		}
		return nil, false
	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter}}, true
	case "o":
		return []types.Action{types.OpenPagerAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
