package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"formgrid/internal/domain"
	"formgrid/internal/ui/services/formset"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	// Changelist
	Products    []domain.Product
	Cursor      int
	Checked     []bool
	Marked      map[int64]bool
	SelectAll   bool
	Count       int
	Total       int
	ShowCounter bool
	AskAcross   bool
	Across      bool
	PageView    string
	FilterQuery string
	IsFiltered  bool

	// Input
	InputMode     string
	TextInput     string
	PendingAction string

	// Editor
	IsEditor    bool
	EditorTitle string
	FormFields  []formset.Field
	Blocks      []*formset.Block
	FocusIndex  int
	CanAdd      bool
	ShowRemove  bool
	AddLabel    string
	RemoveLabel string
	BlockClass  string

	StatusMessage string
	ShowHelp      bool
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("formgrid"))
	content.WriteString("\n")

	if state.IsEditor {
		content.WriteString(r.renderEditor(state))
	} else {
		content.WriteString(r.renderChangelist(state))
	}

	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
	}

	if state.ShowHelp {
		content.WriteString("\n")
		content.WriteString(r.renderHelp(state))
	} else if state.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderChangelist(state ViewState) string {
	b := &strings.Builder{}

	// Filter line
	if state.InputMode == "filter" {
		b.WriteString(r.styles.Filter.Render("Filter: " + state.TextInput + "▌"))
		b.WriteString("\n\n")
	} else if state.IsFiltered {
		b.WriteString(r.styles.Filter.Render(fmt.Sprintf("Filter: %q (%d matching)", state.FilterQuery, state.Total)))
		b.WriteString("\n\n")
	}

	// Header row with the select-all toggle
	toggle := "[ ]"
	if state.SelectAll {
		toggle = "[x]"
	}
	header := fmt.Sprintf("  %s %-24s %-10s %8s %6s  %s", toggle, "NAME", "SKU", "PRICE", "STOCK", "STATUS")
	b.WriteString(r.styles.Dim.Render(header))
	b.WriteString("\n")

	if len(state.Products) == 0 {
		b.WriteString(r.styles.Dim.Render("  no records"))
		b.WriteString("\n")
	}

	for i, p := range state.Products {
		cursor := "  "
		if i == state.Cursor {
			cursor = "▶ "
		}

		checkbox := "[ ]"
		if i < len(state.Checked) && state.Checked[i] {
			checkbox = "[x]"
		}

		status := r.styles.InStock.Render("in stock")
		if !p.InStock {
			status = r.styles.OutOfStock.Render("out of stock")
		}

		line := fmt.Sprintf("%s%s %-24s %-10s %8.2f %6d  %s",
			cursor, checkbox, truncate(p.Name, 24), truncate(p.SKU, 10), p.Price, p.Stock, status)

		if state.Marked[p.ID] {
			line = r.styles.SelectionBg.Render(line)
		}
		if i == state.Cursor {
			line = r.styles.Highlight.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")

	// Selection counter, across question and banner
	if state.Across {
		b.WriteString(r.styles.Banner.Render(
			fmt.Sprintf("All %d selected across all pages", state.Total)))
		b.WriteString(r.styles.Dim.Render("  esc clears"))
		b.WriteString("\n")
	} else if state.ShowCounter {
		b.WriteString(r.styles.Counter.Render(
			fmt.Sprintf("%d of %d selected", state.Count, len(state.Products))))
		b.WriteString("\n")
	}

	if state.AskAcross {
		b.WriteString(r.styles.Question.Render(
			fmt.Sprintf("All %d on this page selected. Select all %d matching? (y)",
				len(state.Products), state.Total)))
		b.WriteString("\n")
	}

	if state.InputMode == "confirm" {
		b.WriteString(r.styles.Confirm.Render(
			fmt.Sprintf("Apply %q to the selection? (y/n)", state.PendingAction)))
		b.WriteString("\n")
	}

	if state.PageView != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Faint(true).Render(state.PageView))
	}

	return b.String()
}

func (r *Renderer) renderEditor(state ViewState) string {
	b := &strings.Builder{}

	b.WriteString(r.styles.BlockHeader.Render(state.EditorTitle))
	b.WriteString("\n\n")

	focus := 0

	for _, f := range state.FormFields {
		b.WriteString(r.renderField(f, focus == state.FocusIndex))
		b.WriteString("\n")
		focus++
	}

	b.WriteString("\n")
	b.WriteString(r.styles.BlockHeader.Render("Variants"))
	b.WriteString(" ")
	b.WriteString(r.styles.Dim.Render("(" + state.BlockClass + ")"))
	b.WriteString("\n")

	for i, block := range state.Blocks {
		focused := false
		b.WriteString(r.styles.Dim.Render(fmt.Sprintf("── #%d ", i)))
		b.WriteString("\n")
		for _, f := range block.Fields {
			isFocus := focus == state.FocusIndex
			focused = focused || isFocus
			b.WriteString(r.renderField(f, isFocus))
			b.WriteString("\n")
			focus++
		}
		if focused && state.ShowRemove {
			b.WriteString(r.styles.Affordance.Render("   " + state.RemoveLabel + " (ctrl+d)"))
			b.WriteString("\n")
		}
	}

	if state.CanAdd {
		b.WriteString(r.styles.Affordance.Render("+ " + state.AddLabel + " (ctrl+n)"))
		b.WriteString("\n")
	}

	return b.String()
}

func (r *Renderer) renderField(f formset.Field, focused bool) string {
	label := r.styles.FieldLabel.Render(fmt.Sprintf("  %-12s", f.Label+":"))

	var value string
	switch f.Kind {
	case formset.KindCheck:
		if f.Checked {
			value = "[x]"
		} else {
			value = "[ ]"
		}
	case formset.KindSelect:
		if len(f.Options) > 0 {
			idx := f.Selected
			if idx < 0 || idx >= len(f.Options) {
				idx = 0
			}
			value = "◂ " + f.Options[idx] + " ▸"
		}
	default:
		value = f.Value
		if focused {
			value += "▌"
		}
	}

	if focused {
		return label + " " + r.styles.FieldFocus.Render(value)
	}
	return label + " " + value
}

func (r *Renderer) renderHelp(state ViewState) string {
	b := &strings.Builder{}
	section := r.styles.BlockHeader

	if state.IsEditor {
		b.WriteString(section.Render("Editor"))
		b.WriteString("\n")
		b.WriteString("  tab/shift+tab  next/previous field\n")
		b.WriteString("  space          toggle checkbox field\n")
		b.WriteString("  ←/→            cycle select field\n")
		b.WriteString("  ctrl+n         add another block\n")
		b.WriteString("  ctrl+d         remove focused block\n")
		b.WriteString("  ctrl+s         save\n")
		b.WriteString("  esc            cancel")
		return r.styles.Help.Render(b.String())
	}

	b.WriteString(section.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString("  ↑/↓, j/k   move cursor\n")
	b.WriteString("  ←/→, [ ]   previous/next page\n")
	b.WriteString("  g/G        first/last row\n")
	b.WriteString(section.Render("Selection"))
	b.WriteString("\n")
	b.WriteString("  space      toggle row\n")
	b.WriteString("  v          toggle range from last toggled row\n")
	b.WriteString("  a          toggle all on page\n")
	b.WriteString("  y          select all matching across pages (when offered)\n")
	b.WriteString("  esc        clear selection\n")
	b.WriteString(section.Render("Actions"))
	b.WriteString("\n")
	b.WriteString("  d          delete selection\n")
	b.WriteString("  s/S        mark selection in/out of stock\n")
	b.WriteString("  enter      edit row\n")
	b.WriteString("  n          new record\n")
	b.WriteString("  o          view raw record\n")
	b.WriteString("  /          filter\n")
	b.WriteString("  q          quit")

	return r.styles.Help.Render(b.String())
}

// truncate shortens s to max runes, ending with an ellipsis. Counting
// runes instead of bytes keeps multibyte names from being cut mid-sequence.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}
