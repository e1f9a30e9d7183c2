package ui

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"

	"formgrid/internal/config"
	"formgrid/internal/domain"
	"formgrid/internal/eventbus"
	"formgrid/internal/schema"
	"formgrid/internal/store"
	"formgrid/internal/ui/input"
	inputtypes "formgrid/internal/ui/input/types"
	uievents "formgrid/internal/ui/services/events"
	"formgrid/internal/ui/services/formset"
	"formgrid/internal/ui/services/selection"
	"formgrid/internal/ui/state"
	"formgrid/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	store  *store.Store
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width  int
	height int
	help   help.Model
	keys   keyMap

	// Handlers and services
	pager        paginator.Model
	renderer     *views.Renderer
	inputHandler *input.Handler
	sel          *selection.Service
	formDef      schema.FormDef

	// Editor session, nil outside ScreenEdit
	formFields []formset.Field
	formCtrl   *formset.Controller
	focusIndex int

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, st *store.Store, formDef schema.FormDef) *Model {
	appState := state.NewAppState()

	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = cfg.UISettings.PageSize

	m := &Model{
		bus:          bus,
		config:       cfg,
		store:        st,
		state:        appState,
		help:         help.New(),
		keys:         newKeyMap(),
		pager:        p,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		sel:          selection.NewService(uievents.NewBus()),
		formDef:      formDef,
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Init loads the first changelist page
func (m *Model) Init() tea.Cmd {
	m.loadPage()
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.state.ShowHelp = false
				return m, nil
			}
		}

		ctx := &modelContext{m: m}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		return m, tea.Batch(cmds...)

	case EventMsg:
		return m.handleEvent(msg.Event)

	case pagerDoneMsg:
		if msg.err != nil {
			log.Printf("Pager error: %v", msg.err)
			m.state.StatusMessage = fmt.Sprintf("pager: %v", msg.err)
		}
		return m, nil

	case statusClearMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
	}

	return m, nil
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.RecordsChangedEvent:
		m.loadPage()

	case eventbus.ActionAppliedEvent:
		m.state.StatusMessage = fmt.Sprintf("%s: %d records affected", e.Action, e.Affected)
		return m, clearStatusLater()

	case eventbus.RecordSavedEvent:
		m.state.StatusMessage = fmt.Sprintf("Saved product #%d", e.ProductID)
		return m, clearStatusLater()

	case eventbus.ErrorEvent:
		m.state.StatusMessage = e.Message
	}
	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	vs := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Products:      m.state.Products,
		Cursor:        m.state.Cursor,
		SelectAll:     m.sel.SelectAllToggle(),
		Count:         m.sel.Count(),
		Total:         m.state.Total,
		ShowCounter:   m.sel.ShowCounter(),
		AskAcross:     m.sel.AskAcross(),
		Across:        m.sel.Across(),
		FilterQuery:   m.state.FilterQuery,
		IsFiltered:    m.state.IsFiltered,
		InputMode:     m.inputHandler.ModeName(),
		PendingAction: m.state.PendingAction,
		StatusMessage: m.state.StatusMessage,
		ShowHelp:      m.state.ShowHelp,
		HelpView:      m.help.View(m.keys),
	}

	checked := make([]bool, len(m.state.Products))
	marked := make(map[int64]bool, len(m.state.Products))
	for i, p := range m.state.Products {
		checked[i] = m.sel.IsChecked(i)
		if m.sel.IsMarked(p.ID) {
			marked[p.ID] = true
		}
	}
	vs.Checked = checked
	vs.Marked = marked

	if m.state.Total > 0 {
		vs.PageView = fmt.Sprintf("%s  page %d/%d",
			m.pager.View(), m.pager.Page+1, m.pager.TotalPages)
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.TextInput = ti.Value()
	}

	if m.state.Screen == state.ScreenEdit && m.formCtrl != nil {
		vs.IsEditor = true
		if m.state.EditID == 0 {
			vs.EditorTitle = "New product"
		} else {
			vs.EditorTitle = fmt.Sprintf("Edit product #%d", m.state.EditID)
		}
		vs.FormFields = m.formFields
		vs.Blocks = m.formCtrl.Blocks()
		vs.FocusIndex = m.focusIndex
		vs.CanAdd = m.formCtrl.CanAdd()
		vs.ShowRemove = m.formCtrl.ShowRemove()
		vs.AddLabel = m.formCtrl.AddLabel()
		vs.RemoveLabel = m.formCtrl.RemoveLabel()
		vs.BlockClass = m.formCtrl.BlockClass()
	}

	return vs
}

// processAction executes a single input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.PageAction:
		m.changePage(a.Direction)

	case inputtypes.ToggleRowAction:
		m.sel.RowClicked(m.state.Cursor, a.Range)

	case inputtypes.ToggleAllAction:
		m.sel.ToggleAll(!m.sel.SelectAllToggle())

	case inputtypes.ConfirmAcrossAction:
		m.sel.ConfirmAcross()

	case inputtypes.ClearSelectionAction:
		m.sel.ClearAcross()

	case inputtypes.RequestActionAction:
		m.state.PendingAction = a.Name
		scope := domain.ScopeChecked
		if m.sel.Across() {
			scope = domain.ScopeAcrossPages
		}
		m.bus.Publish(eventbus.ActionRequestedEvent{
			Action: a.Name,
			Scope:  scope,
			IDs:    m.sel.CheckedIDs(),
			Filter: m.state.FilterQuery,
		})

	case inputtypes.ApplyActionAction:
		m.applyAction(a.Name)

	case inputtypes.SubmitTextAction:
		m.state.FilterQuery = strings.TrimSpace(a.Text)
		m.state.IsFiltered = m.state.FilterQuery != ""
		m.pager.Page = 0
		m.state.Cursor = 0
		m.loadPage()

	case inputtypes.UpdateTextAction:
		// Text is read back from the input when rendering

	case inputtypes.OpenEditorAction:
		m.openEditor(a.New)

	case inputtypes.CloseEditorAction:
		m.closeEditor()

	case inputtypes.FocusFieldAction:
		m.moveFocus(a.Direction)

	case inputtypes.EditRuneAction:
		if f := m.focusedField(); f != nil && f.Kind == formset.KindText {
			f.Value += string(a.Rune)
		}

	case inputtypes.EditBackspaceAction:
		if f := m.focusedField(); f != nil && f.Kind == formset.KindText {
			f.Value = trimLastRune(f.Value)
		}

	case inputtypes.ToggleFieldAction:
		if f := m.focusedField(); f != nil && f.Kind == formset.KindCheck {
			f.Checked = !f.Checked
		}

	case inputtypes.CycleOptionAction:
		if f := m.focusedField(); f != nil && f.Kind == formset.KindSelect && len(f.Options) > 0 {
			f.Selected = (f.Selected + a.Direction + len(f.Options)) % len(f.Options)
		}

	case inputtypes.AddBlockAction:
		if m.formCtrl != nil {
			if block := m.formCtrl.AddBlock(); block != nil {
				// Focus the first field of the new block
				m.focusIndex = m.fieldCount() - len(block.Fields)
			}
		}

	case inputtypes.RemoveBlockAction:
		m.removeFocusedBlock()

	case inputtypes.SaveRecordAction:
		m.saveRecord()

	case inputtypes.OpenPagerAction:
		return m.openRecordPager()

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

func (m *Model) navigate(direction string) {
	switch direction {
	case "up":
		if m.state.Cursor > 0 {
			m.state.Cursor--
		}
	case "down":
		if m.state.Cursor < len(m.state.Products)-1 {
			m.state.Cursor++
		}
	case "home":
		m.state.Cursor = 0
	case "end":
		m.state.Cursor = len(m.state.Products) - 1
		if m.state.Cursor < 0 {
			m.state.Cursor = 0
		}
	}
}

func (m *Model) changePage(direction string) {
	switch direction {
	case "next":
		if m.pager.Page < m.pager.TotalPages-1 {
			m.pager.NextPage()
			m.state.Cursor = 0
			m.loadPage()
		}
	case "prev":
		if m.pager.Page > 0 {
			m.pager.PrevPage()
			m.state.Cursor = 0
			m.loadPage()
		}
	}
}

// loadPage fetches the current changelist page and re-attaches the selection
// service to its rows. Selection never survives a page change or reload.
func (m *Model) loadPage() {
	filter := m.state.FilterQuery

	total, err := m.store.Count(filter)
	if err != nil {
		m.fail("count records", err)
		return
	}

	m.pager.SetTotalPages(total)
	if m.pager.TotalPages < 1 {
		m.pager.SetTotalPages(1)
	}
	if m.pager.Page >= m.pager.TotalPages {
		m.pager.Page = m.pager.TotalPages - 1
	}

	offset := m.pager.Page * m.pager.PerPage
	products, err := m.store.List(filter, m.pager.PerPage, offset)
	if err != nil {
		m.fail("list records", err)
		return
	}

	m.state.Products = products
	m.state.Total = total
	m.state.ClampCursor()
	m.sel.Attach(m.state.ProductIDs(), total)

	m.bus.Publish(eventbus.RecordsLoadedEvent{Page: domain.Page{
		Products: products,
		Offset:   offset,
		Total:    total,
	}})
}

// applyAction runs a bulk action with the scope the selection service
// reports: the checked subset, or everything matching the filter when the
// across flag was confirmed.
func (m *Model) applyAction(name string) {
	ids := m.sel.CheckedIDs()
	across := m.sel.Across()
	filter := m.state.FilterQuery
	m.state.PendingAction = ""

	var affected int64
	var err error

	switch name {
	case "delete":
		if across {
			affected, err = m.store.DeleteMatching(filter)
		} else {
			affected, err = m.store.DeleteByID(ids)
		}
	case "stock_on":
		if across {
			affected, err = m.store.SetStockMatching(filter, true)
		} else {
			affected, err = m.store.SetStockByID(ids, true)
		}
	case "stock_off":
		if across {
			affected, err = m.store.SetStockMatching(filter, false)
		} else {
			affected, err = m.store.SetStockByID(ids, false)
		}
	default:
		return
	}

	if err != nil {
		m.fail(fmt.Sprintf("apply %s", name), err)
		return
	}

	m.state.StatusMessage = fmt.Sprintf("%s: %d records affected", name, affected)
	m.bus.Publish(eventbus.ActionAppliedEvent{Action: name, Affected: affected})
	m.loadPage()
}

func (m *Model) fail(what string, err error) {
	log.Printf("Error: %s: %v", what, err)
	m.state.StatusMessage = fmt.Sprintf("%s: %v", what, err)
	m.bus.Publish(eventbus.ErrorEvent{Message: m.state.StatusMessage, Err: err})
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

// modelContext implements the input context over the model
type modelContext struct {
	m *Model
}

func (c *modelContext) CurrentIndex() int { return c.m.state.Cursor }

func (c *modelContext) TotalItems() int { return len(c.m.state.Products) }

func (c *modelContext) HasSelection() bool {
	return c.m.sel.Count() > 0 || c.m.sel.Across()
}

func (c *modelContext) SelectedCount() int { return c.m.sel.Count() }

func (c *modelContext) AskAcross() bool { return c.m.sel.AskAcross() }

func (c *modelContext) PendingAction() string { return c.m.state.PendingAction }

func (c *modelContext) CanRemoveBlock() bool {
	return c.m.formCtrl != nil && c.m.formCtrl.ShowRemove()
}

// Editor session management

// productFields builds the main form fields for a product
func productFields(p domain.Product) []formset.Field {
	return []formset.Field{
		{Name: "product-name", Label: "Name", Kind: formset.KindText, Value: p.Name},
		{Name: "product-sku", Label: "SKU", Kind: formset.KindText, Value: p.SKU},
		{Name: "product-price", Label: "Price", Kind: formset.KindText, Value: strconv.FormatFloat(p.Price, 'f', 2, 64)},
		{Name: "product-stock", Label: "Stock", Kind: formset.KindText, Value: strconv.Itoa(p.Stock)},
		{Name: "product-in_stock", Label: "In stock", Kind: formset.KindCheck, Checked: p.InStock},
	}
}

// blockForVariant clones the template into a live block carrying a stored
// variant's values
func (m *Model) blockForVariant(index int, v domain.Variant) *formset.Block {
	template := m.formDef.Template()
	block := &formset.Block{
		ID:     fmt.Sprintf("%s-%d", m.formDef.Prefix, index),
		Fields: make([]formset.Field, len(template.Fields)),
	}
	for i, f := range template.Fields {
		f.Name = formset.Substitute(f.Name, index)
		switch {
		case strings.HasSuffix(f.Name, "-label"):
			f.Value = v.Label
		case strings.HasSuffix(f.Name, "-sku_suffix"):
			f.Value = v.SKUSuffix
		case strings.HasSuffix(f.Name, "-stock"):
			f.Value = strconv.Itoa(v.Stock)
		}
		block.Fields[i] = f
	}
	return block
}

func (m *Model) openEditor(isNew bool) {
	var product domain.Product
	var variants []domain.Variant

	if !isNew {
		current, ok := m.state.CurrentProduct()
		if !ok {
			return
		}
		loaded, err := m.store.GetProduct(current.ID)
		if err != nil {
			m.fail("load record", err)
			return
		}
		product = loaded
		variants, err = m.store.VariantsFor(current.ID)
		if err != nil {
			m.fail("load variants", err)
			return
		}
	}

	blocks := make([]*formset.Block, len(variants))
	for i, v := range variants {
		blocks[i] = m.blockForVariant(i, v)
	}

	// The editor gets its own service bus so listeners don't pile up
	// across sessions
	bus := uievents.NewBus()
	m.formCtrl = formset.NewController(
		m.formDef.Prefix,
		blocks,
		m.formDef.Template(),
		formset.Management{TotalForms: len(blocks), InitialForms: len(blocks)},
		formset.Options{
			AddLabel:    "Add another variant",
			RemoveLabel: "Remove variant",
			AddedListener: func(b *formset.Block) {
				log.Printf("Editor: block %s added", b.ID)
			},
			RemovedListener: func(b *formset.Block) {
				log.Printf("Editor: block %s removed", b.ID)
			},
		},
		bus,
	)
	m.formCtrl.Init(m.state.HasErrors)

	m.formFields = productFields(product)
	m.focusIndex = 0
	m.state.EditID = product.ID
	m.state.Screen = state.ScreenEdit
	m.inputHandler.ChangeMode(inputtypes.ModeEditor, &modelContext{m: m})
}

func (m *Model) closeEditor() {
	m.state.Screen = state.ScreenList
	m.state.EditID = 0
	m.state.HasErrors = false
	m.formCtrl = nil
	m.formFields = nil
	m.focusIndex = 0
}

// fieldCount returns the number of focusable fields in the editor
func (m *Model) fieldCount() int {
	count := len(m.formFields)
	if m.formCtrl != nil {
		for _, block := range m.formCtrl.Blocks() {
			count += len(block.Fields)
		}
	}
	return count
}

// focusedField returns the field at the focus index, first across the
// product form, then block by block
// trimLastRune drops the final rune of s, not the final byte, so
// backspace never leaves a broken multibyte sequence behind.
func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

func (m *Model) focusedField() *formset.Field {
	idx := m.focusIndex
	if idx < len(m.formFields) {
		return &m.formFields[idx]
	}
	idx -= len(m.formFields)
	if m.formCtrl == nil {
		return nil
	}
	for _, block := range m.formCtrl.Blocks() {
		if idx < len(block.Fields) {
			return &block.Fields[idx]
		}
		idx -= len(block.Fields)
	}
	return nil
}

// focusedBlock returns the position of the block holding the focus, or -1
// when the focus is on the product form
func (m *Model) focusedBlock() int {
	idx := m.focusIndex - len(m.formFields)
	if idx < 0 || m.formCtrl == nil {
		return -1
	}
	for i, block := range m.formCtrl.Blocks() {
		if idx < len(block.Fields) {
			return i
		}
		idx -= len(block.Fields)
	}
	return -1
}

func (m *Model) moveFocus(direction string) {
	count := m.fieldCount()
	if count == 0 {
		return
	}
	switch direction {
	case "next":
		m.focusIndex = (m.focusIndex + 1) % count
	case "prev":
		m.focusIndex = (m.focusIndex - 1 + count) % count
	}
}

func (m *Model) removeFocusedBlock() {
	if m.formCtrl == nil {
		return
	}
	i := m.focusedBlock()
	if i < 0 {
		return
	}
	m.formCtrl.RemoveBlock(i)
	if m.focusIndex >= m.fieldCount() {
		m.focusIndex = m.fieldCount() - 1
		if m.focusIndex < 0 {
			m.focusIndex = 0
		}
	}
}

// saveRecord reads the form back into domain records and persists them.
// Variant rows are written in block order, positions 0..n-1.
func (m *Model) saveRecord() {
	if m.formCtrl == nil {
		return
	}

	product := domain.Product{ID: m.state.EditID}
	for _, f := range m.formFields {
		switch f.Name {
		case "product-name":
			product.Name = f.Value
		case "product-sku":
			product.SKU = f.Value
		case "product-price":
			product.Price, _ = strconv.ParseFloat(f.Value, 64)
		case "product-stock":
			product.Stock, _ = strconv.Atoi(f.Value)
		case "product-in_stock":
			product.InStock = f.Checked
		}
	}

	blocks := m.formCtrl.Blocks()
	variants := make([]domain.Variant, 0, len(blocks))
	for i, block := range blocks {
		v := domain.Variant{Position: i}
		for _, f := range block.Fields {
			switch {
			case strings.HasSuffix(f.Name, "-label"):
				v.Label = f.Value
			case strings.HasSuffix(f.Name, "-sku_suffix"):
				v.SKUSuffix = f.Value
			case strings.HasSuffix(f.Name, "-stock"):
				v.Stock, _ = strconv.Atoi(f.Value)
			}
		}
		variants = append(variants, v)
	}

	id, err := m.store.SaveProduct(product, variants)
	if err != nil {
		m.fail("save record", err)
		return
	}

	m.bus.Publish(eventbus.RecordSavedEvent{ProductID: id})
	m.state.StatusMessage = fmt.Sprintf("Saved product #%d", id)
	m.closeEditor()
	m.inputHandler.ChangeMode(inputtypes.ModeNormal, &modelContext{m: m})
	m.loadPage()
}
