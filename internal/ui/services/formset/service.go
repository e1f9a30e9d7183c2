package formset

import (
	"github.com/google/uuid"

	"formgrid/internal/ui/services/events"
)

// Controller maintains the ordered collection of live form blocks for one
// prefix, plus the immutable template block they are cloned from. Indices
// embedded in field names are kept contiguous (0..n-1) across every
// insertion and removal, and the management counters always mirror the live
// block count.
//
// Calling AddBlock or RemoveBlock from inside an added/removed listener is
// not supported.
type Controller struct {
	prefix     string
	blocks     []*Block
	template   *Block
	management Management
	opts       Options
	bus        events.EventBus
	wired      bool
}

// NewController creates a formset controller for the given prefix. A nil
// template leaves the add affordance unwired: AddBlock becomes a no-op, the
// same skip-if-absent policy applied everywhere else.
func NewController(prefix string, blocks []*Block, template *Block, management Management, opts Options, bus events.EventBus) *Controller {
	if bus == nil {
		bus = &events.NullBus{}
	}
	if opts.MinBlocks == 0 {
		opts.MinBlocks = 1
	}

	c := &Controller{
		prefix:     prefix,
		blocks:     blocks,
		template:   template,
		management: management,
		opts:       opts,
		bus:        bus,
		wired:      template != nil,
	}

	if opts.AddedListener != nil {
		bus.Subscribe(events.TypeName(BlockAddedEvent{}), func(e interface{}) {
			if event, ok := e.(BlockAddedEvent); ok {
				opts.AddedListener(event.Block)
			}
		})
	}
	if opts.RemovedListener != nil {
		bus.Subscribe(events.TypeName(BlockRemovedEvent{}), func(e interface{}) {
			if event, ok := e.(BlockRemovedEvent); ok {
				opts.RemovedListener(event.Block)
			}
		})
	}

	return c
}

// Init trims any blocks beyond the server-declared initial count and resets
// the total counter to match, so the visible set reflects stored data.
// When the form is redisplayed with validation errors the extra blocks are
// the user's own unsaved input and must survive, so trimming is skipped.
func (c *Controller) Init(hasErrors bool) {
	if hasErrors {
		return
	}
	if len(c.blocks) > c.management.InitialForms {
		c.blocks = c.blocks[:c.management.InitialForms]
	}
	c.management.TotalForms = c.management.InitialForms
	c.renumber()
}

// AddBlock clones the template, substitutes the placeholder with the current
// total count, blanks every field, and inserts the block immediately before
// the template so the template stays the last sibling. Returns the new block,
// or nil when no template was wired.
func (c *Controller) AddBlock() *Block {
	if !c.wired {
		return nil
	}

	index := c.management.TotalForms
	block := &Block{
		ID:     uuid.NewString(),
		Fields: make([]Field, len(c.template.Fields)),
	}
	for i, f := range c.template.Fields {
		f.Name = Substitute(f.Name, index)
		// New fields start blank regardless of template content
		f.Value = ""
		f.Checked = false
		f.Selected = 0
		block.Fields[i] = f
	}

	c.blocks = append(c.blocks, block)
	c.management.TotalForms++
	c.bus.Publish(BlockAddedEvent{Block: block})
	return block
}

// RemoveBlock detaches the block at position i and renumbers the remainder
// so indices are exactly 0..len-1 again
func (c *Controller) RemoveBlock(i int) {
	if i < 0 || i >= len(c.blocks) {
		return
	}

	block := c.blocks[i]
	c.bus.Publish(BlockRemovedEvent{Block: block})

	c.blocks = append(c.blocks[:i], c.blocks[i+1:]...)
	c.management.TotalForms = len(c.blocks)
	c.renumber()
}

// renumber rewrites every field identifier so block j carries index j
func (c *Controller) renumber() {
	for j, block := range c.blocks {
		for k := range block.Fields {
			block.Fields[k].Name = Renumber(block.Fields[k].Name, c.prefix, j)
		}
	}
}

// Blocks returns the live blocks in order, excluding the template
func (c *Controller) Blocks() []*Block {
	return c.blocks
}

// Siblings returns the full sibling order: live blocks followed by the
// template, which is always last
func (c *Controller) Siblings() []*Block {
	if c.template == nil {
		return c.blocks
	}
	return append(append([]*Block{}, c.blocks...), c.template)
}

// Management returns the current counter values
func (c *Controller) Management() Management {
	return c.management
}

// Prefix returns the formset prefix
func (c *Controller) Prefix() string {
	return c.prefix
}

// CanAdd reports whether the add affordance is wired
func (c *Controller) CanAdd() bool {
	return c.wired
}

// ShowRemove reports whether the remove affordance should be visible.
// Formsets are expected to keep a minimum number of blocks on screen.
func (c *Controller) ShowRemove() bool {
	return len(c.blocks) > c.opts.MinBlocks
}

// AddLabel returns the configured add affordance text
func (c *Controller) AddLabel() string {
	if c.opts.AddLabel == "" {
		return "Add another"
	}
	return c.opts.AddLabel
}

// RemoveLabel returns the configured remove affordance text
func (c *Controller) RemoveLabel() string {
	if c.opts.RemoveLabel == "" {
		return "Remove"
	}
	return c.opts.RemoveLabel
}

// BlockClass returns the class marking a live block in rendered output
func (c *Controller) BlockClass() string {
	if c.opts.BlockClass == "" {
		return "dynamic-" + c.prefix
	}
	return c.opts.BlockClass
}
