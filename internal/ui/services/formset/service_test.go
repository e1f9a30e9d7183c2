package formset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formgrid/internal/ui/services/events"
)

func variantTemplate() *Block {
	return &Block{
		ID:       "variant-empty",
		Template: true,
		Fields: []Field{
			{Name: "variant-__prefix__-label", Label: "Label", Kind: KindText, Value: "placeholder"},
			{Name: "variant-__prefix__-sku_suffix", Label: "Suffix", Kind: KindText},
			{Name: "variant-__prefix__-stock", Label: "Stock", Kind: KindText},
		},
	}
}

func liveBlock(index int) *Block {
	return &Block{
		ID: fmt.Sprintf("variant-%d", index),
		Fields: []Field{
			{Name: fmt.Sprintf("variant-%d-label", index), Kind: KindText, Value: fmt.Sprintf("v%d", index)},
			{Name: fmt.Sprintf("variant-%d-sku_suffix", index), Kind: KindText},
			{Name: fmt.Sprintf("variant-%d-stock", index), Kind: KindText},
		},
	}
}

func newController(blocks []*Block, management Management, opts Options) *Controller {
	return NewController("variant", blocks, variantTemplate(), management, opts, nil)
}

func TestAddBlockSequence(t *testing.T) {
	c := newController(nil, Management{}, Options{})

	const k = 4
	for i := 0; i < k; i++ {
		block := c.AddBlock()
		require.NotNil(t, block)
		assert.Equal(t, fmt.Sprintf("variant-%d-label", i), block.Fields[0].Name)
	}

	assert.Len(t, c.Blocks(), k)
	assert.Equal(t, k, c.Management().TotalForms)
	assert.Equal(t, 0, c.Management().InitialForms)

	// Indices stay contiguous 0..k-1
	for i, block := range c.Blocks() {
		assert.Equal(t, i, BlockIndex(block.Fields[0].Name, "variant"))
	}
}

func TestTemplateStaysLastSibling(t *testing.T) {
	c := newController(nil, Management{}, Options{})

	c.AddBlock()
	c.AddBlock()

	siblings := c.Siblings()
	require.Len(t, siblings, 3)
	assert.True(t, siblings[len(siblings)-1].Template, "the template follows every live block")
	assert.False(t, siblings[0].Template)
	assert.False(t, siblings[1].Template)
}

func TestAddedBlocksStartBlank(t *testing.T) {
	c := newController(nil, Management{}, Options{})

	block := c.AddBlock()
	require.NotNil(t, block)

	for _, f := range block.Fields {
		assert.Empty(t, f.Value)
		assert.False(t, f.Checked)
		assert.Zero(t, f.Selected)
	}
	assert.False(t, block.Template)
	assert.NotEmpty(t, block.ID)
	assert.NotEqual(t, c.Siblings()[1].ID, block.ID)
}

func TestAddBlockUnwiredTemplate(t *testing.T) {
	c := NewController("variant", nil, nil, Management{}, Options{}, nil)

	assert.Nil(t, c.AddBlock())
	assert.False(t, c.CanAdd())
	assert.Empty(t, c.Blocks())
	assert.Equal(t, 0, c.Management().TotalForms)
}

func TestRemoveBlockRenumbers(t *testing.T) {
	blocks := []*Block{liveBlock(0), liveBlock(1), liveBlock(2)}
	c := newController(blocks, Management{TotalForms: 3, InitialForms: 3}, Options{})

	c.RemoveBlock(1)

	require.Len(t, c.Blocks(), 2)
	assert.Equal(t, "variant-0-label", c.Blocks()[0].Fields[0].Name)
	assert.Equal(t, "variant-1-label", c.Blocks()[1].Fields[0].Name)
	assert.Equal(t, "v0", c.Blocks()[0].Fields[0].Value)
	assert.Equal(t, "v2", c.Blocks()[1].Fields[0].Value, "the surviving block keeps its values under the new index")
	assert.Equal(t, 2, c.Management().TotalForms)
}

func TestRemoveBlockOutOfBounds(t *testing.T) {
	c := newController([]*Block{liveBlock(0)}, Management{TotalForms: 1, InitialForms: 1}, Options{})

	c.RemoveBlock(-1)
	c.RemoveBlock(1)

	assert.Len(t, c.Blocks(), 1)
	assert.Equal(t, 1, c.Management().TotalForms)
}

func TestAddAfterRemoveReusesIndex(t *testing.T) {
	c := newController(nil, Management{}, Options{})

	c.AddBlock()
	c.AddBlock()
	c.RemoveBlock(0)
	block := c.AddBlock()

	require.NotNil(t, block)
	assert.Equal(t, "variant-1-label", block.Fields[0].Name)
	assert.Equal(t, 2, c.Management().TotalForms)
}

func TestInitTrimsBeyondInitial(t *testing.T) {
	blocks := []*Block{liveBlock(0), liveBlock(1), liveBlock(2)}
	c := newController(blocks, Management{TotalForms: 3, InitialForms: 1}, Options{})

	c.Init(false)

	assert.Len(t, c.Blocks(), 1)
	assert.Equal(t, Management{TotalForms: 1, InitialForms: 1}, c.Management())
	assert.Equal(t, "v0", c.Blocks()[0].Fields[0].Value)
}

func TestInitKeepsExtrasOnErrors(t *testing.T) {
	blocks := []*Block{liveBlock(0), liveBlock(1), liveBlock(2)}
	c := newController(blocks, Management{TotalForms: 3, InitialForms: 1}, Options{})

	c.Init(true)

	assert.Len(t, c.Blocks(), 3, "redisplayed user input survives the trim")
	assert.Equal(t, 3, c.Management().TotalForms)
}

func TestShowRemoveRespectsFloor(t *testing.T) {
	c := newController([]*Block{liveBlock(0)}, Management{TotalForms: 1, InitialForms: 1}, Options{})

	assert.False(t, c.ShowRemove(), "a single block cannot be removed")
	c.AddBlock()
	assert.True(t, c.ShowRemove())
	c.RemoveBlock(1)
	assert.False(t, c.ShowRemove())
}

func TestListeners(t *testing.T) {
	bus := events.NewBus()
	var added, removed []string
	opts := Options{
		AddedListener:   func(b *Block) { added = append(added, b.Fields[0].Name) },
		RemovedListener: func(b *Block) { removed = append(removed, b.Fields[0].Name) },
	}
	c := NewController("variant", nil, variantTemplate(), Management{}, opts, bus)

	c.AddBlock()
	c.AddBlock()
	c.RemoveBlock(0)

	assert.Equal(t, []string{"variant-0-label", "variant-1-label"}, added)
	// The removed listener sees the block before renumbering
	assert.Equal(t, []string{"variant-0-label"}, removed)
}

func TestLabelDefaults(t *testing.T) {
	c := newController(nil, Management{}, Options{})
	assert.Equal(t, "Add another", c.AddLabel())
	assert.Equal(t, "Remove", c.RemoveLabel())
	assert.Equal(t, "dynamic-variant", c.BlockClass())

	c = newController(nil, Management{}, Options{
		AddLabel: "More", RemoveLabel: "Drop", BlockClass: "row",
	})
	assert.Equal(t, "More", c.AddLabel())
	assert.Equal(t, "Drop", c.RemoveLabel())
	assert.Equal(t, "row", c.BlockClass())
}
