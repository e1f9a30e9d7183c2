package formset

// Placeholder is the literal token embedded in template field names,
// replaced with the numeric block index on clone.
const Placeholder = "__prefix__"

// FieldKind distinguishes how a field's value is edited and blanked
type FieldKind int

const (
	KindText FieldKind = iota
	KindCheck
	KindSelect
)

// Field is one input inside a form block. Name carries the block index by
// convention: "<prefix>-<index>-<field>".
type Field struct {
	Name     string
	Label    string
	Kind     FieldKind
	Value    string
	Checked  bool
	Options  []string
	Selected int
}

// Block is one repeatable group of fields representing one item
type Block struct {
	ID       string // unique per live block
	Fields   []Field
	Template bool // set only on the clone source, stripped on clone
}

// Options configures a formset controller
type Options struct {
	// AddedListener is invoked with the new block after insertion
	AddedListener func(*Block)
	// RemovedListener is invoked with the block about to be removed
	RemovedListener func(*Block)
	AddLabel    string
	RemoveLabel string
	BlockClass  string
	// MinBlocks is the visible floor below which the remove affordance is
	// hidden. Zero means the default of one block.
	MinBlocks int
}

// Management mirrors the hidden counter fields consumed on submit
type Management struct {
	TotalForms   int
	InitialForms int
}

// Event types
type BlockAddedEvent struct {
	Block *Block
}

type BlockRemovedEvent struct {
	Block *Block
}
