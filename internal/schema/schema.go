package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"formgrid/internal/ui/services/formset"
)

// FormDef declares the field layout of one formset
type FormDef struct {
	Prefix string     `yaml:"prefix"`
	Fields []FieldDef `yaml:"fields"`
}

// FieldDef declares one field inside a formset block
type FieldDef struct {
	Name    string   `yaml:"name"`
	Label   string   `yaml:"label"`
	Kind    string   `yaml:"kind"` // text, check, select
	Options []string `yaml:"options"`
}

// defaultVariantForm is the built-in variant formset layout, used when the
// config does not point at a schema file.
const defaultVariantForm = `
prefix: variant
fields:
  - name: label
    label: Label
    kind: text
  - name: sku_suffix
    label: SKU suffix
    kind: text
  - name: stock
    label: Stock
    kind: text
`

// Default returns the built-in variant formset definition
func Default() FormDef {
	var def FormDef
	// The embedded document is under our control; a parse failure here is a
	// programming error.
	if err := yaml.Unmarshal([]byte(defaultVariantForm), &def); err != nil {
		panic(fmt.Sprintf("schema: built-in form definition invalid: %v", err))
	}
	return def
}

// Load reads a formset definition from a YAML file
func Load(path string) (FormDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FormDef{}, fmt.Errorf("read schema: %w", err)
	}
	var def FormDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return FormDef{}, fmt.Errorf("parse schema: %w", err)
	}
	if def.Prefix == "" {
		return FormDef{}, fmt.Errorf("schema %s: missing prefix", path)
	}
	return def, nil
}

// Template compiles the definition into a formset template block. Field
// names carry the placeholder token where the block index belongs.
func (d FormDef) Template() *formset.Block {
	fields := make([]formset.Field, len(d.Fields))
	for i, fd := range d.Fields {
		fields[i] = formset.Field{
			Name:    fmt.Sprintf("%s-%s-%s", d.Prefix, formset.Placeholder, fd.Name),
			Label:   fd.Label,
			Kind:    kindOf(fd.Kind),
			Options: fd.Options,
		}
	}
	return &formset.Block{
		ID:       d.Prefix + "-empty",
		Fields:   fields,
		Template: true,
	}
}

func kindOf(kind string) formset.FieldKind {
	switch kind {
	case "check":
		return formset.KindCheck
	case "select":
		return formset.KindSelect
	default:
		return formset.KindText
	}
}
