package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"formgrid/internal/domain"
)

// recordDump renders a product and its variants as plain text for the pager
func recordDump(p domain.Product, variants []domain.Variant) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "Product #%d\n\n", p.ID)
	fmt.Fprintf(b, "name:      %s\n", p.Name)
	fmt.Fprintf(b, "sku:       %s\n", p.SKU)
	fmt.Fprintf(b, "price:     %.2f\n", p.Price)
	fmt.Fprintf(b, "stock:     %d\n", p.Stock)
	fmt.Fprintf(b, "in_stock:  %t\n", p.InStock)

	fmt.Fprintf(b, "\nvariants (%d)\n", len(variants))
	for _, v := range variants {
		fmt.Fprintf(b, "\n  [%d] %s\n", v.Position, v.Label)
		fmt.Fprintf(b, "      sku_suffix: %s\n", v.SKUSuffix)
		fmt.Fprintf(b, "      stock:      %d\n", v.Stock)
	}
	return b.String()
}

// showInPager shows content using the ov pager, temporarily handing the
// terminal over from Bubble Tea
func (m *Model) showInPager(content string) error {
	if m.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := m.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Give ov a moment to fully exit before the terminal is restored
		time.Sleep(100 * time.Millisecond)
		_ = m.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	return root.Run()
}

// openRecordPager loads the record under the cursor and views it in ov
func (m *Model) openRecordPager() tea.Cmd {
	product, ok := m.state.CurrentProduct()
	if !ok {
		return nil
	}

	return func() tea.Msg {
		variants, err := m.store.VariantsFor(product.ID)
		if err != nil {
			return pagerDoneMsg{err: err}
		}
		return pagerDoneMsg{err: m.showInPager(recordDump(product, variants))}
	}
}
