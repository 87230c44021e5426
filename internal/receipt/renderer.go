// Package receipt turns a checkout snapshot into a printable PDF. It only
// ever sees the same snapshot shape the sale itself produced.
package receipt

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Witcher21/GNS-POS/internal/apperr"
	"github.com/Witcher21/GNS-POS/internal/database"

	"github.com/google/uuid"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Renderer writes receipt PDFs into a fixed directory.
type Renderer struct {
	dir       string
	storeName string
}

func NewRenderer(dir, storeName string) *Renderer {
	return &Renderer{dir: dir, storeName: storeName}
}

// Render builds the receipt and saves it, returning the file path. The file
// name carries a random suffix so reprints never overwrite each other.
func (r *Renderer) Render(inv *database.CheckoutResult) (string, error) {
	if inv == nil || inv.InvoiceID == 0 {
		return "", apperr.Validation("receipt needs an invoice snapshot")
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", apperr.External(err, "cannot create receipts dir")
	}

	doc, err := r.build(inv).Generate()
	if err != nil {
		return "", apperr.External(err, "receipt render failed")
	}

	name := fmt.Sprintf("receipt-%d-%s.pdf", inv.InvoiceID, uuid.NewString()[:8])
	path := filepath.Join(r.dir, name)
	if err := doc.Save(path); err != nil {
		return "", apperr.External(err, "receipt save failed")
	}
	return path, nil
}

func (r *Renderer) build(inv *database.CheckoutResult) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(12).
		WithTopMargin(10).
		WithRightMargin(12).
		Build()
	m := maroto.New(cfg)

	// Header block, same content as the printed slip the shop uses.
	m.AddRow(9, text.NewCol(12, r.storeName, props.Text{
		Size: 15, Style: fontstyle.Bold, Align: align.Center,
	}))
	m.AddRow(5, text.NewCol(12, "Quality Products · Fair Prices", props.Text{
		Size: 8, Align: align.Center,
	}))
	m.AddRow(2, line.NewCol(12))

	m.AddRow(5,
		text.NewCol(6, "Invoice #", props.Text{Size: 9}),
		text.NewCol(6, fmt.Sprintf("%d", inv.InvoiceID), props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
	)
	m.AddRow(5,
		text.NewCol(6, "Date", props.Text{Size: 9}),
		text.NewCol(6, inv.CreatedAt.Format("2 Jan 2006 15:04"), props.Text{Size: 9, Align: align.Right}),
	)
	if inv.CustomerPhone != "" {
		m.AddRow(5,
			text.NewCol(6, "Phone", props.Text{Size: 9}),
			text.NewCol(6, inv.CustomerPhone, props.Text{Size: 9, Align: align.Right}),
		)
	}
	m.AddRow(2, line.NewCol(12))

	m.AddRow(6,
		text.NewCol(6, "ITEM", props.Text{Size: 8, Style: fontstyle.Bold}),
		text.NewCol(2, "QTY", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center}),
		text.NewCol(2, "PRICE", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "TOTAL", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}),
	)
	for _, it := range inv.Items {
		m.AddRow(5,
			text.NewCol(6, it.NameEN, props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%d", it.Qty), props.Text{Size: 9, Align: align.Center}),
			text.NewCol(2, money(it.SellingPrice), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, money(float64(it.Qty)*it.SellingPrice), props.Text{Size: 9, Align: align.Right}),
		)
	}
	m.AddRow(2, line.NewCol(12))

	m.AddRow(5, totalRow("Subtotal", inv.Subtotal)...)
	if inv.CashPaid > 0 {
		m.AddRow(5, totalRow("Cash", inv.CashPaid)...)
	}
	if inv.CardPaid > 0 {
		m.AddRow(5, totalRow("Card", inv.CardPaid)...)
	}
	if inv.Change > 0 {
		m.AddRow(5, totalRow("Change", inv.Change)...)
	}
	m.AddRow(7,
		text.NewCol(6, "TOTAL PAID", props.Text{Size: 11, Style: fontstyle.Bold}),
		text.NewCol(6, money(inv.Total), props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right}),
	)

	m.AddRow(2, line.NewCol(12))
	m.AddRow(6, text.NewCol(12, "Thank you for your purchase!", props.Text{
		Size: 9, Style: fontstyle.Bold, Align: align.Center,
	}))
	m.AddRow(4, text.NewCol(12, "GNS-POS v2.0", props.Text{
		Size: 7, Align: align.Center,
	}))

	return m
}

func totalRow(label string, amount float64) []core.Col {
	return []core.Col{
		text.NewCol(6, label, props.Text{Size: 9}),
		text.NewCol(6, money(amount), props.Text{Size: 9, Align: align.Right}),
	}
}

func money(v float64) string {
	return fmt.Sprintf("Rs. %.2f", v)
}
