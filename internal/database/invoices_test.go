package database

import (
	"testing"

	"github.com/Witcher21/GNS-POS/internal/apperr"
	"github.com/Witcher21/GNS-POS/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutRecordsFullSale(t *testing.T) {
	db := testDB(t)
	store := NewInvoiceStore(db)

	a := seedProduct(t, db, models.Product{NameEN: "Product A", SellingPrice: 100, Stock: 5})
	b := seedProduct(t, db, models.Product{NameEN: "Product B", SellingPrice: 250, Stock: 2})

	result, err := store.Checkout(CheckoutRequest{
		Items: []CartItem{
			{ProductID: a.ID, NameEN: a.NameEN, Qty: 2, SellingPrice: 100},
			{ProductID: b.ID, NameEN: b.NameEN, Qty: 1, SellingPrice: 250},
		},
		Subtotal: 450,
		Total:    450,
		CashPaid: 400,
	})
	require.NoError(t, err)
	require.NotZero(t, result.InvoiceID)

	// Cash below total clamps change to zero instead of going negative.
	assert.Zero(t, result.Change)
	assert.Equal(t, 450.0, result.Total)
	assert.False(t, result.CreatedAt.IsZero())

	var gotA, gotB models.Product
	require.NoError(t, db.First(&gotA, a.ID).Error)
	require.NoError(t, db.First(&gotB, b.ID).Error)
	assert.Equal(t, 3, gotA.Stock)
	assert.Equal(t, 1, gotB.Stock)

	var items []models.InvoiceItem
	require.NoError(t, db.Where("invoice_id = ?", result.InvoiceID).Order("id").Find(&items).Error)
	require.Len(t, items, 2)
	assert.Equal(t, 200.0, items[0].LineTotal)
	assert.Equal(t, 250.0, items[1].LineTotal)
	assert.Equal(t, "Product A", items[0].ProductNameEN)
}

func TestCheckoutChangeGiven(t *testing.T) {
	db := testDB(t)
	store := NewInvoiceStore(db)
	p := seedProduct(t, db, models.Product{NameEN: "Biscuits", SellingPrice: 150, Stock: 10})

	result, err := store.Checkout(CheckoutRequest{
		Items:    []CartItem{{ProductID: p.ID, NameEN: p.NameEN, Qty: 1, SellingPrice: 150}},
		Subtotal: 150,
		Total:    150,
		CashPaid: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, 350.0, result.Change)

	var inv models.Invoice
	require.NoError(t, db.First(&inv, result.InvoiceID).Error)
	assert.Equal(t, 350.0, inv.ChangeGiven)
}

func TestCheckoutFloorsStockAtZero(t *testing.T) {
	db := testDB(t)
	store := NewInvoiceStore(db)
	p := seedProduct(t, db, models.Product{NameEN: "Last Packets", SellingPrice: 75, Stock: 2})

	// Over-selling is recorded, not rejected; stock clamps at zero.
	result, err := store.Checkout(CheckoutRequest{
		Items:    []CartItem{{ProductID: p.ID, NameEN: p.NameEN, Qty: 5, SellingPrice: 75}},
		Subtotal: 375,
		Total:    375,
		CashPaid: 375,
	})
	require.NoError(t, err)
	require.NotZero(t, result.InvoiceID)

	var got models.Product
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Zero(t, got.Stock)
}

func TestCheckoutRejectsEmptyCartAndBadQty(t *testing.T) {
	store := NewInvoiceStore(testDB(t))

	_, err := store.Checkout(CheckoutRequest{Total: 10})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = store.Checkout(CheckoutRequest{
		Items: []CartItem{{ProductID: 1, NameEN: "X", Qty: 0, SellingPrice: 5}},
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestCheckoutIsAtomic(t *testing.T) {
	db := testDB(t)
	store := NewInvoiceStore(db)
	p := seedProduct(t, db, models.Product{NameEN: "Atomic", SellingPrice: 30, Stock: 8})

	// Sabotage the line-item table so the transaction fails after the
	// invoice header insert. Nothing may survive the rollback.
	require.NoError(t, db.Migrator().DropTable(&models.InvoiceItem{}))

	_, err := store.Checkout(CheckoutRequest{
		Items:    []CartItem{{ProductID: p.ID, NameEN: p.NameEN, Qty: 2, SellingPrice: 30}},
		Subtotal: 60,
		Total:    60,
		CashPaid: 60,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))

	var invoiceCount int64
	require.NoError(t, db.Model(&models.Invoice{}).Count(&invoiceCount).Error)
	assert.Zero(t, invoiceCount)

	var got models.Product
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, 8, got.Stock)
}

func checkoutN(t *testing.T, store *InvoiceStore, productID uint, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := store.Checkout(CheckoutRequest{
			Items:    []CartItem{{ProductID: productID, NameEN: "Bulk", Qty: 1, SellingPrice: 10}},
			Subtotal: 10,
			Total:    10,
			CashPaid: 10,
		})
		require.NoError(t, err)
	}
}

func TestHistoryPagination(t *testing.T) {
	db := testDB(t)
	store := NewInvoiceStore(db)
	p := seedProduct(t, db, models.Product{NameEN: "Bulk", SellingPrice: 10, Stock: 100})

	checkoutN(t, store, p.ID, 25)

	page, err := store.GetPage(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.Len(t, page.Invoices, 10)

	last, err := store.GetPage(3, 10)
	require.NoError(t, err)
	assert.Len(t, last.Invoices, 5)

	// A page past the end is empty, not an error.
	beyond, err := store.GetPage(7, 10)
	require.NoError(t, err)
	assert.Empty(t, beyond.Invoices)
	assert.Equal(t, 3, beyond.Pages)
}

func TestGetDetail(t *testing.T) {
	db := testDB(t)
	store := NewInvoiceStore(db)
	p := seedProduct(t, db, models.Product{NameEN: "Detail", SellingPrice: 20, Stock: 5})

	result, err := store.Checkout(CheckoutRequest{
		Items:         []CartItem{{ProductID: p.ID, NameEN: p.NameEN, Qty: 2, SellingPrice: 20}},
		Subtotal:      40,
		Total:         40,
		CashPaid:      40,
		CustomerPhone: "0771234567",
	})
	require.NoError(t, err)

	detail, err := store.GetDetail(result.InvoiceID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, 40.0, detail.Items[0].LineTotal)
	require.NotNil(t, detail.CustomerPhone)
	assert.Equal(t, "0771234567", *detail.CustomerPhone)

	_, err = store.GetDetail(999)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestInvoiceFlagWriteBacks(t *testing.T) {
	db := testDB(t)
	store := NewInvoiceStore(db)
	p := seedProduct(t, db, models.Product{NameEN: "Flags", SellingPrice: 10, Stock: 2})

	result, err := store.Checkout(CheckoutRequest{
		Items:    []CartItem{{ProductID: p.ID, NameEN: p.NameEN, Qty: 1, SellingPrice: 10}},
		Subtotal: 10, Total: 10, CashPaid: 10,
	})
	require.NoError(t, err)

	require.NoError(t, store.MarkSMSSent(result.InvoiceID))
	require.NoError(t, store.SetReceiptPath(result.InvoiceID, "/tmp/receipt.pdf"))

	detail, err := store.GetDetail(result.InvoiceID)
	require.NoError(t, err)
	assert.True(t, detail.SMSSent)
	require.NotNil(t, detail.PDFPath)
	assert.Equal(t, "/tmp/receipt.pdf", *detail.PDFPath)
}
