package database

import (
	"errors"
	"math"
	"time"

	"github.com/Witcher21/GNS-POS/internal/apperr"
	"github.com/Witcher21/GNS-POS/internal/models"

	"gorm.io/gorm"
)

// InvoiceStore owns invoices and their line items. Invoices are append-only
// after checkout, save for the sms_sent flag and the receipt path.
type InvoiceStore struct {
	db *gorm.DB
}

func NewInvoiceStore(db *gorm.DB) *InvoiceStore {
	return &InvoiceStore{db: db}
}

// CartItem is one line of the cart snapshot submitted at checkout. Name and
// selling price are the UI's snapshot and are stored as-is.
type CartItem struct {
	ProductID    uint    `json:"id"`
	NameEN       string  `json:"name_en"`
	NameSI       string  `json:"name_si"`
	Qty          int     `json:"qty"`
	SellingPrice float64 `json:"selling_price"`
}

// CheckoutRequest carries the cart plus the payment breakdown. Subtotal and
// total are computed by the caller and trusted here.
type CheckoutRequest struct {
	Items         []CartItem `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	Total         float64    `json:"total"`
	CashPaid      float64    `json:"cash_paid"`
	CardPaid      float64    `json:"card_paid"`
	CustomerPhone string     `json:"customer_phone"`
}

// CheckoutResult echoes the submitted sale plus the persisted invoice id,
// ready for immediate receipt rendering. Nothing is re-read from the DB.
type CheckoutResult struct {
	InvoiceID     uint       `json:"invoice_id"`
	Change        float64    `json:"change"`
	Subtotal      float64    `json:"subtotal"`
	Total         float64    `json:"total"`
	CashPaid      float64    `json:"cash_paid"`
	CardPaid      float64    `json:"card_paid"`
	CustomerPhone string     `json:"customer_phone"`
	Items         []CartItem `json:"items"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Checkout records the sale atomically: one invoice row, its line items, and
// one stock decrement per line. Stock is floored at zero - an over-sell still
// records, it never rejects. Any failure rolls the whole sale back.
func (s *InvoiceStore) Checkout(req CheckoutRequest) (*CheckoutResult, error) {
	if len(req.Items) == 0 {
		return nil, apperr.Validation("cart is empty")
	}
	for _, it := range req.Items {
		if it.Qty <= 0 {
			return nil, apperr.Validation("quantity for %q must be positive", it.NameEN)
		}
	}

	change := math.Max(0, req.CashPaid-req.Total)

	invoice := models.Invoice{
		Subtotal:      req.Subtotal,
		Total:         req.Total,
		CashPaid:      req.CashPaid,
		CardPaid:      req.CardPaid,
		ChangeGiven:   change,
		CustomerPhone: optional(req.CustomerPhone),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}
		for _, it := range req.Items {
			item := models.InvoiceItem{
				InvoiceID:     invoice.ID,
				ProductID:     it.ProductID,
				ProductNameEN: it.NameEN,
				ProductNameSI: it.NameSI,
				Qty:           it.Qty,
				UnitPrice:     it.SellingPrice,
				LineTotal:     float64(it.Qty) * it.SellingPrice,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			err := tx.Model(&models.Product{}).
				Where("id = ?", it.ProductID).
				Update("stock", gorm.Expr("MAX(0, stock - ?)", it.Qty)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Storage(err, "checkout failed")
	}

	return &CheckoutResult{
		InvoiceID:     invoice.ID,
		Change:        change,
		Subtotal:      req.Subtotal,
		Total:         req.Total,
		CashPaid:      req.CashPaid,
		CardPaid:      req.CardPaid,
		CustomerPhone: req.CustomerPhone,
		Items:         req.Items,
		CreatedAt:     invoice.CreatedAt,
	}, nil
}

// InvoicePage is one page of invoice history, newest first.
type InvoicePage struct {
	Invoices []models.Invoice `json:"invoices"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
	Pages    int              `json:"pages"`
}

// GetPage returns invoices ordered by creation time descending. Pages are
// 1-based; a page past the end returns an empty list, not an error.
func (s *InvoiceStore) GetPage(page, limit int) (*InvoicePage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var total int64
	if err := s.db.Model(&models.Invoice{}).Count(&total).Error; err != nil {
		return nil, apperr.Storage(err, "failed to count invoices")
	}

	var invoices []models.Invoice
	err := s.db.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&invoices).Error
	if err != nil {
		return nil, apperr.Storage(err, "failed to fetch invoices")
	}

	return &InvoicePage{
		Invoices: invoices,
		Total:    total,
		Page:     page,
		Limit:    limit,
		Pages:    int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

// GetDetail returns one invoice with its line items.
func (s *InvoiceStore) GetDetail(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.db.Preload("Items").First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("invoice %d not found", id)
		}
		return nil, apperr.Storage(err, "failed to fetch invoice %d", id)
	}
	return &invoice, nil
}

// MarkSMSSent flips the sms_sent flag after a delivered notification.
func (s *InvoiceStore) MarkSMSSent(id uint) error {
	err := s.db.Model(&models.Invoice{}).Where("id = ?", id).Update("sms_sent", true).Error
	if err != nil {
		return apperr.Storage(err, "failed to mark invoice %d sms_sent", id)
	}
	return nil
}

// SetReceiptPath records where the rendered receipt landed on disk.
func (s *InvoiceStore) SetReceiptPath(id uint, path string) error {
	err := s.db.Model(&models.Invoice{}).Where("id = ?", id).Update("pdf_path", path).Error
	if err != nil {
		return apperr.Storage(err, "failed to set receipt path on invoice %d", id)
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
