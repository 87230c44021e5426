package models

import (
	"time"
)

// Product - The Inventory
// Names are bilingual: name_en is required, name_si is the optional Sinhala name.
// Barcode is a pointer so products without one don't collide on the unique index.
type Product struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Barcode      *string   `gorm:"column:barcode;uniqueIndex" json:"barcode"`
	NameEN       string    `gorm:"column:name_en;not null" json:"name_en"`
	NameSI       string    `gorm:"column:name_si;not null;default:''" json:"name_si"`
	CostPrice    float64   `gorm:"column:cost_price;default:0" json:"cost_price"`
	SellingPrice float64   `gorm:"column:selling_price;not null" json:"selling_price"`
	Stock        int       `gorm:"column:stock;default:0" json:"stock"`
	CreatedAt    time.Time `json:"created_at"`
}

// Invoice - The Transaction Header
// Immutable after checkout except for sms_sent and pdf_path.
type Invoice struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Subtotal      float64       `gorm:"not null" json:"subtotal"`
	Total         float64       `gorm:"not null" json:"total"`
	CashPaid      float64       `gorm:"column:cash_paid;default:0" json:"cash_paid"`
	CardPaid      float64       `gorm:"column:card_paid;default:0" json:"card_paid"`
	ChangeGiven   float64       `gorm:"column:change_given;default:0" json:"change_given"`
	CustomerPhone *string       `gorm:"column:customer_phone" json:"customer_phone"`
	SMSSent       bool          `gorm:"column:sms_sent;default:false" json:"sms_sent"`
	PDFPath       *string       `gorm:"column:pdf_path" json:"pdf_path"`
	CreatedAt     time.Time     `json:"created_at"`
	Items         []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// InvoiceItem - One line of an invoice
// Name and price are copied at sale time so later product edits or deletes
// never rewrite history. ProductID is a weak reference for that reason.
type InvoiceItem struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	InvoiceID     uint    `gorm:"column:invoice_id;not null;index" json:"invoice_id"`
	ProductID     uint    `gorm:"column:product_id" json:"product_id"`
	ProductNameEN string  `gorm:"column:product_name_en;not null" json:"product_name_en"`
	ProductNameSI string  `gorm:"column:product_name_si;not null;default:''" json:"product_name_si"`
	Qty           int     `gorm:"column:qty;not null" json:"qty"`
	UnitPrice     float64 `gorm:"column:unit_price;not null" json:"unit_price"`
	LineTotal     float64 `gorm:"column:line_total;not null" json:"line_total"`
}
