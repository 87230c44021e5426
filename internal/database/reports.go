package database

import (
	"time"

	"github.com/Witcher21/GNS-POS/internal/apperr"
	"github.com/Witcher21/GNS-POS/internal/models"

	"gorm.io/gorm"
)

// ReportStore runs the read-only daily aggregates. Safe to call while
// checkouts commit; each query sees a consistent snapshot.
type ReportStore struct {
	db *gorm.DB
}

func NewReportStore(db *gorm.DB) *ReportStore {
	return &ReportStore{db: db}
}

// ZSummary holds the day's headline numbers. COALESCE in the queries keeps
// them zero instead of NULL when the day has no invoices.
type ZSummary struct {
	InvoiceCount int64   `json:"invoice_count"`
	TotalSales   float64 `json:"total_sales"`
	TotalCash    float64 `json:"total_cash"`
	TotalCard    float64 `json:"total_card"`
}

// TopProduct is one row of the day's top sellers by revenue.
type TopProduct struct {
	ProductNameEN string  `json:"product_name_en"`
	ProductNameSI string  `json:"product_name_si"`
	TotalQty      int64   `json:"total_qty"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// HourlyBucket is sales volume for one hour of the day. Hours without an
// invoice don't appear.
type HourlyBucket struct {
	Hour  string  `json:"hour"`
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

// ZReport is the end-of-day summary for one calendar date.
type ZReport struct {
	Date        string         `json:"date"`
	Summary     ZSummary       `json:"summary"`
	TopProducts []TopProduct   `json:"top_products"`
	Hourly      []HourlyBucket `json:"hourly"`
}

// GetZReport aggregates one calendar date. An empty date means today in
// local time; the queries bucket by local time too, so a late-evening sale
// lands on the day the till actually saw.
func (s *ReportStore) GetZReport(date string) (*ZReport, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	report := &ZReport{
		Date:        date,
		TopProducts: []TopProduct{},
		Hourly:      []HourlyBucket{},
	}

	err := s.db.Model(&models.Invoice{}).
		Select("COUNT(*) AS invoice_count, COALESCE(SUM(total), 0) AS total_sales, COALESCE(SUM(cash_paid), 0) AS total_cash, COALESCE(SUM(card_paid), 0) AS total_card").
		Where("DATE(created_at, 'localtime') = ?", date).
		Scan(&report.Summary).Error
	if err != nil {
		return nil, apperr.Storage(err, "failed to compute daily summary")
	}

	err = s.db.Table("invoice_items").
		Select("invoice_items.product_name_en, invoice_items.product_name_si, SUM(invoice_items.qty) AS total_qty, SUM(invoice_items.line_total) AS total_revenue").
		Joins("JOIN invoices ON invoice_items.invoice_id = invoices.id").
		Where("DATE(invoices.created_at, 'localtime') = ?", date).
		Group("invoice_items.product_id").
		Order("total_revenue DESC").
		Limit(10).
		Scan(&report.TopProducts).Error
	if err != nil {
		return nil, apperr.Storage(err, "failed to compute top products")
	}

	err = s.db.Model(&models.Invoice{}).
		Select("strftime('%H:00', created_at, 'localtime') AS hour, COUNT(*) AS count, COALESCE(SUM(total), 0) AS total").
		Where("DATE(created_at, 'localtime') = ?", date).
		Group("strftime('%H', created_at, 'localtime')").
		Order("hour ASC").
		Scan(&report.Hourly).Error
	if err != nil {
		return nil, apperr.Storage(err, "failed to compute hourly breakdown")
	}

	return report, nil
}
