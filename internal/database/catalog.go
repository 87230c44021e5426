package database

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/Witcher21/GNS-POS/internal/apperr"
	"github.com/Witcher21/GNS-POS/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// searchLimit caps fuzzy product lookups so a one-letter query from the till
// doesn't ship the whole catalog to the UI.
const searchLimit = 30

// CatalogStore owns product records.
type CatalogStore struct {
	db *gorm.DB
}

func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// List returns every product ordered by English name.
func (s *CatalogStore) List() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("name_en ASC").Find(&products).Error; err != nil {
		return nil, apperr.Storage(err, "failed to fetch products")
	}
	return products, nil
}

// Search matches barcode exactly, or either name by case-insensitive
// substring. An empty query is the same as List.
func (s *CatalogStore) Search(query string) ([]models.Product, error) {
	if query == "" {
		return s.List()
	}
	like := "%" + strings.ToLower(query) + "%"
	var products []models.Product
	err := s.db.
		Where("barcode = ? OR lower(name_en) LIKE ? OR lower(name_si) LIKE ?", query, like, like).
		Limit(searchLimit).
		Find(&products).Error
	if err != nil {
		return nil, apperr.Storage(err, "failed to search products")
	}
	return products, nil
}

// Create inserts a new product and returns the stored row via p.
func (s *CatalogStore) Create(p *models.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	if err := s.db.Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("a product with barcode %q already exists", deref(p.Barcode))
		}
		return apperr.Storage(err, "failed to create product")
	}
	return nil
}

// Update replaces every mutable field of the product identified by p.ID.
// A missing identifier is an error, not a silent echo.
func (s *CatalogStore) Update(p *models.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	var existing models.Product
	if err := s.db.First(&existing, p.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("product %d not found", p.ID)
		}
		return apperr.Storage(err, "failed to load product %d", p.ID)
	}

	err := s.db.Model(&existing).
		Select("barcode", "name_en", "name_si", "cost_price", "selling_price", "stock").
		Updates(map[string]any{
			"barcode":       p.Barcode,
			"name_en":       p.NameEN,
			"name_si":       p.NameSI,
			"cost_price":    p.CostPrice,
			"selling_price": p.SellingPrice,
			"stock":         p.Stock,
		}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("a product with barcode %q already exists", deref(p.Barcode))
		}
		return apperr.Storage(err, "failed to update product %d", p.ID)
	}
	p.CreatedAt = existing.CreatedAt
	return nil
}

// Delete removes a product. Deleting an absent id is a no-op.
// Historic invoice items keep their own name/price snapshot, so no cascade.
func (s *CatalogStore) Delete(id uint) error {
	if err := s.db.Delete(&models.Product{}, id).Error; err != nil {
		return apperr.Storage(err, "failed to delete product %d", id)
	}
	return nil
}

// ImportRow is one parsed CSV record. Numeric fields arrive as loose strings
// and coerce to zero when malformed; the CSV reader itself lives outside this
// system.
type ImportRow struct {
	Barcode      string `json:"barcode"`
	Name         string `json:"name"`
	NameEN       string `json:"name_en"`
	NameSI       string `json:"name_si"`
	CostPrice    string `json:"cost_price"`
	SellingPrice string `json:"selling_price"`
	Stock        string `json:"stock"`
}

// BulkImport upserts every row by barcode in one transaction: all rows land
// or none do. Returns the number of rows processed.
func (s *CatalogStore) BulkImport(rows []ImportRow) (int, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i, r := range rows {
			name := r.NameEN
			if name == "" {
				name = r.Name
			}
			p := models.Product{
				Barcode:      normalizeBarcode(r.Barcode),
				NameEN:       name,
				NameSI:       r.NameSI,
				CostPrice:    looseFloat(r.CostPrice, i, "cost_price"),
				SellingPrice: looseFloat(r.SellingPrice, i, "selling_price"),
				Stock:        looseInt(r.Stock, i, "stock"),
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "barcode"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"name_en", "name_si", "cost_price", "selling_price", "stock",
				}),
			}).Create(&p).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, apperr.Storage(err, "bulk import failed")
	}
	return len(rows), nil
}

func validateProduct(p *models.Product) error {
	if strings.TrimSpace(p.NameEN) == "" {
		return apperr.Validation("English name is required")
	}
	if p.SellingPrice < 0 {
		return apperr.Validation("selling price cannot be negative")
	}
	if p.CostPrice < 0 {
		return apperr.Validation("cost price cannot be negative")
	}
	if p.Stock < 0 {
		return apperr.Validation("stock cannot be negative")
	}
	return nil
}

func normalizeBarcode(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// looseFloat mirrors the catalog files this shop actually produces: numbers
// arrive as strings and garbage means zero, but we flag it instead of
// swallowing it.
func looseFloat(s string, row int, field string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("[IMPORT] row %d: unparseable %s %q, using 0", row, field, s)
		return 0
	}
	return f
}

func looseInt(s string, row int, field string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("[IMPORT] row %d: unparseable %s %q, using 0", row, field, s)
		return 0
	}
	return n
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
