package handlers

import (
	"net/http"
	"strconv"

	"github.com/Witcher21/GNS-POS/internal/apperr"
	"github.com/Witcher21/GNS-POS/internal/database"
	"github.com/Witcher21/GNS-POS/internal/models"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	catalog *database.CatalogStore
}

func NewProductHandler(catalog *database.CatalogStore) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// ProductInput is the create/update payload. SellingPrice is a pointer so a
// missing price fails validation while an explicit zero passes.
type ProductInput struct {
	Barcode      string   `json:"barcode"`
	NameEN       string   `json:"name_en" binding:"required"`
	NameSI       string   `json:"name_si"`
	CostPrice    float64  `json:"cost_price" binding:"gte=0"`
	SellingPrice *float64 `json:"selling_price" binding:"required,gte=0"`
	Stock        int      `json:"stock" binding:"gte=0"`
}

func (in *ProductInput) toModel() models.Product {
	p := models.Product{
		NameEN:       in.NameEN,
		NameSI:       in.NameSI,
		CostPrice:    in.CostPrice,
		SellingPrice: *in.SellingPrice,
		Stock:        in.Stock,
	}
	if in.Barcode != "" {
		p.Barcode = &in.Barcode
	}
	return p
}

// --- GET /api/products?q= ---
// Without q this lists the whole catalog; with q it searches.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.catalog.Search(c.Query("q"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, products)
}

// --- POST /api/products ---
func (h *ProductHandler) Create(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, apperr.Validation("invalid product: %s", bindMessage(err)))
		return
	}

	product := input.toModel()
	if err := h.catalog.Create(&product); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, product)
}

// --- PUT /api/products/:id ---
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		fail(c, apperr.Validation("invalid product id"))
		return
	}

	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, apperr.Validation("invalid product: %s", bindMessage(err)))
		return
	}

	product := input.toModel()
	product.ID = uint(id)
	if err := h.catalog.Update(&product); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, product)
}

// --- DELETE /api/products/:id ---
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		fail(c, apperr.Validation("invalid product id"))
		return
	}
	if err := h.catalog.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"id": id})
}

// --- POST /api/products/import ---
// Accepts already-parsed CSV rows; the batch is all-or-nothing.
func (h *ProductHandler) Import(c *gin.Context) {
	var rows []database.ImportRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		fail(c, apperr.Validation("invalid import payload: %s", bindMessage(err)))
		return
	}
	count, err := h.catalog.BulkImport(rows)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"count": count})
}
