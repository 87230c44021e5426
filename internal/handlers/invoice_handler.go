package handlers

import (
	"net/http"
	"strconv"

	"github.com/Witcher21/GNS-POS/internal/apperr"
	"github.com/Witcher21/GNS-POS/internal/database"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoices *database.InvoiceStore
}

func NewInvoiceHandler(invoices *database.InvoiceStore) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// --- GET /api/invoices?page=&limit= ---
func (h *InvoiceHandler) History(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.invoices.GetPage(page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, result)
}

// --- GET /api/invoices/:id ---
func (h *InvoiceHandler) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		fail(c, apperr.Validation("invalid invoice id"))
		return
	}

	invoice, err := h.invoices.GetDetail(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, invoice)
}
