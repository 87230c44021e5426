package handlers

import (
	"net/http"

	"github.com/Witcher21/GNS-POS/internal/apperr"
	"github.com/Witcher21/GNS-POS/internal/database"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	invoices *database.InvoiceStore
}

func NewCheckoutHandler(invoices *database.InvoiceStore) *CheckoutHandler {
	return &CheckoutHandler{invoices: invoices}
}

// --- POST /api/checkout ---
// Records the sale atomically and echoes the snapshot back for the receipt.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req database.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("invalid checkout payload: %s", bindMessage(err)))
		return
	}

	result, err := h.invoices.Checkout(req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, result)
}
