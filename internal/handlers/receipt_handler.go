package handlers

import (
	"log"
	"net/http"

	"github.com/Witcher21/GNS-POS/internal/apperr"
	"github.com/Witcher21/GNS-POS/internal/database"
	"github.com/Witcher21/GNS-POS/internal/receipt"

	"github.com/gin-gonic/gin"
)

type ReceiptHandler struct {
	renderer *receipt.Renderer
	invoices *database.InvoiceStore
}

func NewReceiptHandler(renderer *receipt.Renderer, invoices *database.InvoiceStore) *ReceiptHandler {
	return &ReceiptHandler{renderer: renderer, invoices: invoices}
}

// --- POST /api/receipts ---
// Takes the checkout snapshot as-is and writes the PDF. The resulting path is
// written back to the invoice row; failing that write never fails the render.
func (h *ReceiptHandler) Render(c *gin.Context) {
	var snapshot database.CheckoutResult
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		fail(c, apperr.Validation("invalid invoice snapshot: %s", bindMessage(err)))
		return
	}

	path, err := h.renderer.Render(&snapshot)
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.invoices.SetReceiptPath(snapshot.InvoiceID, path); err != nil {
		log.Printf("[RECEIPT] could not record path on invoice %d: %v", snapshot.InvoiceID, err)
	}
	ok(c, http.StatusOK, gin.H{"path": path})
}
