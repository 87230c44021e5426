package handlers

import (
	"log"
	"net/http"

	"github.com/Witcher21/GNS-POS/internal/apperr"
	"github.com/Witcher21/GNS-POS/internal/config"
	"github.com/Witcher21/GNS-POS/internal/database"
	"github.com/Witcher21/GNS-POS/internal/sms"

	"github.com/gin-gonic/gin"
)

type SMSHandler struct {
	notifier *sms.Notifier
	invoices *database.InvoiceStore
	settings *config.SMSStore
}

func NewSMSHandler(notifier *sms.Notifier, invoices *database.InvoiceStore, settings *config.SMSStore) *SMSHandler {
	return &SMSHandler{notifier: notifier, invoices: invoices, settings: settings}
}

type smsRequest struct {
	Phone     string `json:"phone" binding:"required"`
	Message   string `json:"message" binding:"required"`
	InvoiceID uint   `json:"invoice_id"`
}

// --- POST /api/sms ---
// Best-effort: a gateway failure is reported but the sale it belongs to is
// already committed and stays committed.
func (h *SMSHandler) Send(c *gin.Context) {
	var req smsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("invalid sms payload: %s", bindMessage(err)))
		return
	}

	result, err := h.notifier.Send(req.Phone, req.Message)
	if err != nil {
		fail(c, err)
		return
	}

	if result.Success && !result.Mock && req.InvoiceID != 0 {
		if err := h.invoices.MarkSMSSent(req.InvoiceID); err != nil {
			log.Printf("[SMS] could not flag invoice %d: %v", req.InvoiceID, err)
		}
	}
	ok(c, http.StatusOK, result)
}

// --- GET /api/settings/sms ---
func (h *SMSHandler) GetSettings(c *gin.Context) {
	ok(c, http.StatusOK, h.settings.Get())
}

// --- PUT /api/settings/sms ---
func (h *SMSHandler) SaveSettings(c *gin.Context) {
	var in config.SMSSettings
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.Validation("invalid settings payload: %s", bindMessage(err)))
		return
	}
	if err := h.settings.Save(in); err != nil {
		fail(c, apperr.Storage(err, "could not persist sms settings"))
		return
	}
	ok(c, http.StatusOK, in)
}
