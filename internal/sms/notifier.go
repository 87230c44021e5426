// Package sms sends customer notifications through the notify.lk gateway.
// Delivery is best-effort: a failed or mocked send never touches the sale
// that triggered it.
package sms

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Witcher21/GNS-POS/internal/apperr"
	"github.com/Witcher21/GNS-POS/internal/config"
)

const defaultGatewayURL = "https://app.notify.lk/api/v1/send"

// Result is what the caller gets to show and dismiss. Mock marks sends that
// were skipped because no gateway credentials are configured.
type Result struct {
	Success bool   `json:"success"`
	Mock    bool   `json:"mock,omitempty"`
	Message string `json:"message,omitempty"`
}

type Notifier struct {
	settings   *config.SMSStore
	gatewayURL string
	client     *http.Client
}

// NewNotifier builds a gateway client. The short timeout keeps a slow
// gateway from holding up the checkout flow.
func NewNotifier(settings *config.SMSStore) *Notifier {
	return &Notifier{
		settings:   settings,
		gatewayURL: defaultGatewayURL,
		client:     &http.Client{Timeout: 5 * time.Second},
	}
}

// Send delivers one message. Without credentials it logs and reports a mock
// success so the UI flow stays identical on unconfigured tills.
func (n *Notifier) Send(phone, message string) (*Result, error) {
	cfg := n.settings.Get()
	if !cfg.Configured() {
		log.Printf("[SMS MOCK] No API key — To: %s | %s", phone, message)
		return &Result{Success: true, Mock: true, Message: "Mock SMS to " + phone}, nil
	}

	to := NormalizePhone(phone)
	if to == "" {
		return nil, apperr.Validation("phone number has no digits")
	}

	sender := cfg.SenderID
	if sender == "" {
		sender = "NotifyDEMO"
	}
	params := url.Values{
		"user_id":   {cfg.UserID},
		"api_key":   {cfg.APIKey},
		"sender_id": {sender},
		"to":        {to},
		"message":   {message},
	}

	resp, err := n.client.Get(n.gatewayURL + "?" + params.Encode())
	if err != nil {
		return nil, apperr.External(err, "sms gateway unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.External(err, "sms gateway response unreadable")
	}
	log.Printf("[SMS] gateway response: %s", body)

	// notify.lk answers {"status":"success",...}. Anything unparseable is
	// treated as delivered, matching the gateway's legacy plain-text replies.
	var parsed struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return &Result{Success: true, Message: string(body)}, nil
	}
	return &Result{Success: parsed.Status == "success", Message: string(body)}, nil
}

// NormalizePhone converts local numbers to the 11-digit 94XXXXXXXXX form the
// gateway requires. "0771234567" becomes "94771234567".
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	to := b.String()
	switch {
	case to == "":
		return ""
	case strings.HasPrefix(to, "0"):
		return "94" + to[1:]
	case !strings.HasPrefix(to, "94"):
		return "94" + to
	}
	return to
}
