package sms

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Witcher21/GNS-POS/internal/apperr"
	"github.com/Witcher21/GNS-POS/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settingsStore(t *testing.T, s config.SMSSettings) *config.SMSStore {
	t.Helper()
	store, err := config.NewSMSStore(filepath.Join(t.TempDir(), "sms-settings.json"))
	require.NoError(t, err)
	if s != (config.SMSSettings{}) {
		require.NoError(t, store.Save(s))
	}
	return store
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"0771234567", "94771234567"},
		{"077-123 4567", "94771234567"},
		{"+94771234567", "94771234567"},
		{"94771234567", "94771234567"},
		{"771234567", "94771234567"},
		{"no digits", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePhone(tc.in), "input %q", tc.in)
	}
}

func TestSendWithoutCredentialsIsMock(t *testing.T) {
	n := NewNotifier(settingsStore(t, config.SMSSettings{}))

	result, err := n.Send("0771234567", "hello")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.Mock)
}

func TestSendHitsGatewayWithNormalizedNumber(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"user_id":   r.URL.Query().Get("user_id"),
			"sender_id": r.URL.Query().Get("sender_id"),
			"to":        r.URL.Query().Get("to"),
			"message":   r.URL.Query().Get("message"),
		}
		w.Write([]byte(`{"status":"success"}`))
	}))
	defer srv.Close()

	n := NewNotifier(settingsStore(t, config.SMSSettings{UserID: "31066", APIKey: "secret"}))
	n.gatewayURL = srv.URL

	result, err := n.Send("0771234567", "Bill total Rs. 450.00")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, result.Mock)

	assert.Equal(t, "31066", gotQuery["user_id"])
	assert.Equal(t, "NotifyDEMO", gotQuery["sender_id"])
	assert.Equal(t, "94771234567", gotQuery["to"])
	assert.Equal(t, "Bill total Rs. 450.00", gotQuery["message"])
}

func TestSendReportsGatewayRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","message":"invalid credentials"}`))
	}))
	defer srv.Close()

	n := NewNotifier(settingsStore(t, config.SMSSettings{UserID: "1", APIKey: "bad"}))
	n.gatewayURL = srv.URL

	result, err := n.Send("0771234567", "x")
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestSendUnparseableReplyCountsAsDelivered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	n := NewNotifier(settingsStore(t, config.SMSSettings{UserID: "1", APIKey: "k"}))
	n.gatewayURL = srv.URL

	result, err := n.Send("0771234567", "x")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "OK", result.Message)
}

func TestSendGatewayUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	n := NewNotifier(settingsStore(t, config.SMSSettings{UserID: "1", APIKey: "k"}))
	n.gatewayURL = srv.URL

	_, err := n.Send("0771234567", "x")
	require.Error(t, err)
	assert.Equal(t, apperr.KindExternal, apperr.KindOf(err))
}

func TestSendRejectsDigitlessPhone(t *testing.T) {
	n := NewNotifier(settingsStore(t, config.SMSSettings{UserID: "1", APIKey: "k"}))

	_, err := n.Send("---", "x")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
