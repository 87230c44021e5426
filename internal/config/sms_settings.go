package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// SMSSettings is the notify.lk gateway credential blob. It lives outside the
// main database because it is device configuration, not sales data.
type SMSSettings struct {
	UserID   string `json:"user_id"`
	APIKey   string `json:"api_key"`
	SenderID string `json:"sender_id"`
}

// Configured reports whether the gateway can actually be called. Without
// credentials the notifier runs in mock mode.
func (s SMSSettings) Configured() bool {
	return s.UserID != "" && s.APIKey != ""
}

// SMSStore keeps the current gateway settings in memory and persists changes
// to a JSON file in the data dir. The notifier holds a reference so saved
// settings take effect on the next send without a restart.
type SMSStore struct {
	path string

	mu  sync.RWMutex
	cur SMSSettings
}

// NewSMSStore loads the settings file if it exists. A missing file just means
// empty settings.
func NewSMSStore(path string) (*SMSStore, error) {
	s := &SMSStore{path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read sms settings: %w", err)
	}
	if err := json.Unmarshal(raw, &s.cur); err != nil {
		return nil, fmt.Errorf("parse sms settings: %w", err)
	}
	return s, nil
}

func (s *SMSStore) Get() SMSSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

func (s *SMSStore) Save(v SMSSettings) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sms settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write sms settings: %w", err)
	}

	s.mu.Lock()
	s.cur = v
	s.mu.Unlock()
	return nil
}
