// Package tokenstore persists raw session tokens in a local JSON file,
// one entry per role namespace. It is the only component that touches
// token persistence; everything else goes through Save/Load/Clear.
package tokenstore

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"property-portal/internal/model"
)

type Store struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Store {
	return &Store{path: path}
}

// Save writes the token under the role's key. Storage failures are
// logged and otherwise ignored; persistence is best effort and a failed
// write must never break a login that already succeeded in memory.
func (s *Store) Save(role string, tokenString string) {
	role = normalizeRole(role)
	if role == "" || strings.TrimSpace(tokenString) == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tokens := s.readLocked()
	tokens[role] = tokenString
	s.writeLocked(tokens)
}

// Load returns the stored token for the role, or false when there is
// none. A missing or unreadable file is treated as absence.
func (s *Store) Load(role string) (string, bool) {
	role = normalizeRole(role)
	if role == "" {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tokenString, exists := s.readLocked()[role]
	if !exists || strings.TrimSpace(tokenString) == "" {
		return "", false
	}

	return tokenString, true
}

// Clear removes the stored token for the role.
func (s *Store) Clear(role string) {
	role = normalizeRole(role)
	if role == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tokens := s.readLocked()
	if _, exists := tokens[role]; !exists {
		return
	}

	delete(tokens, role)
	s.writeLocked(tokens)
}

func (s *Store) readLocked() map[string]string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]string{}
	}

	tokens := map[string]string{}
	if err := json.Unmarshal(data, &tokens); err != nil {
		slog.Debug("token store corrupted, treating as empty", "path", s.path, "error", err)
		return map[string]string{}
	}

	return tokens
}

func (s *Store) writeLocked(tokens map[string]string) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		slog.Debug("token store directory unavailable", "path", s.path, "error", err)
		return
	}

	data, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		return
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		slog.Debug("token store write failed", "path", s.path, "error", err)
	}
}

func normalizeRole(role string) string {
	role = strings.ToLower(strings.TrimSpace(role))
	if role != model.RoleAdmin && role != model.RoleCustomer {
		return ""
	}

	return role
}
