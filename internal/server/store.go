package server

import (
	"sync"
	"time"
)

// Store holds the documents of the latest completed screen.
type Store struct {
	mu   sync.RWMutex
	html []byte
	json []byte
	at   time.Time
}

// NewStore creates an empty Store.
func NewStore() *Store { return &Store{} }

// Publish replaces the stored documents.
func (s *Store) Publish(html, json []byte, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.html, s.json, s.at = html, json, at
}

// Latest returns the stored documents; ok is false before the first publish.
func (s *Store) Latest() (html, json []byte, at time.Time, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.html == nil {
		return nil, nil, time.Time{}, false
	}
	return s.html, s.json, s.at, true
}
