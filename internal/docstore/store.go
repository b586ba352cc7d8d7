package docstore

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNotFound is returned for unknown or expired document IDs.
var ErrNotFound = errors.New("document not found")

// Document is an uploaded document held for viewing.
type Document struct {
	ID       string `json:"doc_id"`
	Filename string `json:"filename"`
	Title    string `json:"title"`
	Markdown string `json:"-"`

	ContentHash string    `json:"content_hash"`
	CreatedAt   time.Time `json:"created_at"`
	AccessedAt  time.Time `json:"accessed_at"`
}

// Store is a thread-safe in-memory document registry with TTL eviction.
// Documents are keyed by a prefix of their content hash, so uploading the
// same text twice yields the same ID.
type Store struct {
	mu      sync.Mutex
	docs    map[string]*Document
	ttl     time.Duration
	maxDocs int
}

// New creates a store. maxDocs <= 0 means unbounded.
func New(ttl time.Duration, maxDocs int) *Store {
	return &Store{
		docs:    make(map[string]*Document),
		ttl:     ttl,
		maxDocs: maxDocs,
	}
}

// Put stores a document and returns its stored copy. Re-uploading
// identical content refreshes the existing entry.
func (s *Store) Put(filename, title, markdown string) Document {
	hash := ContentHashHex([]byte(markdown))
	id := hash[:16]
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if doc, ok := s.docs[id]; ok {
		doc.Filename = filename
		doc.Title = title
		doc.AccessedAt = now
		return *doc
	}

	if s.maxDocs > 0 && len(s.docs) >= s.maxDocs {
		s.evictOldestLocked()
	}

	doc := &Document{
		ID:          id,
		Filename:    filename,
		Title:       title,
		Markdown:    markdown,
		ContentHash: hash,
		CreatedAt:   now,
		AccessedAt:  now,
	}
	s.docs[id] = doc
	return *doc
}

// Get returns a copy of the document and marks it as recently used.
func (s *Store) Get(id string) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok || s.expiredLocked(doc, time.Now()) {
		return Document{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	doc.AccessedAt = time.Now()
	return *doc, nil
}

// Delete removes a document.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.docs, id)
	return nil
}

// Len returns the number of stored documents, including expired ones not
// yet cleaned up.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

// Cleanup removes expired documents and returns how many were removed.
func (s *Store) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	removed := 0
	for id, doc := range s.docs {
		if s.expiredLocked(doc, now) {
			delete(s.docs, id)
			removed++
		}
	}
	return removed
}

// Run calls Cleanup every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Cleanup()
		}
	}
}

func (s *Store) expiredLocked(doc *Document, now time.Time) bool {
	return s.ttl > 0 && now.Sub(doc.AccessedAt) > s.ttl
}

func (s *Store) evictOldestLocked() {
	var oldest *Document
	for _, doc := range s.docs {
		if oldest == nil || doc.AccessedAt.Before(oldest.AccessedAt) {
			oldest = doc
		}
	}
	if oldest != nil {
		delete(s.docs, oldest.ID)
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
