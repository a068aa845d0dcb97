// Package state owns the single canonical invoice value. Every edit is a
// whole-value replacement: the presentation side builds a complete new
// aggregate and swaps it in, it never reaches into the current one.
package state

import (
	"errors"
	"sync"

	"github.com/smartprint/go-invoice/internal/models"
)

// ErrNoItems rejects a full replacement that carries an empty item list.
// The invoice must always keep at least one row; unlike a last-item
// removal (which is silently ignored at the reducer level) an explicit
// zero-item replacement has no sensible repair and is refused outright.
var ErrNoItems = errors.New("invoice must keep at least one line item")

// Store holds the current invoice. The mutex is here because the HTTP
// boundary is concurrent; updates still behave as strictly ordered
// whole-value replacements, last write wins.
type Store struct {
	mu      sync.RWMutex
	current models.InvoiceData
}

// New seeds the store. The seed runs through the same normalization as
// any later write.
func New(seed models.InvoiceData) *Store {
	return &Store{current: seed.Normalize()}
}

// Current returns a copy of the canonical value. Readers never alias the
// stored Items slice.
func (s *Store) Current() models.InvoiceData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Replace installs a complete new aggregate after normalizing its numeric
// fields, and returns the value as stored. The only rejected write is an
// empty item list.
func (s *Store) Replace(next models.InvoiceData) (models.InvoiceData, error) {
	if len(next.Items) == 0 {
		return models.InvoiceData{}, ErrNoItems
	}
	normalized := next.Normalize()
	s.mu.Lock()
	s.current = normalized
	s.mu.Unlock()
	return normalized.Clone(), nil
}

// Update applies fn atomically against the then-current value and
// installs the result. fn receives its own copy, so reducers compose here
// without racing concurrent edits; an async image load that completes
// between two field edits lands as one ordinary replacement in arrival
// order. Should fn strip every row, the previous rows are kept — the item
// list never goes empty.
func (s *Store) Update(fn func(models.InvoiceData) models.InvoiceData) models.InvoiceData {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := fn(s.current.Clone()).Normalize()
	if len(next.Items) == 0 {
		next.Items = s.current.Items
	}
	s.current = next
	return next.Clone()
}
