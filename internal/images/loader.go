package images

import (
	"errors"
	"io"
	"sync"

	"github.com/smartprint/go-invoice/internal/models"
	"github.com/smartprint/go-invoice/internal/state"
)

// Field identifies which image slot a load targets.
type Field int

const (
	FieldLogo Field = iota
	FieldSignature
)

// ErrSuperseded means a newer upload for the same field arrived while
// this one was still decoding; the newer request wins and this result is
// discarded without touching the aggregate.
var ErrSuperseded = errors.New("upload superseded by a newer one")

// Loader applies completed image loads to the store. Decoding runs off
// the caller's goroutine and the result lands as one atomic replacement;
// no partial update is ever observable. Each field keeps a generation
// counter so that of two racing uploads only the most recently requested
// one is applied.
type Loader struct {
	store *state.Store

	mu  sync.Mutex
	gen map[Field]uint64
}

// NewLoader builds a loader bound to the given store.
func NewLoader(store *state.Store) *Loader {
	return &Loader{store: store, gen: make(map[Field]uint64)}
}

// Start begins decoding the upload and applies it once ready. The
// returned channel delivers exactly one result: nil on success, a decode
// error, or ErrSuperseded when a later Start for the same field overtook
// this one.
func (l *Loader) Start(field Field, r io.Reader) <-chan error {
	l.mu.Lock()
	l.gen[field]++
	gen := l.gen[field]
	l.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		url, err := DataURL(r)
		if err != nil {
			done <- err
			return
		}
		// The staleness check runs inside the store update so a newer
		// upload cannot slip in between the check and the replacement.
		stale := false
		l.store.Update(func(inv models.InvoiceData) models.InvoiceData {
			l.mu.Lock()
			stale = l.gen[field] != gen
			l.mu.Unlock()
			if stale {
				return inv
			}
			if field == FieldLogo {
				return inv.WithCompanyLogo(url)
			}
			return inv.WithSignature(url)
		})
		if stale {
			done <- ErrSuperseded
			return
		}
		done <- nil
	}()
	return done
}
