package images

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/smartprint/go-invoice/internal/models"
	"github.com/smartprint/go-invoice/internal/state"
)

func newTestStore() *state.Store {
	return state.New(models.InvoiceData{
		Items: []models.LineItem{{ID: "a", Quantity: 1, UnitPrice: 3}},
	})
}

func waitErr(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatalf("load did not complete")
		return nil
	}
}

func TestLoader_AppliesLogo(t *testing.T) {
	store := newTestStore()
	l := NewLoader(store)

	if err := waitErr(t, l.Start(FieldLogo, bytes.NewReader(pngBytes(1)))); err != nil {
		t.Fatalf("load: %v", err)
	}
	cur := store.Current()
	if !strings.HasPrefix(cur.Company.Logo, "data:image/png;base64,") {
		t.Errorf("logo not applied: %q", cur.Company.Logo)
	}
	if cur.Signature != "" {
		t.Errorf("logo load touched the signature")
	}
}

func TestLoader_AppliesSignature(t *testing.T) {
	store := newTestStore()
	l := NewLoader(store)

	if err := waitErr(t, l.Start(FieldSignature, bytes.NewReader(pngBytes(2)))); err != nil {
		t.Fatalf("load: %v", err)
	}
	if sig := store.Current().Signature; !strings.HasPrefix(sig, "data:image/png;base64,") {
		t.Errorf("signature not applied: %q", sig)
	}
}

func TestLoader_FailedLoadLeavesStateUntouched(t *testing.T) {
	store := newTestStore()
	store.Update(func(inv models.InvoiceData) models.InvoiceData {
		return inv.WithCompanyLogo("data:image/png;base64,prev")
	})
	l := NewLoader(store)

	if err := waitErr(t, l.Start(FieldLogo, strings.NewReader("not an image"))); !errors.Is(err, ErrNotImage) {
		t.Fatalf("expected ErrNotImage, got %v", err)
	}
	if logo := store.Current().Company.Logo; logo != "data:image/png;base64,prev" {
		t.Errorf("failed load corrupted the logo: %q", logo)
	}
}

// gatedReader blocks the first Read until released, simulating a slow
// file upload.
type gatedReader struct {
	release chan struct{}
	data    *bytes.Reader
}

func (g *gatedReader) Read(p []byte) (int, error) {
	<-g.release
	return g.data.Read(p)
}

func TestLoader_NewerUploadSupersedesInFlight(t *testing.T) {
	store := newTestStore()
	l := NewLoader(store)

	slow := &gatedReader{release: make(chan struct{}), data: bytes.NewReader(pngBytes(1))}
	first := l.Start(FieldLogo, slow)

	second := l.Start(FieldLogo, bytes.NewReader(pngBytes(2)))
	if err := waitErr(t, second); err != nil {
		t.Fatalf("second load: %v", err)
	}
	want := store.Current().Company.Logo

	close(slow.release)
	if err := waitErr(t, first); !errors.Is(err, ErrSuperseded) {
		t.Fatalf("expected ErrSuperseded for the overtaken load, got %v", err)
	}
	if got := store.Current().Company.Logo; got != want {
		t.Errorf("overtaken load overwrote the newer image")
	}
}

func TestLoader_FieldsAreIndependent(t *testing.T) {
	store := newTestStore()
	l := NewLoader(store)

	slow := &gatedReader{release: make(chan struct{}), data: bytes.NewReader(pngBytes(1))}
	logo := l.Start(FieldLogo, slow)

	// a signature load must not supersede a pending logo load
	if err := waitErr(t, l.Start(FieldSignature, bytes.NewReader(pngBytes(2)))); err != nil {
		t.Fatalf("signature load: %v", err)
	}
	close(slow.release)
	if err := waitErr(t, logo); err != nil {
		t.Fatalf("logo load: %v", err)
	}
	cur := store.Current()
	if cur.Company.Logo == "" || cur.Signature == "" {
		t.Errorf("expected both images applied: logo=%q signature=%q", cur.Company.Logo, cur.Signature)
	}
}

var _ io.Reader = (*gatedReader)(nil)
