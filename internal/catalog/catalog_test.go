package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	c := Defaults()
	if len(c) != 6 {
		t.Fatalf("expected 6 default shortcuts, got %d", len(c))
	}
	if c[0].Label != "ফটোকপি" || c[0].Price != 3 {
		t.Errorf("unexpected first shortcut: %+v", c[0])
	}
}

func TestFind(t *testing.T) {
	c := Defaults()
	svc, ok := c.Find("স্ক্যান কপি")
	if !ok || svc.Price != 10 {
		t.Errorf("Find(স্ক্যান কপি) = %+v, %v", svc, ok)
	}
	if _, ok := c.Find("nope"); ok {
		t.Errorf("unknown label should not be found")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	content := `[{"label":"Lamination","price":15},{"label":"Bad","price":-5}]`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(c) != 2 || c[0].Label != "Lamination" || c[0].Price != 15 {
		t.Errorf("unexpected catalog: %+v", c)
	}
	if c[1].Price != 0 {
		t.Errorf("negative price not coerced: %+v", c[1])
	}
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(c) != len(Defaults()) {
		t.Errorf("expected defaults, got %+v", c)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("expected error for malformed file")
	}
}
