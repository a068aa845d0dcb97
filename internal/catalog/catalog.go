// Package catalog holds the quick-add service shortcuts: predefined
// label/price pairs the form uses to pre-fill a new line item. This is
// configuration data, not computed state.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Service is one quick-add shortcut.
type Service struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// Catalog is the ordered shortcut list.
type Catalog []Service

// Defaults returns the shortcut list the shop ships with.
func Defaults() Catalog {
	return Catalog{
		{Label: "ফটোকপি", Price: 3},
		{Label: "পাসপোর্ট সাইজ ছবি", Price: 10},
		{Label: "আরজিবি প্রিন্ট", Price: 10},
		{Label: "স্ক্যান কপি", Price: 10},
		{Label: "ডকুমেন্ট এডিট", Price: 20},
		{Label: "দলিল প্রিন্ট", Price: 50},
	}
}

// Load reads a shortcut list from a JSON file, falling back to Defaults
// when path is empty. Negative prices are coerced to zero the same way
// the form coerces its numeric fields.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Defaults(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var services Catalog
	if err := json.Unmarshal(data, &services); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(services) == 0 {
		return Defaults(), nil
	}
	for i := range services {
		if services[i].Price < 0 {
			services[i].Price = 0
		}
	}
	return services, nil
}

// Find returns the shortcut with the given label.
func (c Catalog) Find(label string) (Service, bool) {
	for _, svc := range c {
		if svc.Label == label {
			return svc, true
		}
	}
	return Service{}, false
}
