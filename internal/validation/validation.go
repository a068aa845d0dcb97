// Package validation collects field violations for the few writes that
// can actually be refused. Numeric form fields are never rejected — they
// are coerced upstream — so this stays small.
package validation

// Violations maps a field name to a violation code.
type Violations map[string]string

// Empty reports whether no violation was recorded.
func (v Violations) Empty() bool { return len(v) == 0 }

// NotEmpty records a violation when a collection has no entries.
func NotEmpty(field string, length int, v Violations) {
	if length == 0 {
		v[field] = "must_not_be_empty"
	}
}
