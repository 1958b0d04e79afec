package validation

import "strings"

// Violations maps a field name to a stable machine-readable code that the
// presentation layer turns into an inline field error.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Add records a violation for field unless one is already present.
func (v Violations) Add(field, code string) {
	if _, exists := v[field]; !exists {
		v[field] = code
	}
}

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "required")
	}
}

// PositiveAmount checks a minor-unit money value.
func PositiveAmount(field string, amount int64, v Violations) {
	if amount <= 0 {
		v.Add(field, "must_be_positive")
	}
}

// OneOf checks value against an allowed enum set.
func OneOf(field, value string, allowed []string, v Violations) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.Add(field, "invalid_value")
}
