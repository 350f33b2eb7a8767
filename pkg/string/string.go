package string

import (
	"strings"
	"unicode"
)

// TrimStrings trims every referenced string in place.
func TrimStrings(ss ...*string) {
	for _, s := range ss {
		if s == nil {
			continue
		}
		*s = strings.TrimSpace(*s)
	}
}

// TrimPtr returns a pointer to the trimmed value, or nil when s is nil.
// Partial update requests use it so that "absent" stays distinguishable from "blank".
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

// UpperPtr trims and upper-cases an optional enum value.
func UpperPtr(s *string) *string {
	if s == nil {
		return nil
	}
	upper := strings.ToUpper(strings.TrimSpace(*s))
	return &upper
}

func ToSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 &&
			(unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
