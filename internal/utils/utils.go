package utils

import (
	"strconv"
	"strings"
)

// CanonicalID maps the numeric and string renderings of the same product
// identifier to one form, so "007", 7 and "7" all compare equal in the cart
// and in order payloads.
func CanonicalID(id string) string {
	id = strings.TrimSpace(id)
	if n, err := strconv.ParseUint(id, 10, 64); err == nil {
		return strconv.FormatUint(n, 10)
	}
	return id
}

// NormalizePhone strips formatting from a RU phone number and rewrites the
// legacy leading 8 to the +7 country prefix.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) == 11 && digits[0] == '8' {
		digits = "7" + digits[1:]
	}
	if digits == "" {
		return ""
	}
	return "+" + digits
}

func StrPtr(s string) *string {
	return &s
}

func Float64Ptr(f float64) *float64 {
	return &f
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
