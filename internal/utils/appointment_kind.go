package utils

import "strings"

// IsValidKind reports whether kind is one of the two accepted appointment
// kinds. Matching is case-insensitive; the caller stores the supplied
// casing untouched.
func IsValidKind(kind string) bool {
	switch strings.ToLower(kind) {
	case "new patient", "follow-up":
		return true
	}
	return false
}
