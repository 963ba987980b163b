package printful

import "strings"

// externalIDPrefix is the sentinel the API uses to distinguish external
// identifiers from internal numeric ones in path segments.
const externalIDPrefix = "@"

// normalizeID prepares a caller-supplied identifier for use in a request
// path. Purely numeric ids and ids already carrying the sentinel pass
// through untouched; anything else is treated as an external id and gets
// the sentinel prefixed.
func normalizeID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || strings.HasPrefix(id, externalIDPrefix) {
		return id
	}
	if isDigits(id) {
		return id
	}
	return externalIDPrefix + id
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
