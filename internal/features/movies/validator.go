package movies

import "strings"

// NormalizeQuery trims the raw search term. An empty or whitespace-only
// term is rejected before the catalog is called.
func NormalizeQuery(raw string) (string, bool) {
	term := strings.TrimSpace(raw)
	if term == "" {
		return "", false
	}
	return term, true
}
