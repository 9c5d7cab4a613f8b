package services

import "strings"

// Filter matchers. All listing filters are conjunctive: an entity survives
// only if every present criterion matches. A nil field never matches a
// present criterion.

func equalsFold(field *string, want string) bool {
	return field != nil && strings.EqualFold(*field, want)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
