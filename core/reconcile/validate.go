package reconcile

import (
	"regexp"

	"fioparser/core/utils"
)

// invalidNameChars matches anything outside Latin, Cyrillic, parentheses and whitespace.
// Digits fall outside the set.
var invalidNameChars = regexp.MustCompile(`[^a-zA-Zа-яА-ЯёЁ()\s\p{Zs}]`)

// ValidName reports whether name is worth resolving.
func ValidName(name string, minLength int) bool {
	if utils.RuneLen(name) < minLength || utils.Norm(name) == "" {
		return false
	}
	return !invalidNameChars.MatchString(name)
}

// NeedsUpdate reports whether p differs from what the contact stores.
// An empty proposed field never counts as a difference.
func NeedsUpdate(p Proposal, c Contact) bool {
	first := p.FirstName != "" && p.FirstName != utils.Norm(c.FirstName)
	last := p.LastName != "" && p.LastName != utils.Norm(c.LastName)
	return first || last
}
