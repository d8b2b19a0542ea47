package fio

import (
	"regexp"

	"fioparser/core/dictionary"
)

// Lookup is the read side of the dictionary store.
type Lookup interface {
	Contains(word string, role dictionary.Role) bool
}

// SuffixRule maps an ending pattern to a role.
type SuffixRule struct {
	Role    dictionary.Role
	Pattern *regexp.Regexp
}

// DefaultSuffixRules is evaluated top to bottom and the first match wins.
// The order is the tie-break: "-ина" is read as a surname before "-на" as a given name.
var DefaultSuffixRules = []SuffixRule{
	{Role: dictionary.RoleSurname, Pattern: regexp.MustCompile(`(ов|ев|ёв|ин|ын|ский|цкий|цкая|ова|ева|ёва|ина|ына|ская)$`)},
	{Role: dictionary.RolePatronymic, Pattern: regexp.MustCompile(`(вич|вна)$`)},
	{Role: dictionary.RoleGiven, Pattern: regexp.MustCompile(`(ий|ый|ая|на|ся|ша|ля|ня)$`)},
}

// Classifier assigns a role to a single token.
type Classifier struct {
	dict  Lookup
	rules []SuffixRule
}

// NewClassifier creates a classifier over dict with the default suffix rules.
func NewClassifier(dict Lookup) *Classifier {
	return &Classifier{dict: dict, rules: DefaultSuffixRules}
}

// WithRules returns a copy of the classifier using rules instead of the defaults.
func (c *Classifier) WithRules(rules []SuffixRule) *Classifier {
	return &Classifier{dict: c.dict, rules: rules}
}

// ByDictionary returns the first open role whose dictionary holds the word,
// checking surname, given and patronymic in that order.
func (c *Classifier) ByDictionary(lower string, filled RoleSet) (dictionary.Role, bool) {
	for _, role := range dictionary.Roles {
		if filled.Has(role) {
			continue
		}
		if c.dict.Contains(lower, role) {
			return role, true
		}
	}
	return dictionary.RoleUnassigned, false
}

// BySuffix returns the role of the first suffix rule matching the word.
// A rule for a filled role is skipped, so a later rule may still match.
func (c *Classifier) BySuffix(lower string, filled RoleSet) (dictionary.Role, bool) {
	for _, rule := range c.rules {
		if filled.Has(rule.Role) {
			continue
		}
		if rule.Pattern.MatchString(lower) {
			return rule.Role, true
		}
	}
	return dictionary.RoleUnassigned, false
}

// Classify runs the dictionary phase then the suffix phase.
// It returns RoleUnknown when neither matches an open role.
func (c *Classifier) Classify(lower string, filled RoleSet) dictionary.Role {
	if role, ok := c.ByDictionary(lower, filled); ok {
		return role
	}
	if role, ok := c.BySuffix(lower, filled); ok {
		return role
	}
	return dictionary.RoleUnknown
}
