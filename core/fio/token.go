package fio

import (
	"strings"

	"fioparser/core/dictionary"
)

// Token is one whitespace-delimited unit of a full-name string.
type Token struct {
	Raw      string          `json:"raw"`
	Lower    string          `json:"lower"`
	Position int             `json:"position"`
	Role     dictionary.Role `json:"role"`
}

// Tokenize splits s on whitespace and drops empty tokens.
func Tokenize(s string) []Token {
	fields := strings.Fields(s)
	tokens := make([]Token, len(fields))
	for i, f := range fields {
		tokens[i] = Token{Raw: f, Lower: strings.ToLower(f), Position: i}
	}
	return tokens
}

// RoleSet tracks which of the named roles are already filled in one name.
type RoleSet uint8

func bit(r dictionary.Role) RoleSet {
	return 1 << r
}

// Has reports whether r is filled.
func (s RoleSet) Has(r dictionary.Role) bool {
	return s&bit(r) != 0
}

// With returns s with r marked as filled. Unknown never fills a slot.
func (s RoleSet) With(r dictionary.Role) RoleSet {
	if !r.IsNamed() {
		return s
	}
	return s | bit(r)
}
