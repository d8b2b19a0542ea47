package fio

import (
	"strings"

	"fioparser/core/dictionary"
)

// StructuredName is the result of resolving a full-name string.
type StructuredName struct {
	// Surname is the surname token, or empty.
	Surname string `json:"surname"`
	// GivenName joins the given, patronymic and unknown tokens in input order.
	GivenName string `json:"given_name"`
	// Patronymic is the patronymic token alone, also present in GivenName.
	Patronymic string `json:"patronymic"`
	// Tokens holds every input token with its assigned role.
	Tokens []Token `json:"tokens"`
}

// IsEmpty reports whether neither output field is set.
func (n StructuredName) IsEmpty() bool {
	return n.Surname == "" && n.GivenName == ""
}

// WithSurnameFallback returns the name with the first token promoted to surname
// when no token received a named role. Names with at least one named role are
// returned unchanged.
func (n StructuredName) WithSurnameFallback() StructuredName {
	if len(n.Tokens) == 0 {
		return n
	}
	for _, t := range n.Tokens {
		if t.Role.IsNamed() {
			return n
		}
	}

	tokens := make([]Token, len(n.Tokens))
	copy(tokens, n.Tokens)
	tokens[0].Role = dictionary.RoleSurname
	return compose(tokens)
}

// compose builds the output fields from classified tokens.
func compose(tokens []Token) StructuredName {
	name := StructuredName{Tokens: tokens}
	var given []string
	for _, t := range tokens {
		switch t.Role {
		case dictionary.RoleSurname:
			name.Surname = t.Raw
		case dictionary.RolePatronymic:
			name.Patronymic = t.Raw
			given = append(given, t.Raw)
		default:
			given = append(given, t.Raw)
		}
	}
	name.GivenName = strings.Join(given, " ")
	return name
}
