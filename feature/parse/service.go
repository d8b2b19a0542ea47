package parse

import (
	"context"
	"errors"
	"strings"

	"fioparser/core/dictionary"
	"fioparser/core/fio"
	"fioparser/core/utils"

	"go.uber.org/zap"
)

// maxNameLength bounds the input accepted by Parse, in characters.
const maxNameLength = 256

var (
	// ErrEmptyName is returned for blank input.
	ErrEmptyName = errors.New("full name is required")
	// ErrNameTooLong is returned for input over maxNameLength characters.
	ErrNameTooLong = errors.New("full name is too long")
)

// Resolver resolves full names.
type Resolver interface {
	Resolve(ctx context.Context, fullName string) fio.StructuredName
}

// Result is the parsed name in the shape the CRM widget expects.
type Result struct {
	// LastName is the surname.
	LastName string `json:"lastName"`
	// FirstName is the given name plus any unplaced tokens.
	FirstName string `json:"firstName"`
	// MiddleName is the patronymic.
	MiddleName string `json:"middleName"`
	// Patronymic repeats MiddleName for older widget builds.
	Patronymic string `json:"patronymic"`
	// GivenName is the value written to the directory's first-name field.
	GivenName string `json:"givenName"`
	// Tokens lists every token with its role.
	Tokens []fio.Token `json:"tokens"`
}

// Service parses names without touching the directory.
type Service struct {
	resolver Resolver
	fallback bool
	logger   *zap.Logger
}

// NewService creates a parse service. fallback enables the
// first-token-as-surname policy.
func NewService(resolver Resolver, fallback bool, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{resolver: resolver, fallback: fallback, logger: logger}
}

// Parse resolves fullName.
func (s *Service) Parse(ctx context.Context, fullName string) (Result, error) {
	fullName = utils.CollapseSpace(fullName)
	if fullName == "" {
		return Result{}, ErrEmptyName
	}
	if utils.RuneLen(fullName) > maxNameLength {
		return Result{}, ErrNameTooLong
	}

	name := s.resolver.Resolve(ctx, fullName)
	if s.fallback {
		name = name.WithSurnameFallback()
	}

	var first []string
	for _, t := range name.Tokens {
		if t.Role == dictionary.RoleSurname || t.Role == dictionary.RolePatronymic {
			continue
		}
		first = append(first, t.Raw)
	}

	return Result{
		LastName:   name.Surname,
		FirstName:  strings.Join(first, " "),
		MiddleName: name.Patronymic,
		Patronymic: name.Patronymic,
		GivenName:  name.GivenName,
		Tokens:     name.Tokens,
	}, nil
}
