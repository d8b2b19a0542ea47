package fio

import (
	"context"

	"fioparser/core/dictionary"
	"fioparser/core/utils"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// Dictionary is the dictionary store as seen by the resolver.
type Dictionary interface {
	Lookup
	LoadNext(ctx context.Context) bool
}

// allRoles is the RoleSet with every named slot filled.
var allRoles = RoleSet(0).With(dictionary.RoleSurname).With(dictionary.RoleGiven).With(dictionary.RolePatronymic)

// Resolver turns full-name strings into structured names.
type Resolver struct {
	dict       Dictionary
	classifier *Classifier
	cache      *lru.Cache[string, StructuredName]
	logger     *zap.Logger
}

// NewResolver creates a resolver over dict. A cacheSize of zero disables memoization.
func NewResolver(dict Dictionary, cacheSize int, logger *zap.Logger) (*Resolver, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Resolver{
		dict:       dict,
		classifier: NewClassifier(dict),
		logger:     logger,
	}
	if cacheSize > 0 {
		cache, err := lru.New[string, StructuredName](cacheSize)
		if err != nil {
			return nil, err
		}
		r.cache = cache
	}
	return r, nil
}

// Resolve classifies every token of fullName.
//
// Tokens that no loaded dictionary knows trigger sequential shard loading,
// one shard at a time, until they resolve or the shards run out. Only then do
// suffix rules apply. Remaining tokens are kept as unknown.
//
// The first result for a given input is memoized, so repeated calls agree even
// as the dictionaries keep growing.
func (r *Resolver) Resolve(ctx context.Context, fullName string) StructuredName {
	key := utils.CollapseSpace(fullName)
	if key == "" {
		return StructuredName{Tokens: []Token{}}
	}
	if r.cache != nil {
		if name, ok := r.cache.Get(key); ok {
			return name.clone()
		}
	}

	tokens := Tokenize(key)
	var filled RoleSet

	dictionaryPass := func() int {
		unresolved := 0
		for i := range tokens {
			if tokens[i].Role != dictionary.RoleUnassigned {
				continue
			}
			if role, ok := r.classifier.ByDictionary(tokens[i].Lower, filled); ok {
				tokens[i].Role = role
				filled = filled.With(role)
				continue
			}
			unresolved++
		}
		return unresolved
	}

	unresolved := dictionaryPass()
	loads := 0
	for unresolved > 0 && filled != allRoles && ctx.Err() == nil && r.dict.LoadNext(ctx) {
		loads++
		unresolved = dictionaryPass()
	}

	for i := range tokens {
		if tokens[i].Role != dictionary.RoleUnassigned {
			continue
		}
		if role, ok := r.classifier.BySuffix(tokens[i].Lower, filled); ok {
			tokens[i].Role = role
			filled = filled.With(role)
			continue
		}
		tokens[i].Role = dictionary.RoleUnknown
	}

	name := compose(tokens)

	r.logger.Debug("Name resolved",
		zap.String("input", key),
		zap.String("surname", name.Surname),
		zap.String("given_name", name.GivenName),
		zap.Int("shard_loads", loads),
	)

	// An interrupted load loop may have stopped early; do not pin that result.
	if r.cache != nil && ctx.Err() == nil {
		r.cache.Add(key, name.clone())
	}
	return name
}

// Classifier returns the token classifier used by the resolver.
func (r *Resolver) Classifier() *Classifier {
	return r.classifier
}

func (n StructuredName) clone() StructuredName {
	tokens := make([]Token, len(n.Tokens))
	copy(tokens, n.Tokens)
	n.Tokens = tokens
	return n
}
