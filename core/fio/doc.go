// Package fio classifies the tokens of a Russian full name (ФИО) into surname,
// given name and patronymic.
//
// # Classification
//
// A token is matched against the surname, given-name and patronymic
// dictionaries in that order, then against an ordered table of suffix rules.
// A role already taken by another token of the same name is never assigned
// twice. Tokens that match nothing are kept as unknown.
//
// # Resolution
//
// Resolver.Resolve runs the dictionary phase over all tokens first. While some
// token is unresolved it asks the store to load the next shard and retries,
// so large dictionaries are only read as far as needed. The loop is bounded by
// the shard count.
//
// Output composition:
//
//   - Surname: the surname token.
//   - GivenName: given, patronymic and unknown tokens in input order.
//   - Patronymic: the patronymic token alone.
//
// WithSurnameFallback is an opt-in policy for callers that must never emit an
// empty name: when no token was placed, the first one becomes the surname.
//
// # Usage
//
//	resolver, err := fio.NewResolver(store, cfg.Dictionary.CacheSize, log)
//	name := resolver.Resolve(ctx, "Иванов Петр Сергеевич").WithSurnameFallback()
package fio
