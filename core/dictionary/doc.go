// Package dictionary holds the surname, given-name and patronymic dictionaries
// used to classify Russian name tokens.
//
// # Shards
//
// Dictionary data is split into shards. The layout is three single-dictionary
// files (surnames, names, patronymics; one word per line) followed by numbered
// combined shards whose lines carry "surname,given,patronymic" columns.
// Shards are read from a directory (FileSource) or from an S3/MinIO bucket
// (ObjectSource). A shard that does not exist is skipped.
//
// # Lazy Loading
//
// Nothing is read at construction. Shards are loaded on demand:
//
//   - EnsureShardLoaded loads one shard, at most once, deduplicating concurrent
//     callers with singleflight.
//   - LoadNext walks the layout in order and loads the next pending shard.
//     The name resolver calls it while tokens remain unresolved.
//   - Preload attempts every shard up front.
//
// Lookups go through sync.Map and never block on a load in progress. Dictionaries
// only grow, so a word that was visible once stays visible.
//
// # Usage
//
//	src, err := dictionary.NewSource(cfg.Dictionary, storageClient, cfg.Storage.Bucket)
//	store := dictionary.NewStore(src, cfg.Dictionary.Layout(), log)
//	store.LoadNext(ctx)
//	store.Contains("иванов", dictionary.RoleSurname)
package dictionary
