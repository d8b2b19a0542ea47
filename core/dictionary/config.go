package dictionary

import (
	"fmt"
	"strings"

	"fioparser/core/storage"
)

// Shard source kinds.
const (
	SourceFile = "file"
	SourceS3   = "s3"
)

// Config holds configuration for the name dictionaries.
type Config struct {
	// Source selects where shards are read from (file, s3).
	Source string `mapstructure:"source" default:"file"`
	// Path is the directory holding shard files when Source is "file".
	Path string `mapstructure:"path" default:"./data"`
	// Prefix is the object key prefix holding shards when Source is "s3".
	Prefix string `mapstructure:"prefix" default:"dictionaries"`
	// SurnamesFile is a single-dictionary shard of surnames, one per line.
	SurnamesFile string `mapstructure:"surnames_file" default:"surnames.txt"`
	// NamesFile is a single-dictionary shard of given names, one per line.
	NamesFile string `mapstructure:"names_file" default:"names.txt"`
	// PatronymicsFile is a single-dictionary shard of patronymics, one per line.
	PatronymicsFile string `mapstructure:"patronymics_file" default:"patronymics.txt"`
	// CombinedPattern names combined shards; it receives the 1-based shard number.
	CombinedPattern string `mapstructure:"combined_pattern" default:"fio_%03d.txt"`
	// ShardCount is the number of combined shards.
	ShardCount int `mapstructure:"shard_count" default:"0"`
	// FallbackSurname assigns the first token to the surname when nothing else matched.
	FallbackSurname bool `mapstructure:"fallback_surname" default:"true"`
	// CacheSize is the number of resolved names memoized by the resolver.
	CacheSize int `mapstructure:"cache_size" default:"4096"`
	// Preload loads every shard at startup instead of on demand.
	Preload bool `mapstructure:"preload" default:"false"`
}

// Layout returns the shards in load order: the single-dictionary files first,
// then the numbered combined shards.
func (c Config) Layout() []ShardSpec {
	var shards []ShardSpec

	singles := []ShardSpec{
		{Name: c.SurnamesFile, Role: RoleSurname},
		{Name: c.NamesFile, Role: RoleGiven},
		{Name: c.PatronymicsFile, Role: RolePatronymic},
	}
	for _, s := range singles {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		shards = append(shards, s)
	}

	pattern := c.CombinedPattern
	if pattern == "" {
		pattern = "fio_%03d.txt"
	}
	for i := 1; i <= c.ShardCount; i++ {
		shards = append(shards, ShardSpec{Name: fmt.Sprintf(pattern, i)})
	}

	return shards
}

// NewSource builds the shard source selected by the configuration.
// The storage client is only required for the s3 source.
func NewSource(cfg Config, client storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case "", SourceFile:
		return FileSource{Dir: cfg.Path}, nil
	case SourceS3:
		if client == nil {
			return nil, fmt.Errorf("dictionary source %q requires a storage client", cfg.Source)
		}
		return NewObjectSource(client, bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown dictionary source %q", cfg.Source)
	}
}
