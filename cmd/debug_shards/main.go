package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fioparser/core/config"
	"fioparser/core/dictionary"
	"fioparser/core/storage"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	var client storage.Client
	if cfg.Dictionary.Source == dictionary.SourceS3 {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			log.Fatal(err)
		}
	}

	source, err := dictionary.NewSource(cfg.Dictionary, client, cfg.Storage.Bucket)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	counts := map[dictionary.Role]int{}

	fmt.Printf("=== Shards from %q source ===\n", cfg.Dictionary.Source)
	for i, shard := range cfg.Dictionary.Layout() {
		rc, err := source.Open(ctx, shard.Name)
		if errors.Is(err, dictionary.ErrShardNotFound) {
			fmt.Printf("%3d %-24s missing\n", i, shard.Name)
			continue
		}
		if err != nil {
			fmt.Printf("%3d %-24s error: %v\n", i, shard.Name, err)
			continue
		}

		stats, err := dictionary.ParseShard(rc, shard.Role, func(role dictionary.Role, _ string) {
			counts[role]++
		})
		rc.Close()
		if err != nil {
			fmt.Printf("%3d %-24s parse error: %v\n", i, shard.Name, err)
			continue
		}

		role := "combined"
		if shard.Role.IsNamed() {
			role = shard.Role.String()
		}
		fmt.Printf("%3d %-24s %-10s lines=%d words=%d skipped=%d\n", i, shard.Name, role, stats.Lines, stats.Words, stats.Skipped)
	}

	fmt.Println("\n=== Words per role (duplicates included) ===")
	for _, role := range dictionary.Roles {
		fmt.Printf("%-12s %d\n", role, counts[role])
	}
}
