package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"fioparser/core/config"
	"fioparser/core/dictionary"
	"fioparser/core/fio"
	"fioparser/core/storage"
)

// Prints which stage decides each token of the names given as arguments.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: debug_classify <full name>...")
	}

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

	store := dictionary.NewStore(source, cfg.Dictionary.Layout(), nil)
	if err := store.Preload(context.Background()); err != nil {
		fmt.Printf("warning: %v\n", err)
	}
	resolver, err := fio.NewResolver(store, 0, nil)
	if err != nil {
		log.Fatal(err)
	}
	classifier := resolver.Classifier()

	for _, name := range os.Args[1:] {
		fmt.Printf("\n=== %s ===\n", strings.TrimSpace(name))
		for _, t := range fio.Tokenize(name) {
			dict := "-"
			if role, ok := classifier.ByDictionary(t.Lower, 0); ok {
				dict = role.String()
			}
			suffix := "-"
			if role, ok := classifier.BySuffix(t.Lower, 0); ok {
				suffix = role.String()
			}
			fmt.Printf("%-20s dictionary=%-11s suffix=%s\n", t.Raw, dict, suffix)
		}
		resolved := resolver.Resolve(context.Background(), name)
		fmt.Printf("-> surname=%q given=%q patronymic=%q\n", resolved.Surname, resolved.GivenName, resolved.Patronymic)
	}
}
