// Package config provides configuration management for the FIO parser service.
//
// It utilizes Viper for loading configuration from environment variables and an optional
// .env file. Defaults live next to each section in `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port and API key
//   - Log: Logging level and format
//   - Database: optional MySQL checkpoint store
//   - Storage: S3/MinIO credentials for dictionary shards
//   - Dictionary: shard source, layout and resolver options
//   - Directory: amoCRM domain, token and paging
//   - Sync: retry policy, validation and polling cadence
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Directory.Domain)
package config
