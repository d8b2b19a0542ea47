// Package database handles the optional MySQL connection.
//
// It provides a wrapper around GORM to configure MySQL connections from the application's
// configuration. The connection is used by the contacts feature to persist the polling
// checkpoint across restarts; when it is disabled or unreachable, the service falls back to an
// in-memory checkpoint.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
