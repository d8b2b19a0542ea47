package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := Config{
		Host:           "db.local",
		Port:           3307,
		User:           "sync",
		Password:       "p@ss:word",
		Name:           "fioparser",
		TimeoutSeconds: 5,
	}

	dsn := DSN(cfg)
	assert.True(t, strings.HasPrefix(dsn, "sync:p%40ss%3Aword@tcp(db.local:3307)/fioparser?"))
	assert.Contains(t, dsn, "timeout=5s")
	assert.Contains(t, dsn, "parseTime=True")
}

func TestDSN_DefaultTimeout(t *testing.T) {
	dsn := DSN(Config{Host: "localhost", Port: 3306, User: "root", Name: "x"})
	assert.Contains(t, dsn, "timeout=10s")
}

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "fioparser",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}
