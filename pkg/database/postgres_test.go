package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "db",
		Port:     "5432",
		User:     "app",
		Password: "pw",
		DBName:   "customers",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5432 user=app password=pw dbname=customers sslmode=disable", cfg.dsn())
}

func TestNewPostgresConnectionUnreachable(t *testing.T) {
	cfg := Config{
		Host:     "127.0.0.1",
		Port:     "1",
		User:     "app",
		Password: "pw",
		DBName:   "customers",
		SSLMode:  "disable",
	}

	db, err := NewPostgresConnection(cfg)
	require.Error(t, err)
	assert.Nil(t, db)
}
