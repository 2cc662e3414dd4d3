package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnConfigDSN(t *testing.T) {
	cfg := ConnConfig{
		Host:     "127.0.0.1",
		Port:     "5432",
		Name:     "rh-hub",
		User:     "postgres",
		Password: "postgres",
	}
	require.Equal(t, "host=127.0.0.1 port=5432 user=postgres dbname=rh-hub sslmode=disable password=postgres", cfg.dsn())

	cfg.SSLMode = "require"
	require.Contains(t, cfg.dsn(), "sslmode=require")
}
