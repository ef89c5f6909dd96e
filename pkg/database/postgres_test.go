package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/campus-reports-api/pkg/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "reports",
		Password: "secret",
		Name:     "campus_events",
		SSLMode:  "disable",
	})
	assert.Equal(t, "host=db port=5432 user=reports password=secret dbname=campus_events sslmode=disable", dsn)
}
