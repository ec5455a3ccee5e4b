package postgres

import (
	"context"
	"testing"

	"crewmatch/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		DBHost:     " db ",
		DBPort:     "5432",
		DBUser:     "crew",
		DBPassword: "s3cret",
		DBName:     "crewmatch",
		DBSSLMode:  "disable",
	})
	assert.Equal(t, "host=db port=5432 user=crew password=s3cret dbname=crewmatch sslmode=disable", dsn)
}

func TestNilPool(t *testing.T) {
	var p *Pool
	ctx := context.Background()

	assert.ErrorIs(t, p.Ping(ctx), errNilPool)
	_, err := p.Exec(ctx, "SELECT 1")
	assert.ErrorIs(t, err, errNilPool)
	_, err = p.Query(ctx, "SELECT 1")
	assert.ErrorIs(t, err, errNilPool)
	assert.ErrorIs(t, p.QueryRow(ctx, "SELECT 1").Scan(), errNilPool)
	assert.NoError(t, p.Close())
}
