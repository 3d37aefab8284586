package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "bdu-inventory", cfg.App.Name)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "*", cfg.CORS.AllowOrigins())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/inv?sslmode=require")
	t.Setenv("CORS_ORIGINS", "https://a.com, https://b.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "postgres://u:p@db:5432/inv?sslmode=require", cfg.DB.ConnectionString())
	assert.Equal(t, "https://a.com,https://b.com", cfg.CORS.AllowOrigins())
}

// TestDSN_PasswordConCaracteresEspeciales verifica el URL encoding de la
// contraseña en el DSN construido.
func TestDSN_PasswordConCaracteresEspeciales(t *testing.T) {
	db := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "bdu_inventory",
		SSLMode:  "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss%2Fword")
	assert.Contains(t, dsn, "sslmode=disable")

	// Sin DATABASE_URL, ConnectionString cae al DSN construido.
	assert.Equal(t, dsn, db.ConnectionString())
}
