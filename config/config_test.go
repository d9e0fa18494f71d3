package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{EnvDBDriver, EnvDBDSN, EnvCurrency, EnvIncomeSource, EnvLogLevel, EnvEnvironment} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, SQLite, cfg.Database.Driver)
	assert.Equal(t, "realty.db", cfg.Database.DSN)
	assert.Equal(t, "PHP", cfg.Currency)
	assert.Equal(t, "embedded", cfg.IncomeSource)
	assert.Equal(t, "development", cfg.Env)
}

func TestLoadFile(t *testing.T) {
	for _, key := range []string{EnvDBDriver, EnvDBDSN, EnvCurrency} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	env := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(env, []byte("REALTY_DB_DRIVER=Postgres\nREALTY_DB_DSN=\"host=localhost dbname=realty\"\nREALTY_CURRENCY=usd\n"), 0o644))
	t.Setenv(EnvCurrency, "eur") // the environment wins over the file

	cfg, err := Load(env)
	require.NoError(t, err)
	assert.Equal(t, Postgres, cfg.Database.Driver)
	assert.Equal(t, "host=localhost dbname=realty", cfg.Database.DSN)
	assert.Equal(t, "EUR", cfg.Currency)
}

func TestLoadMalformedFile(t *testing.T) {
	t.Setenv(EnvDBDSN, "")
	os.Unsetenv(EnvDBDSN)
	dir := t.TempDir()
	env := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(env, []byte("REALTY_DB_DSN=\"realty.db\n"), 0o644))

	_, err := Load(filepath.Join(dir, "missing.env"), env)
	require.Error(t, err)
	assert.Contains(t, err.Error(), env)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"valid", Config{Database: DatabaseConfig{Driver: SQLite, DSN: ":memory:"}, Currency: "PHP"}, true},
		{"mysql", Config{Database: DatabaseConfig{Driver: "mysql", DSN: "x"}, Currency: "PHP"}, false},
		{"no dsn", Config{Database: DatabaseConfig{Driver: SQLite}, Currency: "PHP"}, false},
		{"currency", Config{Database: DatabaseConfig{Driver: SQLite, DSN: "x"}, Currency: "PESO"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
