package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
jwt_secret_key: file-secret
listen_port: 8080
db_path: /tmp/blog.db
secure_cookies: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-secret", cfg.JWTSecretKey)
	assert.Equal(t, 8080, cfg.ListenPort)
	assert.Equal(t, "/tmp/blog.db", cfg.DBPath)
	assert.True(t, cfg.SecureCookies)

	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultListenHost, cfg.ListenHost)
	assert.Equal(t, DefaultJWTAlgorithm, cfg.JWTAlgorithm)
	assert.Equal(t, DefaultTemplateGlob, cfg.TemplateGlob)
}

func TestLoad_EnvOverridesWithoutFile(t *testing.T) {
	t.Setenv("MICROBLOG_JWT_SECRET_KEY", "env-secret")
	t.Setenv("MICROBLOG_LISTEN_PORT", "9000")

	// Run from a directory with no config.yml so only the environment
	// applies.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.JWTSecretKey)
	assert.Equal(t, 9000, cfg.ListenPort)
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("MICROBLOG_JWT_SECRET_KEY", "env-secret")

	path := writeConfigFile(t, "jwt_secret_key: file-secret\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.JWTSecretKey)
}

func TestLoad_MissingSecretKey(t *testing.T) {
	path := writeConfigFile(t, "listen_port: 8080\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret_key")
}

func TestLoad_InvalidAlgorithm(t *testing.T) {
	path := writeConfigFile(t, `
jwt_secret_key: secret
jwt_algorithm: RS256
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_algorithm")
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestAddr(t *testing.T) {
	cfg := &Config{ListenHost: "127.0.0.1", ListenPort: 3000}
	assert.Equal(t, "127.0.0.1:3000", cfg.Addr())
}
