package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnv() Env {
	return Env{
		DBDriver:    DriverMySQL,
		DBDSN:       "root:pw@tcp(127.0.0.1:3306)/backoffice",
		JWTKey:      "k",
		JWTIssuer:   "iss",
		JWTAudience: "aud",
		JWTTTL:      time.Hour,
		PasswordMAC: "hmac-sha512",
	}
}

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	env := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, ":8080", env.AppAddr)
	assert.Equal(t, DriverMySQL, env.DBDriver)
	assert.Equal(t, 24*time.Hour, env.JWTTTL)
	assert.Equal(t, []string{"*"}, env.CORSAllowedOrigins)
	assert.Equal(t, "admin", env.AdminUsername)
	assert.True(t, env.DBAutoMigrate)
}

func TestLoadEnv_FromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "PGX")
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	env := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, DriverPostgres, env.DBDriver)
	assert.Equal(t, 7, env.DBMaxOpenConns)
	assert.False(t, env.DBAutoMigrate)
	assert.Equal(t, 90*time.Minute, env.JWTTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, env.CORSAllowedOrigins)
}

func TestLoadEnv_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_ISSUER=from-file\nJWT_AUDIENCE=file-aud\n"), 0o600))
	t.Setenv("JWT_AUDIENCE", "from-env")
	os.Unsetenv("JWT_ISSUER")
	t.Cleanup(func() { os.Unsetenv("JWT_ISSUER") })

	env := LoadEnv(path)
	assert.Equal(t, "from-file", env.JWTIssuer)
	assert.Equal(t, "from-env", env.JWTAudience)
}

func TestValidate(t *testing.T) {
	require.NoError(t, validEnv().Validate())

	bad := validEnv()
	bad.DBDSN = ""
	bad.JWTKey = ""
	bad.DBDriver = "sqlite"
	bad.PasswordMAC = "md5"
	err := bad.Validate()
	require.Error(t, err)
	for _, want := range []string{"DB_DSN", "JWT_KEY", "DB_DRIVER", "AUTH_PASSWORD_MAC"} {
		assert.True(t, strings.Contains(err.Error(), want), "missing %s in %q", want, err)
	}
}

func TestNormalizeMySQLDSN(t *testing.T) {
	dsn, err := NormalizeMySQLDSN("user:pw@tcp(db:3306)/shop?loc=Local")
	require.NoError(t, err)
	assert.Contains(t, dsn, "parseTime=true")
	assert.NotContains(t, dsn, "loc=Local")
	assert.Contains(t, dsn, "tcp(db:3306)/shop")

	_, err = NormalizeMySQLDSN("not a dsn")
	assert.Error(t, err)
}
