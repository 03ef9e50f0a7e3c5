package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"backoffice/internal/auth"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "pgx"
)

type Env struct {
	AppAddr string
	AppEnv  string
	GinMode string

	DBDriver          string
	DBDSN             string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBConnMaxIdleTime time.Duration
	DBAutoMigrate     bool

	JWTKey      string
	JWTIssuer   string
	JWTAudience string
	JWTTTL      time.Duration

	PasswordMAC string

	AdminUsername string
	AdminEmail    string
	AdminPassword string

	CORSAllowedOrigins []string

	LogLevel    string
	LogEncoding string
}

// LoadEnv reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func LoadEnv(files ...string) Env {
	_ = godotenv.Load(files...)

	return Env{
		AppAddr: getEnv("APP_ADDR", ":8080"),
		AppEnv:  getEnv("APP_ENV", "development"),
		GinMode: getEnv("GIN_MODE", ""),

		DBDriver:          strings.ToLower(getEnv("DB_DRIVER", DriverMySQL)),
		DBDSN:             getEnv("DB_DSN", ""),
		DBMaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 10*time.Minute),
		DBConnMaxIdleTime: getEnvDuration("DB_CONN_MAX_IDLE_TIME", 5*time.Minute),
		DBAutoMigrate:     getEnvBool("DB_AUTO_MIGRATE", true),

		JWTKey:      getEnv("JWT_KEY", ""),
		JWTIssuer:   getEnv("JWT_ISSUER", ""),
		JWTAudience: getEnv("JWT_AUDIENCE", ""),
		JWTTTL:      getEnvDuration("JWT_TTL", 24*time.Hour),

		PasswordMAC: getEnv("AUTH_PASSWORD_MAC", auth.MACHMACSHA512),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "Admin123!"),

		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogEncoding: getEnv("LOG_ENCODING", ""),
	}
}

func (e Env) IsDevelopment() bool {
	return e.AppEnv == "development" || e.AppEnv == "dev"
}

// Validate reports every missing or unusable setting at once.
func (e Env) Validate() error {
	var errs []error
	if e.DBDSN == "" {
		errs = append(errs, errors.New("DB_DSN is required"))
	}
	if e.DBDriver != DriverMySQL && e.DBDriver != DriverPostgres {
		errs = append(errs, fmt.Errorf("DB_DRIVER %q is not supported (use %s or %s)", e.DBDriver, DriverMySQL, DriverPostgres))
	}
	if e.JWTKey == "" {
		errs = append(errs, errors.New("JWT_KEY is required"))
	}
	if e.JWTIssuer == "" {
		errs = append(errs, errors.New("JWT_ISSUER is required"))
	}
	if e.JWTAudience == "" {
		errs = append(errs, errors.New("JWT_AUDIENCE is required"))
	}
	if e.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	if _, err := auth.NewHasher(e.PasswordMAC); err != nil {
		errs = append(errs, fmt.Errorf("AUTH_PASSWORD_MAC: %w", err))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(value)); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
