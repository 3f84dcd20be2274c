package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	AppPort  string
	AppEnv   string
	LogLevel string

	DBDriver   string
	MySQLHost  string
	MySQLPort  string
	MySQLDB    string
	MySQLUser  string
	MySQLPass  string
	SQLitePath string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	IdempTTLSecs   int
	SessionTTLSecs int

	// Optional admin created by `migrate` when no member with this email exists.
	BootstrapAdminEmail    string
	BootstrapAdminPassword string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

// Load reads the environment. A .env file in the working directory is applied
// first when present; real environment variables win over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort:  getenv("APP_PORT", "8080"),
		AppEnv:   getenv("APP_ENV", "production"),
		LogLevel: strings.ToLower(getenv("LOG_LEVEL", "info")),

		DBDriver:   strings.ToLower(getenv("DB_DRIVER", DriverMySQL)),
		MySQLHost:  getenv("MYSQL_HOST", "mysql"),
		MySQLPort:  getenv("MYSQL_PORT", "3306"),
		MySQLDB:    getenv("MYSQL_DB", "savings"),
		MySQLUser:  getenv("MYSQL_USER", "savings"),
		MySQLPass:  getenv("MYSQL_PASS", "savings"),
		SQLitePath: getenv("SQLITE_PATH", "savings.db"),

		RedisAddr:     getenv("REDIS_ADDR", "redis:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getenvInt("REDIS_DB", 0),

		IdempTTLSecs:   getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),
		SessionTTLSecs: getenvInt("SESSION_TTL_SECONDS", 8*60*60),

		BootstrapAdminEmail:    os.Getenv("BOOTSTRAP_ADMIN_EMAIL"),
		BootstrapAdminPassword: os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"),
	}
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	switch c.DBDriver {
	case DriverMySQL:
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("missing SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want mysql or sqlite)", c.DBDriver)
	}
	if c.RedisAddr == "" {
		return errors.New("missing REDIS_ADDR")
	}
	if c.IdempTTLSecs <= 0 || c.SessionTTLSecs <= 0 {
		return errors.New("IDEMPOTENCY_TTL_SECONDS and SESSION_TTL_SECONDS must be positive")
	}
	if (c.BootstrapAdminEmail == "") != (c.BootstrapAdminPassword == "") {
		return errors.New("BOOTSTRAP_ADMIN_EMAIL and BOOTSTRAP_ADMIN_PASSWORD must be set together")
	}
	return nil
}

func (c *Config) IsDevelopment() bool { return strings.EqualFold(c.AppEnv, "development") }

func (c *Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLSecs) * time.Second
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATE/DATETIME columns
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
