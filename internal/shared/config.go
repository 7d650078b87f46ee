package shared

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	WebAddr     string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	CacheTTL    time.Duration

	// frontend
	APIBaseURL     string
	APIRPS         int
	ResultCacheTTL time.Duration

	// importer
	ImportCSV       string
	ImportCity      string
	ImportWorkers   int
	ImportBatchSize int
}

// Load reads the environment, after merging an optional .env file from the
// working directory. Variables already set in the process win.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg(".env could not be loaded")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:          env("APP_ENV", "prod"),
		HTTPAddr:        env("HTTP_ADDR", ":8000"),
		WebAddr:         env("WEB_ADDR", ":3000"),
		MetricsAddr:     env("METRICS_ADDR", ""),
		MySQLDSN:        env("MYSQL_DSN", ""),
		RedisAddr:       env("REDIS_ADDR", "localhost:6379"),
		RedisPass:       env("REDIS_PASSWORD", ""),
		RedisDB:         atoi("REDIS_DB", 0),
		CacheTTL:        time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		APIBaseURL:      env("API_BASE_URL", "http://localhost:8000"),
		APIRPS:          atoi("API_RPS", 20),
		ResultCacheTTL:  time.Duration(atoi("WEB_RESULT_CACHE_TTL_SECONDS", 30)) * time.Second,
		ImportCSV:       env("IMPORT_CSV", "listings.csv"),
		ImportCity:      env("IMPORT_CITY", ""),
		ImportWorkers:   atoi("IMPORT_WORKERS", 4),
		ImportBatchSize: atoi("IMPORT_BATCH_SIZE", 500),
	}
	if c.MySQLDSN != "" {
		c.MySQLDSN = withParseTime(c.MySQLDSN)
	} else {
		c.MySQLDSN = DSNFromParts(
			env("DB_USER", "root"),
			os.Getenv("DB_PASSWORD"),
			env("DB_HOST", "localhost"),
			env("DB_PORT", "3306"),
			env("DB_NAME", "properties"),
		)
	}
	return c
}

// DSNFromParts builds a go-sql-driver/mysql DSN from discrete connection
// parameters. An empty password is left out of the auth section.
func DSNFromParts(user, pass, host, port, name string) string {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	return fmt.Sprintf("%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC", auth, host, port, name)
}

// withParseTime forces parseTime on a user supplied DSN; DATE columns are
// scanned into time values.
func withParseTime(dsn string) string {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		log.Warn().Err(err).Msg("MYSQL_DSN could not be parsed, using it as is")
		return dsn
	}
	if cfg.ParseTime {
		return dsn
	}
	cfg.ParseTime = true
	return cfg.FormatDSN()
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
