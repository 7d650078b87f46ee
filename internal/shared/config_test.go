package shared_test

import (
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"

	"property_search/internal/shared"
)

func TestLoad_DSNFromParts(t *testing.T) {
	t.Setenv("MYSQL_DSN", "")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_NAME", "listings")

	c := shared.Load()
	want := "app:s3cret@tcp(db:3307)/listings?parseTime=true&charset=utf8mb4&loc=UTC"
	if c.MySQLDSN != want {
		t.Fatalf("dsn = %q, want %q", c.MySQLDSN, want)
	}
}

func TestLoad_ExplicitDSNWins(t *testing.T) {
	t.Setenv("MYSQL_DSN", "u@tcp(h:1)/d")
	t.Setenv("DB_USER", "ignored")
	c := shared.Load()
	cfg, err := mysql.ParseDSN(c.MySQLDSN)
	if err != nil {
		t.Fatalf("dsn %q does not parse: %v", c.MySQLDSN, err)
	}
	if cfg.User != "u" || cfg.Addr != "h:1" || cfg.DBName != "d" {
		t.Fatalf("dsn = %q", c.MySQLDSN)
	}
	if !cfg.ParseTime {
		t.Fatalf("parseTime not forced on %q", c.MySQLDSN)
	}
}

func TestLoad_ExplicitDSNWithParseTimeUntouched(t *testing.T) {
	dsn := "u:p@tcp(h:1)/d?parseTime=true&loc=UTC"
	t.Setenv("MYSQL_DSN", dsn)
	if c := shared.Load(); c.MySQLDSN != dsn {
		t.Fatalf("dsn = %q, want %q", c.MySQLDSN, dsn)
	}
}

func TestLoad_Durations(t *testing.T) {
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("WEB_RESULT_CACHE_TTL_SECONDS", "not-a-number")
	c := shared.Load()
	if c.CacheTTL != time.Minute {
		t.Fatalf("CacheTTL = %v", c.CacheTTL)
	}
	if c.ResultCacheTTL != 30*time.Second {
		t.Fatalf("ResultCacheTTL = %v, want default", c.ResultCacheTTL)
	}
}

func TestDSNFromParts_NoPassword(t *testing.T) {
	got := shared.DSNFromParts("root", "", "localhost", "3306", "properties")
	if got != "root@tcp(localhost:3306)/properties?parseTime=true&charset=utf8mb4&loc=UTC" {
		t.Fatalf("dsn = %q", got)
	}
}
