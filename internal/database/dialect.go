package database

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/thenoetrevino/projects/internal/config"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

type placeholderStyle int

const (
	placeholderQuestion placeholderStyle = iota
	placeholderDollar
)

// Dialect captures the differences between the supported databases that
// the store has to care about. Queries are written with '?' placeholders
// and rebound per dialect.
type Dialect struct {
	Name string

	placeholder placeholderStyle
	// returningKey means generated keys come back through RETURNING instead of LastInsertId
	returningKey bool
	readOnlyTx   bool
	// session statements run on every freshly acquired connection
	session []string
}

// Rebind rewrites '?' placeholders into the dialect's native style.
func (d Dialect) Rebind(query string) string {
	if d.placeholder == placeholderQuestion {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// dialectFor returns the dialect, database/sql driver name, DSN and a
// printable address (no credentials) for the given connection parameters.
func dialectFor(cfg config.DatabaseConfig) (Dialect, string, string, string, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		busy := cfg.BusyTimeout
		if busy <= 0 {
			busy = 5000
		}
		d := Dialect{
			Name:        config.DriverSQLite,
			placeholder: placeholderQuestion,
			session: []string{
				// required for ON DELETE CASCADE, and it is per connection
				"PRAGMA foreign_keys = ON",
				"PRAGMA journal_mode = WAL",
				fmt.Sprintf("PRAGMA busy_timeout = %d", busy),
			},
		}
		return d, "sqlite", cfg.Path, cfg.Path, nil

	case config.DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
		mc.DBName = cfg.Schema
		// report matched rather than changed rows so an UPDATE with unchanged values still counts
		mc.ClientFoundRows = true
		d := Dialect{
			Name:        config.DriverMySQL,
			placeholder: placeholderQuestion,
			readOnlyTx:  true,
		}
		return d, "mysql", mc.FormatDSN(), mc.Addr + "/" + cfg.Schema, nil

	case config.DriverPostgres:
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(cfg.User, cfg.Password),
			Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Path:   "/" + cfg.Schema,
		}
		d := Dialect{
			Name:         config.DriverPostgres,
			placeholder:  placeholderDollar,
			returningKey: true,
			readOnlyTx:   true,
		}
		return d, "pgx", u.String(), u.Host + "/" + cfg.Schema, nil
	}

	return Dialect{}, "", "", "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
}
