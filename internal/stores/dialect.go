package stores

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// dialect isolates the few places where SQLite and Postgres disagree.
// Queries are written with '?' placeholders and rebound per dialect.
type dialect struct {
	name           string
	sqlDriver      string
	idColumnDDL    string
	integerType    string
	columnsQuery   string
	numberedParams bool
}

var dialects = map[string]dialect{
	DriverSQLite: {
		name:         DriverSQLite,
		sqlDriver:    "sqlite3",
		idColumnDDL:  "id INTEGER PRIMARY KEY AUTOINCREMENT",
		integerType:  "INTEGER",
		columnsQuery: "SELECT name FROM pragma_table_info(?)",
	},
	DriverPostgres: {
		name:           DriverPostgres,
		sqlDriver:      "pgx",
		idColumnDDL:    "id BIGSERIAL PRIMARY KEY",
		integerType:    "BIGINT",
		columnsQuery:   "SELECT column_name FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = ?",
		numberedParams: true,
	},
}

func lookupDialect(driver string) (dialect, error) {
	d, ok := dialects[driver]
	if !ok {
		return dialect{}, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
	return d, nil
}

// rebind rewrites '?' placeholders into $1..$n for dialects that need it.
func (d dialect) rebind(query string) string {
	if !d.numberedParams {
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

// prepareDSN adds SQLite connection parameters the store relies on: a busy
// timeout matching the operation timeout, IMMEDIATE transactions so writers
// queue on the database lock instead of failing on upgrade, and WAL journaling.
func (d dialect) prepareDSN(dsn string, operationTimeout time.Duration) string {
	if d.name != DriverSQLite || strings.HasPrefix(dsn, ":memory:") {
		return dsn
	}
	params := []string{}
	if !strings.Contains(dsn, "_busy_timeout") {
		params = append(params, "_busy_timeout="+strconv.FormatInt(operationTimeout.Milliseconds(), 10))
	}
	if !strings.Contains(dsn, "_txlock") {
		params = append(params, "_txlock=immediate")
	}
	if !strings.Contains(dsn, "_journal_mode") {
		params = append(params, "_journal_mode=WAL")
	}
	if len(params) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

// ensureDataDir creates the directory holding a file-backed SQLite database.
// Other dialects and in-memory databases need nothing on disk.
func (d dialect) ensureDataDir(dsn string) error {
	if d.name != DriverSQLite || strings.HasPrefix(dsn, ":memory:") {
		return nil
	}
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || strings.HasPrefix(path, ":memory:") {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory for %q: %w", path, err)
	}
	return nil
}
