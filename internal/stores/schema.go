package stores

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"deal-analytics/internal/models"
)

const (
	tableRawEvents      = "webhooks"
	tableDailyAggregate = "daily_stats"
)

type columnKind int

const (
	kindInteger columnKind = iota
	kindText
)

type column struct {
	name string
	kind columnKind
}

// tableSchema declares a table as its key column plus the columns that must exist.
// Missing columns are added on startup; existing ones are never touched.
type tableSchema struct {
	name    string
	keyDDL  func(d dialect) string
	columns []column
	indexes []string
}

func rawEventColumns() []column {
	return []column{
		{"hook_type", kindInteger},
		{"name", kindText},
		{"summa", kindText},
		{"amount", kindInteger},
		{"received_at", kindText},
		{"received_at_moscow", kindText},
		{"received_seconds", kindInteger},
		{"processing_date", kindText},
		{"raw_data", kindText},
	}
}

func dailyAggregateColumns() []column {
	columns := []column{
		{"total_count", kindInteger},
		{"total_sum", kindInteger},
	}
	for _, h := range models.AllHookTypes() {
		columns = append(columns, column{h.CountColumn(), kindInteger}, column{h.SumColumn(), kindInteger})
	}
	return columns
}

func schemas() []tableSchema {
	return []tableSchema{
		{
			name:    tableRawEvents,
			keyDDL:  func(d dialect) string { return d.idColumnDDL },
			columns: rawEventColumns(),
			indexes: []string{
				"CREATE INDEX IF NOT EXISTS idx_webhooks_date_hook ON webhooks (processing_date, hook_type)",
			},
		},
		{
			name:    tableDailyAggregate,
			keyDDL:  func(dialect) string { return "date TEXT PRIMARY KEY" },
			columns: dailyAggregateColumns(),
		},
	}
}

func (c column) ddl(d dialect) string {
	if c.kind == kindText {
		return c.name + " TEXT NOT NULL DEFAULT ''"
	}
	return c.name + " " + d.integerType + " NOT NULL DEFAULT 0"
}

// migrate creates both tables and adds any missing column with a zero default.
// Running it against an up-to-date schema issues no ALTER statements.
func migrate(ctx context.Context, db *sql.DB, d dialect) error {
	for _, table := range schemas() {
		if err := migrateTable(ctx, db, d, table); err != nil {
			return fmt.Errorf("failed to migrate table %s: %w", table.name, err)
		}
	}
	return nil
}

func migrateTable(ctx context.Context, db *sql.DB, d dialect, table tableSchema) error {
	create := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table.name, table.keyDDL(d))
	if _, err := db.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("create: %w", err)
	}

	existing, err := existingColumns(ctx, db, d, table.name)
	if err != nil {
		return err
	}
	for _, c := range table.columns {
		if _, ok := existing[c.name]; ok {
			continue
		}
		alter := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", table.name, c.ddl(d))
		if _, err := db.ExecContext(ctx, alter); err != nil {
			return fmt.Errorf("add column %s: %w", c.name, err)
		}
	}

	for _, index := range table.indexes {
		if _, err := db.ExecContext(ctx, index); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}

func existingColumns(ctx context.Context, db *sql.DB, d dialect, table string) (map[string]struct{}, error) {
	rows, err := db.QueryContext(ctx, d.rebind(d.columnsQuery), table)
	if err != nil {
		return nil, fmt.Errorf("introspect columns: %w", err)
	}
	defer rows.Close()

	columns := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan column name: %w", err)
		}
		columns[strings.ToLower(name)] = struct{}{}
	}
	return columns, rows.Err()
}
