package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"deal-analytics/internal/models"
)

var (
	ErrInvalidHookType   = errors.New("hook type out of range")
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

const defaultOperationTimeout = 20 * time.Second

// EventStore owns the append-only raw event log and the per-day aggregate rows.
//
//go:generate mockgen -source=event_store.go -destination=./mocks/event_store_mock.go -package=mocks
type EventStore interface {
	// AppendRawEvent inserts event and returns its store-assigned id.
	AppendRawEvent(ctx context.Context, event *models.RawEvent) (int64, error)
	// UpsertAggregate adds one event of hook carrying amount to date's row in a
	// single transaction. created reports whether the row was inserted by this call.
	UpsertAggregate(ctx context.Context, date string, hook models.HookType, amount int64) (created bool, err error)
	// ReadAggregate returns date's row, inserting a zero-filled one when absent.
	ReadAggregate(ctx context.Context, date string) (*models.DailyAggregate, error)
	// ReconcileTotals rewrites date's totals from the per-hook columns when they
	// disagree and reports whether a row was changed.
	ReconcileTotals(ctx context.Context, date string) (bool, error)
	QueryRawEvents(ctx context.Context, filter models.EventFilter) ([]*models.RawEvent, error)
	// AvailableDates lists aggregate dates, newest first.
	AvailableDates(ctx context.Context) ([]string, error)
	// Reset deletes every row of both tables.
	Reset(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

type Options struct {
	Driver           string
	DSN              string
	OperationTimeout time.Duration
	MaxOpenConns     int
}

type sqlEventStore struct {
	db      *sql.DB
	dialect dialect
	timeout time.Duration

	insertRawEventQuery  string
	ensureAggregateQuery string
	selectAggregateQuery string
	reconcileQuery       string
	incrementQueries     [models.HookCount]string
}

// Open connects to the configured database and brings the schema up to date.
func Open(ctx context.Context, opts Options) (EventStore, error) {
	d, err := lookupDialect(opts.Driver)
	if err != nil {
		return nil, err
	}
	timeout := opts.OperationTimeout
	if timeout <= 0 {
		timeout = defaultOperationTimeout
	}

	if err := d.ensureDataDir(opts.DSN); err != nil {
		return nil, err
	}
	db, err := sql.Open(d.sqlDriver, d.prepareDSN(opts.DSN, timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", d.name, err)
	}
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}

	migrateCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := migrate(migrateCtx, db, d); err != nil {
		_ = db.Close()
		return nil, err
	}
	return newSQLEventStore(db, d, timeout), nil
}

func newSQLEventStore(db *sql.DB, d dialect, timeout time.Duration) *sqlEventStore {
	s := &sqlEventStore{db: db, dialect: d, timeout: timeout}

	rawColumns := columnNames(rawEventColumns())
	s.insertRawEventQuery = d.rebind(fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		tableRawEvents, strings.Join(rawColumns, ", "), placeholders(len(rawColumns)),
	))
	s.ensureAggregateQuery = d.rebind(fmt.Sprintf(
		"INSERT INTO %s (date) VALUES (?) ON CONFLICT (date) DO NOTHING", tableDailyAggregate,
	))
	s.selectAggregateQuery = d.rebind(fmt.Sprintf(
		"SELECT date, %s FROM %s WHERE date = ?",
		strings.Join(columnNames(dailyAggregateColumns()), ", "), tableDailyAggregate,
	))

	countSum, amountSum := hookColumnSums()
	s.reconcileQuery = d.rebind(fmt.Sprintf(
		"UPDATE %[1]s SET total_count = %[2]s, total_sum = %[3]s WHERE date = ? AND (total_count <> %[2]s OR total_sum <> %[3]s)",
		tableDailyAggregate, countSum, amountSum,
	))

	for _, h := range models.AllHookTypes() {
		s.incrementQueries[h.Index()] = d.rebind(fmt.Sprintf(
			"UPDATE %[1]s SET %[2]s = %[2]s + 1, %[3]s = %[3]s + ?, total_count = total_count + 1, total_sum = total_sum + ? WHERE date = ?",
			tableDailyAggregate, h.CountColumn(), h.SumColumn(),
		))
	}
	return s
}

func (s *sqlEventStore) AppendRawEvent(ctx context.Context, event *models.RawEvent) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var id int64
	err := s.db.QueryRowContext(ctx, s.insertRawEventQuery,
		int(event.HookType),
		event.Name,
		event.RawAmount,
		event.Amount,
		event.ReceivedAtUTC,
		event.ReceivedAtLocal,
		event.ReceivedSecondsDay,
		event.ProcessingDate,
		event.RawPayload,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to append raw event: %w", err)
	}
	event.ID = id
	return id, nil
}

func (s *sqlEventStore) UpsertAggregate(ctx context.Context, date string, hook models.HookType, amount int64) (bool, error) {
	if !hook.Valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidHookType, int(hook))
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var created bool
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		created, err = s.ensureAggregate(ctx, tx, date)
		if err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, s.incrementQueries[hook.Index()], amount, amount, date)
		if err != nil {
			return fmt.Errorf("increment hook %d: %w", int(hook), err)
		}
		if n, err := result.RowsAffected(); err == nil && n != 1 {
			return fmt.Errorf("increment hook %d: %d rows affected", int(hook), n)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to upsert aggregate for %s: %w", date, err)
	}
	return created, nil
}

func (s *sqlEventStore) ReadAggregate(ctx context.Context, date string) (*models.DailyAggregate, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	aggregate := models.NewEmptyDailyAggregate(date)
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := s.ensureAggregate(ctx, tx, date); err != nil {
			return err
		}
		dest := make([]any, 0, 3+2*models.HookCount)
		dest = append(dest, &aggregate.Date, &aggregate.TotalCount, &aggregate.TotalSum)
		for i := range aggregate.Hooks {
			dest = append(dest, &aggregate.Hooks[i].Count, &aggregate.Hooks[i].Sum)
		}
		return tx.QueryRowContext(ctx, s.selectAggregateQuery, date).Scan(dest...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read aggregate for %s: %w", date, err)
	}
	return aggregate, nil
}

func (s *sqlEventStore) ReconcileTotals(ctx context.Context, date string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.db.ExecContext(ctx, s.reconcileQuery, date)
	if err != nil {
		return false, fmt.Errorf("failed to reconcile totals for %s: %w", date, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to reconcile totals for %s: %w", date, err)
	}
	return n > 0, nil
}

func (s *sqlEventStore) QueryRawEvents(ctx context.Context, filter models.EventFilter) ([]*models.RawEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	query, args := s.buildRawEventQuery(filter)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query raw events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.RawEvent, 0)
	for rows.Next() {
		var (
			event    models.RawEvent
			hookType int
		)
		if err := rows.Scan(
			&event.ID,
			&hookType,
			&event.Name,
			&event.RawAmount,
			&event.Amount,
			&event.ReceivedAtUTC,
			&event.ReceivedAtLocal,
			&event.ReceivedSecondsDay,
			&event.ProcessingDate,
			&event.RawPayload,
		); err != nil {
			return nil, fmt.Errorf("failed to scan raw event: %w", err)
		}
		event.HookType = models.HookType(hookType)
		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate raw events: %w", err)
	}
	return events, nil
}

func (s *sqlEventStore) buildRawEventQuery(filter models.EventFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)
	if filter.ProcessingDate != "" {
		conditions = append(conditions, "processing_date = ?")
		args = append(args, filter.ProcessingDate)
	}
	if filter.HookType != 0 {
		conditions = append(conditions, "hook_type = ?")
		args = append(args, int(filter.HookType))
	}
	if filter.Window.FromSeconds != nil {
		conditions = append(conditions, "received_seconds >= ?")
		args = append(args, *filter.Window.FromSeconds)
	}
	if filter.Window.ToSeconds != nil {
		conditions = append(conditions, "received_seconds <= ?")
		args = append(args, *filter.Window.ToSeconds)
	}

	var b strings.Builder
	b.WriteString("SELECT id, ")
	b.WriteString(strings.Join(columnNames(rawEventColumns()), ", "))
	b.WriteString(" FROM ")
	b.WriteString(tableRawEvents)
	if len(conditions) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conditions, " AND "))
	}
	b.WriteString(" ORDER BY received_at DESC, id DESC")
	if filter.Limit > 0 {
		b.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	return s.dialect.rebind(b.String()), args
}

func (s *sqlEventStore) AvailableDates(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// dates are DD.MM.YYYY, so order by year, month, day.
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT date FROM %s ORDER BY substr(date, 7, 4) DESC, substr(date, 4, 2) DESC, substr(date, 1, 2) DESC",
		tableDailyAggregate,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to list dates: %w", err)
	}
	defer rows.Close()

	dates := make([]string, 0)
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("failed to scan date: %w", err)
		}
		dates = append(dates, date)
	}
	return dates, rows.Err()
}

func (s *sqlEventStore) Reset(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{tableRawEvents, tableDailyAggregate} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to reset store: %w", err)
	}
	return nil
}

func (s *sqlEventStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.db.PingContext(ctx)
}

func (s *sqlEventStore) Close() error {
	return s.db.Close()
}

func (s *sqlEventStore) ensureAggregate(ctx context.Context, tx *sql.Tx, date string) (bool, error) {
	result, err := tx.ExecContext(ctx, s.ensureAggregateQuery, date)
	if err != nil {
		return false, fmt.Errorf("ensure aggregate row: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("ensure aggregate row: %w", err)
	}
	return n == 1, nil
}

// inTx runs fn in a transaction, committing on success and rolling back otherwise.
func (s *sqlEventStore) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func columnNames(columns []column) []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.name
	}
	return names
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// hookColumnSums returns "(hook1_count + ... + hookN_count)" and the same for sums.
func hookColumnSums() (string, string) {
	counts := make([]string, 0, models.HookCount)
	sums := make([]string, 0, models.HookCount)
	for _, h := range models.AllHookTypes() {
		counts = append(counts, h.CountColumn())
		sums = append(sums, h.SumColumn())
	}
	return "(" + strings.Join(counts, " + ") + ")", "(" + strings.Join(sums, " + ") + ")"
}
