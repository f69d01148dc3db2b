package stores

import (
	"context"
	"errors"
	"testing"
	"time"

	"deal-analytics/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockedStore(t *testing.T, driver string) (*sqlEventStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return newSQLEventStore(db, dialects[driver], time.Second), mock
}

func TestSQLEventStore_UpsertAggregate_RollsBackOnIncrementFailure(t *testing.T) {
	t.Parallel()

	store, mock := newMockedStore(t, DriverSQLite)

	mock.ExpectBegin()
	mock.ExpectExec(store.ensureAggregateQuery).
		WithArgs(testDate).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(store.incrementQueries[models.HookType(7).Index()]).
		WithArgs(int64(100), int64(100), testDate).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	created, err := store.UpsertAggregate(context.Background(), testDate, 7, 100)
	assert.Error(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLEventStore_UpsertAggregate_CommitFailure(t *testing.T) {
	t.Parallel()

	store, mock := newMockedStore(t, DriverSQLite)

	mock.ExpectBegin()
	mock.ExpectExec(store.ensureAggregateQuery).
		WithArgs(testDate).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(store.incrementQueries[0]).
		WithArgs(int64(5), int64(5), testDate).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("database is locked"))

	_, err := store.UpsertAggregate(context.Background(), testDate, 1, 5)
	assert.ErrorContains(t, err, "database is locked")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLEventStore_UpsertAggregate_MissingRowRollsBack(t *testing.T) {
	t.Parallel()

	store, mock := newMockedStore(t, DriverSQLite)

	mock.ExpectBegin()
	mock.ExpectExec(store.ensureAggregateQuery).
		WithArgs(testDate).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(store.incrementQueries[0]).
		WithArgs(int64(5), int64(5), testDate).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := store.UpsertAggregate(context.Background(), testDate, 1, 5)
	assert.ErrorContains(t, err, "0 rows affected")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLEventStore_AppendRawEvent_Failure(t *testing.T) {
	t.Parallel()

	store, mock := newMockedStore(t, DriverSQLite)

	mock.ExpectQuery(store.insertRawEventQuery).WillReturnError(errors.New("no such table: webhooks"))

	_, err := store.AppendRawEvent(context.Background(), &models.RawEvent{HookType: 7})
	assert.ErrorContains(t, err, "failed to append raw event")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLEventStore_Reset_RollsBackOnFailure(t *testing.T) {
	t.Parallel()

	store, mock := newMockedStore(t, DriverSQLite)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM webhooks").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM daily_stats").WillReturnError(errors.New("locked"))
	mock.ExpectRollback()

	assert.Error(t, store.Reset(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLEventStore_Postgres_UsesNumberedPlaceholders(t *testing.T) {
	t.Parallel()

	store, mock := newMockedStore(t, DriverPostgres)

	assert.Contains(t, store.ensureAggregateQuery, "VALUES ($1)")
	assert.Contains(t, store.incrementQueries[0], "WHERE date = $3")
	assert.Contains(t, store.insertRawEventQuery, "$9) RETURNING id")

	mock.ExpectExec(store.reconcileQuery).
		WithArgs(testDate).
		WillReturnResult(sqlmock.NewResult(0, 0))

	changed, err := store.ReconcileTotals(context.Background(), testDate)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDialect_Rebind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a = ? AND b = ?", dialects[DriverSQLite].rebind("a = ? AND b = ?"))
	assert.Equal(t, "a = $1 AND b = $2", dialects[DriverPostgres].rebind("a = ? AND b = ?"))
}

func TestDialect_PrepareDSN(t *testing.T) {
	t.Parallel()

	sqlite := dialects[DriverSQLite]
	assert.Equal(t,
		"deals.db?_busy_timeout=20000&_txlock=immediate&_journal_mode=WAL",
		sqlite.prepareDSN("deals.db", 20*time.Second))
	assert.Equal(t,
		"file:deals.db?cache=shared&_busy_timeout=1&_txlock=immediate&_journal_mode=WAL",
		sqlite.prepareDSN("file:deals.db?cache=shared&_busy_timeout=1", 20*time.Second))
	assert.Equal(t, ":memory:", sqlite.prepareDSN(":memory:", time.Second))
	assert.Equal(t, "postgres://localhost/deals", dialects[DriverPostgres].prepareDSN("postgres://localhost/deals", time.Second))
}
