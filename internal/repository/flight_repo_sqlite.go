package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Unbantucniak/FTMS/internal/domain"
	"github.com/mattn/go-sqlite3"
)

// SQLiteFlightRepository writes to the FTMS backend's own database file.
type SQLiteFlightRepository struct {
	db *sql.DB
}

// OpenSQLite opens an existing database file read-write. It never creates
// the file: the backend owns the schema.
func OpenSQLite(ctx context.Context, path string) (*SQLiteFlightRepository, error) {
	dsn := fmt.Sprintf("file:%s?mode=rw&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return NewSQLiteFlightRepository(db), nil
}

func NewSQLiteFlightRepository(db *sql.DB) *SQLiteFlightRepository {
	return &SQLiteFlightRepository{db: db}
}

func (r *SQLiteFlightRepository) WithTx(ctx context.Context, fn func(ctx context.Context, w FlightWriter) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(ctx, &sqliteFlightWriter{tx: tx}); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *SQLiteFlightRepository) Stats(ctx context.Context) (domain.FlightStats, error) {
	var s domain.FlightStats
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*), COUNT(DISTINCT departure) FROM flight`).Scan(&s.Total, &s.DepartureCities); err != nil {
		return domain.FlightStats{}, err
	}
	return s, nil
}

func (r *SQLiteFlightRepository) Close() error {
	return r.db.Close()
}

type sqliteFlightWriter struct {
	tx *sql.Tx
}

func (w *sqliteFlightWriter) DeleteAll(ctx context.Context) (int64, error) {
	res, err := w.tx.ExecContext(ctx, `DELETE FROM flight`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Insert relies on SQLite rolling back only the failed statement, so the
// transaction survives a duplicate.
func (w *sqliteFlightWriter) Insert(ctx context.Context, f *domain.FlightRecord) error {
	_, err := w.tx.ExecContext(ctx, `INSERT INTO flight (`+insertColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, insertArgs(f)...)
	if isSQLiteUniqueViolation(err) {
		return ErrDuplicateFlight
	}
	return err
}

func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

var _ FlightRepository = (*SQLiteFlightRepository)(nil)
