package repository

import (
	"context"
	"errors"

	"github.com/Unbantucniak/FTMS/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) *PGFlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) WithTx(ctx context.Context, fn func(ctx context.Context, w FlightWriter) error) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(ctx, &pgFlightWriter{tx: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGFlightRepository) Stats(ctx context.Context) (domain.FlightStats, error) {
	var s domain.FlightStats
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*), COUNT(DISTINCT departure) FROM flight`).Scan(&s.Total, &s.DepartureCities); err != nil {
		return domain.FlightStats{}, err
	}
	return s, nil
}

func (r *PGFlightRepository) Close() error {
	r.db.Close()
	return nil
}

type pgFlightWriter struct {
	tx pgx.Tx
}

func (w *pgFlightWriter) DeleteAll(ctx context.Context) (int64, error) {
	res, err := w.tx.Exec(ctx, `DELETE FROM flight`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

// Insert uses ON CONFLICT so a duplicate does not abort the surrounding
// transaction.
func (w *pgFlightWriter) Insert(ctx context.Context, f *domain.FlightRecord) error {
	res, err := w.tx.Exec(ctx, `INSERT INTO flight (`+insertColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (flight_id) DO NOTHING`, insertArgs(f)...)
	if err != nil {
		if isPGUniqueViolation(err) {
			return ErrDuplicateFlight
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrDuplicateFlight
	}
	return nil
}

func isPGUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

var _ FlightRepository = (*PGFlightRepository)(nil)
