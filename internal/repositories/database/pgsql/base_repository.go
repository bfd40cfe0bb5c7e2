package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/finsight/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint violation.
const uniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// mapError translates driver errors into application errors. Missing rows
// become ErrNotFound, unique violations ErrDuplicate, everything else is
// wrapped with op for context.
func (r *BaseRepository) mapError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, op)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, op)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// requireAffected turns an update or delete that touched no row into ErrNotFound.
func requireAffected(tag pgconn.CommandTag, op string) error {
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, op)
	}
	return nil
}
