package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"showbook/internal/interfaces"
)

// Postgres SQLSTATE codes for integrity violations.
const (
	codeNotNull    = "23502"
	codeForeignKey = "23503"
	codeUnique     = "23505"
	codeCheck      = "23514"
)

// Classify maps a driver error onto the repository error kinds. sql.ErrNoRows
// becomes interfaces.ErrNotFound, everything else a *PersistenceError.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, interfaces.ErrNotFound)
	}
	if errors.Is(err, interfaces.ErrNotFound) {
		return err
	}
	var pe *interfaces.PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	var blocked *interfaces.DeletionBlockedError
	if errors.As(err, &blocked) {
		return err
	}

	out := &interfaces.PersistenceError{Op: op, Kind: interfaces.KindOther, Err: err}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		out.Constraint = pqErr.Constraint
		switch string(pqErr.Code) {
		case codeForeignKey:
			out.Kind = interfaces.KindForeignKey
		case codeUnique:
			out.Kind = interfaces.KindUnique
		case codeNotNull:
			out.Kind = interfaces.KindNotNull
		case codeCheck:
			out.Kind = interfaces.KindCheck
		}
	}
	return out
}
