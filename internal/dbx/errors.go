package dbx

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gadgetkeeper/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the repositories care about.
const (
	codeUniqueViolation           = "23505"
	codeCheckViolation            = "23514"
	codeInvalidTextRepresentation = "22P02"
	codeStringDataRightTruncation = "22001"
)

// StorageError is an unexpected persistence failure. Msg holds the most
// specific diagnostic the driver produced.
type StorageError struct {
	Msg string
	Err error
}

func (e *StorageError) Error() string { return e.Msg }

func (e *StorageError) Unwrap() error { return e.Err }

// Classify maps a driver error onto the project's error taxonomy:
//
//   - sql.ErrNoRows                    -> common.ErrorNotFound
//   - unique violation                 -> common.ErrorAlreadyExists
//   - check violation, bad enum input,
//     value too long for its column    -> common.ErrorValidation
//   - anything else                    -> *StorageError
//
// Already classified errors pass through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}

	var se *StorageError
	if errors.As(err, &se) ||
		errors.Is(err, common.ErrorNotFound) ||
		errors.Is(err, common.ErrorAlreadyExists) ||
		errors.Is(err, common.ErrorValidation) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s", common.ErrorAlreadyExists, pgDiagnostic(pgErr))
		case codeCheckViolation, codeInvalidTextRepresentation, codeStringDataRightTruncation:
			return fmt.Errorf("%w: %s", common.ErrorValidation, pgDiagnostic(pgErr))
		}
		return &StorageError{Msg: pgDiagnostic(pgErr), Err: err}
	}

	return &StorageError{Msg: lastLine(err.Error()), Err: err}
}

func pgDiagnostic(e *pgconn.PgError) string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Message
}

// lastLine returns the last non-empty line of a multi-line driver message.
func lastLine(msg string) string {
	lines := strings.Split(strings.TrimSpace(msg), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return msg
}
