package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind groups business codes by how the caller should react.
type Kind string

const (
	KindInvalid      Kind = "invalid"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindUnauthorized Kind = "unauthorized"
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Kind: KindInvalid, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrConflict(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func ErrUnauthorized(code string) error {
	return BusinessError{Kind: KindUnauthorized, Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness reports whether err carries a BusinessError anywhere in its chain.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}

// KindOf returns the kind of the first BusinessError in err's chain, or ""
// for infrastructure errors.
func KindOf(err error) Kind {
	if be, ok := AsBusiness(err); ok {
		return be.Kind
	}
	return ""
}

// IsExclusionConflict detects the postgres exclusion constraint that
// forbids overlapping confirmed appointments (SQLSTATE 23P01).
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}
