package repository

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/lib/pq"

	"github.com/sagestone/sagestone/internal/domain"
)

const pqUniqueViolation = "23505"

// classifyError maps driver failures onto domain error kinds. Unique
// violations become ErrConflict and connectivity failures become
// ErrDatabaseUnavailable; anything else is returned unchanged.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == pqUniqueViolation {
			return &domain.ErrConflict{Constraint: pqErr.Constraint, Err: err}
		}
		if isConnectionCode(pqErr.Code) {
			return &domain.ErrDatabaseUnavailable{Err: err}
		}
		return err
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.Is(err, syscall.ECONNREFUSED) {
		return &domain.ErrDatabaseUnavailable{Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return &domain.ErrDatabaseUnavailable{Err: err}
	}

	return err
}

// isConnectionCode reports SQLSTATE codes that mean the server cannot serve
// the request: connection exceptions, shutdowns, too many connections,
// unknown database and authentication failures.
func isConnectionCode(code pq.ErrorCode) bool {
	switch code {
	case "57P01", "57P02", "57P03", "53300", "3D000":
		return true
	}
	class := string(code.Class())
	return class == "08" || strings.HasPrefix(string(code), "28")
}

// isUniqueViolation reports whether err is a unique violation on constraint.
// An empty constraint matches any unique violation.
func isUniqueViolation(err error, constraint string) bool {
	var conflict *domain.ErrConflict
	if !errors.As(err, &conflict) {
		return false
	}
	return constraint == "" || conflict.Constraint == constraint
}
