package errors

// SQLite-specific helpers for mapping driver errors to project ErrorCode and retry semantics

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	sqlite "modernc.org/sqlite"
)

// Primary and extended result codes we care about
// see https://sqlite.org/rescode.html
const (
	sqliteBusy   = 5 // SQLITE_BUSY
	sqliteLocked = 6 // SQLITE_LOCKED

	sqliteConstraint           = 19   // SQLITE_CONSTRAINT
	sqliteConstraintForeignKey = 787  // SQLITE_CONSTRAINT_FOREIGNKEY
	sqliteConstraintNotNull    = 1299 // SQLITE_CONSTRAINT_NOTNULL
	sqliteConstraintPrimaryKey = 1555 // SQLITE_CONSTRAINT_PRIMARYKEY
	sqliteConstraintUnique     = 2067 // SQLITE_CONSTRAINT_UNIQUE
)

// ExtractSQLiteError returns (*sqlite.Error, true) if the root cause is a driver error
func ExtractSQLiteError(err error) (*sqlite.Error, bool) {
	var se *sqlite.Error
	if stderrs.As(Root(err), &se) {
		return se, true
	}
	return nil, false
}

// IsResultCode reports whether the error carries the given SQLite result code
// extended codes match exactly; primary codes also match their extensions
func IsResultCode(err error, code int) bool {
	se, ok := ExtractSQLiteError(err)
	if !ok {
		return false
	}
	if se.Code() == code {
		return true
	}
	return se.Code()&0xff == code
}

// IsDuplicateKey reports whether the error is a unique constraint violation
func IsDuplicateKey(err error) bool {
	se, ok := ExtractSQLiteError(err)
	if !ok {
		return false
	}
	return se.Code() == sqliteConstraintUnique || se.Code() == sqliteConstraintPrimaryKey
}

// IsForeignKeyViolation reports whether the error is a foreign key constraint violation
func IsForeignKeyViolation(err error) bool { return IsResultCode(err, sqliteConstraintForeignKey) }

// IsNotNullViolation reports whether the error is a not-null constraint violation
func IsNotNullViolation(err error) bool { return IsResultCode(err, sqliteConstraintNotNull) }

// IsBusy reports whether the database was locked by another connection
func IsBusy(err error) bool {
	return IsResultCode(err, sqliteBusy) || IsResultCode(err, sqliteLocked)
}

// DBErrorCode maps a SQLite error to an ErrorCode with an ok flag
// !ok means err wasn't a driver error; caller may fall back to generic handling
func DBErrorCode(err error) (ErrorCode, bool) {
	se, ok := ExtractSQLiteError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch {
	case se.Code() == sqliteConstraintUnique, se.Code() == sqliteConstraintPrimaryKey:
		return ErrorCodeDuplicateKey, true
	case se.Code()&0xff == sqliteConstraint:
		return ErrorCodeInvalidArgument, true
	case se.Code()&0xff == sqliteBusy, se.Code()&0xff == sqliteLocked:
		return ErrorCodeUnavailable, true
	default:
		return ErrorCodeDB, true
	}
}

// MapDB converts a raw driver error into a project *Error with a useful code
// nil passes through; non-driver errors wrap as ErrorCodeDB
func MapDB(err error, op string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return WithOp(Wrap(err, code, fmt.Sprintf("%s failed", op)), op)
}

// IsRetryable reports whether a retry may succeed
// busy/locked errors and context-free transient failures qualify
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if IsBusy(err) {
		return true
	}
	// string match as a last resort for wrapped driver messages
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "database table is locked")
}
