package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// ErrNotFound when the row does not exist
var ErrNotFound = errors.New("repository: not found")

// ErrConflict when a write lost a race: stale version, duplicated unique key, deadlock or lock timeout.
// The whole transaction can be retried.
var ErrConflict = errors.New("repository: write conflict")

const (
	mysqlErrDuplicateEntry   = 1062
	mysqlErrLockWaitTimeout  = 1205
	mysqlErrDeadlockDetected = 1213
)

func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDuplicateEntry, mysqlErrLockWaitTimeout, mysqlErrDeadlockDetected:
			return fmt.Errorf("%w: %s", ErrConflict, mysqlErr.Message)
		}
	}
	return err
}

func checkAffected(result sql.Result, err error) error {
	if err != nil {
		return wrapError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrConflict
	}
	return nil
}
