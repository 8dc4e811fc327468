package dao

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrDuplicateKey           = errors.New("duplicate key")
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
)

// translateErr normalises driver errors so callers only test sentinels.
func translateErr(err error) error {
	if err == nil {
		return nil
	}

	if isDuplicateKey(err) {
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	}
	if isConnectionErr(err) {
		return fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
	}

	return err
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, ErrDuplicateKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return true
	}

	// sqlite builds without extended result codes only report the message.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isConnectionErr(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
