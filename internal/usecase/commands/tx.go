package commands

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// Rollback after a successful commit reports ErrTxClosed; that is the
// normal path for the deferred rollback, not something to log.
func isTxClosed(err error) bool {
	return errors.Is(err, pgx.ErrTxClosed)
}
