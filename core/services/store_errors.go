package services

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/xXTechXx/scalcetting-tracker/core/models"
)

// classifyStoreError maps driver-level failures onto the service error
// taxonomy so callers can tell retryable conditions apart from terminal ones.
func classifyStoreError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return models.ErrTransactionConflict
		}
		if strings.HasPrefix(pgErr.Code, "08") { // connection exception class
			return models.ErrStoreUnavailable
		}
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return models.ErrStoreUnavailable
	}

	return err
}
