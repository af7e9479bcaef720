package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/xXTechXx/scalcetting-tracker/core/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyStoreErrorNil(t *testing.T) {
	assert.NoError(t, classifyStoreError(nil))
}

func TestClassifyStoreErrorSerializationFailure(t *testing.T) {
	err := classifyStoreError(&pgconn.PgError{Code: "40001"})
	assert.ErrorIs(t, err, models.ErrTransactionConflict)
}

func TestClassifyStoreErrorDeadlock(t *testing.T) {
	err := classifyStoreError(&pgconn.PgError{Code: "40P01"})
	assert.ErrorIs(t, err, models.ErrTransactionConflict)
}

func TestClassifyStoreErrorConnectionException(t *testing.T) {
	// 08006 connection_failure, 08000 connection_exception
	for _, code := range []string{"08000", "08006"} {
		err := classifyStoreError(&pgconn.PgError{Code: code})
		assert.ErrorIs(t, err, models.ErrStoreUnavailable)
	}
}

func TestClassifyStoreErrorWrappedPgError(t *testing.T) {
	wrapped := fmt.Errorf("record match: %w", &pgconn.PgError{Code: "40001"})
	assert.ErrorIs(t, classifyStoreError(wrapped), models.ErrTransactionConflict)
}

func TestClassifyStoreErrorNetError(t *testing.T) {
	var opErr error = &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	assert.ErrorIs(t, classifyStoreError(opErr), models.ErrStoreUnavailable)
}

func TestClassifyStoreErrorDeadlineExceeded(t *testing.T) {
	assert.ErrorIs(t, classifyStoreError(context.DeadlineExceeded), models.ErrStoreUnavailable)
}

func TestClassifyStoreErrorOtherPgErrorPassesThrough(t *testing.T) {
	// Constraint violations are terminal and keep their original identity
	pgErr := &pgconn.PgError{Code: "23505"}
	err := classifyStoreError(pgErr)
	assert.NotErrorIs(t, err, models.ErrTransactionConflict)
	assert.NotErrorIs(t, err, models.ErrStoreUnavailable)
	assert.ErrorAs(t, err, &pgErr)
}

func TestClassifyStoreErrorUnrelatedPassesThrough(t *testing.T) {
	sentinel := errors.New("boom")
	assert.Equal(t, sentinel, classifyStoreError(sentinel))
}
