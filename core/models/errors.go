package models

import "errors"

// Errors surfaced by the core services. ErrTransactionConflict and
// ErrStoreUnavailable are retryable by the caller; the rest are terminal.
var (
	ErrUnknownPlayer          = errors.New("unknown player")
	ErrDuplicatePlayer        = errors.New("player name already taken")
	ErrInvalidTeamComposition = errors.New("invalid team composition")
	ErrTransactionConflict    = errors.New("transaction conflict")
	ErrStoreUnavailable       = errors.New("store unavailable")
	ErrOperationForbidden     = errors.New("operation forbidden")
)
