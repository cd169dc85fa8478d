// Package common defines shared constants and sentinel errors used across
// client and server layers of SharedTab. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Join taxonomy surfaced to callers of the join flow.
	ErrNotJoinable    = errors.New("session not joinable")
	ErrSessionFull    = errors.New("session full")
	ErrServerRejected = errors.New("rejected by server")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Participant state errors.
	ErrNotParticipant        = errors.New("not a participant")
	ErrNotHost               = errors.New("host action requires host role")
	ErrParticipantNotPending = errors.New("participant is not pending")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
