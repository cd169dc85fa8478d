// Package models defines the server-side domain types for table sessions
// and their participants.
package models

import "time"

// SessionStatus is the lifecycle state of a table session.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusLocked    SessionStatus = "locked"
	SessionStatusPayment   SessionStatus = "payment"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// Joinable reports whether new participants may join a session in this state.
func (s SessionStatus) Joinable() bool {
	return s == SessionStatusActive || s == SessionStatusLocked
}

// Live reports whether the session still represents an ongoing table
// (new joins may be closed, but existing participants remain attached).
func (s SessionStatus) Live() bool {
	switch s {
	case SessionStatusActive, SessionStatusLocked, SessionStatusPayment:
		return true
	}
	return false
}

// ParticipantStatus is the lifecycle state of one diner within a session.
type ParticipantStatus string

const (
	ParticipantStatusPending ParticipantStatus = "pending"
	ParticipantStatusActive  ParticipantStatus = "active"
	ParticipantStatusRemoved ParticipantStatus = "removed"
)

// Session is one shared ordering context tied to a restaurant table.
// The share code is unique among live sessions only; cancelled sessions may
// leave their code free for reuse.
type Session struct {
	ID               string
	ShareCode        string
	Status           SessionStatus
	RestaurantName   string
	TableNumber      string
	RequiresApproval bool
	HostUserID       string
	ParticipantCount int
	Participants     []*Participant
	CreatedAt        time.Time
}

// Participant is one diner's membership in a session. There is exactly one
// participant row per (session, user) pair.
type Participant struct {
	ID          string
	SessionID   string
	UserID      string
	DisplayName string
	IsHost      bool
	Status      ParticipantStatus
	CreatedAt   time.Time
}
