// Package models defines the client-side view of sessions and the types of
// the join/approval flow: outcomes, join attempts, the cached session pointer
// and the push event shape.
package models

import "time"

// SessionStatus mirrors the server-side lifecycle states.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusLocked    SessionStatus = "locked"
	SessionStatusPayment   SessionStatus = "payment"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// Joinable reports whether a session in this state accepts new participants.
func (s SessionStatus) Joinable() bool {
	return s == SessionStatusActive || s == SessionStatusLocked
}

// Live reports whether the session still represents an ongoing table.
func (s SessionStatus) Live() bool {
	switch s {
	case SessionStatusActive, SessionStatusLocked, SessionStatusPayment:
		return true
	}
	return false
}

// ParticipantStatus mirrors the server-side participant states.
type ParticipantStatus string

const (
	ParticipantStatusPending ParticipantStatus = "pending"
	ParticipantStatusActive  ParticipantStatus = "active"
	ParticipantStatusRemoved ParticipantStatus = "removed"
)

// Session is the device's snapshot of a server session. It is immutable
// until refetched.
type Session struct {
	ID               string
	ShareCode        string
	Status           SessionStatus
	RestaurantName   string
	TableNumber      string
	RequiresApproval bool
	ParticipantCount int
	Participants     []*Participant
}

// Participant is one diner's membership as reported by the server.
type Participant struct {
	ID          string
	UserID      string
	DisplayName string
	IsHost      bool
	Status      ParticipantStatus
}

// FindParticipant returns the participant with the given id, or nil.
func (s *Session) FindParticipant(participantID string) *Participant {
	for _, p := range s.Participants {
		if p.ID == participantID {
			return p
		}
	}
	return nil
}

// FindParticipantByUser returns the participant belonging to userID, or nil.
func (s *Session) FindParticipantByUser(userID string) *Participant {
	for _, p := range s.Participants {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

// JoinAttempt tracks one in-flight join flow. It lives only for the duration
// of the flow and is never persisted. ParticipantID is empty when the join
// response did not carry the new participant's id (degraded mode).
type JoinAttempt struct {
	SessionID     string
	ParticipantID string
	SubmittedAt   time.Time
	Outcome       *Outcome
}
