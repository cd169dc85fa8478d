package models

// Push event types and session_update sub-events as the server emits them.
const (
	EventTypeParticipantApproved = "participant_approved"
	EventTypeSessionUpdate       = "session_update"

	SubEventParticipantJoined  = "participant_joined"
	SubEventParticipantRemoved = "participant_removed"
	SubEventSessionCancelled   = "session_cancelled"
)

// SessionEvent is one push notification from the session's event stream.
// Delivery is lossy: events may arrive twice, out of order, or not at all.
type SessionEvent struct {
	Type        string
	Event       string
	SessionID   string
	Participant *Participant
	Session     *Session
}
