package models

// Roles recorded in the cached session pointer.
const (
	RoleHost  = "host"
	RoleGuest = "guest"
)

// CachedSessionPointer is the persisted "session I last participated in"
// record. Written only after an Admitted outcome; cleared on explicit
// leave/cancel or when the reconciler detects server-side removal.
type CachedSessionPointer struct {
	SessionID     string
	ParticipantID string
	Role          string
}

// DeviceIdentity is the persisted device registration: the server-issued
// user id and its access token.
type DeviceIdentity struct {
	UserID      string
	DisplayName string
	AccessToken string
}
