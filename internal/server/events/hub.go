// Package events implements the in-process fan-out of session events to
// subscribed push streams.
//
// Delivery is best-effort: a subscriber that does not keep up has events
// dropped rather than blocking the publisher. Clients are expected to treat
// the push channel as lossy and reconcile through polling.
package events

import (
	"sync"

	"github.com/dkrasnenko/sharedtab/internal/server/models"
)

// Top-level event types and session_update sub-events on the wire.
const (
	TypeParticipantApproved = "participant_approved"
	TypeSessionUpdate       = "session_update"

	SubEventParticipantJoined  = "participant_joined"
	SubEventParticipantRemoved = "participant_removed"
	SubEventSessionCancelled   = "session_cancelled"
)

// Event is one session notification as published by the sessions service.
type Event struct {
	Type        string
	SubEvent    string
	SessionID   string
	Participant *models.Participant
	Session     *models.Session
}

const subscriberBuffer = 16

type subscriber struct {
	ch chan Event
}

// Hub fans session events out to per-session subscribers.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]*subscriber
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[int]*subscriber)}
}

// Subscribe registers a listener for one session and returns the delivery
// channel together with an unsubscribe function. Unsubscribing closes the
// channel; it is safe to call more than once.
func (h *Hub) Subscribe(sessionID string) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	sub := &subscriber{ch: make(chan Event, subscriberBuffer)}
	if h.subs[sessionID] == nil {
		h.subs[sessionID] = make(map[int]*subscriber)
	}
	h.subs[sessionID][id] = sub

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if m := h.subs[sessionID]; m != nil {
				delete(m, id)
				if len(m) == 0 {
					delete(h.subs, sessionID)
				}
			}
			close(sub.ch)
		})
	}
	return sub.ch, unsubscribe
}

// Publish delivers an event to every subscriber of its session. Subscribers
// with a full buffer are skipped.
func (h *Hub) Publish(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs[event.SessionID] {
		select {
		case sub.ch <- event:
		default:
			// Slow subscriber: drop. The poll path covers the gap.
		}
	}
}

// SubscriberCount reports the number of listeners for a session.
func (h *Hub) SubscriberCount(sessionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[sessionID])
}
