package watch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dkrasnenko/sharedtab/internal/client/models"
	"github.com/dkrasnenko/sharedtab/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeDirectory struct {
	mu      sync.Mutex
	session *models.Session
	getErr  error

	events chan models.SessionEvent
	subErr error

	// when set, GetSession blocks until the channel is closed
	blockGet chan struct{}

	unsubscribed atomic.Int32
	getCalls     atomic.Int32
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{events: make(chan models.SessionEvent, 16)}
}

func (f *fakeDirectory) setSession(s *models.Session, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session, f.getErr = s, err
}

func (f *fakeDirectory) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	f.getCalls.Add(1)
	f.mu.Lock()
	block := f.blockGet
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.session, nil
}

func (f *fakeDirectory) Subscribe(ctx context.Context, sessionID string) (<-chan models.SessionEvent, func(), error) {
	if f.subErr != nil {
		return nil, nil, f.subErr
	}
	return f.events, func() { f.unsubscribed.Add(1) }, nil
}

type outcomeRecorder struct {
	mu       sync.Mutex
	outcomes []models.Outcome
}

func (r *outcomeRecorder) record(o models.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, o)
}

func (r *outcomeRecorder) all() []models.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Outcome(nil), r.outcomes...)
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal(msg)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func pendingSession(pStatus models.ParticipantStatus) *models.Session {
	return &models.Session{
		ID:     "s1",
		Status: models.SessionStatusActive,
		Participants: []*models.Participant{
			{ID: "h1", UserID: "u1", IsHost: true, Status: models.ParticipantStatusActive},
			{ID: "p9", UserID: "u2", Status: pStatus},
		},
	}
}

func TestWatcher_PushApproval_Admits(t *testing.T) {
	t.Parallel()

	dir := newFakeDirectory()
	dir.setSession(pendingSession(models.ParticipantStatusActive), nil)
	rec := &outcomeRecorder{}

	w := NewApprovalWatcher(dir, nopLogger{}, "s1", "p9", time.Hour, rec.record)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	dir.events <- models.SessionEvent{
		Type:        models.EventTypeParticipantApproved,
		SessionID:   "s1",
		Participant: &models.Participant{ID: "p9", Status: models.ParticipantStatusActive},
	}

	waitFor(t, w.Resolved, "watcher never resolved")

	outcome, source, ok := w.Outcome()
	require.True(t, ok)
	assert.Equal(t, models.OutcomeAdmitted, outcome.Kind)
	assert.Equal(t, SourcePush, source)
	require.NotNil(t, outcome.Session)
	assert.Equal(t, "s1", outcome.Session.ID)

	waitFor(t, func() bool { return len(rec.all()) == 1 }, "callback did not fire")
}

func TestWatcher_PushApproval_IgnoresOtherParticipants(t *testing.T) {
	t.Parallel()

	dir := newFakeDirectory()
	dir.setSession(pendingSession(models.ParticipantStatusPending), nil)
	rec := &outcomeRecorder{}

	w := NewApprovalWatcher(dir, nopLogger{}, "s1", "p9", time.Hour, rec.record)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	dir.events <- models.SessionEvent{
		Type:        models.EventTypeParticipantApproved,
		SessionID:   "s1",
		Participant: &models.Participant{ID: "other"},
	}

	time.Sleep(50 * time.Millisecond)
	assert.False(t, w.Resolved())
	assert.Empty(t, rec.all())
}

func TestWatcher_DuplicateApproval_FiresCallbackOnce(t *testing.T) {
	t.Parallel()

	dir := newFakeDirectory()
	dir.setSession(pendingSession(models.ParticipantStatusActive), nil)
	rec := &outcomeRecorder{}

	w := NewApprovalWatcher(dir, nopLogger{}, "s1", "p9", time.Hour, rec.record)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	approved := models.SessionEvent{
		Type:        models.EventTypeParticipantApproved,
		SessionID:   "s1",
		Participant: &models.Participant{ID: "p9"},
	}
	dir.events <- approved
	dir.events <- approved

	waitFor(t, w.Resolved, "watcher never resolved")
	time.Sleep(50 * time.Millisecond)

	assert.Len(t, rec.all(), 1)
}

func TestWatcher_PushRemoval_Rejects(t *testing.T) {
	t.Parallel()

	dir := newFakeDirectory()
	dir.setSession(pendingSession(models.ParticipantStatusPending), nil)
	rec := &outcomeRecorder{}

	w := NewApprovalWatcher(dir, nopLogger{}, "s1", "p9", time.Hour, rec.record)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	dir.events <- models.SessionEvent{
		Type:        models.EventTypeSessionUpdate,
		Event:       models.SubEventParticipantRemoved,
		SessionID:   "s1",
		Participant: &models.Participant{ID: "p9", Status: models.ParticipantStatusRemoved},
	}

	waitFor(t, w.Resolved, "watcher never resolved")

	outcome, source, ok := w.Outcome()
	require.True(t, ok)
	assert.Equal(t, models.OutcomeRejected, outcome.Kind)
	assert.Equal(t, SourcePush, source)
}

func TestWatcher_DegradedMode_AnyApprovalAdmits(t *testing.T) {
	t.Parallel()

	dir := newFakeDirectory()
	dir.setSession(pendingSession(models.ParticipantStatusActive), nil)
	rec := &outcomeRecorder{}

	w := NewApprovalWatcher(dir, nopLogger{}, "s1", "", time.Hour, rec.record)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	dir.events <- models.SessionEvent{
		Type:        models.EventTypeParticipantApproved,
		SessionID:   "s1",
		Participant: &models.Participant{ID: "whoever"},
	}

	waitFor(t, w.Resolved, "watcher never resolved")

	outcome, _, _ := w.Outcome()
	assert.Equal(t, models.OutcomeAdmitted, outcome.Kind)
}

func TestWatcher_DegradedMode_AnyRemovalRejects(t *testing.T) {
	t.Parallel()

	dir := newFakeDirectory()
	dir.setSession(pendingSession(models.ParticipantStatusPending), nil)
	rec := &outcomeRecorder{}

	w := NewApprovalWatcher(dir, nopLogger{}, "s1", "", time.Hour, rec.record)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	dir.events <- models.SessionEvent{
		Type:        models.EventTypeSessionUpdate,
		Event:       models.SubEventParticipantRemoved,
		SessionID:   "s1",
		Participant: &models.Participant{ID: "whoever"},
	}

	waitFor(t, w.Resolved, "watcher never resolved")

	outcome, _, _ := w.Outcome()
	assert.Equal(t, models.OutcomeRejected, outcome.Kind)
}

func TestWatcher_Poll_AdmitsOnActiveParticipant(t *testing.T) {
	t.Parallel()

	dir := newFakeDirectory()
	dir.setSession(pendingSession(models.ParticipantStatusPending), nil)
	rec := &outcomeRecorder{}

	w := NewApprovalWatcher(dir, nopLogger{}, "s1", "p9", 10*time.Millisecond, rec.record)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	// a few ticks with the participant still pending
	time.Sleep(50 * time.Millisecond)
	assert.False(t, w.Resolved())

	dir.setSession(pendingSession(models.ParticipantStatusActive), nil)

	waitFor(t, w.Resolved, "watcher never resolved")

	outcome, source, ok := w.Outcome()
	require.True(t, ok)
	assert.Equal(t, models.OutcomeAdmitted, outcome.Kind)
	assert.Equal(t, SourcePoll, source)
}

func TestWatcher_Poll_RejectsOnRemovedParticipant(t *testing.T) {
	t.Parallel()

	dir := newFakeDirectory()
	dir.setSession(pendingSession(models.ParticipantStatusRemoved), nil)
	rec := &outcomeRecorder{}

	w := NewApprovalWatcher(dir, nopLogger{}, "s1", "p9", 10*time.Millisecond, rec.record)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	waitFor(t, w.Resolved, "watcher never resolved")

	outcome, source, _ := w.Outcome()
	assert.Equal(t, models.OutcomeRejected, outcome.Kind)
	assert.Equal(t, SourcePoll, source)
}

func TestWatcher_PollErrors_SwallowedAndRecovered(t *testing.T) {
	t.Parallel()

	dir := newFakeDirectory()
	dir.setSession(nil, errors.New("network down"))
	rec := &outcomeRecorder{}

	w := NewApprovalWatcher(dir, nopLogger{}, "s1", "p9", 10*time.Millisecond, rec.record)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	// several failing cycles must leave the watcher alive
	waitFor(t, func() bool { return dir.getCalls.Load() >= 3 }, "poll loop stalled")
	assert.False(t, w.Resolved())

	dir.setSession(pendingSession(models.ParticipantStatusActive), nil)

	waitFor(t, w.Resolved, "watcher did not recover after poll errors")

	outcome, _, _ := w.Outcome()
	assert.Equal(t, models.OutcomeAdmitted, outcome.Kind)
	assert.Len(t, rec.all(), 1)
}

func TestWatcher_PollErrors_PushStillResolves(t *testing.T) {
	t.Parallel()

	dir := newFakeDirectory()
	dir.setSession(nil, errors.New("network down"))
	rec := &outcomeRecorder{}

	w := NewApprovalWatcher(dir, nopLogger{}, "s1", "p9", 10*time.Millisecond, rec.record)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	waitFor(t, func() bool { return dir.getCalls.Load() >= 3 }, "poll loop stalled")

	dir.events <- models.SessionEvent{
		Type:        models.EventTypeParticipantApproved,
		SessionID:   "s1",
		Participant: &models.Participant{ID: "p9"},
	}

	waitFor(t, w.Resolved, "push did not resolve through poll failures")

	outcome, source, _ := w.Outcome()
	assert.Equal(t, models.OutcomeAdmitted, outcome.Kind)
	assert.Equal(t, SourcePush, source)
	// the session fetch failed, the bare reference is still carried
	require.NotNil(t, outcome.Session)
	assert.Equal(t, "s1", outcome.Session.ID)
}

func TestWatcher_SubscribeFailure_PollOnly(t *testing.T) {
	t.Parallel()

	dir := newFakeDirectory()
	dir.subErr = errors.New("stream refused")
	dir.setSession(pendingSession(models.ParticipantStatusActive), nil)
	rec := &outcomeRecorder{}

	w := NewApprovalWatcher(dir, nopLogger{}, "s1", "p9", 10*time.Millisecond, rec.record)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	waitFor(t, w.Resolved, "poll-only watcher never resolved")

	_, source, _ := w.Outcome()
	assert.Equal(t, SourcePoll, source)
}

func TestWatcher_Stop_SuppressesInFlightSignals(t *testing.T) {
	t.Parallel()

	dir := newFakeDirectory()
	dir.blockGet = make(chan struct{})
	dir.setSession(pendingSession(models.ParticipantStatusActive), nil)
	rec := &outcomeRecorder{}

	w := NewApprovalWatcher(dir, nopLogger{}, "s1", "p9", 10*time.Millisecond, rec.record)
	require.NoError(t, w.Start(context.Background()))

	// a poll is now in flight, parked inside GetSession
	waitFor(t, func() bool { return dir.getCalls.Load() >= 1 }, "poll never started")

	stopDone := make(chan struct{})
	go func() {
		w.Stop()
		close(stopDone)
	}()

	// let Stop mark the watcher abandoned, then release the in-flight poll
	time.Sleep(30 * time.Millisecond)
	close(dir.blockGet)

	select {
	case <-stopDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}

	time.Sleep(30 * time.Millisecond)
	assert.Empty(t, rec.all(), "callback fired after Stop")
	assert.Equal(t, int32(1), dir.unsubscribed.Load())
}

func TestWatcher_Stop_Idempotent(t *testing.T) {
	t.Parallel()

	dir := newFakeDirectory()
	dir.setSession(pendingSession(models.ParticipantStatusPending), nil)

	w := NewApprovalWatcher(dir, nopLogger{}, "s1", "p9", time.Hour, nil)
	require.NoError(t, w.Start(context.Background()))

	w.Stop()
	w.Stop()
	assert.Equal(t, int32(1), dir.unsubscribed.Load())
}

func TestWatcher_StopWithoutStart_IsNoop(t *testing.T) {
	t.Parallel()

	w := NewApprovalWatcher(newFakeDirectory(), nopLogger{}, "s1", "p9", time.Hour, nil)
	w.Stop()
}

func TestWatcher_StartTwice(t *testing.T) {
	t.Parallel()

	dir := newFakeDirectory()
	dir.setSession(pendingSession(models.ParticipantStatusPending), nil)

	w := NewApprovalWatcher(dir, nopLogger{}, "s1", "p9", time.Hour, nil)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	assert.ErrorIs(t, w.Start(context.Background()), ErrAlreadyStarted)
}

func TestWatcher_SessionCancelled_Fails(t *testing.T) {
	t.Parallel()

	dir := newFakeDirectory()
	dir.setSession(pendingSession(models.ParticipantStatusPending), nil)
	rec := &outcomeRecorder{}

	w := NewApprovalWatcher(dir, nopLogger{}, "s1", "p9", time.Hour, rec.record)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	dir.events <- models.SessionEvent{
		Type:      models.EventTypeSessionUpdate,
		Event:     models.SubEventSessionCancelled,
		SessionID: "s1",
	}

	waitFor(t, w.Resolved, "watcher never resolved")

	outcome, _, _ := w.Outcome()
	assert.Equal(t, models.OutcomeFailed, outcome.Kind)
}
