package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dkrasnenko/sharedtab/internal/client/cache"
	"github.com/dkrasnenko/sharedtab/internal/client/client"
	"github.com/dkrasnenko/sharedtab/internal/client/join"
	"github.com/dkrasnenko/sharedtab/internal/client/models"
	"github.com/dkrasnenko/sharedtab/internal/common"
	"github.com/dkrasnenko/sharedtab/internal/logging"
	"github.com/stretchr/testify/require"
)

// ------------ helpers ------------

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

// capturePrintln redirects printlnFn into a slice for the duration of the test.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func outputContains(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

type fakeDirectory struct {
	createOut *models.Session
	createErr error

	resolveOut *models.Session
	resolveErr error

	getOut *models.Session
	getErr error

	listOut []*models.Session
	listErr error

	joinOut *client.JoinResult
	joinErr error

	approveSession     string
	approveParticipant string
	rejectSession      string
	rejectParticipant  string
	leaveSession       string
	cancelSession      string

	events chan models.SessionEvent
}

func (f *fakeDirectory) Close() error { return nil }

func (f *fakeDirectory) RegisterDevice(ctx context.Context, displayName string) (*models.DeviceIdentity, error) {
	return &models.DeviceIdentity{UserID: "u-new", DisplayName: displayName, AccessToken: "tok"}, nil
}

func (f *fakeDirectory) CreateSession(ctx context.Context, restaurantName, tableNumber string, requiresApproval bool) (*models.Session, error) {
	return f.createOut, f.createErr
}

func (f *fakeDirectory) ResolveCode(ctx context.Context, code string) (*models.Session, error) {
	return f.resolveOut, f.resolveErr
}

func (f *fakeDirectory) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return f.getOut, f.getErr
}

func (f *fakeDirectory) ListMySessions(ctx context.Context) ([]*models.Session, error) {
	return f.listOut, f.listErr
}

func (f *fakeDirectory) Join(ctx context.Context, sessionID, code string) (*client.JoinResult, error) {
	return f.joinOut, f.joinErr
}

func (f *fakeDirectory) Approve(ctx context.Context, sessionID, participantID string) error {
	f.approveSession, f.approveParticipant = sessionID, participantID
	return nil
}

func (f *fakeDirectory) Reject(ctx context.Context, sessionID, participantID string) error {
	f.rejectSession, f.rejectParticipant = sessionID, participantID
	return nil
}

func (f *fakeDirectory) Leave(ctx context.Context, sessionID string) error {
	f.leaveSession = sessionID
	return nil
}

func (f *fakeDirectory) Cancel(ctx context.Context, sessionID string) error {
	f.cancelSession = sessionID
	return nil
}

func (f *fakeDirectory) Subscribe(ctx context.Context, sessionID string) (<-chan models.SessionEvent, func(), error) {
	if f.events == nil {
		f.events = make(chan models.SessionEvent, 16)
	}
	return f.events, func() {}, nil
}

type fakeCache struct {
	pointer  *models.CachedSessionPointer
	identity *models.DeviceIdentity

	pointerCleared bool
}

var _ cache.Repository = (*fakeCache)(nil)

func (f *fakeCache) GetPointer(ctx context.Context) (*models.CachedSessionPointer, error) {
	return f.pointer, nil
}

func (f *fakeCache) SavePointer(ctx context.Context, pointer *models.CachedSessionPointer) error {
	f.pointer = pointer
	return nil
}

func (f *fakeCache) ClearPointer(ctx context.Context) error {
	f.pointer = nil
	f.pointerCleared = true
	return nil
}

func (f *fakeCache) GetIdentity(ctx context.Context) (*models.DeviceIdentity, error) {
	return f.identity, nil
}

func (f *fakeCache) SaveIdentity(ctx context.Context, identity *models.DeviceIdentity) error {
	f.identity = identity
	return nil
}

func newTestApp(dir *fakeDirectory, repo *fakeCache, r *bufio.Reader) *App {
	return &App{
		dir:          dir,
		cacheRepo:    repo,
		orchestrator: join.NewOrchestrator(dir, nopLogger{}, 50*time.Millisecond),
		logger:       nopLogger{},
		reader:       r,
		identity:     &models.DeviceIdentity{UserID: "u-1", DisplayName: "Dina", AccessToken: "tok"},
	}
}

func testSession(status models.SessionStatus) *models.Session {
	return &models.Session{
		ID:               "s-1",
		ShareCode:        "TAB123",
		Status:           status,
		RestaurantName:   "Pelmennaya",
		TableNumber:      "7",
		ParticipantCount: 1,
		Participants: []*models.Participant{
			{ID: "p-host", UserID: "u-host", DisplayName: "Olya", IsHost: true, Status: models.ParticipantStatusActive},
		},
	}
}

// ------------ create ------------

func TestCreate_CachesHostPointer(t *testing.T) {
	out := capturePrintln(t)

	session := testSession(models.SessionStatusActive)
	session.Participants[0].UserID = "u-1" // the creating device is the host

	dir := &fakeDirectory{createOut: session}
	repo := &fakeCache{}
	app := newTestApp(dir, repo, readerFromLines(
		"Pelmennaya", // restaurant
		"7",          // table
		"y",          // require approval
	))

	require.NoError(t, app.Create(context.Background()))

	require.NotNil(t, repo.pointer)
	require.Equal(t, "s-1", repo.pointer.SessionID)
	require.Equal(t, models.RoleHost, repo.pointer.Role)
	require.Equal(t, "p-host", repo.pointer.ParticipantID)
	require.True(t, outputContains(*out, "TAB123"))
}

func TestCreate_ServerErrorLeavesCacheEmpty(t *testing.T) {
	capturePrintln(t)

	dir := &fakeDirectory{createErr: fmt.Errorf("boom")}
	repo := &fakeCache{}
	app := newTestApp(dir, repo, readerFromLines("Pelmennaya", "7", "n"))

	if err := app.Create(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if repo.pointer != nil {
		t.Fatalf("pointer should not be cached: %+v", repo.pointer)
	}
}

// ------------ join ------------

func TestJoin_ImmediateAdmissionCachesGuestPointer(t *testing.T) {
	out := capturePrintln(t)

	session := testSession(models.SessionStatusActive)
	session.Participants = append(session.Participants,
		&models.Participant{ID: "p-me", UserID: "u-1", DisplayName: "Dina", Status: models.ParticipantStatusActive})

	dir := &fakeDirectory{
		resolveOut: session,
		joinOut:    &client.JoinResult{RequiresApproval: false, Session: session, ParticipantID: "p-me"},
	}
	repo := &fakeCache{}
	app := newTestApp(dir, repo, readerFromLines("tab123"))

	require.NoError(t, app.Join(context.Background()))

	require.NotNil(t, repo.pointer)
	require.Equal(t, "s-1", repo.pointer.SessionID)
	require.Equal(t, models.RoleGuest, repo.pointer.Role)
	require.Equal(t, "p-me", repo.pointer.ParticipantID)
	require.True(t, outputContains(*out, "You are in!"))
	require.False(t, app.hasPendingJoin())
}

func TestJoin_UnknownCode(t *testing.T) {
	out := capturePrintln(t)

	dir := &fakeDirectory{resolveErr: common.ErrNotFound}
	repo := &fakeCache{}
	app := newTestApp(dir, repo, readerFromLines("NOPE42"))

	if err := app.Join(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if !outputContains(*out, "No session found") {
		t.Fatalf("missing user message, got: %v", *out)
	}
	if repo.pointer != nil {
		t.Fatalf("pointer should not be cached: %+v", repo.pointer)
	}
}

func TestJoin_ApprovalRequiredEntersWaitingState(t *testing.T) {
	capturePrintln(t)

	session := testSession(models.SessionStatusActive)
	session.RequiresApproval = true
	session.Participants = append(session.Participants,
		&models.Participant{ID: "p-me", UserID: "u-1", DisplayName: "Dina", Status: models.ParticipantStatusPending})

	dir := &fakeDirectory{
		resolveOut: session,
		getOut:     session,
		joinOut:    &client.JoinResult{RequiresApproval: true, Session: session, ParticipantID: "p-me"},
	}
	repo := &fakeCache{}
	app := newTestApp(dir, repo, readerFromLines("TAB123"))

	require.NoError(t, app.Join(context.Background()))
	require.True(t, app.hasPendingJoin())
	require.Nil(t, repo.pointer)

	require.NoError(t, app.CancelWait(context.Background()))
	require.False(t, app.hasPendingJoin())
}

func TestJoin_GuardedWhileWaiting(t *testing.T) {
	out := capturePrintln(t)

	dir := &fakeDirectory{}
	app := newTestApp(dir, &fakeCache{}, readerFromLines())
	app.setPending(&join.Pending{})

	require.NoError(t, app.Join(context.Background()))
	require.True(t, outputContains(*out, "cancelwait"))
}

func TestCancelWait_WithoutPending(t *testing.T) {
	out := capturePrintln(t)

	app := newTestApp(&fakeDirectory{}, &fakeCache{}, readerFromLines())

	require.NoError(t, app.CancelWait(context.Background()))
	require.True(t, outputContains(*out, "Not waiting"))
}

// ------------ outcome handling ------------

func TestHandleOutcome_RejectedPrintsDeclineAndLeavesCacheEmpty(t *testing.T) {
	out := capturePrintln(t)

	repo := &fakeCache{}
	app := newTestApp(&fakeDirectory{}, repo, readerFromLines())

	app.handleOutcome(models.Rejected())

	require.True(t, outputContains(*out, "declined"))
	require.Nil(t, repo.pointer)
	require.False(t, app.hasPendingJoin())
}

func TestHandleOutcome_AdmittedUsesAttemptParticipantID(t *testing.T) {
	capturePrintln(t)

	repo := &fakeCache{}
	app := newTestApp(&fakeDirectory{}, repo, readerFromLines())
	app.setPending(&join.Pending{
		Attempt: &models.JoinAttempt{SessionID: "s-1", ParticipantID: "p-me"},
	})

	app.handleOutcome(models.Admitted(testSession(models.SessionStatusActive)))

	require.NotNil(t, repo.pointer)
	require.Equal(t, "p-me", repo.pointer.ParticipantID)
	require.Equal(t, models.RoleGuest, repo.pointer.Role)
	require.False(t, app.hasPendingJoin())
}

func TestHandleOutcome_FailedReportsReason(t *testing.T) {
	out := capturePrintln(t)

	app := newTestApp(&fakeDirectory{}, &fakeCache{}, readerFromLines())

	app.handleOutcome(models.Failed("session cancelled"))

	require.True(t, outputContains(*out, "session cancelled"))
}

// ------------ status ------------

func TestStatus_WaitingState(t *testing.T) {
	out := capturePrintln(t)

	app := newTestApp(&fakeDirectory{}, &fakeCache{}, readerFromLines())
	app.setPending(&join.Pending{})

	require.NoError(t, app.Status(context.Background()))
	require.True(t, outputContains(*out, "Waiting for host approval"))
}

func TestStatus_ActiveSessionListsParticipants(t *testing.T) {
	out := capturePrintln(t)

	session := testSession(models.SessionStatusActive)
	session.Participants = append(session.Participants,
		&models.Participant{ID: "p-me", UserID: "u-1", DisplayName: "Dina", Status: models.ParticipantStatusActive})

	dir := &fakeDirectory{getOut: session}
	repo := &fakeCache{pointer: &models.CachedSessionPointer{SessionID: "s-1", ParticipantID: "p-me", Role: models.RoleGuest}}
	app := newTestApp(dir, repo, readerFromLines())

	require.NoError(t, app.Status(context.Background()))
	require.True(t, outputContains(*out, "Pelmennaya"))
	require.True(t, outputContains(*out, "[host]"))
	require.True(t, outputContains(*out, "Dina"))
}

func TestStatus_NoSession(t *testing.T) {
	out := capturePrintln(t)

	app := newTestApp(&fakeDirectory{}, &fakeCache{}, readerFromLines())

	require.NoError(t, app.Status(context.Background()))
	require.True(t, outputContains(*out, "No active session"))
}

// ------------ host commands ------------

func TestApprove_PicksPendingParticipant(t *testing.T) {
	capturePrintln(t)

	session := testSession(models.SessionStatusActive)
	session.Participants = append(session.Participants,
		&models.Participant{ID: "p-guest", UserID: "u-2", DisplayName: "Max", Status: models.ParticipantStatusPending})

	dir := &fakeDirectory{getOut: session}
	repo := &fakeCache{pointer: &models.CachedSessionPointer{SessionID: "s-1", ParticipantID: "p-host", Role: models.RoleHost}}
	app := newTestApp(dir, repo, readerFromLines("1"))

	require.NoError(t, app.Approve(context.Background()))
	require.Equal(t, "s-1", dir.approveSession)
	require.Equal(t, "p-guest", dir.approveParticipant)
}

func TestReject_InvalidChoiceMakesNoCall(t *testing.T) {
	out := capturePrintln(t)

	session := testSession(models.SessionStatusActive)
	session.Participants = append(session.Participants,
		&models.Participant{ID: "p-guest", UserID: "u-2", DisplayName: "Max", Status: models.ParticipantStatusPending})

	dir := &fakeDirectory{getOut: session}
	repo := &fakeCache{pointer: &models.CachedSessionPointer{SessionID: "s-1", Role: models.RoleHost}}
	app := newTestApp(dir, repo, readerFromLines("5"))

	require.NoError(t, app.Reject(context.Background()))
	require.Empty(t, dir.rejectSession)
	require.True(t, outputContains(*out, "Invalid choice"))
}

func TestApprove_NobodyPending(t *testing.T) {
	out := capturePrintln(t)

	dir := &fakeDirectory{getOut: testSession(models.SessionStatusActive)}
	repo := &fakeCache{pointer: &models.CachedSessionPointer{SessionID: "s-1", Role: models.RoleHost}}
	app := newTestApp(dir, repo, readerFromLines())

	require.NoError(t, app.Approve(context.Background()))
	require.Empty(t, dir.approveSession)
	require.True(t, outputContains(*out, "Nobody is waiting"))
}

func TestCancel_ConfirmedClearsCache(t *testing.T) {
	capturePrintln(t)

	dir := &fakeDirectory{}
	repo := &fakeCache{pointer: &models.CachedSessionPointer{SessionID: "s-1", Role: models.RoleHost}}
	app := newTestApp(dir, repo, readerFromLines("y"))

	require.NoError(t, app.Cancel(context.Background()))
	require.Equal(t, "s-1", dir.cancelSession)
	require.True(t, repo.pointerCleared)
}

func TestCancel_DeclinedKeepsSession(t *testing.T) {
	capturePrintln(t)

	dir := &fakeDirectory{}
	repo := &fakeCache{pointer: &models.CachedSessionPointer{SessionID: "s-1", Role: models.RoleHost}}
	app := newTestApp(dir, repo, readerFromLines("n"))

	require.NoError(t, app.Cancel(context.Background()))
	require.Empty(t, dir.cancelSession)
	require.NotNil(t, repo.pointer)
}

// ------------ leave ------------

func TestLeave_ClearsCache(t *testing.T) {
	capturePrintln(t)

	dir := &fakeDirectory{}
	repo := &fakeCache{pointer: &models.CachedSessionPointer{SessionID: "s-1", ParticipantID: "p-me", Role: models.RoleGuest}}
	app := newTestApp(dir, repo, readerFromLines())

	require.NoError(t, app.Leave(context.Background()))
	require.Equal(t, "s-1", dir.leaveSession)
	require.True(t, repo.pointerCleared)
}

func TestLeave_NoSession(t *testing.T) {
	out := capturePrintln(t)

	dir := &fakeDirectory{}
	app := newTestApp(dir, &fakeCache{}, readerFromLines())

	require.NoError(t, app.Leave(context.Background()))
	require.Empty(t, dir.leaveSession)
	require.True(t, outputContains(*out, "No active session"))
}
