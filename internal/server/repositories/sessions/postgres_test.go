package sessions

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dkrasnenko/sharedtab/internal/common"
	"github.com/dkrasnenko/sharedtab/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func sessionColumns() []string {
	return []string{"id", "share_code", "status", "restaurant_name", "table_number", "requires_approval", "host_user_id", "created_at"}
}

func participantColumns() []string {
	return []string{"id", "session_id", "user_id", "display_name", "is_host", "status", "created_at"}
}

func TestCreateSession_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectExec(`INSERT INTO sessions .*`).
		WithArgs("s1", "ABC123", models.SessionStatusActive, "Pizzeria", "7", true, "u1", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateSession(context.Background(), &models.Session{
		ID:               "s1",
		ShareCode:        "ABC123",
		Status:           models.SessionStatusActive,
		RestaurantName:   "Pizzeria",
		TableNumber:      "7",
		RequiresApproval: true,
		HostUserID:       "u1",
		CreatedAt:        now,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetSession_LoadsParticipantsAndCountsActive(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT .* FROM sessions WHERE id=\$1`).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows(sessionColumns()).
			AddRow("s1", "ABC123", "active", "Pizzeria", "7", true, "u1", now))

	mock.ExpectQuery(`SELECT .* FROM participants WHERE session_id=\$1 ORDER BY created_at`).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows(participantColumns()).
			AddRow("p1", "s1", "u1", "Host", true, "active", now).
			AddRow("p2", "s1", "u2", "Guest", false, "pending", now))

	session, err := repo.GetSession(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(session.Participants) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(session.Participants))
	}
	if session.ParticipantCount != 1 {
		t.Fatalf("expected 1 active participant, got %d", session.ParticipantCount)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetSession_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM sessions WHERE id=\$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSession(context.Background(), "missing")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetSessionByCode_CaseInsensitive(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT .* FROM sessions\s+WHERE upper\(share_code\)=upper\(\$1\) AND status IN`).
		WithArgs("abc123").
		WillReturnRows(sqlmock.NewRows(sessionColumns()).
			AddRow("s1", "ABC123", "active", "Pizzeria", "7", false, "u1", now))
	mock.ExpectQuery(`SELECT .* FROM participants`).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows(participantColumns()))

	session, err := repo.GetSessionByCode(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.ShareCode != "ABC123" {
		t.Fatalf("unexpected share code: %s", session.ShareCode)
	}
}

func TestUpdateParticipantStatus_NotFoundWhenNoRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE participants SET status=\$1 WHERE id=\$2`).
		WithArgs(models.ParticipantStatusActive, "p-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateParticipantStatus(context.Background(), "p-missing", models.ParticipantStatusActive)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListSessionsForUser_FiltersJoinableMemberships(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT .* FROM sessions s\s+JOIN participants p ON p\.session_id = s\.id`).
		WithArgs("u2").
		WillReturnRows(sqlmock.NewRows(sessionColumns()).
			AddRow("s1", "ABC123", "active", "Pizzeria", "7", true, "u1", now))
	mock.ExpectQuery(`SELECT .* FROM participants`).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows(participantColumns()).
			AddRow("p2", "s1", "u2", "Guest", false, "active", now))

	result, err := repo.ListSessionsForUser(context.Background(), "u2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 1 || result[0].ID != "s1" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
