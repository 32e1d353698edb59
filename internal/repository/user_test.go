package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mehanizm/airtable"
	"github.com/pixelplot/ShootBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"
)

func newUserRepo(t *testing.T, handler http.HandlerFunc) *UserRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := airtable.NewClient("test-key")
	client.SetBaseURL(srv.URL)

	return NewUserRepo(client, "appTest", "Users", retry.Strategy{
		Attempts: 1,
		Delay:    time.Millisecond,
		Backoff:  1,
	})
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	repo := newUserRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"records":[]}`))
	})

	_, err := repo.GetByEmail(context.Background(), "missing@example.com")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_Create_EmailTaken(t *testing.T) {
	var inserts int
	repo := newUserRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			inserts++
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"records":[{"id":"rec1","fields":{"Email":"alice@example.com"}}]}`))
	})

	err := repo.Create(context.Background(), &domain.User{Email: "alice@example.com"})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.Zero(t, inserts)
}

func TestUserRepository_Create_InsertsWhenEmailFree(t *testing.T) {
	repo := newUserRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			w.Write([]byte(`{"records":[{"id":"recNew","fields":{"Email":"alice@example.com"}}]}`))
			return
		}
		w.Write([]byte(`{"records":[]}`))
	})

	u := &domain.User{Email: "alice@example.com", Role: domain.RoleClient, Status: domain.UserStatusActive}
	err := repo.Create(context.Background(), u)

	require.NoError(t, err)
	assert.Equal(t, "recNew", u.RecordID)
}

func TestUserRepository_Create_LookupFailurePropagates(t *testing.T) {
	repo := newUserRepo(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"server trouble"}`, http.StatusInternalServerError)
	})

	err := repo.Create(context.Background(), &domain.User{Email: "alice@example.com"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrEmailTaken)
}
