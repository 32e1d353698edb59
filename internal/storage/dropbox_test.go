package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenProvider_CachesUntilExpiry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "app-key", user)
		assert.Equal(t, "app-secret", pass)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "refresh-tok", r.PostForm.Get("refresh_token"))

		n := atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"tok-%d","expires_in":14400}`, n)
	}))
	defer srv.Close()

	clock := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	p := NewTokenProvider("app-key", "app-secret", "refresh-tok", func() time.Time { return clock })
	p.endpoint = srv.URL

	tok, err := p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	// Still fresh, no second refresh.
	tok, err = p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestTokenProvider_RefreshesAfterExpiry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"tok-%d","expires_in":3600}`, n)
	}))
	defer srv.Close()

	clock := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	p := NewTokenProvider("app-key", "app-secret", "refresh-tok", func() time.Time { return clock })
	p.endpoint = srv.URL

	tok, err := p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	clock = clock.Add(2 * time.Hour)

	tok, err = p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-2", tok)
}

func TestTokenProvider_RefreshesInsideSkewWindow(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"tok-%d","expires_in":3600}`, n)
	}))
	defer srv.Close()

	clock := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	p := NewTokenProvider("app-key", "app-secret", "refresh-tok", func() time.Time { return clock })
	p.endpoint = srv.URL

	_, err := p.Token(context.Background())
	require.NoError(t, err)

	// 30 seconds short of expiry is inside the skew window.
	clock = clock.Add(time.Hour - 30*time.Second)

	tok, err := p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-2", tok)
}

func TestTokenProvider_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	p := NewTokenProvider("app-key", "app-secret", "stale-tok", nil)
	p.endpoint = srv.URL

	_, err := p.Token(context.Background())
	assert.Error(t, err)
}
