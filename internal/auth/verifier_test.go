package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orangeot/backoffice-api/internal/config"
)

func TestHTTPVerifier_Verify(t *testing.T) {
	t.Run("valid token resolves to user", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
			assert.Equal(t, "anon-key", r.Header.Get("apikey"))
			w.Write([]byte(`{"id":"u-1","email":"admin@orangeot.com"}`))
		}))
		defer srv.Close()

		v := NewHTTPVerifier(config.AdminConfig{
			AuthURL: srv.URL,
			APIKey:  "anon-key",
			Timeout: time.Second,
		}, srv.Client())

		user, err := v.Verify(context.Background(), "token-123")

		require.NoError(t, err)
		assert.Equal(t, "admin@orangeot.com", user.Email)
	})

	t.Run("empty token short-circuits", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		v := NewHTTPVerifier(config.AdminConfig{AuthURL: srv.URL}, srv.Client())
		_, err := v.Verify(context.Background(), "")

		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.False(t, called)
	})

	t.Run("provider rejects token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		v := NewHTTPVerifier(config.AdminConfig{AuthURL: srv.URL}, srv.Client())
		_, err := v.Verify(context.Background(), "bad-token")

		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("missing email claim is unauthorized", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":"u-1"}`))
		}))
		defer srv.Close()

		v := NewHTTPVerifier(config.AdminConfig{AuthURL: srv.URL}, srv.Client())
		_, err := v.Verify(context.Background(), "token-123")

		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("provider error is not unauthorized", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		v := NewHTTPVerifier(config.AdminConfig{AuthURL: srv.URL}, srv.Client())
		_, err := v.Verify(context.Background(), "token-123")

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnauthorized)
	})
}
