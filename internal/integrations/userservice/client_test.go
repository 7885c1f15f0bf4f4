package userservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/internal/users/7":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":7,"name":"Alice","email":"alice@example.com","is_active":true}`))
		case "/internal/users/404":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nopLogger{})

	t.Run("found", func(t *testing.T) {
		profile, err := client.GetProfile(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), profile.ID)
		assert.Equal(t, "Alice", profile.Name)
		assert.True(t, profile.IsActive)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := client.GetProfile(context.Background(), 404)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("server error", func(t *testing.T) {
		_, err := client.GetProfile(context.Background(), 500)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestGetProfileWithGracefulDegradation(t *testing.T) {
	t.Run("service down returns degraded error", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", 100*time.Millisecond, nopLogger{})

		_, err := client.GetProfileWithGracefulDegradation(context.Background(), 7)
		assert.ErrorIs(t, err, ErrServiceDegraded)
	})

	t.Run("not found is passed through", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second, nopLogger{})

		_, err := client.GetProfileWithGracefulDegradation(context.Background(), 7)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.NotErrorIs(t, err, ErrServiceDegraded)
	})
}
