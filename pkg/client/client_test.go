package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoginStoresTokenAndAttachesBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-abc"})
		case "/api/profiles":
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode(map[string]any{"userId": "00000000-0000-0000-0000-000000000001"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.Login(context.Background(), "a@b.com", "pw"))

	_, err := c.UpsertProfile(context.Background(), ProfileInput{UserID: "00000000-0000-0000-0000-000000000001"})
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-abc", gotAuth)

	require.NoError(t, c.Logout())

	_, err = c.UpsertProfile(context.Background(), ProfileInput{UserID: "00000000-0000-0000-0000-000000000001"})
	require.NoError(t, err)
	require.Empty(t, gotAuth, "no Authorization header after logout")
}

func TestErrorBodyBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "email already registered"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Register(context.Background(), "a@b.com", "pw", "PATIENT")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.Status)
	require.Equal(t, "email already registered", apiErr.Message)
}

func TestDummyRejectionIsSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"dummy":   true,
			"message": "Cannot book a dummy/test account",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.BookAppointment(context.Background(), "p", "d", time.Now())
	require.ErrorIs(t, err, ErrDemoAccount)
}
