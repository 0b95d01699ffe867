package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCheckoutSession(t *testing.T) {
	var received checkoutSessionRequest
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]string{"url": "https://pay.example.com/session/abc"})
	}))
	defer server.Close()

	client := NewCheckoutClient(server.URL, "test-key")

	sessionUrl, err := client.CreateCheckoutSession(context.Background(), 1500, "Commission for request req-1 (plumbing)",
		"http://localhost:8080/merci", "http://localhost:8080/annule")
	require.NoError(t, err)

	assert.Equal(t, "https://pay.example.com/session/abc", sessionUrl)
	assert.Equal(t, "Bearer test-key", authHeader)
	assert.Equal(t, int64(1500), received.Amount)
	assert.Equal(t, "EUR", received.Currency)
	assert.Equal(t, "http://localhost:8080/merci", received.SuccessURL)
	assert.Equal(t, "http://localhost:8080/annule", received.CancelURL)
}

func TestCreateCheckoutSessionServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewCheckoutClient(server.URL, "test-key")

	_, err := client.CreateCheckoutSession(context.Background(), 1500, "label", "", "")
	assert.Error(t, err)
}

func TestCreateCheckoutSessionEmptyURLInResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	client := NewCheckoutClient(server.URL, "test-key")

	_, err := client.CreateCheckoutSession(context.Background(), 1500, "label", "", "")
	assert.Error(t, err)
}

func TestCreateCheckoutSessionNotConfigured(t *testing.T) {
	client := NewCheckoutClient("", "")

	_, err := client.CreateCheckoutSession(context.Background(), 1500, "label", "", "")
	assert.Error(t, err)
}
