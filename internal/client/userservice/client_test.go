package userservice

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"odontocare/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestClient(serverURL string) Client {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewClient(config.UserServiceConfig{BaseURL: serverURL, Timeout: 2 * time.Second}, log)
}

func TestVerifyPatient_ForwardsTokenAndReturnsResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/verify/pacientes/5", r.URL.Path)
		assert.Equal(t, "Bearer some-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"exists": true, "id": 5}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).VerifyPatient(context.Background(), "some-token", 5)

	assert.NoError(t, err)
	assert.True(t, result.Exists)
	assert.Equal(t, uint(5), result.ID)
}

func TestVerifyDoctor_NotFoundIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"exists": false, "error": "Doctor no encontrado o inactivo"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).VerifyDoctor(context.Background(), "some-token", 9)

	var upstream *UpstreamError
	assert.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusNotFound, upstream.StatusCode)
	assert.False(t, upstream.IsAuthFailure())
	assert.Contains(t, upstream.Body, "no encontrado")
}

func TestVerifyCenter_UnauthorizedIsAuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "Token inválido"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).VerifyCenter(context.Background(), "expired", 1)

	var upstream *UpstreamError
	assert.ErrorAs(t, err, &upstream)
	assert.True(t, upstream.IsAuthFailure())
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
}

func TestVerify_ExistsFalseWith200IsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"exists": false}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).VerifyPatient(context.Background(), "t", 2)

	var upstream *UpstreamError
	assert.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusOK, upstream.StatusCode)
}

func TestVerify_ConnectionRefusedIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	_, err := newTestClient(server.URL).VerifyPatient(context.Background(), "t", 2)

	var transport *TransportError
	assert.ErrorAs(t, err, &transport)
}

func TestVerify_MalformedBodyIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>proxy error</html>`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).VerifyDoctor(context.Background(), "t", 2)

	var upstream *UpstreamError
	assert.ErrorAs(t, err, &upstream)
	assert.Contains(t, upstream.Body, "proxy error")
}
