package fixit

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuitBreaker_OpensAfterRepeatedServerFailures(t *testing.T) {
	hits := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"backend down"}`))
	}), WithCircuitBreaker())

	for i := 0; i < 5; i++ {
		_, err := client.Users.Me(context.Background())
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, KindServer, apiErr.Kind)
	}
	require.Equal(t, 5, hits)

	// The circuit is open now: the next call fails fast without reaching
	// the backend, and nothing is retried.
	_, err := client.Users.Me(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindNetwork, apiErr.Kind)
	assert.Contains(t, apiErr.Message, "circuit open")
	assert.Equal(t, 5, hits)
}

func TestCircuitBreaker_ClientErrorsDoNotOpenCircuit(t *testing.T) {
	hits := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"no such user"}`))
	}), WithCircuitBreaker())

	for i := 0; i < 8; i++ {
		_, err := client.Users.Me(context.Background())
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, KindNotFound, apiErr.Kind)
	}
	assert.Equal(t, 8, hits, "4xx responses are caller mistakes, not outages")
}
