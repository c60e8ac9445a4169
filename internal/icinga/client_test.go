package icinga

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RavuAlHemio/icingcake/internal/domain"
)

const servicesPayload = `{
	"results": [
		{"attrs": {"name": "ping", "host_name": "beta", "state": 0, "last_check_result": {"output": "PING OK"}}},
		{"attrs": {"name": "disk", "host_name": "alpha", "state": 2, "last_check_result": {"output": "DISK CRITICAL"}}},
		{"attrs": {"name": "load", "host_name": "alpha"}}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL:  server.URL + "/v1/",
		Username: "monitor",
		Password: "hunter2",
		Timeout:  5 * time.Second,
	})
	return client, server
}

func TestQuery_Services(t *testing.T) {
	var gotPath, gotOverride, gotUser, gotPass string
	var gotBody map[string]string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotOverride = r.Header.Get("X-HTTP-Method-Override")
		var ok bool
		gotUser, gotPass, ok = r.BasicAuth()
		require.True(t, ok)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(servicesPayload))
	})

	rows, err := client.Query(context.Background(), domain.ObjectTypeServices, `host.name=="alpha"`)
	require.NoError(t, err)

	assert.Equal(t, "/v1/objects/services", gotPath)
	assert.Equal(t, "GET", gotOverride)
	assert.Equal(t, "monitor", gotUser)
	assert.Equal(t, "hunter2", gotPass)
	assert.Equal(t, `host.name=="alpha"`, gotBody["filter"])

	require.Len(t, rows, 3)
	// worst state first; missing state (5) sorts before critical (2)
	assert.Equal(t, domain.StatusRow{Host: "alpha", Service: "load", State: domain.StateMissing}, rows[0])
	assert.Equal(t, domain.StatusRow{Host: "alpha", Service: "disk", Output: "DISK CRITICAL", State: 2}, rows[1])
	assert.Equal(t, domain.StatusRow{Host: "beta", Service: "ping", Output: "PING OK", State: 0}, rows[2])
}

func TestQuery_Hosts(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/objects/hosts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [{"attrs": {"name": "web01", "state": 1, "last_check_result": {"output": "host down"}}}]}`))
	})

	rows, err := client.Query(context.Background(), domain.ObjectTypeHosts, "")
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "web01", rows[0].Host)
	assert.Empty(t, rows[0].Service)
	assert.Equal(t, uint8(1), rows[0].State)
	assert.Equal(t, "host down", rows[0].Output)
}

func TestQuery_EmptyFilterOmitted(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, hasFilter := body["filter"]
		assert.False(t, hasFilter)
		_, _ = w.Write([]byte(`{"results": []}`))
	})

	rows, err := client.Query(context.Background(), domain.ObjectTypeHosts, "")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestQuery_UpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": 404, "status": "No objects found."}`))
	})

	_, err := client.Query(context.Background(), domain.ObjectTypeHosts, `host.name=="missing"`)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "No objects found")
}

func TestQuery_MalformedResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := client.Query(context.Background(), domain.ObjectTypeHosts, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing response")
}

func TestQuery_OutOfRangeState(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [{"attrs": {"name": "weird", "state": 999}}]}`))
	})

	rows, err := client.Query(context.Background(), domain.ObjectTypeHosts, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.StateInvalid, rows[0].State)
}
