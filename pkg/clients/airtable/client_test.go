package airtable

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexacrm/landing/pkg/models"
)

func TestAppendRow_CreatesRecord(t *testing.T) {
	var payload struct {
		Records []struct {
			Fields map[string]string `json:"fields"`
		} `json:"records"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appBase/Waitlist%20Signups", r.URL.EscapedPath())
		assert.Equal(t, "Bearer key_1", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		_, _ = w.Write([]byte(`{"records":[{"id":"rec1"}]}`))
	}))
	defer server.Close()

	client := NewClient("key_1", "appBase", "Waitlist Signups",
		WithBaseURL(server.URL), WithHTTPClient(server.Client()))

	err := client.AppendRow(context.Background(), models.SheetRow{
		Name: "Ada", Email: "ada@example.com", Source: models.SourceWebsite,
	})
	require.NoError(t, err)

	require.Len(t, payload.Records, 1)
	assert.Equal(t, "Ada", payload.Records[0].Fields["name"])
	assert.Equal(t, "ada@example.com", payload.Records[0].Fields["email"])
	assert.Equal(t, "Website", payload.Records[0].Fields["source"])
}

func TestAppendRow_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":{"type":"UNKNOWN_FIELD_NAME"}}`))
	}))
	defer server.Close()

	client := NewClient("key", "app", "Waitlist", WithBaseURL(server.URL))
	err := client.AppendRow(context.Background(), models.SheetRow{Name: "Ada"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNKNOWN_FIELD_NAME")
}
