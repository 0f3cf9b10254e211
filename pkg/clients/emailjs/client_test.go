package emailjs

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

func TestSend_PostsTemplateParams(t *testing.T) {
	var got sendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))
	defer server.Close()

	client := NewClient("service_1", "template_1", "pk_1", server.URL+"/", server.Client())
	err := client.Send(context.Background(), models.EmailMessage{
		FromName:  "Ada",
		FromEmail: "ada@example.com",
		Message:   "Hello",
		ToEmail:   "support@nexacrm.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "service_1", got.ServiceID)
	assert.Equal(t, "template_1", got.TemplateID)
	assert.Equal(t, "pk_1", got.UserID)
	assert.Equal(t, "Ada", got.TemplateParams.FromName)
	assert.Equal(t, "ada@example.com", got.TemplateParams.FromEmail)
	assert.Equal(t, "Hello", got.TemplateParams.Message)
	assert.Equal(t, "support@nexacrm.com", got.TemplateParams.ToEmail)
}

func TestSend_RejectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The public key is invalid"))
	}))
	defer server.Close()

	client := NewClient("s", "t", "bad", server.URL, server.Client())
	err := client.Send(context.Background(), models.EmailMessage{FromName: "Ada"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "public key is invalid")
}

func TestSend_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient("s", "t", "k", url, nil)
	err := client.Send(context.Background(), models.EmailMessage{})
	assert.Error(t, err)
}
