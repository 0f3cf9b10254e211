package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/nexacrm/landing/pkg/config"
	"github.com/nexacrm/landing/pkg/models"
	"github.com/nexacrm/landing/pkg/services"
)

type fakeSubmissionService struct {
	result   models.SubmissionResult
	waitlist []models.WaitlistFormData
	contact  []models.ContactFormData
}

func (f *fakeSubmissionService) SubmitWaitlist(ctx context.Context, data models.WaitlistFormData) models.SubmissionResult {
	f.waitlist = append(f.waitlist, data)
	return f.result
}

func (f *fakeSubmissionService) SubmitContact(ctx context.Context, data models.ContactFormData) models.SubmissionResult {
	f.contact = append(f.contact, data)
	return f.result
}

var (
	successResult = models.SubmissionResult{
		ID:               "sub-1",
		SubmissionStatus: models.SubmissionStatus{Status: models.StatusSuccess, Message: services.WaitlistSuccessMessage},
		Reset:            true,
		CloseAfterMs:     3000,
	}
	errorResult = models.SubmissionResult{
		ID:               "sub-2",
		SubmissionStatus: models.SubmissionStatus{Status: models.StatusError, Message: services.FailureMessage("support@nexacrm.com")},
	}
)

func newTestRouter(t *testing.T, svc services.FormSubmissionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		UI: config.UIConfig{
			SupportEmail:       "support@nexacrm.com",
			ModalCloseDelay:    3 * time.Second,
			NavScrollThreshold: 20,
			RevealThreshold:    0.1,
		},
	}
	assets := fstest.MapFS{"js/forms.js": {Data: []byte("// forms")}}
	logger := zaptest.NewLogger(t)
	return NewRouter(NewHandlers(svc, cfg, logger), "*", assets, logger)
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(t, &fakeSubmissionService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestLandingPage(t *testing.T) {
	r := newTestRouter(t, &fakeSubmissionService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "The CRM Built for")
	assert.Contains(t, w.Body.String(), `data-failure-message="Sorry, something went wrong.`)
}

func TestLandingPage_WaitlistOpen(t *testing.T) {
	r := newTestRouter(t, &fakeSubmissionService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?waitlist=open", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="waitlist-modal" class="flex `)
}

func TestStaticAssets(t *testing.T) {
	r := newTestRouter(t, &fakeSubmissionService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/js/forms.js", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "// forms", w.Body.String())
}

func TestHandleWaitlist_JSONSuccess(t *testing.T) {
	svc := &fakeSubmissionService{result: successResult}
	r := newTestRouter(t, svc)

	w := postJSON(r, "/api/waitlist", `{"name":"Ada","email":"ada@example.com"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.SubmissionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.StatusSuccess, got.Status)
	assert.True(t, got.Reset)
	assert.Equal(t, int64(3000), got.CloseAfterMs)

	require.Len(t, svc.waitlist, 1)
	assert.Equal(t, models.WaitlistFormData{Name: "Ada", Email: "ada@example.com"}, svc.waitlist[0])
}

func TestHandleWaitlist_MissingFieldsNeverSubmits(t *testing.T) {
	svc := &fakeSubmissionService{result: successResult}
	r := newTestRouter(t, svc)

	w := postJSON(r, "/api/waitlist", `{"name":"","email":"not-an-email","company":"Acme"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "This field is required.", body.Fields["name"])
	assert.Equal(t, "Please enter a valid email address.", body.Fields["email"])
	assert.Empty(t, svc.waitlist)
}

func TestHandleWaitlist_CompanyOptional(t *testing.T) {
	svc := &fakeSubmissionService{result: successResult}
	r := newTestRouter(t, svc)

	w := postJSON(r, "/api/waitlist", `{"name":"Ada","email":"ada@example.com","company":""}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, svc.waitlist, 1)
}

func TestHandleContact_JSONError(t *testing.T) {
	svc := &fakeSubmissionService{result: errorResult}
	r := newTestRouter(t, svc)

	w := postJSON(r, "/api/contact", `{"name":"Ada","email":"ada@example.com","message":"hello"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.SubmissionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.StatusError, got.Status)
	assert.Contains(t, got.Message, "support@nexacrm.com")
	assert.False(t, got.Reset)
}

func TestHandleContact_MissingMessage(t *testing.T) {
	svc := &fakeSubmissionService{result: successResult}
	r := newTestRouter(t, svc)

	w := postJSON(r, "/api/contact", `{"name":"Ada","email":"ada@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.contact)
}

func TestHandleContact_InvalidJSON(t *testing.T) {
	svc := &fakeSubmissionService{}
	r := newTestRouter(t, svc)

	w := postJSON(r, "/api/contact", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.contact)
}

func TestHandleContact_FormPostErrorKeepsValues(t *testing.T) {
	svc := &fakeSubmissionService{result: errorResult}
	r := newTestRouter(t, svc)

	w := postForm(r, "/api/contact", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Do you integrate with Slack?"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	html := w.Body.String()
	assert.Contains(t, html, `data-status="error"`)
	assert.Contains(t, html, `value="Ada"`)
	assert.Contains(t, html, "Do you integrate with Slack?")
}

func TestHandleWaitlist_FormPostSuccessClearsValues(t *testing.T) {
	svc := &fakeSubmissionService{result: successResult}
	r := newTestRouter(t, svc)

	w := postForm(r, "/api/waitlist", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"company": {"Analytical Engines"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	html := w.Body.String()
	assert.Contains(t, html, `data-status="success"`)
	assert.NotContains(t, html, `value="Analytical Engines"`)
	assert.Contains(t, html, `id="waitlist-modal" class="flex `)
}

func TestHandleWaitlist_FormPostMissingFields(t *testing.T) {
	svc := &fakeSubmissionService{result: successResult}
	r := newTestRouter(t, svc)

	w := postForm(r, "/api/waitlist", url.Values{"name": {"Ada"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `data-field-error="email"`)
	assert.Contains(t, w.Body.String(), `value="Ada"`)
	assert.Empty(t, svc.waitlist)
}
