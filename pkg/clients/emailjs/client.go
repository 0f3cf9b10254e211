package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nexacrm/landing/pkg/models"
)

// ErrUnexpectedStatus is returned when EmailJS answers with a non-2xx status
var ErrUnexpectedStatus = errors.New("unexpected status from EmailJS")

// Client defines the interface for relaying messages through EmailJS
type Client interface {
	Send(ctx context.Context, msg models.EmailMessage) error
}

type clientImpl struct {
	serviceID  string
	templateID string
	publicKey  string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new EmailJS client. A nil httpClient uses a client without timeout.
func NewClient(serviceID, templateID, publicKey, baseURL string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &clientImpl{
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type sendRequest struct {
	ServiceID      string              `json:"service_id"`
	TemplateID     string              `json:"template_id"`
	UserID         string              `json:"user_id"`
	TemplateParams models.EmailMessage `json:"template_params"`
}

func (c *clientImpl) Send(ctx context.Context, msg models.EmailMessage) error {
	url := c.baseURL + "/api/v1.0/email/send"

	jsonPayload, err := json.Marshal(sendRequest{
		ServiceID:      c.serviceID,
		TemplateID:     c.templateID,
		UserID:         c.publicKey,
		TemplateParams: msg,
	})
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}

	return nil
}
