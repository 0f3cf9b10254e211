package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nexacrm/landing/pkg/models"
)

// Client defines the interface for recording rows through a spreadsheet web-hook
type Client interface {
	AppendRow(ctx context.Context, row models.SheetRow) error
}

type clientImpl struct {
	webAppURL  string
	httpClient *http.Client
}

// NewClient creates a client for a Google Apps Script web app URL
func NewClient(webAppURL string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &clientImpl{
		webAppURL:  webAppURL,
		httpClient: httpClient,
	}
}

// AppendRow posts the row and does not inspect the answer. Apps Script web apps
// redirect and reply with opaque bodies, so only transport failures count.
func (c *clientImpl) AppendRow(ctx context.Context, row models.SheetRow) error {
	jsonPayload, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webAppURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling sheets web-hook: %w", err)
	}
	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	return nil
}
