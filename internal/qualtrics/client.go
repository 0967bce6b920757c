// Package qualtrics provides the import/publish adapter: it uploads a
// built QSF document to the Qualtrics survey-import endpoint and derives
// admin/preview URLs from the returned survey identifier.
package qualtrics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"
)

// ErrImportFailed indicates the import endpoint returned a non-success
// result. Surfaced to the user as a generic failure; no retry.
var ErrImportFailed = errors.New("qualtrics import failed")

// Importer publishes a QSF document and returns the new survey ID.
type Importer interface {
	Import(ctx context.Context, qsf []byte, name string) (string, error)
}

// Client implements Importer against the Qualtrics v3 REST API.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a Qualtrics API client.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 60 * time.Second},
	}
}

// importResponse is the success body of POST /surveys.
type importResponse struct {
	Result struct {
		ID string `json:"id"`
	} `json:"result"`
}

// Import uploads the QSF as a multipart form with the survey name.
func (c *Client) Import(ctx context.Context, qsf []byte, name string) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="generated_survey.qsf"`)
	header.Set("Content-Type", "application/vnd.qualtrics.survey.qsf")
	part, err := mw.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("creating multipart file part: %w", err)
	}
	if _, err := part.Write(qsf); err != nil {
		return "", fmt.Errorf("writing qsf part: %w", err)
	}
	if err := mw.WriteField("name", name); err != nil {
		return "", fmt.Errorf("writing name field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("closing multipart body: %w", err)
	}

	url := c.cfg.BaseURL() + "/surveys"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", fmt.Errorf("creating import request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("x-api-token", c.cfg.Token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImportFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading import response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", ErrImportFailed, resp.StatusCode, string(respBody))
	}

	var parsed importResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", ErrImportFailed, err)
	}
	if parsed.Result.ID == "" {
		return "", fmt.Errorf("%w: response contained no survey id", ErrImportFailed)
	}
	return parsed.Result.ID, nil
}

// AdminURL is the survey editor link for an imported survey.
func (c *Client) AdminURL(surveyID string) string {
	return fmt.Sprintf("https://%s.%s.qualtrics.com/Q/EditSection/Blocks/?SurveyID=%s",
		c.cfg.Org, c.cfg.DataCenter, surveyID)
}

// PreviewURL is the respondent preview link for an imported survey.
func (c *Client) PreviewURL(surveyID string) string {
	return fmt.Sprintf("https://%s.%s.qualtrics.com/jfe/preview/%s?Q_CHL=preview",
		c.cfg.Org, c.cfg.DataCenter, surveyID)
}
