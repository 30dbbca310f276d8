package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/studiocast/catalog/internal/models"
)

// CreateFields is the field bag submitted for a new video. Description stays off
// the wire when empty.
type CreateFields struct {
	Title        string
	Description  string
	URL          string
	ThumbnailURL string
}

// APIError is a non-2xx response from the catalog API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog api: %d %s", e.StatusCode, e.Message)
}

// API is the HTTP client for the catalog service.
type API struct {
	baseURL string
	http    *http.Client
}

// NewAPI creates a catalog API client. httpClient may be nil to use the default.
func NewAPI(baseURL string, httpClient *http.Client) *API {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &API{baseURL: baseURL, http: httpClient}
}

// List fetches the full catalog, newest id first.
func (a *API) List(ctx context.Context) ([]models.Video, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/api/videos", nil)
	if err != nil {
		return nil, err
	}
	var list []models.Video
	if err := a.do(req, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Create submits a new video and returns the record as persisted, including the
// server-assigned id, createdAt and published fields.
func (a *API) Create(ctx context.Context, fields CreateFields) (*models.Video, error) {
	payload := map[string]string{
		"title":        fields.Title,
		"url":          fields.URL,
		"thumbnailUrl": fields.ThumbnailURL,
	}
	if fields.Description != "" {
		payload["description"] = fields.Description
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/videos", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	var v models.Video
	if err := a.do(req, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Delete removes the video with the given id.
func (a *API) Delete(ctx context.Context, id int64) error {
	url := a.baseURL + "/api/videos?id=" + strconv.FormatInt(id, 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	return a.do(req, nil)
}

// do executes the request and decodes the response into out. Non-2xx responses
// are decoded into an APIError carrying the server's error message.
func (a *API) do(req *http.Request, out interface{}) error {
	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var body struct {
			Error string `json:"error"`
		}
		if data, err := io.ReadAll(resp.Body); err == nil {
			if json.Unmarshal(data, &body) == nil {
				apiErr.Message = body.Error
			}
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
