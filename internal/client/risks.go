package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/ethanolivertroy/riskboard/internal/models"
)

// risksPath is the fixed table endpoint on the dashboard backend.
const risksPath = "/api/v1/tables/risks"

const userAgent = "riskboard/1.0"

// RisksClient fetches the risks table from the dashboard backend
type RisksClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewRisksClient creates a client for the backend at baseURL
func NewRisksClient(baseURL string, timeout time.Duration) *RisksClient {
	return &RisksClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// URL returns the endpoint the client fetches
func (c *RisksClient) URL() string {
	return c.baseURL + risksPath
}

// FetchRisks issues one GET against the risks table and returns the rows in
// response order. An empty table comes back as an empty, non-nil slice.
// Transport failures, non-2xx statuses and unparsable bodies are all the
// same kind of error to callers.
func (c *RisksClient) FetchRisks(ctx context.Context) ([]models.Finding, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build risks table request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch risks table")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.New("risks table request failed: " + resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read risks table response")
	}

	var findings []models.Finding
	if err := json.Unmarshal(data, &findings); err != nil {
		return nil, errors.Wrap(err, "failed to parse risks table response")
	}
	if findings == nil {
		findings = []models.Finding{}
	}

	return findings, nil
}
