package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/leapstack-labs/sql2lineage/internal/lineage"
)

// maxErrorBody caps how much of an error response is echoed back.
const maxErrorBody = 512

// Remote calls a lineage extraction service over HTTP. The service
// accepts a JSON request and answers with the nested lineage result.
type Remote struct {
	endpoint string
	client   *http.Client
}

// NewRemote returns an extractor backed by the service at endpoint.
func NewRemote(endpoint string, timeout time.Duration) *Remote {
	return &Remote{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type remoteRequest struct {
	SQL     string `json:"sql"`
	Dialect string `json:"dialect,omitempty"`
}

// ExtractStatementsLineage implements lineage.Extractor.
func (r *Remote) ExtractStatementsLineage(ctx context.Context, sqlStmt, dialect string) (lineage.Result, error) {
	body, err := json.Marshal(remoteRequest{SQL: sqlStmt, Dialect: dialect})
	if err != nil {
		return nil, fmt.Errorf("encode lineage request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build lineage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call lineage service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("lineage service returned %s: %s", resp.Status, bytes.TrimSpace(snippet))
	}

	var result lineage.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode lineage response: %w", err)
	}
	return result, nil
}
