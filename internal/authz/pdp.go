package authz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// PolicyOracle answers "may this principal perform this action on this
// resource type". Implementations must treat their own failures as errors,
// never as an implicit allow; the gate fails closed on any error.
type PolicyOracle interface {
	Check(ctx context.Context, userID string, resource ResourceType, action Action) (bool, error)
}

// attemptTimeout bounds each oracle round trip. The check sits on every
// request path, so a slow PDP must not stall the whole API.
const attemptTimeout = 2 * time.Second

// PDPClient queries a remote policy decision point over HTTP. It speaks the
// Permit-style check API: POST {base}/allowed with a bearer API token.
type PDPClient struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewPDPClient creates a policy oracle client for the given endpoint.
func NewPDPClient(baseURL, apiToken string, logger *slog.Logger) *PDPClient {
	return &PDPClient{
		baseURL:  baseURL,
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: attemptTimeout,
		},
		logger: logger,
	}
}

type checkRequest struct {
	User     checkUser     `json:"user"`
	Action   string        `json:"action"`
	Resource checkResource `json:"resource"`
}

type checkUser struct {
	Key string `json:"key"`
}

type checkResource struct {
	Type string `json:"type"`
}

type checkResponse struct {
	Allow bool `json:"allow"`
}

// Check asks the PDP whether the action is allowed. A transport failure is
// retried once; writes are never retried here because the check itself has
// no side effects. Any remaining failure is returned as an error so the
// caller can fail closed.
func (c *PDPClient) Check(ctx context.Context, userID string, resource ResourceType, action Action) (bool, error) {
	payload, err := json.Marshal(checkRequest{
		User:     checkUser{Key: userID},
		Action:   string(action),
		Resource: checkResource{Type: string(resource)},
	})
	if err != nil {
		return false, fmt.Errorf("marshal check request: %w", err)
	}

	allow, err := c.doCheck(ctx, payload)
	if err != nil && ctx.Err() == nil {
		c.logger.Warn("policy check failed, retrying once", "error", err)
		allow, err = c.doCheck(ctx, payload)
	}
	if err != nil {
		return false, fmt.Errorf("policy oracle check: %w", err)
	}
	return allow, nil
}

func (c *PDPClient) doCheck(ctx context.Context, payload []byte) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/allowed", bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("create check request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return false, fmt.Errorf("check failed with status %d: %s", resp.StatusCode, string(body))
	}

	var decoded checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return false, fmt.Errorf("decode check response: %w", err)
	}
	return decoded.Allow, nil
}
