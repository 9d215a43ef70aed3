package masterdata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client gives programmatic access to the /master/{attributeType} resource
// family. Every operation returns a normalized Result: callers branch on a
// single Success flag regardless of whether a failure came from the network,
// a non-2xx status, or a 2xx body reporting success=false. No operation lets
// a transport error escape as a raw error or panic.
type Client struct {
	config     Config
	httpClient *http.Client
}

// Config represents the configuration for the master data client
type Config struct {
	// BaseURL is the API root, e.g. "https://api.eyesdeal.example"
	BaseURL string

	// Token is an optional bearer token attached to every request
	Token string

	// Timeout applies to every request; defaults to 30 seconds
	Timeout time.Duration
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base URL is required")
	}
	return nil
}

// NewClient creates a new master data client with the given configuration
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// envelope is the response wrapper every backend endpoint uses.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// List fetches every record of the given attribute type.
func (c *Client) List(ctx context.Context, attributeType string) Result {
	endpoint, err := ResolveEndpoint(attributeType)
	if err != nil {
		return failure(err.Error(), err)
	}

	env, res := c.doRequest(ctx, http.MethodGet, endpoint, nil)
	if !res.Success {
		return res
	}

	records, err := decodeRecords(env.Data)
	if err != nil {
		return failure("Unexpected response from server", err)
	}
	return Result{Success: true, Data: records}
}

// Create adds a record to the collection.
func (c *Client) Create(ctx context.Context, attributeType string, fields map[string]interface{}) Result {
	endpoint, err := ResolveEndpoint(attributeType)
	if err != nil {
		return failure(err.Error(), err)
	}

	_, res := c.doRequest(ctx, http.MethodPost, endpoint, fields)
	return res
}

// Update replaces the record identified by id with the given fields. The
// backend expects the identifier embedded in the body, not in the URL.
func (c *Client) Update(ctx context.Context, attributeType, id string, fields map[string]interface{}) Result {
	endpoint, err := ResolveEndpoint(attributeType)
	if err != nil {
		return failure(err.Error(), err)
	}
	if id == "" {
		return failure("Record id is required", nil)
	}

	body := map[string]interface{}{"_id": id}
	for k, v := range fields {
		body[k] = v
	}

	_, res := c.doRequest(ctx, http.MethodPatch, endpoint, body)
	return res
}

// Delete removes the record identified by id and, on success, re-fetches the
// collection so callers get the post-delete table contents without a second
// round trip. An empty id fails locally without touching the network.
func (c *Client) Delete(ctx context.Context, attributeType, id string) DeleteResult {
	endpoint, err := ResolveEndpoint(attributeType)
	if err != nil {
		return DeleteResult{Result: failure(err.Error(), err)}
	}
	if id == "" {
		return DeleteResult{Result: failure("Record id is required", nil)}
	}

	_, res := c.doRequest(ctx, http.MethodDelete, endpoint+"/"+id, nil)
	if !res.Success {
		return DeleteResult{Result: res}
	}

	refreshed := c.List(ctx, attributeType)
	if !refreshed.Success {
		return DeleteResult{
			Result: Result{
				Success: true,
				Message: "Deleted, but refreshing the list failed: " + refreshed.Message,
				Err:     refreshed.Err,
			},
		}
	}

	return DeleteResult{
		Result:      Result{Success: true, Message: "Deleted successfully"},
		UpdatedList: refreshed.Data,
	}
}

// doRequest performs one HTTP round trip and folds every failure origin into
// a normalized Result. The returned envelope is valid only when the Result
// reports success.
func (c *Client) doRequest(ctx context.Context, method, path string, payload interface{}) (*envelope, Result) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, failure("Invalid request payload", err)
		}
		reqBody = bytes.NewBuffer(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reqBody)
	if err != nil {
		return nil, failure("Failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network unreachable or timed out: no server response to report.
		return nil, failure("No response from server", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, failure("Failed to read server response", err)
	}

	var env envelope
	parseErr := json.Unmarshal(body, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := env.Message
		if parseErr != nil || message == "" {
			message = fmt.Sprintf("Server returned status %d", resp.StatusCode)
		}
		return nil, failure(message, fmt.Errorf("server error: status %d: %s", resp.StatusCode, string(body)))
	}

	if parseErr != nil {
		return nil, failure("Unexpected response from server", parseErr)
	}

	if !env.Success {
		message := env.Message
		if message == "" {
			message = "Request failed"
		}
		return &env, failure(message, nil)
	}

	return &env, Result{Success: true, Message: env.Message}
}

// decodeRecords tolerates the shapes backends have historically wrapped list
// payloads in: a bare array, an object with a docs array, or nothing at all.
func decodeRecords(raw json.RawMessage) ([]AttributeRecord, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []AttributeRecord{}, nil
	}

	var records []AttributeRecord
	if err := json.Unmarshal(raw, &records); err == nil {
		return records, nil
	}

	var wrapped struct {
		Docs []AttributeRecord `json:"docs"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("cannot decode attribute list: %w", err)
	}
	if wrapped.Docs == nil {
		wrapped.Docs = []AttributeRecord{}
	}
	return wrapped.Docs, nil
}
