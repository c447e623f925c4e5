// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package umbrella

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/opplafy/tenant-manager/internal/logging"
	"github.com/opplafy/tenant-manager/internal/monitoring"
	"github.com/opplafy/tenant-manager/internal/tracing"
)

const (
	adminTokenHeader = "X-Admin-Auth-Token"
	apiKeyHeader     = "X-Api-Key"

	apisPath = "/api-umbrella/v1/apis"
)

// Error is a rejection coming from the gateway admin API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("umbrella: %s", e.Message)
}

var _ ClientInterface = (*Client)(nil)

type Client struct {
	baseURL string
	token   string
	apiKey  string

	client *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(umbrellaURL, token, apiKey string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		baseURL: umbrellaURL,
		token:   token,
		apiKey:  apiKey,
		client:  &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// AddAppPolicies locates the API backend whose settings reference the given
// application and appends the policies to its existing sub-url settings.
// Backends are fetched and updated as raw documents so fields this service
// does not model survive the round trip.
func (c *Client) AddAppPolicies(ctx context.Context, appID string, policies []Policy) error {
	ctx, span := c.tracer.Start(ctx, "umbrella.AddAppPolicies")
	defer span.End()

	api, err := c.findAPIByAppID(ctx, appID)
	if err != nil {
		return err
	}

	subSettings, _ := api["sub_settings"].([]interface{})
	for _, p := range policies {
		subSettings = append(subSettings, p)
	}
	api["sub_settings"] = subSettings

	apiID, _ := api["id"].(string)
	if apiID == "" {
		return &Error{
			StatusCode: http.StatusBadGateway,
			Message:    fmt.Sprintf("API backend for application %s has no id", appID),
		}
	}

	body, err := json.Marshal(map[string]interface{}{"api": api})
	if err != nil {
		return fmt.Errorf("failed to encode API backend update: %w", err)
	}

	status, respBody, err := c.request(ctx, http.MethodPut, fmt.Sprintf("%s/%s", apisPath, apiID), body)
	if err != nil {
		return err
	}

	if status >= 400 {
		return &Error{StatusCode: status, Message: errorMessage(status, respBody)}
	}

	return nil
}

func (c *Client) findAPIByAppID(ctx context.Context, appID string) (map[string]interface{}, error) {
	status, body, err := c.request(ctx, http.MethodGet, apisPath+"?start=0&length=100", nil)
	if err != nil {
		return nil, err
	}

	if status >= 400 {
		return nil, &Error{StatusCode: status, Message: errorMessage(status, body)}
	}

	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode API backend list: %w", err)
	}

	for _, api := range resp.Data {
		settings, _ := api["settings"].(map[string]interface{})
		if settings == nil {
			continue
		}
		if id, _ := settings["idp_app_id"].(string); id == appID {
			return api, nil
		}
	}

	return nil, &Error{
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("no API backend configured for application %s", appID),
	}
}

func (c *Client) request(ctx context.Context, method, path string, body []byte) (int, []byte, error) {
	var payload io.Reader
	if body != nil {
		payload = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return 0, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(adminTokenHeader, c.token)
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("umbrella request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read umbrella response: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

func errorMessage(status int, body []byte) string {
	var resp struct {
		Error  string `json:"error"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}

	if err := json.Unmarshal(body, &resp); err == nil {
		if resp.Error != "" {
			return resp.Error
		}
		if len(resp.Errors) > 0 && resp.Errors[0].Message != "" {
			return resp.Errors[0].Message
		}
	}

	return fmt.Sprintf("unexpected status %d", status)
}
