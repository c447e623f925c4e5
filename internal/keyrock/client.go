// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package keyrock

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/opplafy/tenant-manager/internal/logging"
	"github.com/opplafy/tenant-manager/internal/monitoring"
	"github.com/opplafy/tenant-manager/internal/tracing"
)

const (
	authTokenHeader    = "X-Auth-Token"
	subjectTokenHeader = "X-Subject-Token"

	// Keyrock admin tokens last an hour, refresh well before that.
	tokenLifetime = 30 * time.Minute
)

var _ ClientInterface = (*Client)(nil)

type Client struct {
	baseURL  string
	user     string
	password string

	client *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(idmURL, user, password string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		baseURL:  idmURL,
		user:     user,
		password: password,
		client:   &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (c *Client) CreateOrganization(ctx context.Context, name, description, ownerID string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "keyrock.CreateOrganization")
	defer span.End()

	body := map[string]interface{}{
		"organization": map[string]string{
			"name":        name,
			"description": description,
		},
	}

	var resp struct {
		Organization struct {
			ID string `json:"id"`
		} `json:"organization"`
	}

	if err := c.do(ctx, http.MethodPost, "/v1/organizations", body, &resp); err != nil {
		return "", err
	}

	if err := c.GrantOrganizationRole(ctx, resp.Organization.ID, ownerID, "owner"); err != nil {
		return "", err
	}

	return resp.Organization.ID, nil
}

func (c *Client) AuthorizeOrganization(ctx context.Context, orgID, appID, adminRole, consumerRole string) error {
	ctx, span := c.tracer.Start(ctx, "keyrock.AuthorizeOrganization")
	defer span.End()

	if err := c.authorizeRole(ctx, orgID, appID, adminRole, "owner"); err != nil {
		return err
	}

	return c.authorizeRole(ctx, orgID, appID, consumerRole, "member")
}

func (c *Client) AuthorizeOrganizationRole(ctx context.Context, orgID, appID, role, orgRole string) error {
	ctx, span := c.tracer.Start(ctx, "keyrock.AuthorizeOrganizationRole")
	defer span.End()

	return c.authorizeRole(ctx, orgID, appID, role, orgRole)
}

func (c *Client) authorizeRole(ctx context.Context, orgID, appID, role, orgRole string) error {
	roleID, err := c.getRoleID(ctx, appID, role)
	if err != nil {
		return err
	}

	path := fmt.Sprintf("/v1/applications/%s/organizations/%s/roles/%s/organization_roles/%s", appID, orgID, roleID, orgRole)
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

func (c *Client) getRoleID(ctx context.Context, appID, role string) (string, error) {
	var resp struct {
		Roles []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"roles"`
	}

	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/applications/%s/roles", appID), nil, &resp); err != nil {
		return "", err
	}

	for _, r := range resp.Roles {
		if r.Name == role {
			return r.ID, nil
		}
	}

	return "", &Error{
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("role %s not found in application %s", role, appID),
	}
}

func (c *Client) GetUserID(ctx context.Context, username string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "keyrock.GetUserID")
	defer span.End()

	var resp struct {
		Users []struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"users"`
	}

	if err := c.do(ctx, http.MethodGet, "/v1/users", nil, &resp); err != nil {
		return "", err
	}

	for _, u := range resp.Users {
		if u.Username == username {
			return u.ID, nil
		}
	}

	return "", &Error{
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("user %s is not registered", username),
	}
}

func (c *Client) GrantOrganizationRole(ctx context.Context, orgID, userID, orgRole string) error {
	ctx, span := c.tracer.Start(ctx, "keyrock.GrantOrganizationRole")
	defer span.End()

	path := fmt.Sprintf("/v1/organizations/%s/users/%s/organization_roles/%s", orgID, userID, orgRole)
	return c.do(ctx, http.MethodPut, path, nil, nil)
}

func (c *Client) GetOrganizationMembers(ctx context.Context, orgID string) ([]Member, error) {
	ctx, span := c.tracer.Start(ctx, "keyrock.GetOrganizationMembers")
	defer span.End()

	var resp struct {
		OrganizationUsers []Member `json:"organization_users"`
	}

	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/organizations/%s/users", orgID), nil, &resp); err != nil {
		return nil, err
	}

	return resp.OrganizationUsers, nil
}

func (c *Client) GetUsers(ctx context.Context) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, "keyrock.GetUsers")
	defer span.End()

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/v1/users", nil, &raw); err != nil {
		return nil, err
	}

	return raw, nil
}

// do performs an authenticated request against the IDM, logging in on first
// use and once more when the cached admin token has been revoked.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	token, err := c.adminToken(ctx, false)
	if err != nil {
		return err
	}

	status, respBody, err := c.request(ctx, method, path, token, body)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		if token, err = c.adminToken(ctx, true); err != nil {
			return err
		}
		if status, respBody, err = c.request(ctx, method, path, token, body); err != nil {
			return err
		}
	}

	if status >= 400 {
		return &Error{StatusCode: status, Message: errorMessage(status, respBody)}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode keyrock response: %w", err)
		}
	}

	return nil
}

func (c *Client) request(ctx context.Context, method, path, token string, body interface{}) (int, []byte, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode keyrock request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return 0, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(authTokenHeader, token)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("keyrock request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read keyrock response: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

func (c *Client) adminToken(ctx context.Context, refresh bool) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !refresh && c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	body, err := json.Marshal(map[string]string{
		"name":     c.user,
		"password": c.password,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/auth/tokens", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("keyrock login failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return "", &Error{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, respBody)}
	}

	token := resp.Header.Get(subjectTokenHeader)
	if token == "" {
		return "", fmt.Errorf("keyrock login response missing %s header", subjectTokenHeader)
	}

	c.token = token
	c.tokenExpiry = time.Now().Add(tokenLifetime)

	return token, nil
}

func errorMessage(status int, body []byte) string {
	var resp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(body, &resp); err == nil && resp.Error.Message != "" {
		return resp.Error.Message
	}

	return fmt.Sprintf("unexpected status %d", status)
}
