// Package mytrips is the client for the external MyTrips identity API.
package mytrips

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/AdarBahar/mytrips-viewer-ui/internal/models"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/pkg/logger"
)

const requestTimeout = 10 * time.Second

// Generic client-facing messages. Upstream error bodies are never reflected
// back to callers.
const (
	msgServiceUnavailable = "Authentication service unavailable"
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidEmail       = "Invalid email or password"
	msgServiceError       = "Authentication service error"
	msgServiceTimeout     = "Authentication service timeout"
	msgAuthFailed         = "Authentication failed"
	msgAuthSuccess        = "Authentication successful"
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the MyTrips app-login endpoint.
type Client struct {
	client   httpClient
	baseURL  string
	apiToken string
	debug    bool
}

// NewClient creates a MyTrips client. baseURL and apiToken may be empty;
// AppLogin then reports the service as unavailable without calling out.
func NewClient(client httpClient, baseURL, apiToken string, debug bool) *Client {
	return &Client{
		client:   client,
		baseURL:  baseURL,
		apiToken: apiToken,
		debug:    debug,
	}
}

type appLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// flexID tolerates the MyTrips API returning user_id as either a JSON
// number or a string.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

type appLoginResponse struct {
	Authenticated bool   `json:"authenticated"`
	UserID        flexID `json:"user_id"`
	Message       string `json:"message"`
}

// AppLogin verifies credentials against the MyTrips API. It never returns
// an error: every failure mode collapses into authenticated=false with a
// generic message, and the underlying cause is logged.
func (c *Client) AppLogin(ctx context.Context, email, password string) models.AppLoginResponse {
	log := logger.FromContext(ctx)

	if c.apiToken == "" {
		log.Error("LOC_API_TOKEN not configured")
		return models.AppLoginResponse{Authenticated: false, Message: msgServiceUnavailable}
	}
	if c.baseURL == "" {
		log.Error("MYTRIPS_API_BASEURL not configured")
		return models.AppLoginResponse{Authenticated: false, Message: msgServiceUnavailable}
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	loginURL := c.baseURL + "/auth/app-login"
	if c.debug {
		log.Debugf("Attempting login to MyTrips API: %s", loginURL)
		log.Debugf("Email: %s", email)
	} else {
		log.Info("Attempting login to MyTrips API")
	}

	body, err := json.Marshal(appLoginRequest{Email: email, Password: password})
	if err != nil {
		log.Errorf("App login error: %v", err)
		return models.AppLoginResponse{Authenticated: false, Message: msgAuthFailed}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, bytes.NewReader(body))
	if err != nil {
		log.Errorf("App login error: %v", err)
		return models.AppLoginResponse{Authenticated: false, Message: msgAuthFailed}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			log.Error("MyTrips API timeout")
			return models.AppLoginResponse{Authenticated: false, Message: msgServiceTimeout}
		}
		log.Errorf("App login error: %v", err)
		return models.AppLoginResponse{Authenticated: false, Message: msgAuthFailed}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Errorf("App login error: %v", err)
		return models.AppLoginResponse{Authenticated: false, Message: msgAuthFailed}
	}

	if c.debug {
		log.Debugf("MyTrips API response status: %d", resp.StatusCode)
		log.Debugf("MyTrips API response body: %s", truncate(respBody, 500))
	} else {
		log.Infof("MyTrips API response status: %d", resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return c.parseOK(ctx, respBody)
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return models.AppLoginResponse{Authenticated: false, Message: msgInvalidCredentials}
	default:
		if c.debug {
			log.Errorf("MyTrips API error: %d - %s", resp.StatusCode, truncate(respBody, 500))
		} else {
			log.Errorf("MyTrips API error: %d", resp.StatusCode)
		}
		return models.AppLoginResponse{Authenticated: false, Message: msgServiceError}
	}
}

func (c *Client) parseOK(ctx context.Context, body []byte) models.AppLoginResponse {
	log := logger.FromContext(ctx)

	var parsed appLoginResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		log.Errorf("App login error: %v", err)
		return models.AppLoginResponse{Authenticated: false, Message: msgAuthFailed}
	}

	if parsed.Authenticated && parsed.UserID != "" {
		log.Infof("Login successful for user: %s", parsed.UserID)
		message := parsed.Message
		if message == "" {
			message = msgAuthSuccess
		}
		return models.AppLoginResponse{
			Authenticated: true,
			UserID:        string(parsed.UserID),
			Message:       message,
		}
	}

	log.Warn("MyTrips API returned authenticated=false")
	message := parsed.Message
	if message == "" {
		message = msgInvalidEmail
	}
	return models.AppLoginResponse{Authenticated: false, Message: message}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
