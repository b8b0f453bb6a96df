package mytrips

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// =============================================================================
// Test Helpers
// =============================================================================

func setupClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(server.Client(), server.URL, "test-token", false)
}

// timeoutDoer simulates a transport-level timeout without waiting one out.
type timeoutDoer struct{}

type timeoutError struct{}

func (timeoutError) Error() string   { return "context deadline exceeded" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func (timeoutDoer) Do(req *http.Request) (*http.Response, error) {
	return nil, timeoutError{}
}

// =============================================================================
// AppLogin Tests
// =============================================================================

func TestAppLogin_Success(t *testing.T) {
	client := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if r.URL.Path != "/auth/app-login" {
			t.Errorf("path = %q, want /auth/app-login", r.URL.Path)
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if body["email"] != "driver@example.com" {
			t.Errorf("email = %q", body["email"])
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"authenticated": true, "user_id": 42, "message": "Welcome"}`))
	})

	resp := client.AppLogin(context.Background(), "driver@example.com", "s3cret")

	if !resp.Authenticated {
		t.Error("Authenticated = false, want true")
	}
	if resp.UserID != "42" {
		t.Errorf("UserID = %q, want %q (numeric ids are stringified)", resp.UserID, "42")
	}
	if resp.Message != "Welcome" {
		t.Errorf("Message = %q, want %q", resp.Message, "Welcome")
	}
}

func TestAppLogin_StringUserID(t *testing.T) {
	client := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"authenticated": true, "user_id": "abc-123"}`))
	})

	resp := client.AppLogin(context.Background(), "driver@example.com", "s3cret")

	if !resp.Authenticated {
		t.Error("Authenticated = false, want true")
	}
	if resp.UserID != "abc-123" {
		t.Errorf("UserID = %q, want %q", resp.UserID, "abc-123")
	}
	if resp.Message == "" {
		t.Error("Message is empty, want default success message")
	}
}

func TestAppLogin_UpstreamRejects(t *testing.T) {
	client := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"authenticated": false, "message": "No such account"}`))
	})

	resp := client.AppLogin(context.Background(), "driver@example.com", "wrong")

	if resp.Authenticated {
		t.Error("Authenticated = true, want false")
	}
	if resp.UserID != "" {
		t.Errorf("UserID = %q, want empty", resp.UserID)
	}
	if resp.Message != "No such account" {
		t.Errorf("Message = %q, want upstream message", resp.Message)
	}
}

func TestAppLogin_StatusTriage(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "401 invalid credentials",
			status:      http.StatusUnauthorized,
			body:        `{"detail": "bad credentials"}`,
			wantMessage: "Invalid credentials",
		},
		{
			name:        "403 invalid credentials",
			status:      http.StatusForbidden,
			body:        `{"detail": "forbidden"}`,
			wantMessage: "Invalid credentials",
		},
		{
			name:        "500 service error",
			status:      http.StatusInternalServerError,
			body:        `secret stack trace`,
			wantMessage: "Authentication service error",
		},
		{
			name:        "503 service error",
			status:      http.StatusServiceUnavailable,
			body:        ``,
			wantMessage: "Authentication service error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			resp := client.AppLogin(context.Background(), "driver@example.com", "s3cret")

			if resp.Authenticated {
				t.Error("Authenticated = true, want false")
			}
			if resp.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", resp.Message, tt.wantMessage)
			}
			// Upstream bodies must never leak to callers.
			if resp.Message == tt.body && tt.body != "" {
				t.Error("upstream body reflected to caller")
			}
		})
	}
}

func TestAppLogin_Timeout(t *testing.T) {
	client := NewClient(timeoutDoer{}, "http://mytrips.invalid", "test-token", false)

	start := time.Now()
	resp := client.AppLogin(context.Background(), "driver@example.com", "s3cret")
	elapsed := time.Since(start)

	if resp.Authenticated {
		t.Error("Authenticated = true, want false")
	}
	if resp.Message != "Authentication service timeout" {
		t.Errorf("Message = %q, want timeout message", resp.Message)
	}
	if elapsed > requestTimeout {
		t.Errorf("AppLogin took %v, want under the %v bound", elapsed, requestTimeout)
	}
}

func TestAppLogin_MalformedResponse(t *testing.T) {
	client := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	resp := client.AppLogin(context.Background(), "driver@example.com", "s3cret")

	if resp.Authenticated {
		t.Error("Authenticated = true, want false")
	}
	if resp.Message == "" {
		t.Error("Message is empty, want generic failure message")
	}
}

func TestAppLogin_NotConfigured(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		apiToken string
	}{
		{"missing token", "http://mytrips.invalid", ""},
		{"missing base URL", "", "test-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(http.DefaultClient, tt.baseURL, tt.apiToken, false)

			resp := client.AppLogin(context.Background(), "driver@example.com", "s3cret")

			if resp.Authenticated {
				t.Error("Authenticated = true, want false")
			}
			if resp.Message != "Authentication service unavailable" {
				t.Errorf("Message = %q, want unavailable message", resp.Message)
			}
		})
	}
}
