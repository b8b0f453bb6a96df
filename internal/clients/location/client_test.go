package location

import (
	"context"
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

// =============================================================================
// Configured Tests
// =============================================================================

func TestConfigured(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		apiToken string
		want     bool
	}{
		{"both set", "http://api.invalid", "token", true},
		{"missing token", "http://api.invalid", "", false},
		{"missing base URL", "", "token", false},
		{"both missing", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(http.DefaultClient, tt.baseURL, tt.apiToken, false)
			if got := client.Configured(); got != tt.want {
				t.Errorf("Configured() = %v, want %v", got, tt.want)
			}
		})
	}
}

// =============================================================================
// Users Tests
// =============================================================================

func TestUsers(t *testing.T) {
	client := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users.php" {
			t.Errorf("path = %q, want /users.php", r.URL.Path)
		}
		if got := r.URL.Query().Get("with_location_data"); got != "true" {
			t.Errorf("with_location_data = %q, want true", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("X-API-Token"); got != "test-token" {
			t.Errorf("X-API-Token = %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "success",
			"data": {"users": [
				{"id": 1, "username": "jdoe", "display_name": "Jane Doe"},
				{"id": 2, "username": "msmith", "display_name": ""}
			], "count": 2}
		}`))
	})

	users, err := client.Users(context.Background())
	if err != nil {
		t.Fatalf("Users() error = %v", err)
	}

	if len(users) != 2 {
		t.Fatalf("Users() returned %d users, want 2", len(users))
	}
	if users[0].ID != "1" || users[0].Name != "Jane Doe" || users[0].Status != "active" {
		t.Errorf("users[0] = %+v", users[0])
	}
	if users[1].Name != "msmith" {
		t.Errorf("users[1].Name = %q, want username fallback", users[1].Name)
	}
}

func TestUsers_EmptyPayload(t *testing.T) {
	client := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "success", "data": {"users": [], "count": 0}}`))
	})

	if _, err := client.Users(context.Background()); err == nil {
		t.Error("Users() did not fail for an empty user list")
	}
}

func TestUsers_FailedStatus(t *testing.T) {
	client := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "error", "message": "bad token"}`))
	})

	if _, err := client.Users(context.Background()); err == nil {
		t.Error("Users() did not fail for an error envelope")
	}
}

func TestUsers_HTTPError(t *testing.T) {
	client := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	if _, err := client.Users(context.Background()); err == nil {
		t.Error("Users() did not fail for a non-200 status")
	}
}

// =============================================================================
// Locations Tests
// =============================================================================

func TestLocations(t *testing.T) {
	client := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/locations.php" {
			t.Errorf("path = %q, want /locations.php", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("user") != "7" || q.Get("limit") != "100" || q.Get("offset") != "0" {
			t.Errorf("query = %v", q)
		}
		if q.Get("date_from") != "2024-06-01" || q.Get("date_to") != "2024-06-02" {
			t.Errorf("date range query = %v", q)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": [
				{"user_id": 7, "latitude": 32.0853, "longitude": 34.7818, "speed": 12.5, "bearing": 90, "server_time": "2024-06-01 08:15:30"},
				{"user_id": 7, "latitude": 32.0860, "longitude": 34.7820, "server_time": "garbled"}
			]
		}`))
	})

	samples, err := client.Locations(context.Background(), Query{
		UserID:   "7",
		Limit:    100,
		DateFrom: "2024-06-01",
		DateTo:   "2024-06-02",
	})
	if err != nil {
		t.Fatalf("Locations() error = %v", err)
	}

	if len(samples) != 2 {
		t.Fatalf("Locations() returned %d samples, want 2", len(samples))
	}

	first := samples[0]
	if first.UserID != "7" || first.Lat != 32.0853 || first.Lng != 34.7818 {
		t.Errorf("samples[0] = %+v", first)
	}
	want := time.Date(2024, 6, 1, 8, 15, 30, 0, time.UTC)
	if !first.Timestamp.Equal(want) {
		t.Errorf("samples[0].Timestamp = %v, want %v", first.Timestamp, want)
	}
	if first.Speed == nil || *first.Speed != 12.5 {
		t.Errorf("samples[0].Speed = %v, want 12.5", first.Speed)
	}
	if first.Heading == nil || *first.Heading != 90 {
		t.Errorf("samples[0].Heading = %v, want 90", first.Heading)
	}

	// Second sample has no speed/bearing and a garbled timestamp.
	second := samples[1]
	if second.Speed != nil || second.Heading != nil {
		t.Errorf("samples[1] speed/heading = %v/%v, want nil/nil", second.Speed, second.Heading)
	}
	if time.Since(second.Timestamp) > time.Minute {
		t.Errorf("samples[1].Timestamp = %v, want fallback to now", second.Timestamp)
	}
}

func TestLocations_EmptyData(t *testing.T) {
	client := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "data": []}`))
	})

	if _, err := client.Locations(context.Background(), Query{UserID: "7", Limit: 1}); err == nil {
		t.Error("Locations() did not fail for empty data")
	}
}

func TestLocations_FailedEnvelope(t *testing.T) {
	client := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "error": "no access"}`))
	})

	if _, err := client.Locations(context.Background(), Query{UserID: "7", Limit: 1}); err == nil {
		t.Error("Locations() did not fail for a failed envelope")
	}
}

func TestLocations_MalformedJSON(t *testing.T) {
	client := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	})

	if _, err := client.Locations(context.Background(), Query{UserID: "7", Limit: 1}); err == nil {
		t.Error("Locations() did not fail for malformed JSON")
	}
}
