// Package location is the client for the external Location telemetry API.
package location

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/AdarBahar/mytrips-viewer-ui/internal/models"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/pkg/logger"
)

const requestTimeout = 10 * time.Second

// serverTimeLayout is the timestamp format the Location API emits,
// implicitly in UTC.
const serverTimeLayout = "2006-01-02 15:04:05"

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client reads user listings and location samples from the Location API.
type Client struct {
	client   httpClient
	baseURL  string
	apiToken string
	debug    bool
}

// NewClient creates a Location API client.
func NewClient(client httpClient, baseURL, apiToken string, debug bool) *Client {
	return &Client{
		client:   client,
		baseURL:  baseURL,
		apiToken: apiToken,
		debug:    debug,
	}
}

// Configured reports whether the client has the base URL and token needed
// to reach the API.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.apiToken != ""
}

type usersResponse struct {
	Status string `json:"status"`
	Data   struct {
		Users []struct {
			ID          json.Number `json:"id"`
			Username    string      `json:"username"`
			DisplayName string      `json:"display_name"`
		} `json:"users"`
	} `json:"data"`
}

// Users fetches the location-augmented user listing and maps it into
// trackable users. Every user gets the default active status.
func (c *Client) Users(ctx context.Context) ([]models.TrackableUser, error) {
	query := url.Values{
		"with_location_data": {"true"},
		"include_counts":     {"true"},
		"include_metadata":   {"true"},
	}

	body, err := c.get(ctx, "/users.php", query)
	if err != nil {
		return nil, err
	}

	var parsed usersResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode users response: %w", err)
	}
	if parsed.Status != "success" || len(parsed.Data.Users) == 0 {
		return nil, fmt.Errorf("location API returned no users")
	}

	users := make([]models.TrackableUser, 0, len(parsed.Data.Users))
	for _, u := range parsed.Data.Users {
		name := u.DisplayName
		if name == "" {
			name = u.Username
		}
		users = append(users, models.TrackableUser{
			ID:     u.ID.String(),
			Name:   name,
			Status: models.StatusActive,
		})
	}
	return users, nil
}

// Sample is one location record from the Location API with the upstream
// timestamp already parsed.
type Sample struct {
	UserID    string
	Lat       float64
	Lng       float64
	Timestamp time.Time
	Speed     *float64
	Heading   *float64
}

type locationsResponse struct {
	Success bool `json:"success"`
	Data    []struct {
		UserID     json.Number `json:"user_id"`
		Latitude   float64     `json:"latitude"`
		Longitude  float64     `json:"longitude"`
		Speed      *float64    `json:"speed"`
		Bearing    *float64    `json:"bearing"`
		ServerTime string      `json:"server_time"`
	} `json:"data"`
}

// Query bounds a Locations request.
type Query struct {
	UserID   string
	Limit    int
	Offset   int
	DateFrom string
	DateTo   string
}

// Locations fetches up to q.Limit samples for a user, newest first.
// Returns an error on any transport failure, non-200 status or empty
// payload so the caller can apply its fallback.
func (c *Client) Locations(ctx context.Context, q Query) ([]Sample, error) {
	query := url.Values{
		"user":   {q.UserID},
		"limit":  {strconv.Itoa(q.Limit)},
		"offset": {strconv.Itoa(q.Offset)},
	}
	if q.DateFrom != "" {
		query.Set("date_from", q.DateFrom)
	}
	if q.DateTo != "" {
		query.Set("date_to", q.DateTo)
	}

	body, err := c.get(ctx, "/locations.php", query)
	if err != nil {
		return nil, err
	}

	var parsed locationsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode locations response: %w", err)
	}
	if !parsed.Success || len(parsed.Data) == 0 {
		return nil, fmt.Errorf("no location data found for user %s", q.UserID)
	}

	samples := make([]Sample, 0, len(parsed.Data))
	for _, rec := range parsed.Data {
		samples = append(samples, Sample{
			UserID:    rec.UserID.String(),
			Lat:       rec.Latitude,
			Lng:       rec.Longitude,
			Timestamp: parseServerTime(rec.ServerTime),
			Speed:     rec.Speed,
			Heading:   rec.Bearing,
		})
	}
	return samples, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	apiURL := c.baseURL + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("X-API-Token", c.apiToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("location API request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read location API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log := logger.FromContext(ctx)
		if c.debug {
			log.Errorf("Location API error: %d - %s", resp.StatusCode, truncate(body, 500))
		} else {
			log.Errorf("Location API error: %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("location API returned status %d", resp.StatusCode)
	}

	return body, nil
}

// parseServerTime interprets the upstream timestamp as UTC. Unparseable
// values fall back to the current time.
func parseServerTime(value string) time.Time {
	ts, err := time.ParseInLocation(serverTimeLayout, value, time.UTC)
	if err != nil {
		return time.Now().UTC()
	}
	return ts
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
