package models

import "time"

// Trackable user statuses.
const (
	StatusActive   = "active"
	StatusOnBreak  = "on_break"
	StatusInactive = "inactive"
)

// Coordinate is a single lat/lng pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TrackableUser is a driver that can be selected for live tracking.
// Sourced per request from the Location API or the mock table, never
// persisted.
type TrackableUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// LocationData is the most recent known position of a user.
type LocationData struct {
	UserID    string    `json:"user_id"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Timestamp time.Time `json:"timestamp"`
	Speed     *float64  `json:"speed,omitempty"`
	Heading   *float64  `json:"heading,omitempty"`
}

// RouteHistory is an ordered trail of positions for a user. Coordinates
// and timestamps are index-aligned and always the same length.
type RouteHistory struct {
	UserID      string       `json:"user_id"`
	Coordinates []Coordinate `json:"coordinates"`
	Timestamps  []string     `json:"timestamps"`
}

// RouteData is a static reference route shown in the demo UI.
type RouteData struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Coordinates   []Coordinate `json:"coordinates"`
	Distance      float64      `json:"distance"`
	EstimatedTime int          `json:"estimated_time"`
}
