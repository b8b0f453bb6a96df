package service

import (
	"context"
	"math/rand"

	"github.com/AdarBahar/mytrips-viewer-ui/internal/models"
)

// Reference point the simulation orbits around (midtown Manhattan).
const (
	baseLat = 40.7589
	baseLng = -73.9851
)

const historyPoints = 20

// HistoryQuery bounds a route-history request.
type HistoryQuery struct {
	Limit    int
	DateFrom string
	DateTo   string
}

// TelemetryProvider answers where tracked users are. Selected once at
// startup: the simulated provider for mock deployments or missing Location
// API configuration, otherwise the live provider, which itself degrades to
// simulated data when the upstream fails. Implementations never fail a
// request because of an upstream outage.
type TelemetryProvider interface {
	TrackableUsers(ctx context.Context) ([]models.TrackableUser, error)
	LatestLocation(ctx context.Context, userID string) (*models.LocationData, error)
	RouteHistory(ctx context.Context, userID string, q HistoryQuery) (*models.RouteHistory, error)
}

func uniform(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

func ptr(v float64) *float64 {
	return &v
}
