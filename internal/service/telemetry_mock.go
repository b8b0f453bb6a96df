package service

import (
	"context"
	"math"
	"time"

	"github.com/AdarBahar/mytrips-viewer-ui/internal/models"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/pkg/logger"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/simstate"
)

// mockTelemetry simulates a small fleet. Each user's last position lives
// in the injected simstate store and drifts a little on every read.
type mockTelemetry struct {
	store simstate.Store
}

// NewMockTelemetry creates the simulated TelemetryProvider.
func NewMockTelemetry(store simstate.Store) TelemetryProvider {
	return &mockTelemetry{store: store}
}

func (p *mockTelemetry) TrackableUsers(ctx context.Context) ([]models.TrackableUser, error) {
	logger.FromContext(ctx).Info("Using mock users data")
	return []models.TrackableUser{
		{ID: "user-1", Name: "Driver A - John Smith", Status: models.StatusActive},
		{ID: "user-2", Name: "Driver B - Sarah Johnson", Status: models.StatusActive},
		{ID: "user-3", Name: "Driver C - Mike Davis", Status: models.StatusOnBreak},
		{ID: "user-4", Name: "Driver D - Emily Chen", Status: models.StatusActive},
		{ID: "user-5", Name: "Driver E - Robert Wilson", Status: models.StatusInactive},
	}, nil
}

func (p *mockTelemetry) LatestLocation(ctx context.Context, userID string) (*models.LocationData, error) {
	logger.FromContext(ctx).Infof("Using mock location data for user %s", userID)

	pos, ok, err := p.store.Get(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorf("simstate read failed for %s: %v", userID, err)
		ok = false
	}

	if !ok {
		pos = simstate.Position{
			Lat:     baseLat + uniform(-0.01, 0.01),
			Lng:     baseLng + uniform(-0.01, 0.01),
			Heading: uniform(0, 360),
		}
	} else {
		pos.Lat += uniform(-0.0005, 0.0005)
		pos.Lng += uniform(-0.0005, 0.0005)
		pos.Heading = math.Mod(pos.Heading+uniform(-10, 10)+360, 360)
	}

	if err := p.store.Put(ctx, userID, pos); err != nil {
		logger.FromContext(ctx).Errorf("simstate write failed for %s: %v", userID, err)
	}

	return &models.LocationData{
		UserID:    userID,
		Lat:       pos.Lat,
		Lng:       pos.Lng,
		Timestamp: time.Now().UTC(),
		Speed:     ptr(uniform(20, 60)),
		Heading:   ptr(pos.Heading),
	}, nil
}

func (p *mockTelemetry) RouteHistory(ctx context.Context, userID string, _ HistoryQuery) (*models.RouteHistory, error) {
	logger.FromContext(ctx).Infof("Using mock history data for user %s", userID)
	return syntheticHistory(userID, true), nil
}

// syntheticHistory builds a 20-point north-east path ending now, one point
// per minute. Jitter is disabled on the live provider's fallback so its
// output stays deterministic.
func syntheticHistory(userID string, jitter bool) *models.RouteHistory {
	now := time.Now().UTC()
	coords := make([]models.Coordinate, 0, historyPoints)
	timestamps := make([]string, 0, historyPoints)

	for i := 0; i < historyPoints; i++ {
		lat := baseLat + float64(i)*0.001
		lng := baseLng + float64(i)*0.0008
		if jitter {
			lat += uniform(-0.0002, 0.0002)
			lng += uniform(-0.0002, 0.0002)
		}
		coords = append(coords, models.Coordinate{Lat: lat, Lng: lng})
		timestamps = append(timestamps, now.Add(-time.Duration(historyPoints-i)*time.Minute).Format(time.RFC3339))
	}

	return &models.RouteHistory{
		UserID:      userID,
		Coordinates: coords,
		Timestamps:  timestamps,
	}
}
