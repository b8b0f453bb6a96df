package service

import (
	"context"
	"time"

	"github.com/AdarBahar/mytrips-viewer-ui/internal/clients/location"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/models"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/pkg/logger"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/simstate"
)

const defaultHistoryLimit = 100

// liveTelemetry reads from the Location API and substitutes simulated
// data on any upstream failure. Availability over accuracy: consumers get
// a plausible answer even during an outage, and the failure is only
// visible in the logs.
type liveTelemetry struct {
	client *location.Client
	store  simstate.Store
}

// NewLiveTelemetry creates the Location-API-backed TelemetryProvider.
func NewLiveTelemetry(client *location.Client, store simstate.Store) TelemetryProvider {
	return &liveTelemetry{
		client: client,
		store:  store,
	}
}

func (p *liveTelemetry) TrackableUsers(ctx context.Context) ([]models.TrackableUser, error) {
	log := logger.FromContext(ctx)
	log.Info("Fetching users from Location API")

	users, err := p.client.Users(ctx)
	if err != nil {
		log.Errorf("Error fetching users from Location API: %v", err)
		log.Warn("Falling back to mock users data")
		// Intentionally a smaller set than the mock provider serves.
		return []models.TrackableUser{
			{ID: "user-1", Name: "Driver A - John Smith", Status: models.StatusActive},
			{ID: "user-2", Name: "Driver B - Sarah Johnson", Status: models.StatusActive},
		}, nil
	}

	log.Infof("Fetched %d users from Location API", len(users))
	return users, nil
}

func (p *liveTelemetry) LatestLocation(ctx context.Context, userID string) (*models.LocationData, error) {
	log := logger.FromContext(ctx)
	log.Infof("Fetching latest location for user %s from Location API", userID)

	samples, err := p.client.Locations(ctx, location.Query{UserID: userID, Limit: 1})
	if err != nil {
		log.Errorf("Error fetching location from API: %v", err)
		log.Warnf("Falling back to mock location data for user %s", userID)
		return p.fallbackLocation(ctx, userID), nil
	}

	sample := samples[0]
	log.Infof("Fetched location for user %s: lat=%v, lng=%v", userID, sample.Lat, sample.Lng)
	return &models.LocationData{
		UserID:    sample.UserID,
		Lat:       sample.Lat,
		Lng:       sample.Lng,
		Timestamp: sample.Timestamp,
		Speed:     sample.Speed,
		Heading:   sample.Heading,
	}, nil
}

func (p *liveTelemetry) RouteHistory(ctx context.Context, userID string, q HistoryQuery) (*models.RouteHistory, error) {
	log := logger.FromContext(ctx)
	log.Infof("Fetching location history for user %s from Location API", userID)

	limit := q.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	samples, err := p.client.Locations(ctx, location.Query{
		UserID:   userID,
		Limit:    limit,
		DateFrom: q.DateFrom,
		DateTo:   q.DateTo,
	})
	if err != nil {
		log.Errorf("Error fetching location history from API: %v", err)
		log.Warnf("Falling back to mock history data for user %s", userID)
		return syntheticHistory(userID, false), nil
	}

	coords := make([]models.Coordinate, 0, len(samples))
	timestamps := make([]string, 0, len(samples))
	for _, sample := range samples {
		coords = append(coords, models.Coordinate{Lat: sample.Lat, Lng: sample.Lng})
		timestamps = append(timestamps, sample.Timestamp.Format(time.RFC3339))
	}

	log.Infof("Fetched %d location points for user %s", len(coords), userID)
	return &models.RouteHistory{
		UserID:      userID,
		Coordinates: coords,
		Timestamps:  timestamps,
	}, nil
}

// fallbackLocation serves the last simulated position without drift,
// seeding it at the reference point on first use. Speed is forced to zero
// so the outage does not fake movement.
func (p *liveTelemetry) fallbackLocation(ctx context.Context, userID string) *models.LocationData {
	pos, ok, err := p.store.Get(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorf("simstate read failed for %s: %v", userID, err)
		ok = false
	}
	if !ok {
		pos = simstate.Position{Lat: baseLat, Lng: baseLng, Heading: 0}
		if err := p.store.Put(ctx, userID, pos); err != nil {
			logger.FromContext(ctx).Errorf("simstate write failed for %s: %v", userID, err)
		}
	}

	return &models.LocationData{
		UserID:    userID,
		Lat:       pos.Lat,
		Lng:       pos.Lng,
		Timestamp: time.Now().UTC(),
		Speed:     ptr(0),
		Heading:   ptr(pos.Heading),
	}
}
