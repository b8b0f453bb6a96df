package service

import "github.com/AdarBahar/mytrips-viewer-ui/internal/models"

// StaticRoutes returns the constant demo routes. Reference data only, not
// backed by any store.
func StaticRoutes() []models.RouteData {
	return []models.RouteData{
		{
			ID:          "route-1",
			Name:        "Downtown Loop",
			Description: "City center patrol route",
			Coordinates: []models.Coordinate{
				{Lat: 40.7589, Lng: -73.9851},
				{Lat: 40.7614, Lng: -73.9776},
				{Lat: 40.7580, Lng: -73.9855},
				{Lat: 40.7505, Lng: -73.9934},
				{Lat: 40.7489, Lng: -73.9680},
				{Lat: 40.7589, Lng: -73.9851},
			},
			Distance:      5.2,
			EstimatedTime: 45,
		},
		{
			ID:          "route-2",
			Name:        "Westside Highway",
			Description: "Coastal route along the waterfront",
			Coordinates: []models.Coordinate{
				{Lat: 40.7489, Lng: -74.0060},
				{Lat: 40.7589, Lng: -74.0080},
				{Lat: 40.7689, Lng: -74.0020},
				{Lat: 40.7789, Lng: -73.9940},
				{Lat: 40.7889, Lng: -73.9820},
			},
			Distance:      8.5,
			EstimatedTime: 60,
		},
		{
			ID:          "route-3",
			Name:        "East Side Express",
			Description: "Fast route through eastern districts",
			Coordinates: []models.Coordinate{
				{Lat: 40.7580, Lng: -73.9680},
				{Lat: 40.7680, Lng: -73.9600},
				{Lat: 40.7780, Lng: -73.9520},
				{Lat: 40.7880, Lng: -73.9440},
				{Lat: 40.7980, Lng: -73.9360},
			},
			Distance:      12.3,
			EstimatedTime: 90,
		},
	}
}
