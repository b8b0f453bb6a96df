package handlers

import (
	"net/http"
	"strconv"

	"github.com/AdarBahar/mytrips-viewer-ui/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	defaultHistoryLimit = 100
	maxHistoryLimit     = 1000
)

// TrackingHandler serves routes, trackable users and location data.
type TrackingHandler struct {
	telemetry service.TelemetryProvider
}

// NewTrackingHandler creates a new TrackingHandler instance.
func NewTrackingHandler(telemetry service.TelemetryProvider) *TrackingHandler {
	return &TrackingHandler{telemetry: telemetry}
}

// Routes godoc
// @Summary List static routes
// @Description Return the constant demo routes
// @Tags tracking
// @Produce json
// @Success 200 {array} models.RouteData
// @Router /routes [get]
func (h *TrackingHandler) Routes(c *gin.Context) {
	c.JSON(http.StatusOK, service.StaticRoutes())
}

// Users godoc
// @Summary List trackable users
// @Description Return users with location data, falling back to mock data when the Location API is unavailable
// @Tags tracking
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.TrackableUser
// @Failure 401 {object} map[string]string
// @Router /users [get]
func (h *TrackingHandler) Users(c *gin.Context) {
	users, err := h.telemetry.TrackableUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// Location godoc
// @Summary Latest location
// @Description Return the most recent location for a user, falling back to simulated data when the Location API is unavailable
// @Tags tracking
// @Security BearerAuth
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} models.LocationData
// @Failure 401 {object} map[string]string
// @Router /location/{userID} [get]
func (h *TrackingHandler) Location(c *gin.Context) {
	loc, err := h.telemetry.LatestLocation(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, loc)
}

// History godoc
// @Summary Route history
// @Description Return the location trail for a user, falling back to a synthetic path when the Location API is unavailable
// @Tags tracking
// @Security BearerAuth
// @Produce json
// @Param userID path string true "User ID"
// @Param limit query int false "Maximum samples" default(100)
// @Param date_from query string false "Start date"
// @Param date_to query string false "End date"
// @Success 200 {object} models.RouteHistory
// @Failure 401 {object} map[string]string
// @Router /history/{userID} [get]
func (h *TrackingHandler) History(c *gin.Context) {
	history, err := h.telemetry.RouteHistory(c.Request.Context(), c.Param("userID"), service.HistoryQuery{
		Limit:    parseLimit(c.Query("limit")),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// parseLimit clamps the history limit to 1..1000, defaulting to 100.
func parseLimit(raw string) int {
	if raw == "" {
		return defaultHistoryLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		return maxHistoryLimit
	}
	return limit
}
