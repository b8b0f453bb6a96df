// Package handlers contains HTTP request handlers for the tracking service.
package handlers

import (
	"net/http"

	"github.com/AdarBahar/mytrips-viewer-ui/internal/middleware"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/models"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register godoc
// @Summary Register a new user
// @Description Create a user account and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 200 {object} models.Token
// @Failure 400 {object} map[string]string
// @Failure 501 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

// Login godoc
// @Summary User login
// @Description Authenticate with username and password, returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.Token
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

// AppLogin godoc
// @Summary Stateless app login
// @Description Verify credentials against the MyTrips API without creating a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.AppLoginRequest true "App login credentials"
// @Success 200 {object} models.AppLoginResponse
// @Failure 400 {object} map[string]string
// @Router /auth/app-login [post]
func (h *AuthHandler) AppLogin(c *gin.Context) {
	var req models.AppLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Always 200: the outcome is carried in the authenticated flag.
	c.JSON(http.StatusOK, h.authService.AppLogin(c.Request.Context(), req))
}

// Me godoc
// @Summary Current user
// @Description Return the user identified by the bearer token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, user)
}
