package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skymate/middleware"
	"skymate/services/user"
	"skymate/utils"
)

// UserHandler serves the profile endpoints.
type UserHandler struct {
	Service user.Service
	Logger  *zap.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(service user.Service, logger *zap.Logger) *UserHandler {
	return &UserHandler{Service: service, Logger: logger}
}

// Me handles GET /api/users/me, provisioning the profile on first access.
func (h *UserHandler) Me(c *gin.Context) {
	profile, err := h.Service.GetProfile(middleware.UserID(c))
	if err != nil {
		h.Logger.Error("failed to fetch profile", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "failed to fetch profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateMe handles PATCH /api/users/me.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var patch user.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalidInput", err.Error())
		return
	}

	updated, err := h.Service.UpdateProfile(middleware.UserID(c), patch)
	if err != nil {
		if _, ok := err.(user.UserNotFoundError); ok {
			utils.JSONError(c, http.StatusNotFound, "userNotFound", err.Error())
			return
		}
		h.Logger.Error("failed to update profile", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "failed to update profile")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AddTraveler handles POST /api/users/me/travelers.
func (h *UserHandler) AddTraveler(c *gin.Context) {
	var input user.TravelerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalidInput", err.Error())
		return
	}

	traveler, err := h.Service.AddTraveler(middleware.UserID(c), input)
	if err != nil {
		h.Logger.Error("failed to save traveler", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "failed to save traveler")
		return
	}
	c.JSON(http.StatusCreated, traveler)
}
