package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skymate/models"
	"skymate/obs"
	"skymate/services/flights"
	"skymate/utils"
)

// FlightsHandler serves offer search and lookup.
type FlightsHandler struct {
	Provider flights.Provider
	Metrics  *obs.Metrics
	Logger   *zap.Logger
}

// NewFlightsHandler creates a FlightsHandler.
func NewFlightsHandler(provider flights.Provider, metrics *obs.Metrics, logger *zap.Logger) *FlightsHandler {
	return &FlightsHandler{Provider: provider, Metrics: metrics, Logger: logger}
}

// Search handles POST /api/flights/search.
func (h *FlightsHandler) Search(c *gin.Context) {
	var params models.SearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalidInput", err.Error())
		return
	}

	h.Metrics.IncSearches()
	offers, err := h.Provider.Search(c.Request.Context(), params)
	if err != nil {
		h.Logger.Error("flight search failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "providerFailure", "flight search failed")
		return
	}
	if offers == nil {
		offers = []models.Offer{}
	}
	c.JSON(http.StatusOK, gin.H{"offers": offers})
}

// GetOffer handles GET /api/flights/offers/:id.
func (h *FlightsHandler) GetOffer(c *gin.Context) {
	offer, err := h.Provider.GetOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.Error("offer lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "providerFailure", "offer lookup failed")
		return
	}
	if offer == nil {
		utils.JSONError(c, http.StatusNotFound, "offerNotFound", "offer not found")
		return
	}
	c.JSON(http.StatusOK, offer)
}
