package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skymate/middleware"
	"skymate/models"
	"skymate/obs"
	"skymate/services/booking"
	"skymate/services/idempotency"
	"skymate/utils"
)

// ReplayHeader marks a response served from a stored idempotency record.
const ReplayHeader = "Idempotency-Replayed"

// BookingHandler serves booking CRUD. Creation goes through the idempotency
// guard; everything else is a plain owner-scoped call.
type BookingHandler struct {
	Service booking.Service
	Guard   *idempotency.Guard
	Metrics *obs.Metrics
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(service booking.Service, guard *idempotency.Guard, metrics *obs.Metrics, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Guard: guard, Metrics: metrics, Logger: logger}
}

// writeBookingError maps domain errors onto HTTP statuses. Everything here is
// terminal for the request; only provider failures invite a resubmit, which
// the idempotency key keeps safe.
func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	var provErr *booking.ProviderError
	switch {
	case errors.Is(err, booking.ErrOfferNotFound):
		utils.JSONError(c, http.StatusNotFound, booking.ErrOfferNotFound.Code, booking.ErrOfferNotFound.Message)
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, booking.ErrBookingNotFound.Code, booking.ErrBookingNotFound.Message)
	case errors.Is(err, booking.ErrAlreadyCancelled):
		utils.JSONError(c, http.StatusConflict, booking.ErrAlreadyCancelled.Code, booking.ErrAlreadyCancelled.Message)
	case errors.Is(err, booking.ErrInvalidCursor):
		utils.JSONError(c, http.StatusBadRequest, booking.ErrInvalidCursor.Code, booking.ErrInvalidCursor.Message)
	case errors.Is(err, idempotency.ErrInFlight):
		utils.JSONError(c, http.StatusConflict, "duplicateRequest", "an identical request is already in flight")
	case errors.As(err, &provErr):
		h.Logger.Error("upstream provider call failed", zap.String("op", provErr.Op), zap.Error(provErr.Err))
		utils.JSONError(c, http.StatusBadGateway, "providerFailure", "upstream provider call failed")
	default:
		h.Logger.Error("booking operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "booking operation failed")
	}
}

// Create handles POST /api/bookings. A replayed request (same user and
// Idempotency-Key) returns the original response body with status 200 and the
// replay header set, instead of creating a second booking.
func (h *BookingHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalidInput", err.Error())
		return
	}
	if input.OfferID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalidInput", "offerId is required")
		return
	}

	key := c.GetHeader("Idempotency-Key")
	reused, payload, err := h.Guard.Do(c.Request.Context(), userID, http.MethodPost, "/api/bookings", key,
		func(ctx context.Context) (interface{}, error) {
			return h.Service.Create(ctx, userID, input)
		})
	if err != nil {
		h.Metrics.IncBookingOp("create", "error")
		h.writeBookingError(c, err)
		return
	}

	status := http.StatusCreated
	if reused {
		status = http.StatusOK
		c.Header(ReplayHeader, "true")
		h.Metrics.IncIdempotentReplays()
	}
	h.Metrics.IncBookingOp("create", "ok")
	c.Data(status, "application/json", payload)
}

// List handles GET /api/bookings.
func (h *BookingHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)
	status := c.Query("status")
	cursor := c.Query("cursor")

	switch status {
	case "", models.BookingStatusReserved, models.BookingStatusConfirmed, models.BookingStatusCancelled:
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalidInput", "unknown status filter")
		return
	}

	page, err := h.Service.List(c.Request.Context(), userID, status, cursor)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Get handles GET /api/bookings/:id.
func (h *BookingHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)
	bookingRecord, err := h.Service.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingRecord)
}

// Update handles PATCH /api/bookings/:id.
func (h *BookingHandler) Update(c *gin.Context) {
	userID := middleware.UserID(c)

	var patch booking.UpdateInput
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalidInput", err.Error())
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), userID, c.Param("id"), patch)
	if err != nil {
		h.Metrics.IncBookingOp("update", "error")
		h.writeBookingError(c, err)
		return
	}
	h.Metrics.IncBookingOp("update", "ok")
	c.JSON(http.StatusOK, updated)
}

// Cancel handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := middleware.UserID(c)

	var body struct {
		Reason string `json:"reason,omitempty"`
	}
	// A missing or empty body is fine; reason is optional.
	_ = c.ShouldBindJSON(&body)

	cancelled, err := h.Service.Cancel(c.Request.Context(), userID, c.Param("id"), body.Reason)
	if err != nil {
		h.Metrics.IncBookingOp("cancel", "error")
		h.writeBookingError(c, err)
		return
	}
	h.Metrics.IncBookingOp("cancel", "ok")
	c.JSON(http.StatusOK, gin.H{"status": cancelled.Status})
}
