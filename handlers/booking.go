package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace/middleware"
	"marketplace/models"
	"marketplace/utils"
)

// CreateBookingHandler submits a booking against a service.
func (hb *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, utils.AuthError{Message: "unauthorized"})
		return
	}

	var req models.BookingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	bk, err := hb.BookingService.Create(actor, req)
	if err != nil {
		logger.Warn("Booking creation failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, utils.Serialize(bk))
}

// ListBookingsHandler returns the caller's bookings for the requested role.
func (hb *HandlerBundle) ListBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, utils.AuthError{Message: "unauthorized"})
		return
	}

	bookings, err := hb.BookingService.List(actor.ID.Hex(), c.DefaultQuery("role", "customer"))
	if err != nil {
		logger.Warn("Booking listing failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	views := make([]any, 0, len(bookings))
	for i := range bookings {
		views = append(views, utils.Serialize(&bookings[i]))
	}
	c.JSON(http.StatusOK, views)
}

// UpdateBookingStatusHandler records the provider's decision on a booking.
func (hb *HandlerBundle) UpdateBookingStatusHandler(c *gin.Context) {
	logger := getLogger(c)

	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, utils.AuthError{Message: "unauthorized"})
		return
	}

	var req models.BookingStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid status update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	bk, err := hb.BookingService.UpdateStatus(actor.ID.Hex(), c.Param("id"), req.Status)
	if err != nil {
		logger.Warn("Booking status update failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Serialize(bk))
}
