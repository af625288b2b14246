package handlers

import (
	"errors"
	"net/http"

	"bookwise/models"
	"bookwise/services/availability"

	"github.com/gin-gonic/gin"
)

// GetAvailabilityHandler returns every bookable slot for a service in the
// requested window.
func (hb *HandlerBundle) GetAvailabilityHandler(c *gin.Context) {
	req, ok := hb.bindAvailabilityRequest(c)
	if !ok {
		return
	}

	slots, err := hb.AvailabilitySvc.CalculateAvailability(c.Request.Context(), req)
	if err != nil {
		availabilityError(c, err)
		return
	}
	if slots == nil {
		slots = []models.TimeSlot{}
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// GetBestSlotHandler returns the single slot closest to the caller's
// preferred time, or the earliest slot when no preference is given.
func (hb *HandlerBundle) GetBestSlotHandler(c *gin.Context) {
	req, ok := hb.bindAvailabilityRequest(c)
	if !ok {
		return
	}
	preferred, err := optionalTimeParam(c, "preferred")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slots, err := hb.AvailabilitySvc.CalculateAvailability(c.Request.Context(), req)
	if err != nil {
		availabilityError(c, err)
		return
	}

	best := availability.FindBestSlot(slots, preferred)
	if best == nil {
		c.JSON(http.StatusOK, gin.H{"slot": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slot": best})
}

func (hb *HandlerBundle) bindAvailabilityRequest(c *gin.Context) (models.AvailabilityRequest, bool) {
	serviceID := c.Query("serviceId")
	if serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceId is required"})
		return models.AvailabilityRequest{}, false
	}
	startDate, err := parseTimeParam(c, "startDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.AvailabilityRequest{}, false
	}
	endDate, err := parseTimeParam(c, "endDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.AvailabilityRequest{}, false
	}

	req := models.AvailabilityRequest{
		BusinessID: tenantID(c),
		ServiceID:  serviceID,
		StartDate:  startDate,
		EndDate:    endDate,
	}
	if staffID := c.Query("staffId"); staffID != "" {
		req.StaffID = &staffID
	}
	return req, true
}

func availabilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, availability.ErrInvalidRange), errors.Is(err, availability.ErrWindowTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to calculate availability"})
	}
}
