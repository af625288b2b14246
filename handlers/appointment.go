package handlers

import (
	"errors"
	"net/http"
	"time"

	"bookwise/models"
	"bookwise/services/appointment"

	"github.com/gin-gonic/gin"
)

type createAppointmentRequest struct {
	CustomerID string    `json:"customerId" binding:"required"`
	ServiceID  string    `json:"serviceId" binding:"required"`
	StaffID    *string   `json:"staffId"`
	StartTime  time.Time `json:"startTime" binding:"required"`
	EndTime    time.Time `json:"endTime" binding:"required"`
	Notes      string    `json:"notes"`
}

// CreateAppointmentHandler books an appointment. The service re-checks
// conflicts at write time, so a stale availability view cannot double-book.
func (hb *HandlerBundle) CreateAppointmentHandler(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := hb.AppointmentSvc.Create(c.Request.Context(), tenantID(c), appointment.CreateAppointmentInput{
		CustomerID: req.CustomerID,
		ServiceID:  req.ServiceID,
		StaffID:    req.StaffID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Notes:      req.Notes,
	})
	if err != nil {
		appointmentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListAppointmentsHandler returns the business's appointments, optionally
// bounded by from/to query parameters.
func (hb *HandlerBundle) ListAppointmentsHandler(c *gin.Context) {
	from, err := optionalTimeParam(c, "from")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := optionalTimeParam(c, "to")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appts, err := hb.AppointmentSvc.List(c.Request.Context(), tenantID(c), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list appointments"})
		return
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (hb *HandlerBundle) GetAppointmentHandler(c *gin.Context) {
	appt, err := hb.AppointmentSvc.GetByID(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		appointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (hb *HandlerBundle) UpdateAppointmentStatusHandler(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := hb.AppointmentSvc.UpdateStatus(c.Request.Context(), tenantID(c), c.Param("id"), req.Status)
	if err != nil {
		appointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (hb *HandlerBundle) CancelAppointmentHandler(c *gin.Context) {
	appt, err := hb.AppointmentSvc.Cancel(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		appointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

type rescheduleRequest struct {
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

func (hb *HandlerBundle) RescheduleAppointmentHandler(c *gin.Context) {
	var req rescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := hb.AppointmentSvc.Reschedule(c.Request.Context(), tenantID(c), c.Param("id"), req.StartTime, req.EndTime)
	if err != nil {
		appointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func appointmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, appointment.ErrAppointmentNotFound),
		errors.Is(err, appointment.ErrCustomerNotFound),
		errors.Is(err, appointment.ErrServiceNotFound),
		errors.Is(err, appointment.ErrStaffNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, appointment.ErrSlotConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, appointment.ErrInvalidInterval),
		errors.Is(err, appointment.ErrAlreadyFinalized),
		errors.Is(err, appointment.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "appointment operation failed"})
	}
}
