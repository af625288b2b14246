package handlers

import (
	"errors"
	"net/http"
	"time"

	"bookwise/models"
	"bookwise/services/catalog"

	"github.com/gin-gonic/gin"
)

type serviceRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes" binding:"required"`
	PriceCents      int64  `json:"priceCents"`
	IsActive        *bool  `json:"isActive"`
}

func (hb *HandlerBundle) CreateServiceHandler(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	service := &models.Service{
		BusinessID:      tenantID(c),
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		PriceCents:      req.PriceCents,
	}
	if err := hb.CatalogSvc.CreateService(c.Request.Context(), service); err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service)
}

func (hb *HandlerBundle) UpdateServiceHandler(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	service := &models.Service{
		ID:              c.Param("id"),
		BusinessID:      tenantID(c),
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		PriceCents:      req.PriceCents,
		IsActive:        req.IsActive == nil || *req.IsActive,
	}
	if err := hb.CatalogSvc.UpdateService(c.Request.Context(), service); err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (hb *HandlerBundle) ListServicesHandler(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	services, err := hb.CatalogSvc.ListServices(c.Request.Context(), tenantID(c), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list services"})
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

type staffRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	IsActive *bool  `json:"isActive"`
}

func (hb *HandlerBundle) CreateStaffHandler(c *gin.Context) {
	var req staffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	staff := &models.Staff{
		BusinessID: tenantID(c),
		Name:       req.Name,
		Email:      req.Email,
	}
	if err := hb.CatalogSvc.CreateStaff(c.Request.Context(), staff); err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, staff)
}

func (hb *HandlerBundle) UpdateStaffHandler(c *gin.Context) {
	var req staffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	staff := &models.Staff{
		ID:         c.Param("id"),
		BusinessID: tenantID(c),
		Name:       req.Name,
		Email:      req.Email,
		IsActive:   req.IsActive == nil || *req.IsActive,
	}
	if err := hb.CatalogSvc.UpdateStaff(c.Request.Context(), staff); err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

func (hb *HandlerBundle) ListStaffHandler(c *gin.Context) {
	staff, err := hb.CatalogSvc.ListStaff(c.Request.Context(), tenantID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list staff"})
		return
	}
	if staff == nil {
		staff = []models.Staff{}
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

type weeklyHoursRequest struct {
	Hours []models.WeeklyHours `json:"hours" binding:"required"`
}

// SetWeeklyHoursHandler replaces one staff member's recurring weekly shifts.
func (hb *HandlerBundle) SetWeeklyHoursHandler(c *gin.Context) {
	var req weeklyHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	staffID := c.Param("id")
	for i := range req.Hours {
		req.Hours[i].StaffID = staffID
	}

	if err := hb.CatalogSvc.SetWeeklyHours(c.Request.Context(), tenantID(c), staffID, req.Hours); err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hours": req.Hours})
}

func (hb *HandlerBundle) GetWeeklyHoursHandler(c *gin.Context) {
	hours, err := hb.CatalogSvc.GetWeeklyHours(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		catalogError(c, err)
		return
	}
	if hours == nil {
		hours = []models.WeeklyHours{}
	}
	c.JSON(http.StatusOK, gin.H{"hours": hours})
}

type timeOffRequest struct {
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
	Reason string    `json:"reason"`
}

func (hb *HandlerBundle) AddTimeOffHandler(c *gin.Context) {
	var req timeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	timeOff := &models.TimeOff{
		StaffID: c.Param("id"),
		Start:   req.Start,
		End:     req.End,
		Reason:  req.Reason,
	}
	if err := hb.CatalogSvc.AddTimeOff(c.Request.Context(), tenantID(c), timeOff); err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, timeOff)
}

func (hb *HandlerBundle) RemoveTimeOffHandler(c *gin.Context) {
	err := hb.CatalogSvc.RemoveTimeOff(c.Request.Context(), tenantID(c), c.Param("id"), c.Param("timeOffId"))
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func catalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrServiceNotFound), errors.Is(err, catalog.ErrStaffNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrInvalidHours):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog operation failed"})
	}
}
