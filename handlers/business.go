package handlers

import (
	"errors"
	"net/http"

	"bookwise/models"
	"bookwise/services/business"

	"github.com/gin-gonic/gin"
)

type businessRequest struct {
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Timezone string `json:"timezone"`
}

// CreateBusinessHandler registers a tenant owned by the authenticated user.
func (hb *HandlerBundle) CreateBusinessHandler(c *gin.Context) {
	var req businessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	biz := &models.Business{
		Name:     req.Name,
		Slug:     req.Slug,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Timezone: req.Timezone,
	}
	if err := hb.BusinessSvc.Create(c.Request.Context(), biz, c.GetString("userID")); err != nil {
		businessError(c, err)
		return
	}
	c.JSON(http.StatusCreated, biz)
}

// ListMyBusinessesHandler returns every business the caller belongs to.
func (hb *HandlerBundle) ListMyBusinessesHandler(c *gin.Context) {
	businesses, err := hb.BusinessSvc.ListForUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list businesses"})
		return
	}
	if businesses == nil {
		businesses = []models.Business{}
	}
	c.JSON(http.StatusOK, gin.H{"businesses": businesses})
}

func (hb *HandlerBundle) GetBusinessHandler(c *gin.Context) {
	biz, err := hb.BusinessSvc.GetByID(c.Request.Context(), tenantID(c))
	if err != nil {
		businessError(c, err)
		return
	}
	c.JSON(http.StatusOK, biz)
}

func (hb *HandlerBundle) UpdateBusinessHandler(c *gin.Context) {
	var req businessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	biz := &models.Business{
		ID:       tenantID(c),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Timezone: req.Timezone,
	}
	if err := hb.BusinessSvc.Update(c.Request.Context(), biz); err != nil {
		businessError(c, err)
		return
	}
	c.JSON(http.StatusOK, biz)
}

func businessError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, business.ErrBusinessNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, business.ErrSlugTaken), errors.Is(err, business.ErrInvalidTimezone):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "business operation failed"})
	}
}
