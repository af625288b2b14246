package handlers

import (
	"net/http"

	"bookwise/models"

	"github.com/gin-gonic/gin"
)

type leadRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Source  string `json:"source"`
}

// CaptureLeadHandler takes an inquiry from the public marketing site. The
// business is addressed by slug so the form needs no credentials.
func (hb *HandlerBundle) CaptureLeadHandler(c *gin.Context) {
	var req leadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.Email == "" && req.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email or phone is required"})
		return
	}

	biz, err := hb.BusinessSvc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "business not found"})
		return
	}

	lead := &models.Lead{
		BusinessID: biz.ID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		Source:     req.Source,
	}
	if err := hb.LeadSvc.Capture(c.Request.Context(), lead); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to capture lead"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": lead.ID})
}

func (hb *HandlerBundle) ListLeadsHandler(c *gin.Context) {
	leads, err := hb.LeadSvc.List(c.Request.Context(), tenantID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list leads"})
		return
	}
	if leads == nil {
		leads = []models.Lead{}
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads})
}
