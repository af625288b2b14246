package handlers

import (
	"errors"
	"net/http"

	"bookwise/models"
	"bookwise/services/customer"

	"github.com/gin-gonic/gin"
)

type customerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

func (hb *HandlerBundle) CreateCustomerHandler(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cust := &models.Customer{
		BusinessID: tenantID(c),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Notes:      req.Notes,
	}
	if err := hb.CustomerSvc.Create(c.Request.Context(), cust); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create customer"})
		return
	}
	c.JSON(http.StatusCreated, cust)
}

func (hb *HandlerBundle) ListCustomersHandler(c *gin.Context) {
	customers, err := hb.CustomerSvc.List(c.Request.Context(), tenantID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list customers"})
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

func (hb *HandlerBundle) GetCustomerHandler(c *gin.Context) {
	cust, err := hb.CustomerSvc.GetByID(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customer"})
		return
	}
	c.JSON(http.StatusOK, cust)
}
