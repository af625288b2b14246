package handlers

import (
	"errors"
	"io"
	"net/http"

	"bookwise/services/billing"
	"bookwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type checkoutRequest struct {
	PriceID    string `json:"priceId" binding:"required"`
	SuccessURL string `json:"successUrl" binding:"required"`
	CancelURL  string `json:"cancelUrl" binding:"required"`
}

func (hb *HandlerBundle) StartCheckoutHandler(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	url, err := hb.BillingSvc.StartCheckout(c.Request.Context(), tenantID(c), req.PriceID, req.SuccessURL, req.CancelURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start checkout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (hb *HandlerBundle) BillingPortalHandler(c *gin.Context) {
	url, err := hb.BillingSvc.PortalURL(c.Request.Context(), tenantID(c))
	if err != nil {
		if errors.Is(err, billing.ErrNoSubscription) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open billing portal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (hb *HandlerBundle) GetSubscriptionHandler(c *gin.Context) {
	sub, err := hb.BillingSvc.GetSubscription(c.Request.Context(), tenantID(c))
	if err != nil {
		if errors.Is(err, billing.ErrNoSubscription) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch subscription"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// StripeWebhookHandler takes events from Stripe. It runs with no JWT; the
// signature check inside the billing service is the authentication.
func (hb *HandlerBundle) StripeWebhookHandler(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}

	err = hb.BillingSvc.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		utils.GetLogger().Warn("Stripe webhook rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "webhook rejected"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
