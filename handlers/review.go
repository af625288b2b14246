package handlers

import (
	"net/http"
	"time"

	"bookwise/models"
	"bookwise/services/tasks"

	"github.com/gin-gonic/gin"
)

type ingestReviewsRequest struct {
	Reviews []models.Review `json:"reviews" binding:"required"`
}

func (hb *HandlerBundle) IngestReviewsHandler(c *gin.Context) {
	var req ingestReviewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := hb.ReviewSvc.Ingest(c.Request.Context(), tenantID(c), req.Reviews); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to ingest reviews"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ingested": len(req.Reviews)})
}

func (hb *HandlerBundle) ListReviewsHandler(c *gin.Context) {
	reviews, err := hb.ReviewSvc.List(c.Request.Context(), tenantID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reviews"})
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

type summarizeRequest struct {
	PeriodStart time.Time `json:"periodStart" binding:"required"`
	PeriodEnd   time.Time `json:"periodEnd" binding:"required"`
}

// RequestReviewSummaryHandler queues a summarization run; the digest shows up
// under the latest-summary endpoint once the worker finishes.
func (hb *HandlerBundle) RequestReviewSummaryHandler(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	task, err := tasks.NewSummarizeReviewTask(models.SummarizePayload{
		BusinessID:  tenantID(c),
		PeriodStart: req.PeriodStart.Format(time.RFC3339),
		PeriodEnd:   req.PeriodEnd.Format(time.RFC3339),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summarization job"})
		return
	}
	if _, err := hb.Jobs.Enqueue(task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to queue summarization"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}

func (hb *HandlerBundle) GetLatestReviewSummaryHandler(c *gin.Context) {
	summary, err := hb.ReviewSvc.LatestSummary(c.Request.Context(), tenantID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch review summary"})
		return
	}
	if summary == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no review summary yet"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
