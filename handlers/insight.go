package handlers

import (
	"net/http"
	"strconv"

	"bookwise/models"
	"bookwise/services/tasks"

	"github.com/gin-gonic/gin"
)

// RequestChurnSnapshotHandler queues a churn analysis run.
func (hb *HandlerBundle) RequestChurnSnapshotHandler(c *gin.Context) {
	windowDays := 0
	if raw := c.Query("windowDays"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "windowDays must be a positive integer"})
			return
		}
		windowDays = parsed
	}

	task, err := tasks.NewChurnSnapshotTask(models.ChurnPayload{
		BusinessID: tenantID(c),
		WindowDays: windowDays,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build churn job"})
		return
	}
	if _, err := hb.Jobs.Enqueue(task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to queue churn analysis"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}

func (hb *HandlerBundle) GetLatestChurnSnapshotHandler(c *gin.Context) {
	snapshot, err := hb.InsightSvc.LatestChurnSnapshot(c.Request.Context(), tenantID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch churn snapshot"})
		return
	}
	if snapshot == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no churn snapshot yet"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
