package handlers

import (
	"net/http"

	"bookwise/models"

	"github.com/gin-gonic/gin"
)

// ChatHandler runs one turn of the booking assistant conversation.
func (hb *HandlerBundle) ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	req.BusinessID = tenantID(c)

	resp, err := hb.AssistantSvc.Chat(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "assistant unavailable"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EndChatHandler discards a conversation's stored context.
func (hb *HandlerBundle) EndChatHandler(c *gin.Context) {
	if err := hb.AssistantSvc.EndSession(c.Request.Context(), c.Param("sessionId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to end session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ended"})
}
