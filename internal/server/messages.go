package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	convdomain "github.com/smallbiznis/leadflow/internal/conversation/domain"
	leaddomain "github.com/smallbiznis/leadflow/internal/lead/domain"
)

type sendMessageRequest struct {
	LeadID  string           `json:"leadId"`
	Message string           `json:"message"`
	Type    string           `json:"type"`
	Lead    *leaddomain.Lead `json:"lead"`
}

func (s *Server) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	result, err := s.conversationSvc.Send(c.Request.Context(), convdomain.SendMessageRequest{
		LeadID:  req.LeadID,
		Message: req.Message,
		Type:    req.Type,
		Lead:    req.Lead,
	})
	if err != nil {
		AbortWithError(c, operationFailed(msgSendFailed, err))
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) GetConversation(c *gin.Context) {
	messages, err := s.conversationSvc.Conversation(c.Request.Context(), c.Query("leadId"))
	if err != nil {
		AbortWithError(c, operationFailed(msgConversationFetch, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"conversation": messages,
		"total":        len(messages),
	})
}
