package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	leaddomain "github.com/smallbiznis/leadflow/internal/lead/domain"
)

type generateLeadsRequest struct {
	Platform string          `json:"platform"`
	Keywords json.RawMessage `json:"keywords"`
	Count    json.Number     `json:"count"`
}

func (s *Server) GenerateLeads(c *gin.Context) {
	var req generateLeadsRequest
	if err := decodeJSON(c, &req); err != nil {
		AbortWithError(c, leaddomain.ErrInvalidPlatform)
		return
	}

	var keywords []string
	if len(req.Keywords) == 0 || json.Unmarshal(req.Keywords, &keywords) != nil || keywords == nil {
		AbortWithError(c, leaddomain.ErrInvalidKeywords)
		return
	}

	count := 0
	if n, err := req.Count.Int64(); err == nil {
		count = int(n)
	}

	leads, err := s.leadSvc.Generate(c.Request.Context(), leaddomain.GenerateLeadsRequest{
		Platform: req.Platform,
		Keywords: keywords,
		Count:    count,
	})
	if err != nil {
		AbortWithError(c, operationFailed(msgLeadsFailed, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"leads":   leads,
		"message": fmt.Sprintf("Generated %d leads from %s", len(leads), req.Platform),
	})
}

func (s *Server) ListLeads(c *gin.Context) {
	leads, err := s.leadSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, operationFailed(msgLeadsFetchFailed, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"leads":   leads,
		"total":   len(leads),
	})
}
