package handler

import (
	"hotel-floor-dashboard/internal/catalog"
	"hotel-floor-dashboard/pkg/utils"

	"github.com/gin-gonic/gin"
)

type IssueHandler struct{}

func NewIssueHandler() *IssueHandler {
	return &IssueHandler{}
}

// GetAll returns the flattened issue catalog used for note autocompletion
func (h *IssueHandler) GetAll(c *gin.Context) {
	issues := catalog.AllIssues()
	utils.SuccessResponse(c, map[string]interface{}{
		"issues": issues,
		"count":  len(issues),
	})
}

// GetSuggestions returns up to five catalog entries matching the query
func (h *IssueHandler) GetSuggestions(c *gin.Context) {
	suggestions := catalog.Suggest(c.Query("q"))
	if suggestions == nil {
		suggestions = []string{}
	}
	utils.SuccessResponse(c, map[string]interface{}{
		"suggestions": suggestions,
		"count":       len(suggestions),
	})
}
