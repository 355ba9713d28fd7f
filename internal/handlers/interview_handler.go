package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hireview/hireview-backend/internal/apperr"
	"github.com/hireview/hireview-backend/internal/dtos"
	"github.com/hireview/hireview-backend/internal/services"
)

type InterviewHandler struct {
	InterviewService *services.InterviewService
}

func NewInterviewHandler(interviewService *services.InterviewService) *InterviewHandler {
	return &InterviewHandler{InterviewService: interviewService}
}

// Generate is POST /interview/generate with body
// { "resumeId": UUID, "requiredTech": string | string[] }.
func (h *InterviewHandler) Generate(c *gin.Context) {
	var req dtos.GenerateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Wrap(apperr.KindBadRequest, "invalid JSON body", err))
		return
	}

	result, err := h.InterviewService.Generate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "interview questions generated",
		"data":    result,
	})
}
