package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hireview/hireview-backend/internal/services"
)

type CandidateHandler struct {
	CandidateService *services.CandidateService
}

func NewCandidateHandler(candidateService *services.CandidateService) *CandidateHandler {
	return &CandidateHandler{CandidateService: candidateService}
}

func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.CandidateService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}

// Search supports both `q` and `search` as query parameter names.
// page defaults to 1, limit to 10 with a hard cap of 100.
func (h *CandidateHandler) Search(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		term = strings.TrimSpace(c.Query("search"))
	}

	page := parseIntParam(c.Query("page"), 1)
	if page < 1 {
		page = 1
	}
	limit := parseIntParam(c.Query("limit"), 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}

	result, err := h.CandidateService.Search(c.Request.Context(), term, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CandidateHandler) Get(c *gin.Context) {
	resume, err := h.CandidateService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}

func parseIntParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
