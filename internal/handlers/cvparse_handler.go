package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hireview/hireview-backend/internal/apperr"
	"github.com/hireview/hireview-backend/internal/dtos"
	"github.com/hireview/hireview-backend/internal/services"
)

type CvParseHandler struct {
	ResumeService *services.ResumeService
}

func NewCvParseHandler(resumeService *services.ResumeService) *CvParseHandler {
	return &CvParseHandler{ResumeService: resumeService}
}

// GenerateParse is POST /cv-parse/generate: multipart upload in, extracted
// structured resume out. Nothing is persisted here; the client reviews the
// result and submits it to CreateParse.
func (h *CvParseHandler) GenerateParse(c *gin.Context) {
	file, err := c.FormFile("media")
	if err != nil {
		file, err = c.FormFile("file")
	}
	if err != nil {
		respondError(c, apperr.New(apperr.KindBadRequest, "no file uploaded, use form-data key 'media'"))
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		respondError(c, apperr.Wrap(apperr.KindInternal, "could not store the upload", err))
		return
	}

	resume, err := h.ResumeService.GenerateParse(c.Request.Context(), tmpPath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}

// CreateParse is POST /cv-parse: accepts an already-parsed resume JSON body
// (typically the reviewed output of GenerateParse) and persists it.
func (h *CvParseHandler) CreateParse(c *gin.Context) {
	var body dtos.ResumeJSON
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, apperr.Wrap(apperr.KindBadRequest, "invalid JSON body", err))
		return
	}

	created, err := h.ResumeService.CreateParse(c.Request.Context(), &body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":     created.ID,
		"resume": body,
	})
}
