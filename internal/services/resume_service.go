package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hireview/hireview-backend/internal/apperr"
	"github.com/hireview/hireview-backend/internal/dtos"
	"github.com/hireview/hireview-backend/internal/extract"
	"github.com/hireview/hireview-backend/internal/llmjson"
	"github.com/hireview/hireview-backend/internal/logger"
	"github.com/hireview/hireview-backend/internal/models"
	"github.com/hireview/hireview-backend/internal/repositories"
)

// minUsableChars is the post-normalization floor below which a CV is treated
// as scanned/unreadable instead of being sent to the model.
const minUsableChars = 80

// ResumeService runs the file -> text -> structured-resume pipeline and the
// persistence of accepted resume objects.
type ResumeService struct {
	Extractor *extract.Extractor
	Generator Generator
	Resumes   *repositories.ResumeRepository
	Log       *logger.Logger
}

func NewResumeService(ex *extract.Extractor, gen Generator, repo *repositories.ResumeRepository, log *logger.Logger) *ResumeService {
	return &ResumeService{Extractor: ex, Generator: gen, Resumes: repo, Log: log}
}

// GenerateParse extracts text from the uploaded file, asks the model for the
// structured resume, and returns the validated object with Raw set to the
// normalized source text. The uploaded temp file is removed afterwards.
func (s *ResumeService) GenerateParse(ctx context.Context, filePath string) (*dtos.ResumeJSON, error) {
	defer func() {
		if err := os.Remove(filePath); err != nil && s.Log != nil {
			s.Log.Warn("upload cleanup failed", "path", filePath, "error", err.Error())
		}
	}()

	extraction, err := s.Extractor.ExtractFile(filePath)
	if err != nil {
		if errors.Is(err, extract.ErrTooShort) {
			return nil, apperr.Wrap(apperr.KindExtraction,
				"extracted text is too short. This CV may be a scanned PDF image. OCR is required.", err)
		}
		return nil, apperr.Wrap(apperr.KindExtraction, "could not read the uploaded file", err)
	}

	clean := extract.Normalize(extraction.Text)
	if len(clean) < minUsableChars {
		return nil, apperr.New(apperr.KindExtraction,
			"extracted text is too short. This CV may be a scanned PDF image. OCR is required.")
	}

	resume, err := s.extractResumeJSON(ctx, extract.Clamp(clean, extract.MaxPromptChars))
	if err != nil {
		return nil, err
	}

	// The original text survives into the stored record so interview
	// generation can reuse it later.
	resume.Raw = clean
	return resume, nil
}

func (s *ResumeService) extractResumeJSON(ctx context.Context, cvText string) (*dtos.ResumeJSON, error) {
	raw, err := s.Generator.Generate(ctx, resumeSystemPrompt(), "CV TEXT:\n"+cvText)
	if err != nil {
		return nil, err
	}

	recovered, err := llmjson.Recover(raw)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNonJSONOutput, "model returned non-JSON output", err)
	}
	return llmjson.ValidateResume(recovered)
}

// CreateParse persists an already-parsed resume object in one transaction and
// returns its stored identifier together with the accepted shape.
func (s *ResumeService) CreateParse(ctx context.Context, body *dtos.ResumeJSON) (*models.Resume, error) {
	if body == nil || body.Basics == nil {
		return nil, apperr.New(apperr.KindBadRequest, "resume body with basics is required")
	}
	if err := validateCreateBody(body); err != nil {
		return nil, err
	}

	created, err := s.Resumes.Create(ctx, body)
	if err != nil {
		return nil, err
	}
	if s.Log != nil {
		s.Log.Info("resume stored", "resumeId", created.ID)
	}
	return created, nil
}

func validateCreateBody(body *dtos.ResumeJSON) error {
	var violations []apperr.Violation
	for i, l := range body.Basics.Links {
		if strings.TrimSpace(l.URL) == "" {
			violations = append(violations, apperr.Violation{
				Field:   fmt.Sprintf("basics.links[%d].url", i),
				Message: "is required and must be non-empty",
			})
		}
	}
	for i, c := range body.Certifications {
		if strings.TrimSpace(c.Name) == "" {
			violations = append(violations, apperr.Violation{
				Field:   fmt.Sprintf("certifications[%d].name", i),
				Message: "is required and must be non-empty",
			})
		}
	}
	if len(violations) > 0 {
		return &apperr.Error{
			Kind:       apperr.KindSchemaValidation,
			Message:    "resume body does not match schema",
			Violations: violations,
		}
	}
	return nil
}
