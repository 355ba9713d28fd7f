package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/hireview/hireview-backend/internal/apperr"
	"github.com/hireview/hireview-backend/internal/dtos"
	"github.com/hireview/hireview-backend/internal/extract"
	"github.com/hireview/hireview-backend/internal/llmjson"
	"github.com/hireview/hireview-backend/internal/logger"
	"github.com/hireview/hireview-backend/internal/repositories"
	"github.com/hireview/hireview-backend/internal/stack"
	"gorm.io/gorm"
)

// InterviewService generates stack-targeted interview questions for a stored
// resume. Repeated requests with an equivalent stack are served from the
// stored interview without a model call.
type InterviewService struct {
	Generator  Generator
	Resumes    *repositories.ResumeRepository
	Interviews *repositories.InterviewRepository
	Log        *logger.Logger
}

func NewInterviewService(gen Generator, resumes *repositories.ResumeRepository, interviews *repositories.InterviewRepository, log *logger.Logger) *InterviewService {
	return &InterviewService{Generator: gen, Resumes: resumes, Interviews: interviews, Log: log}
}

// Generate runs the cache-or-generate flow:
// cache lookup by (resumeId, normalized stack key) -> verbatim return on hit;
// on miss: load raw CV text, generate, validate, then in one transaction
// replace every prior interview for the resume with the new one.
func (s *InterviewService) Generate(ctx context.Context, req dtos.GenerateInterviewRequest) (*dtos.InterviewResult, error) {
	if _, err := uuid.Parse(req.ResumeID); err != nil {
		return nil, apperr.New(apperr.KindBadRequest, "resumeId must be a valid UUID")
	}
	if req.RequiredTech.IsEmpty() {
		return nil, apperr.New(apperr.KindBadRequest, "requiredTech is required")
	}

	cached, err := s.Interviews.FindByResumeAndStack(ctx, req.ResumeID, req.RequiredTech)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		if s.Log != nil {
			s.Log.Info("interview cache hit", "resumeId", req.ResumeID)
		}
		return cached, nil
	}

	raw, found, err := s.Resumes.GetRaw(ctx, req.ResumeID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.New(apperr.KindNotFound, "resume not found")
	}
	if strings.TrimSpace(raw) == "" {
		return nil, apperr.New(apperr.KindBadRequest, "resume has no extracted text to generate questions from")
	}

	display := stack.Parse(req.RequiredTech)
	payload, err := s.generateQA(ctx, raw, display)
	if err != nil {
		return nil, err
	}

	result, err := s.Interviews.ReplaceForResume(ctx, req.ResumeID, display, payload)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Wrap(apperr.KindConflict,
				"an interview for this resume and stack was just created, retry the request", err)
		}
		return nil, err
	}
	if s.Log != nil {
		s.Log.Info("interview generated", "resumeId", req.ResumeID, "questions", len(result.InterviewQuestions))
	}
	return result, nil
}

func (s *InterviewService) generateQA(ctx context.Context, cvText string, requiredStack []string) (*dtos.InterviewPayload, error) {
	raw, err := s.Generator.Generate(ctx,
		interviewSystemPrompt(requiredStack),
		"CANDIDATE CV:\n"+extract.Clamp(cvText, extract.MaxPromptChars),
	)
	if err != nil {
		return nil, err
	}

	recovered, err := llmjson.Recover(raw)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNonJSONOutput, "model returned non-JSON output", err)
	}
	return llmjson.ValidateInterview(recovered)
}
