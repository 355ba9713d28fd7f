package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/hireview/hireview-backend/internal/apperr"
	"github.com/hireview/hireview-backend/internal/dtos"
	"github.com/hireview/hireview-backend/internal/repositories"
)

// CandidateService exposes the read side of stored resumes: listing,
// searching and full-detail retrieval.
type CandidateService struct {
	Resumes *repositories.ResumeRepository
}

func NewCandidateService(resumes *repositories.ResumeRepository) *CandidateService {
	return &CandidateService{Resumes: resumes}
}

func (s *CandidateService) List(ctx context.Context) ([]dtos.CandidateSummary, error) {
	return s.Resumes.List(ctx)
}

func (s *CandidateService) Search(ctx context.Context, term string, page, limit int) (*dtos.CandidateSearchResult, error) {
	return s.Resumes.Search(ctx, term, page, limit)
}

func (s *CandidateService) GetByID(ctx context.Context, id string) (*dtos.ResumeJSON, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.New(apperr.KindBadRequest, "candidate id must be a valid UUID")
	}
	resume, err := s.Resumes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, apperr.New(apperr.KindNotFound, "candidate not found")
	}
	return resume, nil
}
