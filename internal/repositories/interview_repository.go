package repositories

import (
	"context"
	"errors"

	"github.com/hireview/hireview-backend/internal/dtos"
	"github.com/hireview/hireview-backend/internal/models"
	"github.com/hireview/hireview-backend/internal/stack"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// InterviewRepository persists generation results and answers the cache
// lookup that lets identical (resume, stack) requests skip the model call.
type InterviewRepository struct {
	DB *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{DB: db}
}

// FindByResumeAndStack looks up a stored interview by the normalized stack
// key. Returns (nil, nil) on a cache miss.
func (r *InterviewRepository) FindByResumeAndStack(ctx context.Context, resumeID string, tech dtos.RequiredTech) (*dtos.InterviewResult, error) {
	key := stack.Key(tech)

	var interview models.Interview
	err := r.DB.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, created_at ASC")
		}).
		First(&interview, "resume_id = ? AND required_stack_key = ?", resumeID, key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	result := toResult(&interview)
	return &result, nil
}

// CreateWithQuestions inserts one interview and its question rows inside the
// given transaction handle.
func (r *InterviewRepository) CreateWithQuestions(ctx context.Context, tx *gorm.DB, resumeID string, requiredStack []string, payload *dtos.InterviewPayload) (*dtos.InterviewResult, error) {
	interview := models.Interview{
		ResumeID:         resumeID,
		RequiredStack:    datatypes.NewJSONSlice(requiredStack),
		RequiredStackKey: stack.Key(dtos.FromList(requiredStack)),
		CandidateSummary: payload.CandidateSummary,
		ExperienceLevel:  payload.ExperienceLevel,
		CandidateSkills:  datatypes.NewJSONSlice(orEmpty(payload.CandidateSkills)),
		RequiredSkills:   datatypes.NewJSONSlice(orEmpty(payload.RequiredSkills)),
	}
	if err := tx.WithContext(ctx).Create(&interview).Error; err != nil {
		return nil, err
	}

	questions := make([]models.InterviewQuestion, 0, len(payload.InterviewQuestions))
	for i, q := range payload.InterviewQuestions {
		questions = append(questions, models.InterviewQuestion{
			InterviewID:    interview.ID,
			Question:       q.Question,
			ExpectedAnswer: q.ExpectedAnswer,
			Difficulty:     q.Difficulty,
			Category:       q.Category,
			SortOrder:      i,
		})
	}
	if len(questions) > 0 {
		if err := tx.WithContext(ctx).Create(&questions).Error; err != nil {
			return nil, err
		}
	}

	interview.Questions = questions
	result := toResult(&interview)
	return &result, nil
}

// DeleteByResumeID removes every interview (and its questions) for a resume
// and reports how many interview rows went away. Question rows are deleted
// explicitly so the result does not depend on database-level cascade being
// enabled.
func (r *InterviewRepository) DeleteByResumeID(ctx context.Context, tx *gorm.DB, resumeID string) (int64, error) {
	if tx == nil {
		tx = r.DB
	}
	err := tx.WithContext(ctx).
		Where("interview_id IN (?)",
			tx.Model(&models.Interview{}).Select("id").Where("resume_id = ?", resumeID),
		).
		Delete(&models.InterviewQuestion{}).Error
	if err != nil {
		return 0, err
	}

	res := tx.WithContext(ctx).Where("resume_id = ?", resumeID).Delete(&models.Interview{})
	return res.RowsAffected, res.Error
}

// ReplaceForResume runs the regeneration reset and the insert in one
// transaction: delete every prior interview for the resume, then store the
// new one. A concurrent reader never observes a resume with zero interviews
// between the two steps.
func (r *InterviewRepository) ReplaceForResume(ctx context.Context, resumeID string, requiredStack []string, payload *dtos.InterviewPayload) (*dtos.InterviewResult, error) {
	var result *dtos.InterviewResult
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := r.DeleteByResumeID(ctx, tx, resumeID); err != nil {
			return err
		}
		created, err := r.CreateWithQuestions(ctx, tx, resumeID, requiredStack, payload)
		if err != nil {
			return err
		}
		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func toResult(interview *models.Interview) dtos.InterviewResult {
	questions := make([]dtos.InterviewQuestionJSON, 0, len(interview.Questions))
	for _, q := range interview.Questions {
		questions = append(questions, dtos.InterviewQuestionJSON{
			Question:       q.Question,
			ExpectedAnswer: q.ExpectedAnswer,
			Difficulty:     q.Difficulty,
			Category:       q.Category,
		})
	}
	return dtos.InterviewResult{
		ID:                 interview.ID,
		ResumeID:           interview.ResumeID,
		RequiredStack:      orEmpty([]string(interview.RequiredStack)),
		CandidateSummary:   interview.CandidateSummary,
		ExperienceLevel:    interview.ExperienceLevel,
		CandidateSkills:    orEmpty([]string(interview.CandidateSkills)),
		RequiredSkills:     orEmpty([]string(interview.RequiredSkills)),
		InterviewQuestions: questions,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
