package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/hireview/hireview-backend/internal/dtos"
	"github.com/hireview/hireview-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func samplePayload(n int) *dtos.InterviewPayload {
	questions := make([]dtos.InterviewQuestionJSON, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, dtos.InterviewQuestionJSON{
			Question:       fmt.Sprintf("Question %d", i),
			ExpectedAnswer: fmt.Sprintf("Answer %d", i),
			Difficulty:     "medium",
			Category:       "Backend",
		})
	}
	return &dtos.InterviewPayload{
		CandidateSummary:   "Experienced backend engineer",
		ExperienceLevel:    "Senior",
		CandidateSkills:    []string{"Node.js", "PostgreSQL"},
		RequiredSkills:     []string{"Node.js", "AWS"},
		InterviewQuestions: questions,
	}
}

func createResumeFor(t *testing.T, db *gorm.DB) string {
	t.Helper()
	created, err := NewResumeRepository(db).Create(context.Background(), sampleResume())
	require.NoError(t, err)
	return created.ID
}

func TestInterviewCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewInterviewRepository(db)
	ctx := context.Background()
	resumeID := createResumeFor(t, db)

	created, err := repo.ReplaceForResume(ctx, resumeID, []string{"Node.js", "AWS"}, samplePayload(20))
	require.NoError(t, err)
	assert.Len(t, created.InterviewQuestions, 20)
	assert.Equal(t, []string{"Node.js", "AWS"}, created.RequiredStack)

	// Lookup with a different ordering and casing of the same stack.
	found, err := repo.FindByResumeAndStack(ctx, resumeID, dtos.FromString("aws, NODE.JS"))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, created.InterviewQuestions, found.InterviewQuestions)

	// Question order survives the read.
	assert.Equal(t, "Question 0", found.InterviewQuestions[0].Question)
	assert.Equal(t, "Question 19", found.InterviewQuestions[19].Question)
}

func TestInterviewFindMiss(t *testing.T) {
	db := newTestDB(t)
	repo := NewInterviewRepository(db)
	resumeID := createResumeFor(t, db)

	found, err := repo.FindByResumeAndStack(context.Background(), resumeID, dtos.FromString("python"))
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestReplaceForResumeReplacesPriorInterviews(t *testing.T) {
	db := newTestDB(t)
	repo := NewInterviewRepository(db)
	ctx := context.Background()
	resumeID := createResumeFor(t, db)

	_, err := repo.ReplaceForResume(ctx, resumeID, []string{"Node.js"}, samplePayload(20))
	require.NoError(t, err)

	second, err := repo.ReplaceForResume(ctx, resumeID, []string{"Python"}, samplePayload(20))
	require.NoError(t, err)

	var interviewCount int64
	require.NoError(t, db.Model(&models.Interview{}).Where("resume_id = ?", resumeID).Count(&interviewCount).Error)
	assert.EqualValues(t, 1, interviewCount)

	var questionCount int64
	require.NoError(t, db.Model(&models.InterviewQuestion{}).Count(&questionCount).Error)
	assert.EqualValues(t, 20, questionCount, "questions of the replaced interview must be gone")

	found, err := repo.FindByResumeAndStack(ctx, resumeID, dtos.FromList([]string{"python"}))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, second.ID, found.ID)

	// The old stack no longer resolves.
	old, err := repo.FindByResumeAndStack(ctx, resumeID, dtos.FromList([]string{"Node.js"}))
	require.NoError(t, err)
	assert.Nil(t, old)
}

func TestDeleteByResumeID(t *testing.T) {
	db := newTestDB(t)
	repo := NewInterviewRepository(db)
	ctx := context.Background()
	resumeID := createResumeFor(t, db)

	_, err := repo.ReplaceForResume(ctx, resumeID, []string{"Go"}, samplePayload(5))
	require.NoError(t, err)

	deleted, err := repo.DeleteByResumeID(ctx, nil, resumeID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	var questionCount int64
	require.NoError(t, db.Model(&models.InterviewQuestion{}).Count(&questionCount).Error)
	assert.EqualValues(t, 0, questionCount)
}

func TestUniqueStackKeyConstraint(t *testing.T) {
	db := newTestDB(t)
	repo := NewInterviewRepository(db)
	ctx := context.Background()
	resumeID := createResumeFor(t, db)

	_, err := repo.ReplaceForResume(ctx, resumeID, []string{"Go"}, samplePayload(3))
	require.NoError(t, err)

	// Direct insert with an equivalent key collides with the stored row.
	err = db.Transaction(func(tx *gorm.DB) error {
		_, err := repo.CreateWithQuestions(ctx, tx, resumeID, []string{"GO"}, samplePayload(3))
		return err
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
