package llmjson

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/hireview/hireview-backend/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeMissingBasics(t *testing.T) {
	_, err := ValidateResume(json.RawMessage(`{"skills": ["Go"]}`))
	require.Error(t, err)

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apperr.KindSchemaValidation, ae.Kind)
	require.Len(t, ae.Violations, 1)
	assert.Equal(t, "basics", ae.Violations[0].Field)
}

func TestValidateResumeDefaultsArrays(t *testing.T) {
	resume, err := ValidateResume(json.RawMessage(`{"basics": {"fullName": "Jane Roe"}}`))
	require.NoError(t, err)

	assert.NotNil(t, resume.Skills)
	assert.NotNil(t, resume.Languages)
	assert.NotNil(t, resume.Certifications)
	assert.NotNil(t, resume.Education)
	assert.NotNil(t, resume.Experience)
	assert.NotNil(t, resume.Projects)
	assert.NotNil(t, resume.Basics.Links)
	assert.Empty(t, resume.Skills)
}

func TestValidateResumeRequiresLinkURL(t *testing.T) {
	_, err := ValidateResume(json.RawMessage(`{
		"basics": {"links": [{"label": "GitHub", "url": ""}]}
	}`))
	require.Error(t, err)

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	require.Len(t, ae.Violations, 1)
	assert.Equal(t, "basics.links[0].url", ae.Violations[0].Field)
}

func TestValidateResumeRequiresCertificationName(t *testing.T) {
	_, err := ValidateResume(json.RawMessage(`{
		"basics": {},
		"certifications": [{"name": "", "issuer": null, "date": null}]
	}`))
	require.Error(t, err)

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	require.Len(t, ae.Violations, 1)
	assert.Equal(t, "certifications[0].name", ae.Violations[0].Field)
}

func TestValidateResumeFullObject(t *testing.T) {
	resume, err := ValidateResume(json.RawMessage(`{
		"basics": {
			"fullName": "Jane Roe",
			"headline": "Backend Engineer",
			"email": "jane@example.com",
			"phone": null,
			"location": "Berlin",
			"summary": null,
			"links": [{"label": null, "url": "https://example.com"}]
		},
		"skills": ["Node.js", "PostgreSQL"],
		"languages": ["English"],
		"certifications": [{"name": "CKA", "issuer": "CNCF", "date": "2023"}],
		"totalExperience": 5,
		"education": [],
		"experience": [{"company": "Acme", "title": "Engineer", "location": null, "startDate": "2019", "endDate": null, "highlights": ["Built the billing service"]}],
		"projects": []
	}`))
	require.NoError(t, err)

	require.NotNil(t, resume.Basics)
	assert.Equal(t, "Jane Roe", *resume.Basics.FullName)
	assert.Nil(t, resume.Basics.Phone)
	assert.Equal(t, []string{"Node.js", "PostgreSQL"}, resume.Skills)
	assert.Equal(t, float64(5), resume.TotalExperience)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, []string{"Built the billing service"}, resume.Experience[0].Highlights)
}

func TestValidateInterviewMissingFields(t *testing.T) {
	_, err := ValidateInterview(json.RawMessage(`{"candidateSummary": "x"}`))
	require.Error(t, err)

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apperr.KindSchemaValidation, ae.Kind)

	fields := make([]string, 0, len(ae.Violations))
	for _, v := range ae.Violations {
		fields = append(fields, v.Field)
	}
	assert.Contains(t, fields, "experienceLevel")
	assert.Contains(t, fields, "candidateSkills")
	assert.Contains(t, fields, "requiredSkills")
	assert.Contains(t, fields, "interviewQuestions")
}

func TestValidateInterviewDifficultyClosedSet(t *testing.T) {
	_, err := ValidateInterview(json.RawMessage(`{
		"candidateSummary": "Solid backend candidate",
		"experienceLevel": "Senior",
		"candidateSkills": ["Go"],
		"requiredSkills": ["AWS"],
		"interviewQuestions": [
			{"question": "q", "expectedAnswer": "a", "difficulty": "brutal", "category": "Backend"}
		]
	}`))
	require.Error(t, err)

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	require.Len(t, ae.Violations, 1)
	assert.Equal(t, "interviewQuestions[0].difficulty", ae.Violations[0].Field)
}

func TestValidateInterviewNormalizesDifficultyCase(t *testing.T) {
	payload, err := ValidateInterview(json.RawMessage(`{
		"candidateSummary": "Solid backend candidate",
		"experienceLevel": "Senior",
		"candidateSkills": ["Go"],
		"requiredSkills": ["AWS"],
		"interviewQuestions": [
			{"question": "q", "expectedAnswer": "a", "difficulty": "Hard", "category": "Backend"}
		]
	}`))
	require.NoError(t, err)
	assert.Equal(t, "hard", payload.InterviewQuestions[0].Difficulty)
}
