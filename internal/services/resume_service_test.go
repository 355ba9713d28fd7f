package services

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hireview/hireview-backend/internal/apperr"
	"github.com/hireview/hireview-backend/internal/dtos"
	"github.com/hireview/hireview-backend/internal/extract"
	"github.com/hireview/hireview-backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resumeModelOutput(t *testing.T) string {
	t.Helper()
	out := dtos.ResumeJSON{
		Basics: &dtos.ResumeBasics{
			FullName: ptr("Jane Roe"),
			Email:    ptr("jane@example.com"),
			Links:    []dtos.LinkJSON{{Label: ptr("GitHub"), URL: "https://github.com/janeroe"}},
		},
		Skills:          []string{"Node.js", "PostgreSQL"},
		Languages:       []string{"English"},
		Certifications:  []dtos.CertificationJSON{},
		TotalExperience: 5,
		Education:       []dtos.EducationJSON{},
		Experience:      []dtos.ExperienceJSON{},
		Projects:        []dtos.ProjectJSON{},
	}
	b, err := json.Marshal(out)
	require.NoError(t, err)
	return "```json\n" + string(b) + "\n```"
}

func writeUpload(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newResumeService(gen Generator) *ResumeService {
	return NewResumeService(&extract.Extractor{}, gen, nil, nil)
}

func TestGenerateParse(t *testing.T) {
	gen := &fakeGenerator{output: resumeModelOutput(t)}
	svc := newResumeService(gen)

	content := "Jane  Roe\r\n• 5 years backend engineer\n\n\n\nSkills: Node.js, PostgreSQL, Docker, Kubernetes"
	path := writeUpload(t, content)

	resume, err := svc.GenerateParse(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, resume.Basics)
	assert.Equal(t, "Jane Roe", *resume.Basics.FullName)
	assert.Equal(t, 1, gen.calls)

	// Raw carries the normalized source text, not the model output.
	assert.Equal(t, "Jane Roe\n\n- 5 years backend engineer\n\nSkills: Node.js, PostgreSQL, Docker, Kubernetes", resume.Raw)

	// The uploaded temp file is gone afterwards.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateParseTooShort(t *testing.T) {
	gen := &fakeGenerator{output: resumeModelOutput(t)}
	svc := newResumeService(gen)

	path := writeUpload(t, "too short to be a CV")

	_, err := svc.GenerateParse(context.Background(), path)
	assert.Equal(t, apperr.KindExtraction, apperr.KindOf(err))
	assert.Zero(t, gen.calls, "unusable text never reaches the model")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "the upload is cleaned up on failure too")
}

func TestGenerateParseNonJSONOutput(t *testing.T) {
	gen := &fakeGenerator{output: "As an AI I cannot produce JSON today."}
	svc := newResumeService(gen)

	path := writeUpload(t, strings.Repeat("experienced backend engineer ", 10))

	_, err := svc.GenerateParse(context.Background(), path)
	assert.Equal(t, apperr.KindNonJSONOutput, apperr.KindOf(err))
}

func TestGenerateParseSchemaInvalidOutput(t *testing.T) {
	// basics missing entirely.
	gen := &fakeGenerator{output: `{"skills": ["Go"]}`}
	svc := newResumeService(gen)

	path := writeUpload(t, strings.Repeat("experienced backend engineer ", 10))

	_, err := svc.GenerateParse(context.Background(), path)
	require.Error(t, err)
	assert.Equal(t, apperr.KindSchemaValidation, apperr.KindOf(err))

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	require.Len(t, appErr.Violations, 1)
	assert.Equal(t, "basics", appErr.Violations[0].Field)
}

func TestCreateParse(t *testing.T) {
	db := newServiceTestDB(t)
	repo := repositories.NewResumeRepository(db)
	svc := NewResumeService(&extract.Extractor{}, nil, repo, nil)
	ctx := context.Background()

	body := &dtos.ResumeJSON{
		Basics: &dtos.ResumeBasics{
			FullName: ptr("Jane Roe"),
			Links:    []dtos.LinkJSON{{URL: "https://janeroe.dev"}},
		},
		Skills:         []string{"Go"},
		Languages:      []string{},
		Certifications: []dtos.CertificationJSON{},
		Education:      []dtos.EducationJSON{},
		Experience:     []dtos.ExperienceJSON{},
		Projects:       []dtos.ProjectJSON{},
	}

	created, err := svc.CreateParse(ctx, body)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Jane Roe", *stored.Basics.FullName)
}

func TestCreateParseValidation(t *testing.T) {
	svc := NewResumeService(&extract.Extractor{}, nil, nil, nil)
	ctx := context.Background()

	t.Run("nil body", func(t *testing.T) {
		_, err := svc.CreateParse(ctx, nil)
		assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	})

	t.Run("missing basics", func(t *testing.T) {
		_, err := svc.CreateParse(ctx, &dtos.ResumeJSON{})
		assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	})

	t.Run("empty link url", func(t *testing.T) {
		_, err := svc.CreateParse(ctx, &dtos.ResumeJSON{
			Basics: &dtos.ResumeBasics{
				Links: []dtos.LinkJSON{{URL: "  "}},
			},
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindSchemaValidation, apperr.KindOf(err))

		var appErr *apperr.Error
		require.ErrorAs(t, err, &appErr)
		require.Len(t, appErr.Violations, 1)
		assert.Equal(t, "basics.links[0].url", appErr.Violations[0].Field)
	})
}
