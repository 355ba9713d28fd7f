package llmjson

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hireview/hireview-backend/internal/apperr"
	"github.com/hireview/hireview-backend/internal/dtos"
)

// ValidateResume checks a recovered JSON object against the resume schema and
// returns the typed object with array fields defaulted to empty slices.
// Validation failures are reported with field-level violations and are never
// auto-repaired.
func ValidateResume(raw json.RawMessage) (*dtos.ResumeJSON, error) {
	var r dtos.ResumeJSON
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, apperr.Wrap(apperr.KindSchemaValidation, "resume JSON does not match schema", err)
	}

	var violations []apperr.Violation
	if r.Basics == nil {
		violations = append(violations, apperr.Violation{Field: "basics", Message: "is required"})
	} else {
		for i, link := range r.Basics.Links {
			if strings.TrimSpace(link.URL) == "" {
				violations = append(violations, apperr.Violation{
					Field:   fmt.Sprintf("basics.links[%d].url", i),
					Message: "is required and must be non-empty",
				})
			}
		}
		if r.Basics.Links == nil {
			r.Basics.Links = []dtos.LinkJSON{}
		}
	}
	for i, c := range r.Certifications {
		if strings.TrimSpace(c.Name) == "" {
			violations = append(violations, apperr.Violation{
				Field:   fmt.Sprintf("certifications[%d].name", i),
				Message: "is required and must be non-empty",
			})
		}
	}
	if len(violations) > 0 {
		return nil, &apperr.Error{
			Kind:       apperr.KindSchemaValidation,
			Message:    "resume JSON does not match schema",
			Violations: violations,
		}
	}

	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Languages == nil {
		r.Languages = []string{}
	}
	if r.Certifications == nil {
		r.Certifications = []dtos.CertificationJSON{}
	}
	if r.Education == nil {
		r.Education = []dtos.EducationJSON{}
	}
	if r.Experience == nil {
		r.Experience = []dtos.ExperienceJSON{}
	}
	if r.Projects == nil {
		r.Projects = []dtos.ProjectJSON{}
	}
	for i := range r.Experience {
		if r.Experience[i].Highlights == nil {
			r.Experience[i].Highlights = []string{}
		}
	}
	for i := range r.Projects {
		if r.Projects[i].Highlights == nil {
			r.Projects[i].Highlights = []string{}
		}
	}

	return &r, nil
}

var validDifficulties = map[string]bool{"easy": true, "medium": true, "hard": true}

// ValidateInterview checks a recovered JSON object against the interview
// schema: summary, level and all question fields required, difficulty drawn
// from the closed easy/medium/hard set.
func ValidateInterview(raw json.RawMessage) (*dtos.InterviewPayload, error) {
	var p dtos.InterviewPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, apperr.Wrap(apperr.KindSchemaValidation, "interview JSON does not match schema", err)
	}

	var violations []apperr.Violation
	if strings.TrimSpace(p.CandidateSummary) == "" {
		violations = append(violations, apperr.Violation{Field: "candidateSummary", Message: "is required"})
	}
	if strings.TrimSpace(p.ExperienceLevel) == "" {
		violations = append(violations, apperr.Violation{Field: "experienceLevel", Message: "is required"})
	}
	if p.CandidateSkills == nil {
		violations = append(violations, apperr.Violation{Field: "candidateSkills", Message: "is required"})
	}
	if p.RequiredSkills == nil {
		violations = append(violations, apperr.Violation{Field: "requiredSkills", Message: "is required"})
	}
	if len(p.InterviewQuestions) == 0 {
		violations = append(violations, apperr.Violation{Field: "interviewQuestions", Message: "must contain at least one question"})
	}
	for i, q := range p.InterviewQuestions {
		prefix := fmt.Sprintf("interviewQuestions[%d]", i)
		if strings.TrimSpace(q.Question) == "" {
			violations = append(violations, apperr.Violation{Field: prefix + ".question", Message: "is required"})
		}
		if strings.TrimSpace(q.ExpectedAnswer) == "" {
			violations = append(violations, apperr.Violation{Field: prefix + ".expectedAnswer", Message: "is required"})
		}
		if strings.TrimSpace(q.Category) == "" {
			violations = append(violations, apperr.Violation{Field: prefix + ".category", Message: "is required"})
		}
		diff := strings.ToLower(strings.TrimSpace(q.Difficulty))
		if !validDifficulties[diff] {
			violations = append(violations, apperr.Violation{Field: prefix + ".difficulty", Message: "must be one of easy, medium, hard"})
		} else {
			p.InterviewQuestions[i].Difficulty = diff
		}
	}
	if len(violations) > 0 {
		return nil, &apperr.Error{
			Kind:       apperr.KindSchemaValidation,
			Message:    "interview JSON does not match schema",
			Violations: violations,
		}
	}

	return &p, nil
}
