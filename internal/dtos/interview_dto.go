package dtos

import (
	"encoding/json"
	"errors"
)

// RequiredTech accepts either a delimited string or an array of strings at the
// JSON boundary and resolves both to a plain list of raw tokens. The
// string-vs-array ambiguity never leaves this type.
type RequiredTech struct {
	Values []string
	raw    string
	isList bool
}

func (r *RequiredTech) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.raw = s
		r.isList = false
		r.Values = nil
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		r.Values = list
		r.isList = true
		return nil
	}
	return errors.New("requiredTech must be a string or an array of strings")
}

// Raw returns the delimited string form when the input was a string.
func (r *RequiredTech) Raw() (string, bool) {
	return r.raw, !r.isList
}

func (r *RequiredTech) IsEmpty() bool {
	if r.isList {
		return len(r.Values) == 0
	}
	return r.raw == ""
}

// FromList builds the list form directly, for callers past the JSON boundary.
func FromList(values []string) RequiredTech {
	return RequiredTech{Values: values, isList: true}
}

// FromString builds the delimited-string form.
func FromString(s string) RequiredTech {
	return RequiredTech{raw: s}
}

// GenerateInterviewRequest is the body of POST /interview/generate.
type GenerateInterviewRequest struct {
	ResumeID     string       `json:"resumeId" binding:"required"`
	RequiredTech RequiredTech `json:"requiredTech"`
}

// InterviewQuestionJSON is one generated question.
type InterviewQuestionJSON struct {
	Question       string `json:"question"`
	ExpectedAnswer string `json:"expectedAnswer"`
	Difficulty     string `json:"difficulty"`
	Category       string `json:"category"`
}

// InterviewPayload is the validated model output for one generation.
type InterviewPayload struct {
	CandidateSummary   string                  `json:"candidateSummary"`
	ExperienceLevel    string                  `json:"experienceLevel"`
	CandidateSkills    []string                `json:"candidateSkills"`
	RequiredSkills     []string                `json:"requiredSkills"`
	InterviewQuestions []InterviewQuestionJSON `json:"interviewQuestions"`
}

// InterviewResult is a stored interview reassembled with its questions.
type InterviewResult struct {
	ID                 string                  `json:"id"`
	ResumeID           string                  `json:"resumeId"`
	RequiredStack      []string                `json:"requiredStack"`
	CandidateSummary   string                  `json:"candidateSummary"`
	ExperienceLevel    string                  `json:"experienceLevel"`
	CandidateSkills    []string                `json:"candidateSkills"`
	RequiredSkills     []string                `json:"requiredSkills"`
	InterviewQuestions []InterviewQuestionJSON `json:"interviewQuestions"`
}
