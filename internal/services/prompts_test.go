package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterviewSystemPrompt(t *testing.T) {
	prompt := interviewSystemPrompt([]string{"Node.js", "AWS"})

	assert.Contains(t, prompt, "Node.js, AWS")
	assert.Contains(t, prompt, "Generate EXACTLY 20 interview questions.")
	// Seniority brackets the generator must apply: 5 years of experience
	// lands in the 5-8 senior band.
	assert.Contains(t, prompt, "5-8 yrs -> Senior")
	assert.Contains(t, prompt, `"difficulty": "easy" | "medium" | "hard"`)
}

func TestInterviewSystemPromptWithoutSkills(t *testing.T) {
	prompt := interviewSystemPrompt(nil)
	assert.Contains(t, prompt, "Not provided")
}

func TestResumeSystemPrompt(t *testing.T) {
	prompt := resumeSystemPrompt()

	assert.Contains(t, prompt, `"basics"`)
	assert.Contains(t, prompt, "--- PAGE N ---")
	assert.Contains(t, prompt, "Certifications, Courses, Training, Licenses, Achievements")
}
