package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Interview stores one generation result for a (resume, required stack) pair.
// RequiredStackKey is the canonical lowercase/deduplicated/sorted form; the
// composite unique index on (resume_id, required_stack_key) is the concurrency
// control of record for simultaneous regeneration requests.
type Interview struct {
	ID               string                      `gorm:"type:uuid;primaryKey" json:"id"`
	ResumeID         string                      `gorm:"type:uuid;not null;index;uniqueIndex:idx_interviews_resume_stack,priority:1" json:"resumeId"`
	RequiredStack    datatypes.JSONSlice[string] `gorm:"not null" json:"requiredStack"`
	RequiredStackKey string                      `gorm:"size:500;not null;default:'';uniqueIndex:idx_interviews_resume_stack,priority:2" json:"requiredStackKey"`
	CandidateSummary string                      `gorm:"type:text;not null;default:''" json:"candidateSummary"`
	ExperienceLevel  string                      `gorm:"size:100;not null;default:''" json:"experienceLevel"`
	CandidateSkills  datatypes.JSONSlice[string] `gorm:"not null" json:"candidateSkills"`
	RequiredSkills   datatypes.JSONSlice[string] `gorm:"not null" json:"requiredSkills"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Questions []InterviewQuestion `gorm:"foreignKey:InterviewID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (Interview) TableName() string { return "interviews" }

func (i *Interview) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

type InterviewQuestion struct {
	ID             string `gorm:"type:uuid;primaryKey" json:"id"`
	InterviewID    string `gorm:"type:uuid;not null;index" json:"interviewId"`
	Question       string `gorm:"type:text;not null" json:"question"`
	ExpectedAnswer string `gorm:"type:text;not null" json:"expectedAnswer"`
	Difficulty     string `gorm:"size:20;not null" json:"difficulty"`
	Category       string `gorm:"size:100;not null" json:"category"`
	SortOrder      int    `gorm:"not null;default:0" json:"sortOrder"`

	CreatedAt time.Time `json:"created_at"`
}

func (InterviewQuestion) TableName() string { return "interview_questions" }

func (q *InterviewQuestion) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
