package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resume is the aggregate root. The resumes table only stores top-level
// metadata; nested fields live in the child tables below and are written and
// deleted with their root (cascade).
type Resume struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	TotalExperience float64   `gorm:"not null;default:0" json:"totalExperience"`
	Raw             *string   `gorm:"type:text" json:"raw,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Basics         *ResumeBasics         `gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE" json:"basics,omitempty"`
	Links          []ResumeLink          `gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE" json:"links,omitempty"`
	Skills         []ResumeSkill         `gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE" json:"skills,omitempty"`
	Languages      []ResumeLanguage      `gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE" json:"languages,omitempty"`
	Certifications []ResumeCertification `gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE" json:"certifications,omitempty"`
	Education      []ResumeEducation     `gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE" json:"education,omitempty"`
	Experience     []ResumeExperience    `gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE" json:"experience,omitempty"`
	Projects       []ResumeProject       `gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE" json:"projects,omitempty"`
}

func (Resume) TableName() string { return "resumes" }

func (r *Resume) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type ResumeBasics struct {
	ID       string  `gorm:"type:uuid;primaryKey" json:"id"`
	ResumeID string  `gorm:"type:uuid;not null;uniqueIndex" json:"resume_id"`
	FullName *string `gorm:"type:text" json:"fullName"`
	Headline *string `gorm:"type:text" json:"headline"`
	Email    *string `gorm:"type:text" json:"email"`
	Phone    *string `gorm:"type:text" json:"phone"`
	Location *string `gorm:"type:text" json:"location"`
	Summary  *string `gorm:"type:text" json:"summary"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ResumeBasics) TableName() string { return "resume_basics" }

func (b *ResumeBasics) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

type ResumeLink struct {
	ID        string  `gorm:"type:uuid;primaryKey" json:"id"`
	ResumeID  string  `gorm:"type:uuid;not null;index:idx_resume_links_sort,priority:1" json:"resume_id"`
	Label     *string `gorm:"type:text" json:"label"`
	URL       string  `gorm:"type:text;not null" json:"url"`
	SortOrder int     `gorm:"not null;default:0;index:idx_resume_links_sort,priority:2" json:"sortOrder"`

	CreatedAt time.Time `json:"created_at"`
}

func (ResumeLink) TableName() string { return "resume_links" }

func (l *ResumeLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

type ResumeSkill struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	ResumeID  string `gorm:"type:uuid;not null;index:idx_resume_skills_sort,priority:1" json:"resume_id"`
	Name      string `gorm:"type:text;not null" json:"name"`
	SortOrder int    `gorm:"not null;default:0;index:idx_resume_skills_sort,priority:2" json:"sortOrder"`

	CreatedAt time.Time `json:"created_at"`
}

func (ResumeSkill) TableName() string { return "resume_skills" }

func (s *ResumeSkill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type ResumeLanguage struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	ResumeID  string `gorm:"type:uuid;not null;index:idx_resume_languages_sort,priority:1" json:"resume_id"`
	Name      string `gorm:"type:text;not null" json:"name"`
	SortOrder int    `gorm:"not null;default:0;index:idx_resume_languages_sort,priority:2" json:"sortOrder"`

	CreatedAt time.Time `json:"created_at"`
}

func (ResumeLanguage) TableName() string { return "resume_languages" }

func (l *ResumeLanguage) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

type ResumeCertification struct {
	ID        string  `gorm:"type:uuid;primaryKey" json:"id"`
	ResumeID  string  `gorm:"type:uuid;not null;index:idx_resume_certifications_sort,priority:1" json:"resume_id"`
	Name      string  `gorm:"type:text;not null" json:"name"`
	Issuer    *string `gorm:"type:text" json:"issuer"`
	Date      *string `gorm:"type:text" json:"date"`
	SortOrder int     `gorm:"not null;default:0;index:idx_resume_certifications_sort,priority:2" json:"sortOrder"`

	CreatedAt time.Time `json:"created_at"`
}

func (ResumeCertification) TableName() string { return "resume_certifications" }

func (c *ResumeCertification) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type ResumeEducation struct {
	ID          string  `gorm:"type:uuid;primaryKey" json:"id"`
	ResumeID    string  `gorm:"type:uuid;not null;index:idx_resume_education_sort,priority:1" json:"resume_id"`
	Institution *string `gorm:"type:text" json:"institution"`
	Degree      *string `gorm:"type:text" json:"degree"`
	Field       *string `gorm:"type:text" json:"field"`
	StartDate   *string `gorm:"type:text" json:"startDate"`
	EndDate     *string `gorm:"type:text" json:"endDate"`
	Location    *string `gorm:"type:text" json:"location"`
	Details     *string `gorm:"type:text" json:"details"`
	SortOrder   int     `gorm:"not null;default:0;index:idx_resume_education_sort,priority:2" json:"sortOrder"`

	CreatedAt time.Time `json:"created_at"`
}

func (ResumeEducation) TableName() string { return "resume_education" }

func (e *ResumeEducation) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

type ResumeExperience struct {
	ID        string  `gorm:"type:uuid;primaryKey" json:"id"`
	ResumeID  string  `gorm:"type:uuid;not null;index:idx_resume_experiences_sort,priority:1" json:"resume_id"`
	Company   *string `gorm:"type:text" json:"company"`
	Title     *string `gorm:"type:text" json:"title"`
	Location  *string `gorm:"type:text" json:"location"`
	StartDate *string `gorm:"type:text" json:"startDate"`
	EndDate   *string `gorm:"type:text" json:"endDate"`
	SortOrder int     `gorm:"not null;default:0;index:idx_resume_experiences_sort,priority:2" json:"sortOrder"`

	CreatedAt time.Time `json:"created_at"`

	Highlights []ResumeExperienceHighlight `gorm:"foreignKey:ExperienceID;constraint:OnDelete:CASCADE" json:"highlights,omitempty"`
}

func (ResumeExperience) TableName() string { return "resume_experiences" }

func (e *ResumeExperience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

type ResumeExperienceHighlight struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	ExperienceID string `gorm:"type:uuid;not null;index:idx_experience_highlights_sort,priority:1" json:"experience_id"`
	Text         string `gorm:"type:text;not null" json:"text"`
	SortOrder    int    `gorm:"not null;default:0;index:idx_experience_highlights_sort,priority:2" json:"sortOrder"`

	CreatedAt time.Time `json:"created_at"`
}

func (ResumeExperienceHighlight) TableName() string { return "resume_experience_highlights" }

func (h *ResumeExperienceHighlight) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

type ResumeProject struct {
	ID          string  `gorm:"type:uuid;primaryKey" json:"id"`
	ResumeID    string  `gorm:"type:uuid;not null;index:idx_resume_projects_sort,priority:1" json:"resume_id"`
	Name        *string `gorm:"type:text" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	Link        *string `gorm:"type:text" json:"link"`
	SortOrder   int     `gorm:"not null;default:0;index:idx_resume_projects_sort,priority:2" json:"sortOrder"`

	CreatedAt time.Time `json:"created_at"`

	Highlights []ResumeProjectHighlight `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"highlights,omitempty"`
}

func (ResumeProject) TableName() string { return "resume_projects" }

func (p *ResumeProject) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type ResumeProjectHighlight struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID string `gorm:"type:uuid;not null;index:idx_project_highlights_sort,priority:1" json:"project_id"`
	Text      string `gorm:"type:text;not null" json:"text"`
	SortOrder int    `gorm:"not null;default:0;index:idx_project_highlights_sort,priority:2" json:"sortOrder"`

	CreatedAt time.Time `json:"created_at"`
}

func (ResumeProjectHighlight) TableName() string { return "resume_project_highlights" }

func (h *ResumeProjectHighlight) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
