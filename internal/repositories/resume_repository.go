package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/hireview/hireview-backend/internal/dtos"
	"github.com/hireview/hireview-backend/internal/models"
	"gorm.io/gorm"
)

// ResumeRepository owns the resume aggregate: the parent row and every child
// table are written in one transaction and read back as one nested object.
type ResumeRepository struct {
	DB *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{DB: db}
}

// Create writes the full aggregate. Child rows record their array position in
// sort_order; experiences and projects are inserted row-by-row so their
// generated ids are available for the highlight batches. Any failure rolls
// the whole write back.
func (r *ResumeRepository) Create(ctx context.Context, in *dtos.ResumeJSON) (*models.Resume, error) {
	if in == nil || in.Basics == nil {
		return nil, errors.New("resume basics are required")
	}

	var created models.Resume
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		resume := models.Resume{TotalExperience: in.TotalExperience}
		if in.Raw != "" {
			raw := in.Raw
			resume.Raw = &raw
		}
		if err := tx.Create(&resume).Error; err != nil {
			return err
		}

		basics := models.ResumeBasics{
			ResumeID: resume.ID,
			FullName: in.Basics.FullName,
			Headline: in.Basics.Headline,
			Email:    in.Basics.Email,
			Phone:    in.Basics.Phone,
			Location: in.Basics.Location,
			Summary:  in.Basics.Summary,
		}
		if err := tx.Create(&basics).Error; err != nil {
			return err
		}

		links := make([]models.ResumeLink, 0, len(in.Basics.Links))
		for i, l := range in.Basics.Links {
			links = append(links, models.ResumeLink{
				ResumeID:  resume.ID,
				Label:     l.Label,
				URL:       l.URL,
				SortOrder: i,
			})
		}
		if err := createBatch(tx, links); err != nil {
			return err
		}

		skills := make([]models.ResumeSkill, 0, len(in.Skills))
		for i, name := range in.Skills {
			skills = append(skills, models.ResumeSkill{ResumeID: resume.ID, Name: name, SortOrder: i})
		}
		if err := createBatch(tx, skills); err != nil {
			return err
		}

		languages := make([]models.ResumeLanguage, 0, len(in.Languages))
		for i, name := range in.Languages {
			languages = append(languages, models.ResumeLanguage{ResumeID: resume.ID, Name: name, SortOrder: i})
		}
		if err := createBatch(tx, languages); err != nil {
			return err
		}

		certifications := make([]models.ResumeCertification, 0, len(in.Certifications))
		for i, c := range in.Certifications {
			certifications = append(certifications, models.ResumeCertification{
				ResumeID:  resume.ID,
				Name:      c.Name,
				Issuer:    c.Issuer,
				Date:      c.Date,
				SortOrder: i,
			})
		}
		if err := createBatch(tx, certifications); err != nil {
			return err
		}

		education := make([]models.ResumeEducation, 0, len(in.Education))
		for i, e := range in.Education {
			education = append(education, models.ResumeEducation{
				ResumeID:    resume.ID,
				Institution: e.Institution,
				Degree:      e.Degree,
				Field:       e.Field,
				StartDate:   e.StartDate,
				EndDate:     e.EndDate,
				Location:    e.Location,
				Details:     e.Details,
				SortOrder:   i,
			})
		}
		if err := createBatch(tx, education); err != nil {
			return err
		}

		for i, e := range in.Experience {
			exp := models.ResumeExperience{
				ResumeID:  resume.ID,
				Company:   e.Company,
				Title:     e.Title,
				Location:  e.Location,
				StartDate: e.StartDate,
				EndDate:   e.EndDate,
				SortOrder: i,
			}
			if err := tx.Create(&exp).Error; err != nil {
				return err
			}
			highlights := make([]models.ResumeExperienceHighlight, 0, len(e.Highlights))
			for j, text := range e.Highlights {
				highlights = append(highlights, models.ResumeExperienceHighlight{
					ExperienceID: exp.ID,
					Text:         text,
					SortOrder:    j,
				})
			}
			if err := createBatch(tx, highlights); err != nil {
				return err
			}
		}

		for i, p := range in.Projects {
			project := models.ResumeProject{
				ResumeID:    resume.ID,
				Name:        p.Name,
				Description: p.Description,
				Link:        p.Link,
				SortOrder:   i,
			}
			if err := tx.Create(&project).Error; err != nil {
				return err
			}
			highlights := make([]models.ResumeProjectHighlight, 0, len(p.Highlights))
			for j, text := range p.Highlights {
				highlights = append(highlights, models.ResumeProjectHighlight{
					ProjectID: project.ID,
					Text:      text,
					SortOrder: j,
				})
			}
			if err := createBatch(tx, highlights); err != nil {
				return err
			}
		}

		created = resume
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func createBatch[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func sortAsc(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

// GetByID loads the aggregate with every child collection ordered by
// sort_order and reassembles the exact nested shape Create accepted.
// Returns (nil, nil) when the resume does not exist.
func (r *ResumeRepository) GetByID(ctx context.Context, id string) (*dtos.ResumeJSON, error) {
	var resume models.Resume
	err := r.DB.WithContext(ctx).
		Preload("Basics").
		Preload("Links", sortAsc).
		Preload("Skills", sortAsc).
		Preload("Languages", sortAsc).
		Preload("Certifications", sortAsc).
		Preload("Education", sortAsc).
		Preload("Experience", sortAsc).
		Preload("Experience.Highlights", sortAsc).
		Preload("Projects", sortAsc).
		Preload("Projects.Highlights", sortAsc).
		First(&resume, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	out := dtos.ResumeJSON{
		TotalExperience: resume.TotalExperience,
		Skills:          make([]string, 0, len(resume.Skills)),
		Languages:       make([]string, 0, len(resume.Languages)),
		Certifications:  make([]dtos.CertificationJSON, 0, len(resume.Certifications)),
		Education:       make([]dtos.EducationJSON, 0, len(resume.Education)),
		Experience:      make([]dtos.ExperienceJSON, 0, len(resume.Experience)),
		Projects:        make([]dtos.ProjectJSON, 0, len(resume.Projects)),
	}
	if resume.Raw != nil {
		out.Raw = *resume.Raw
	}

	basics := dtos.ResumeBasics{Links: make([]dtos.LinkJSON, 0, len(resume.Links))}
	if resume.Basics != nil {
		basics.FullName = resume.Basics.FullName
		basics.Headline = resume.Basics.Headline
		basics.Email = resume.Basics.Email
		basics.Phone = resume.Basics.Phone
		basics.Location = resume.Basics.Location
		basics.Summary = resume.Basics.Summary
	}
	for _, l := range resume.Links {
		basics.Links = append(basics.Links, dtos.LinkJSON{Label: l.Label, URL: l.URL})
	}
	out.Basics = &basics

	for _, s := range resume.Skills {
		out.Skills = append(out.Skills, s.Name)
	}
	for _, l := range resume.Languages {
		out.Languages = append(out.Languages, l.Name)
	}
	for _, c := range resume.Certifications {
		out.Certifications = append(out.Certifications, dtos.CertificationJSON{
			Name:   c.Name,
			Issuer: c.Issuer,
			Date:   c.Date,
		})
	}
	for _, e := range resume.Education {
		out.Education = append(out.Education, dtos.EducationJSON{
			Institution: e.Institution,
			Degree:      e.Degree,
			Field:       e.Field,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Location:    e.Location,
			Details:     e.Details,
		})
	}
	for _, e := range resume.Experience {
		highlights := make([]string, 0, len(e.Highlights))
		for _, h := range e.Highlights {
			highlights = append(highlights, h.Text)
		}
		out.Experience = append(out.Experience, dtos.ExperienceJSON{
			Company:    e.Company,
			Title:      e.Title,
			Location:   e.Location,
			StartDate:  e.StartDate,
			EndDate:    e.EndDate,
			Highlights: highlights,
		})
	}
	for _, p := range resume.Projects {
		highlights := make([]string, 0, len(p.Highlights))
		for _, h := range p.Highlights {
			highlights = append(highlights, h.Text)
		}
		out.Projects = append(out.Projects, dtos.ProjectJSON{
			Name:        p.Name,
			Description: p.Description,
			Link:        p.Link,
			Highlights:  highlights,
		})
	}

	return &out, nil
}

// GetRaw returns the stored source text for a resume. The boolean reports
// whether the resume exists at all.
func (r *ResumeRepository) GetRaw(ctx context.Context, id string) (string, bool, error) {
	var resume models.Resume
	err := r.DB.WithContext(ctx).Select("id", "raw").First(&resume, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if resume.Raw == nil {
		return "", true, nil
	}
	return *resume.Raw, true, nil
}

// Search matches a case-insensitive substring against full name, email, phone
// or any skill name, newest first, with offset pagination.
func (r *ResumeRepository) Search(ctx context.Context, term string, page, limit int) (*dtos.CandidateSearchResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit
	like := "%" + term + "%"

	matching := func(db *gorm.DB) *gorm.DB {
		return db.Model(&models.Resume{}).
			Joins("LEFT JOIN resume_basics ON resume_basics.resume_id = resumes.id").
			Joins("LEFT JOIN resume_skills ON resume_skills.resume_id = resumes.id").
			Where(
				"LOWER(resume_basics.full_name) LIKE LOWER(?) OR LOWER(resume_basics.email) LIKE LOWER(?) OR LOWER(resume_basics.phone) LIKE LOWER(?) OR LOWER(resume_skills.name) LIKE LOWER(?)",
				like, like, like, like,
			)
	}

	var total int64
	if err := matching(r.DB.WithContext(ctx)).Distinct("resumes.id").Count(&total).Error; err != nil {
		return nil, err
	}

	var pageRows []struct {
		ID        string
		CreatedAt time.Time
	}
	err := matching(r.DB.WithContext(ctx)).
		Select("DISTINCT resumes.id, resumes.created_at").
		Order("resumes.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&pageRows).Error
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(pageRows))
	for _, row := range pageRows {
		ids = append(ids, row.ID)
	}

	summaries, err := r.summariesByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &dtos.CandidateSearchResult{
		Resumes: summaries,
		Pagination: dtos.Pagination{
			TotalItems:  total,
			TotalPages:  totalPages,
			CurrentPage: page,
			PageSize:    limit,
		},
	}, nil
}

// List returns every resume as a summary row, newest first.
func (r *ResumeRepository) List(ctx context.Context) ([]dtos.CandidateSummary, error) {
	var resumes []models.Resume
	err := r.DB.WithContext(ctx).
		Preload("Basics").
		Order("created_at DESC").
		Find(&resumes).Error
	if err != nil {
		return nil, err
	}
	return toSummaries(resumes), nil
}

func (r *ResumeRepository) summariesByID(ctx context.Context, ids []string) ([]dtos.CandidateSummary, error) {
	if len(ids) == 0 {
		return []dtos.CandidateSummary{}, nil
	}
	var resumes []models.Resume
	err := r.DB.WithContext(ctx).
		Preload("Basics").
		Where("id IN ?", ids).
		Order("created_at DESC").
		Find(&resumes).Error
	if err != nil {
		return nil, err
	}
	return toSummaries(resumes), nil
}

func toSummaries(resumes []models.Resume) []dtos.CandidateSummary {
	out := make([]dtos.CandidateSummary, 0, len(resumes))
	for _, r := range resumes {
		s := dtos.CandidateSummary{
			ID:              r.ID,
			TotalExperience: r.TotalExperience,
			CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		}
		if r.Basics != nil {
			s.FullName = r.Basics.FullName
			s.Headline = r.Basics.Headline
			s.Email = r.Basics.Email
			s.Phone = r.Basics.Phone
		}
		out = append(out, s)
	}
	return out
}
