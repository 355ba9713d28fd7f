package dtos

// ResumeJSON is the exact nested shape the extractor produces and the
// persistence layer round-trips. Nullable strings are pointers so null
// survives marshalling; arrays default to empty, never null.
type ResumeJSON struct {
	Basics          *ResumeBasics       `json:"basics"`
	Skills          []string            `json:"skills"`
	Languages       []string            `json:"languages"`
	Certifications  []CertificationJSON `json:"certifications"`
	TotalExperience float64             `json:"totalExperience"`
	Education       []EducationJSON     `json:"education"`
	Experience      []ExperienceJSON    `json:"experience"`
	Projects        []ProjectJSON       `json:"projects"`
	Raw             string              `json:"raw,omitempty"`
}

type ResumeBasics struct {
	FullName *string    `json:"fullName"`
	Headline *string    `json:"headline"`
	Email    *string    `json:"email"`
	Phone    *string    `json:"phone"`
	Location *string    `json:"location"`
	Summary  *string    `json:"summary"`
	Links    []LinkJSON `json:"links"`
}

type LinkJSON struct {
	Label *string `json:"label"`
	URL   string  `json:"url"`
}

type CertificationJSON struct {
	Name   string  `json:"name"`
	Issuer *string `json:"issuer"`
	Date   *string `json:"date"`
}

type EducationJSON struct {
	Institution *string `json:"institution"`
	Degree      *string `json:"degree"`
	Field       *string `json:"field"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Location    *string `json:"location"`
	Details     *string `json:"details"`
}

type ExperienceJSON struct {
	Company    *string  `json:"company"`
	Title      *string  `json:"title"`
	Location   *string  `json:"location"`
	StartDate  *string  `json:"startDate"`
	EndDate    *string  `json:"endDate"`
	Highlights []string `json:"highlights"`
}

type ProjectJSON struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Link        *string  `json:"link"`
	Highlights  []string `json:"highlights"`
}

// CandidateSummary is one row of the candidate list/search responses.
type CandidateSummary struct {
	ID              string  `json:"id"`
	FullName        *string `json:"fullName"`
	Headline        *string `json:"headline,omitempty"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	TotalExperience float64 `json:"totalExperience"`
	CreatedAt       string  `json:"createdAt"`
}

type Pagination struct {
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
}

type CandidateSearchResult struct {
	Resumes    []CandidateSummary `json:"resumes"`
	Pagination Pagination         `json:"pagination"`
}
