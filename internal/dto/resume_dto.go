package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ResumeData is the structured content of a resume. It is persisted as a
// single jsonb document on the resume row, so the field names here are the
// wire format and the storage format at once.
type ResumeData struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Experience     []WorkExperience `json:"experience"`
	Education      []Education      `json:"education"`
	Skills         []Skill          `json:"skills"`
	Projects       []Project        `json:"projects"`
	Certifications []Certification  `json:"certifications"`
	Awards         []Award          `json:"awards"`
	Publications   []Publication    `json:"publications"`
	VolunteerWork  []VolunteerWork  `json:"volunteerWork"`
}

type PersonalInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Summary   string `json:"summary,omitempty"`
}

type WorkExperience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	GPA         string `json:"gpa,omitempty"`
	Location    string `json:"location,omitempty"`
}

type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    string `json:"level,omitempty"`
}

type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current"`
	URL          string   `json:"url,omitempty"`
	GitHub       string   `json:"github,omitempty"`
}

type Certification struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
	CredentialID string `json:"credentialId,omitempty"`
	URL          string `json:"url,omitempty"`
}

type Award struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

type Publication struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Publisher   string `json:"publisher"`
	Date        string `json:"date"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

type VolunteerWork struct {
	ID           string `json:"id"`
	Organization string `json:"organization"`
	Position     string `json:"position"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// --- Requests ---

type CreateResumeRequest struct {
	Title      string      `json:"title"`
	TemplateID string      `json:"templateId"`
	Data       *ResumeData `json:"data"`
}

// UpdateResumeRequest carries a partial update; nil fields are left
// untouched on the stored record.
type UpdateResumeRequest struct {
	Title      *string     `json:"title,omitempty"`
	TemplateID *string     `json:"templateId,omitempty"`
	Data       *ResumeData `json:"data,omitempty"`
}

// --- Responses ---

type ResumeResponse struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	Title      string         `json:"title"`
	TemplateID string         `json:"template_id"`
	Data       datatypes.JSON `json:"data"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	LastEdited time.Time      `json:"last_edited"`
}

type ResumeListResponse struct {
	Resumes []ResumeResponse `json:"resumes"`
	Total   int              `json:"total"`
}
