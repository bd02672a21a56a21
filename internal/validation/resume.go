package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/resumeforge/resumeforge-backend/internal/dto"
)

// Declarative bounds for resume content. Validation is purely structural:
// every rule below is checked against the supplied value and every failure
// is reported; a violation in one entry never hides violations elsewhere.

const (
	MaxTitleLen      = 255
	MaxTemplateIDLen = 100

	MaxExperienceEntries    = 20
	MaxEducationEntries     = 10
	MaxSkillEntries         = 50
	MaxProjectEntries       = 20
	MaxCertificationEntries = 20
	MaxAwardEntries         = 20
	MaxPublicationEntries   = 20
	MaxVolunteerEntries     = 20

	MaxAchievements = 10
	MaxTechnologies = 20
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	gpaPattern   = regexp.MustCompile(`^\d+\.?\d*$`)
)

var (
	SkillCategories = []string{"technical", "soft", "language", "other"}
	SkillLevels     = []string{"beginner", "intermediate", "advanced", "expert"}
)

// CreateResume checks a full create request: title, template key, and the
// complete resume document.
func CreateResume(req *dto.CreateResumeRequest) error {
	errs := &Errors{}
	checkRequired(errs, "title", req.Title, MaxTitleLen, "Resume title")
	checkRequired(errs, "templateId", req.TemplateID, MaxTemplateIDLen, "Template ID")
	if req.Data == nil {
		errs.add("data", CodeRequired, "Resume data is required")
	} else {
		resumeData(errs, "data", req.Data)
	}
	return errs.orNil()
}

// UpdateResume checks a partial update; only fields present in the request
// are validated.
func UpdateResume(req *dto.UpdateResumeRequest) error {
	errs := &Errors{}
	if req.Title != nil {
		checkRequired(errs, "title", *req.Title, MaxTitleLen, "Resume title")
	}
	if req.TemplateID != nil {
		checkRequired(errs, "templateId", *req.TemplateID, MaxTemplateIDLen, "Template ID")
	}
	if req.Data != nil {
		resumeData(errs, "data", req.Data)
	}
	return errs.orNil()
}

// ResumeData checks a standalone resume document.
func ResumeData(data *dto.ResumeData) error {
	errs := &Errors{}
	resumeData(errs, "data", data)
	return errs.orNil()
}

func resumeData(errs *Errors, prefix string, data *dto.ResumeData) {
	personalInfo(errs, prefix+".personalInfo", &data.PersonalInfo)

	checkEntryCount(errs, prefix+".experience", len(data.Experience), MaxExperienceEntries, "work experiences")
	for i := range data.Experience {
		experience(errs, fmt.Sprintf("%s.experience[%d]", prefix, i), &data.Experience[i])
	}

	checkEntryCount(errs, prefix+".education", len(data.Education), MaxEducationEntries, "education entries")
	for i := range data.Education {
		education(errs, fmt.Sprintf("%s.education[%d]", prefix, i), &data.Education[i])
	}

	checkEntryCount(errs, prefix+".skills", len(data.Skills), MaxSkillEntries, "skills")
	for i := range data.Skills {
		skill(errs, fmt.Sprintf("%s.skills[%d]", prefix, i), &data.Skills[i])
	}

	checkEntryCount(errs, prefix+".projects", len(data.Projects), MaxProjectEntries, "projects")
	for i := range data.Projects {
		project(errs, fmt.Sprintf("%s.projects[%d]", prefix, i), &data.Projects[i])
	}

	checkEntryCount(errs, prefix+".certifications", len(data.Certifications), MaxCertificationEntries, "certifications")
	for i := range data.Certifications {
		certification(errs, fmt.Sprintf("%s.certifications[%d]", prefix, i), &data.Certifications[i])
	}

	checkEntryCount(errs, prefix+".awards", len(data.Awards), MaxAwardEntries, "awards")
	for i := range data.Awards {
		award(errs, fmt.Sprintf("%s.awards[%d]", prefix, i), &data.Awards[i])
	}

	checkEntryCount(errs, prefix+".publications", len(data.Publications), MaxPublicationEntries, "publications")
	for i := range data.Publications {
		publication(errs, fmt.Sprintf("%s.publications[%d]", prefix, i), &data.Publications[i])
	}

	checkEntryCount(errs, prefix+".volunteerWork", len(data.VolunteerWork), MaxVolunteerEntries, "volunteer experiences")
	for i := range data.VolunteerWork {
		volunteerWork(errs, fmt.Sprintf("%s.volunteerWork[%d]", prefix, i), &data.VolunteerWork[i])
	}
}

func personalInfo(errs *Errors, prefix string, info *dto.PersonalInfo) {
	checkRequired(errs, prefix+".name", info.Name, 100, "Name")
	if info.Email == "" {
		errs.add(prefix+".email", CodeRequired, "Email is required")
	} else if !emailPattern.MatchString(info.Email) {
		errs.add(prefix+".email", CodeInvalidFormat, "Invalid email address")
	}
	if info.Phone == "" {
		errs.add(prefix+".phone", CodeRequired, "Phone is required")
	} else if !phonePattern.MatchString(info.Phone) {
		errs.add(prefix+".phone", CodeInvalidFormat, "Invalid phone number format")
	}
	checkRequired(errs, prefix+".location", info.Location, 100, "Location")
	checkURL(errs, prefix+".linkedin", info.LinkedIn, "LinkedIn URL")
	checkURL(errs, prefix+".portfolio", info.Portfolio, "Portfolio URL")
	checkMaxLen(errs, prefix+".summary", info.Summary, 500, "Summary")
}

func experience(errs *Errors, prefix string, exp *dto.WorkExperience) {
	checkID(errs, prefix+".id", exp.ID)
	checkRequired(errs, prefix+".company", exp.Company, 100, "Company name")
	checkRequired(errs, prefix+".position", exp.Position, 100, "Position")
	checkDate(errs, prefix+".startDate", exp.StartDate, true)
	checkDate(errs, prefix+".endDate", exp.EndDate, false)
	checkMaxLen(errs, prefix+".description", exp.Description, 1000, "Description")
	if len(exp.Achievements) > MaxAchievements {
		errs.add(prefix+".achievements", CodeTooMany,
			fmt.Sprintf("Maximum %d achievements allowed", MaxAchievements))
	}
	for i, a := range exp.Achievements {
		checkMaxLen(errs, fmt.Sprintf("%s.achievements[%d]", prefix, i), a, 200, "Achievement")
	}
}

func education(errs *Errors, prefix string, edu *dto.Education) {
	checkID(errs, prefix+".id", edu.ID)
	checkRequired(errs, prefix+".institution", edu.Institution, 100, "Institution name")
	checkRequired(errs, prefix+".degree", edu.Degree, 100, "Degree")
	checkRequired(errs, prefix+".field", edu.Field, 100, "Field of study")
	checkDate(errs, prefix+".startDate", edu.StartDate, true)
	checkDate(errs, prefix+".endDate", edu.EndDate, false)
	if edu.GPA != "" && !gpaPattern.MatchString(edu.GPA) {
		errs.add(prefix+".gpa", CodeInvalidFormat, "Invalid GPA format")
	}
	checkMaxLen(errs, prefix+".location", edu.Location, 100, "Location")
}

func skill(errs *Errors, prefix string, sk *dto.Skill) {
	checkID(errs, prefix+".id", sk.ID)
	checkRequired(errs, prefix+".name", sk.Name, 50, "Skill name")
	checkEnum(errs, prefix+".category", sk.Category, SkillCategories, true, "skill category")
	checkEnum(errs, prefix+".level", sk.Level, SkillLevels, false, "skill level")
}

func project(errs *Errors, prefix string, p *dto.Project) {
	checkID(errs, prefix+".id", p.ID)
	checkRequired(errs, prefix+".title", p.Title, 100, "Project title")
	checkMaxLen(errs, prefix+".description", p.Description, 1000, "Description")
	if len(p.Technologies) > MaxTechnologies {
		errs.add(prefix+".technologies", CodeTooMany,
			fmt.Sprintf("Maximum %d technologies allowed", MaxTechnologies))
	}
	for i, tech := range p.Technologies {
		checkMaxLen(errs, fmt.Sprintf("%s.technologies[%d]", prefix, i), tech, 50, "Technology name")
	}
	checkDate(errs, prefix+".startDate", p.StartDate, true)
	checkDate(errs, prefix+".endDate", p.EndDate, false)
	checkURL(errs, prefix+".url", p.URL, "URL")
	checkURL(errs, prefix+".github", p.GitHub, "GitHub URL")
}

func certification(errs *Errors, prefix string, c *dto.Certification) {
	checkID(errs, prefix+".id", c.ID)
	checkRequired(errs, prefix+".name", c.Name, 100, "Certification name")
	checkRequired(errs, prefix+".issuer", c.Issuer, 100, "Issuer")
	checkDate(errs, prefix+".date", c.Date, true)
	checkDate(errs, prefix+".expiryDate", c.ExpiryDate, false)
	checkMaxLen(errs, prefix+".credentialId", c.CredentialID, 100, "Credential ID")
	checkURL(errs, prefix+".url", c.URL, "URL")
}

func award(errs *Errors, prefix string, a *dto.Award) {
	checkID(errs, prefix+".id", a.ID)
	checkRequired(errs, prefix+".title", a.Title, 100, "Award title")
	checkRequired(errs, prefix+".issuer", a.Issuer, 100, "Issuer")
	checkDate(errs, prefix+".date", a.Date, true)
	checkMaxLen(errs, prefix+".description", a.Description, 500, "Description")
}

func publication(errs *Errors, prefix string, p *dto.Publication) {
	checkID(errs, prefix+".id", p.ID)
	checkRequired(errs, prefix+".title", p.Title, 200, "Publication title")
	checkRequired(errs, prefix+".publisher", p.Publisher, 100, "Publisher")
	checkDate(errs, prefix+".date", p.Date, true)
	checkURL(errs, prefix+".url", p.URL, "URL")
	checkMaxLen(errs, prefix+".description", p.Description, 500, "Description")
}

func volunteerWork(errs *Errors, prefix string, v *dto.VolunteerWork) {
	checkID(errs, prefix+".id", v.ID)
	checkRequired(errs, prefix+".organization", v.Organization, 100, "Organization name")
	checkRequired(errs, prefix+".position", v.Position, 100, "Position")
	checkDate(errs, prefix+".startDate", v.StartDate, true)
	checkDate(errs, prefix+".endDate", v.EndDate, false)
	checkMaxLen(errs, prefix+".description", v.Description, 1000, "Description")
}

// --- rule helpers ---

func checkRequired(errs *Errors, field, value string, max int, label string) {
	if value == "" {
		errs.add(field, CodeRequired, label+" is required")
		return
	}
	if len(value) > max {
		errs.add(field, CodeTooLong, fmt.Sprintf("%s must be less than %d characters", label, max))
	}
}

func checkMaxLen(errs *Errors, field, value string, max int, label string) {
	if len(value) > max {
		errs.add(field, CodeTooLong, fmt.Sprintf("%s must be less than %d characters", label, max))
	}
}

func checkEntryCount(errs *Errors, field string, count, max int, label string) {
	if count > max {
		errs.add(field, CodeTooMany, fmt.Sprintf("Maximum %d %s allowed", max, label))
	}
}

func checkDate(errs *Errors, field, value string, required bool) {
	if value == "" {
		if required {
			errs.add(field, CodeRequired, "Date is required")
		}
		return
	}
	if !datePattern.MatchString(value) {
		errs.add(field, CodeInvalidFormat, "Invalid date format (YYYY-MM-DD)")
	}
}

// checkURL accepts empty values; non-empty values must be a well-formed
// http or https URL.
func checkURL(errs *Errors, field, value, label string) {
	if value == "" {
		return
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs.add(field, CodeInvalidFormat, "Invalid "+label)
	}
}

func checkID(errs *Errors, field, value string) {
	if _, err := uuid.Parse(value); err != nil {
		errs.add(field, CodeInvalidFormat, "Invalid ID format")
	}
}

func checkEnum(errs *Errors, field, value string, allowed []string, required bool, label string) {
	if value == "" {
		if required {
			errs.add(field, CodeRequired, "Invalid "+label)
		}
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	errs.add(field, CodeInvalidEnum,
		fmt.Sprintf("Invalid %s, must be one of: %s", label, strings.Join(allowed, ", ")))
}
