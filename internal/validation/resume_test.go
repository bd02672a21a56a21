package validation

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumeforge/resumeforge-backend/internal/dto"
)

func validData() *dto.ResumeData {
	return &dto.ResumeData{
		PersonalInfo: dto.PersonalInfo{
			Name:     "Ann Lee",
			Email:    "ann@example.com",
			Phone:    "+15551234567",
			Location: "Portland, OR",
			Summary:  "Backend engineer.",
		},
		Experience: []dto.WorkExperience{
			{
				ID:           uuid.NewString(),
				Company:      "Acme Corp",
				Position:     "Engineer",
				StartDate:    "2020-01-15",
				EndDate:      "2023-06-30",
				Description:  "Built services.",
				Achievements: []string{"Shipped the billing rewrite"},
			},
		},
		Education: []dto.Education{
			{
				ID:          uuid.NewString(),
				Institution: "State University",
				Degree:      "BSc",
				Field:       "Computer Science",
				StartDate:   "2014-09-01",
				EndDate:     "2018-06-01",
				GPA:         "3.8",
			},
		},
		Skills: []dto.Skill{
			{ID: uuid.NewString(), Name: "Go", Category: "technical", Level: "expert"},
		},
	}
}

func validCreateRequest() *dto.CreateResumeRequest {
	return &dto.CreateResumeRequest{
		Title:      "Backend Engineer Resume",
		TemplateID: "modern-1",
		Data:       validData(),
	}
}

func violations(t *testing.T, err error) []Violation {
	t.Helper()
	require.Error(t, err)
	var verrs *Errors
	require.True(t, errors.As(err, &verrs))
	return verrs.Violations
}

func findViolation(vs []Violation, field string) *Violation {
	for i := range vs {
		if vs[i].Field == field {
			return &vs[i]
		}
	}
	return nil
}

func TestCreateResume_Valid(t *testing.T) {
	assert.NoError(t, CreateResume(validCreateRequest()))
}

func TestCreateResume_MissingTitle(t *testing.T) {
	req := validCreateRequest()
	req.Title = ""

	vs := violations(t, CreateResume(req))
	v := findViolation(vs, "title")
	require.NotNil(t, v)
	assert.Equal(t, CodeRequired, v.Code)
}

func TestCreateResume_TitleTooLong(t *testing.T) {
	req := validCreateRequest()
	req.Title = strings.Repeat("x", MaxTitleLen+1)

	vs := violations(t, CreateResume(req))
	v := findViolation(vs, "title")
	require.NotNil(t, v)
	assert.Equal(t, CodeTooLong, v.Code)
}

func TestCreateResume_MissingData(t *testing.T) {
	req := validCreateRequest()
	req.Data = nil

	vs := violations(t, CreateResume(req))
	v := findViolation(vs, "data")
	require.NotNil(t, v)
	assert.Equal(t, CodeRequired, v.Code)
}

func TestCreateResume_TooManyExperiences(t *testing.T) {
	req := validCreateRequest()
	entry := req.Data.Experience[0]
	req.Data.Experience = nil
	for i := 0; i <= MaxExperienceEntries; i++ {
		e := entry
		e.ID = uuid.NewString()
		req.Data.Experience = append(req.Data.Experience, e)
	}

	vs := violations(t, CreateResume(req))
	v := findViolation(vs, "data.experience")
	require.NotNil(t, v)
	assert.Equal(t, CodeTooMany, v.Code)
}

func TestCreateResume_IndexedFieldPath(t *testing.T) {
	req := validCreateRequest()
	second := req.Data.Experience[0]
	second.ID = uuid.NewString()
	second.Company = ""
	req.Data.Experience = append(req.Data.Experience, second)

	vs := violations(t, CreateResume(req))
	v := findViolation(vs, "data.experience[1].company")
	require.NotNil(t, v)
	assert.Equal(t, CodeRequired, v.Code)

	// the valid first entry must not be flagged
	assert.Nil(t, findViolation(vs, "data.experience[0].company"))
}

func TestCreateResume_CollectsAllViolations(t *testing.T) {
	req := validCreateRequest()
	req.Title = ""
	req.Data.PersonalInfo.Email = "not-an-email"
	req.Data.Experience[0].StartDate = "January 2020"
	req.Data.Skills[0].Category = "wizardry"

	vs := violations(t, CreateResume(req))
	require.Len(t, vs, 4)
	assert.NotNil(t, findViolation(vs, "title"))
	assert.NotNil(t, findViolation(vs, "data.personalInfo.email"))
	assert.NotNil(t, findViolation(vs, "data.experience[0].startDate"))
	assert.NotNil(t, findViolation(vs, "data.skills[0].category"))
}

func TestPersonalInfo_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.PersonalInfo)
		field  string
		code   string
	}{
		{"missing name", func(p *dto.PersonalInfo) { p.Name = "" }, "data.personalInfo.name", CodeRequired},
		{"name too long", func(p *dto.PersonalInfo) { p.Name = strings.Repeat("a", 101) }, "data.personalInfo.name", CodeTooLong},
		{"missing email", func(p *dto.PersonalInfo) { p.Email = "" }, "data.personalInfo.email", CodeRequired},
		{"bad email", func(p *dto.PersonalInfo) { p.Email = "ann at example" }, "data.personalInfo.email", CodeInvalidFormat},
		{"missing phone", func(p *dto.PersonalInfo) { p.Phone = "" }, "data.personalInfo.phone", CodeRequired},
		{"phone leading zero", func(p *dto.PersonalInfo) { p.Phone = "+05551234567" }, "data.personalInfo.phone", CodeInvalidFormat},
		{"missing location", func(p *dto.PersonalInfo) { p.Location = "" }, "data.personalInfo.location", CodeRequired},
		{"bad linkedin scheme", func(p *dto.PersonalInfo) { p.LinkedIn = "ftp://linkedin.com/in/ann" }, "data.personalInfo.linkedin", CodeInvalidFormat},
		{"relative portfolio", func(p *dto.PersonalInfo) { p.Portfolio = "example.com/ann" }, "data.personalInfo.portfolio", CodeInvalidFormat},
		{"summary too long", func(p *dto.PersonalInfo) { p.Summary = strings.Repeat("s", 501) }, "data.personalInfo.summary", CodeTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validData()
			tt.mutate(&data.PersonalInfo)

			vs := violations(t, ResumeData(data))
			v := findViolation(vs, tt.field)
			require.NotNil(t, v, "expected violation at %s", tt.field)
			assert.Equal(t, tt.code, v.Code)
		})
	}
}

func TestPersonalInfo_OptionalURLsMayBeEmpty(t *testing.T) {
	data := validData()
	data.PersonalInfo.LinkedIn = ""
	data.PersonalInfo.Portfolio = ""
	assert.NoError(t, ResumeData(data))
}

func TestExperience_Dates(t *testing.T) {
	t.Run("start date required", func(t *testing.T) {
		data := validData()
		data.Experience[0].StartDate = ""

		vs := violations(t, ResumeData(data))
		v := findViolation(vs, "data.experience[0].startDate")
		require.NotNil(t, v)
		assert.Equal(t, CodeRequired, v.Code)
	})

	t.Run("end date optional", func(t *testing.T) {
		data := validData()
		data.Experience[0].EndDate = ""
		data.Experience[0].Current = true
		assert.NoError(t, ResumeData(data))
	})

	t.Run("end date format checked when present", func(t *testing.T) {
		data := validData()
		data.Experience[0].EndDate = "2023/06/30"

		vs := violations(t, ResumeData(data))
		v := findViolation(vs, "data.experience[0].endDate")
		require.NotNil(t, v)
		assert.Equal(t, CodeInvalidFormat, v.Code)
	})

	t.Run("current entry may still carry an end date", func(t *testing.T) {
		data := validData()
		data.Experience[0].Current = true
		data.Experience[0].EndDate = "2023-06-30"
		assert.NoError(t, ResumeData(data))
	})
}

func TestExperience_Achievements(t *testing.T) {
	data := validData()
	data.Experience[0].Achievements = make([]string, MaxAchievements+1)
	for i := range data.Experience[0].Achievements {
		data.Experience[0].Achievements[i] = fmt.Sprintf("achievement %d", i)
	}

	vs := violations(t, ResumeData(data))
	v := findViolation(vs, "data.experience[0].achievements")
	require.NotNil(t, v)
	assert.Equal(t, CodeTooMany, v.Code)

	data = validData()
	data.Experience[0].Achievements = []string{strings.Repeat("a", 201)}
	vs = violations(t, ResumeData(data))
	v = findViolation(vs, "data.experience[0].achievements[0]")
	require.NotNil(t, v)
	assert.Equal(t, CodeTooLong, v.Code)
}

func TestEducation_GPA(t *testing.T) {
	data := validData()
	data.Education[0].GPA = "3.8/4.0"

	vs := violations(t, ResumeData(data))
	v := findViolation(vs, "data.education[0].gpa")
	require.NotNil(t, v)
	assert.Equal(t, CodeInvalidFormat, v.Code)

	data = validData()
	data.Education[0].GPA = ""
	assert.NoError(t, ResumeData(data))
}

func TestSkill_Enums(t *testing.T) {
	t.Run("category required", func(t *testing.T) {
		data := validData()
		data.Skills[0].Category = ""

		vs := violations(t, ResumeData(data))
		v := findViolation(vs, "data.skills[0].category")
		require.NotNil(t, v)
		assert.Equal(t, CodeRequired, v.Code)
	})

	t.Run("unknown level rejected", func(t *testing.T) {
		data := validData()
		data.Skills[0].Level = "grandmaster"

		vs := violations(t, ResumeData(data))
		v := findViolation(vs, "data.skills[0].level")
		require.NotNil(t, v)
		assert.Equal(t, CodeInvalidEnum, v.Code)
	})

	t.Run("level optional", func(t *testing.T) {
		data := validData()
		data.Skills[0].Level = ""
		assert.NoError(t, ResumeData(data))
	})

	t.Run("all categories accepted", func(t *testing.T) {
		for _, cat := range SkillCategories {
			data := validData()
			data.Skills[0].Category = cat
			assert.NoError(t, ResumeData(data), "category %q", cat)
		}
	})
}

func TestEntryIDs(t *testing.T) {
	data := validData()
	data.Skills[0].ID = "skill-1"

	vs := violations(t, ResumeData(data))
	v := findViolation(vs, "data.skills[0].id")
	require.NotNil(t, v)
	assert.Equal(t, CodeInvalidFormat, v.Code)
}

func TestProject_Rules(t *testing.T) {
	base := dto.Project{
		ID:          uuid.NewString(),
		Title:       "Side Project",
		Description: "A thing I built.",
		StartDate:   "2022-03-01",
		URL:         "https://example.com/project",
		GitHub:      "https://github.com/ann/project",
	}

	data := validData()
	data.Projects = []dto.Project{base}
	assert.NoError(t, ResumeData(data))

	p := base
	p.Technologies = make([]string, MaxTechnologies+1)
	for i := range p.Technologies {
		p.Technologies[i] = "go"
	}
	data.Projects = []dto.Project{p}
	vs := violations(t, ResumeData(data))
	v := findViolation(vs, "data.projects[0].technologies")
	require.NotNil(t, v)
	assert.Equal(t, CodeTooMany, v.Code)

	p = base
	p.GitHub = "javascript:alert(1)"
	data.Projects = []dto.Project{p}
	vs = violations(t, ResumeData(data))
	v = findViolation(vs, "data.projects[0].github")
	require.NotNil(t, v)
	assert.Equal(t, CodeInvalidFormat, v.Code)
}

func TestUpdateResume_PartialFields(t *testing.T) {
	// nil fields are skipped entirely
	assert.NoError(t, UpdateResume(&dto.UpdateResumeRequest{}))

	empty := ""
	vs := violations(t, UpdateResume(&dto.UpdateResumeRequest{Title: &empty}))
	v := findViolation(vs, "title")
	require.NotNil(t, v)
	assert.Equal(t, CodeRequired, v.Code)

	long := strings.Repeat("t", MaxTemplateIDLen+1)
	vs = violations(t, UpdateResume(&dto.UpdateResumeRequest{TemplateID: &long}))
	v = findViolation(vs, "templateId")
	require.NotNil(t, v)
	assert.Equal(t, CodeTooLong, v.Code)

	data := validData()
	data.PersonalInfo.Name = ""
	vs = violations(t, UpdateResume(&dto.UpdateResumeRequest{Data: data}))
	assert.NotNil(t, findViolation(vs, "data.personalInfo.name"))
}

func TestErrorsMessage(t *testing.T) {
	req := validCreateRequest()
	req.Title = ""

	err := CreateResume(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
	assert.Contains(t, err.Error(), "Resume title is required")
}
