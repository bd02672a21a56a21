package services

import (
	"github.com/resumeforge/resumeforge-backend/internal/dto"
	"github.com/resumeforge/resumeforge-backend/internal/sanitize"
)

// The pipeline runs in a fixed order: validate the raw request first, then
// sanitize every string-bearing field of the now-shaped document. Running
// sanitization second means it can walk the structure without re-checking
// types, and because it only removes characters (URL fields are validated
// as http/https before the prefixing rule could apply) it cannot push a
// validated value back over a bound.

// sanitizeResumeData returns a cleaned copy of the document.
func sanitizeResumeData(data *dto.ResumeData) *dto.ResumeData {
	out := &dto.ResumeData{
		PersonalInfo: dto.PersonalInfo{
			Name:      sanitize.Text(data.PersonalInfo.Name),
			Email:     sanitize.Email(data.PersonalInfo.Email),
			Phone:     sanitize.Phone(data.PersonalInfo.Phone),
			Location:  sanitize.Text(data.PersonalInfo.Location),
			LinkedIn:  sanitize.URL(data.PersonalInfo.LinkedIn),
			Portfolio: sanitize.URL(data.PersonalInfo.Portfolio),
			Summary:   sanitize.Text(data.PersonalInfo.Summary),
		},
	}

	out.Experience = make([]dto.WorkExperience, len(data.Experience))
	for i, exp := range data.Experience {
		exp.Company = sanitize.Text(exp.Company)
		exp.Position = sanitize.Text(exp.Position)
		exp.Description = sanitize.Text(exp.Description)
		exp.Achievements = sanitize.StringArray(exp.Achievements)
		out.Experience[i] = exp
	}

	out.Education = make([]dto.Education, len(data.Education))
	for i, edu := range data.Education {
		edu.Institution = sanitize.Text(edu.Institution)
		edu.Degree = sanitize.Text(edu.Degree)
		edu.Field = sanitize.Text(edu.Field)
		edu.Location = sanitize.Text(edu.Location)
		out.Education[i] = edu
	}

	out.Skills = make([]dto.Skill, len(data.Skills))
	for i, sk := range data.Skills {
		sk.Name = sanitize.Text(sk.Name)
		out.Skills[i] = sk
	}

	out.Projects = make([]dto.Project, len(data.Projects))
	for i, p := range data.Projects {
		p.Title = sanitize.Text(p.Title)
		p.Description = sanitize.Text(p.Description)
		p.Technologies = sanitize.StringArray(p.Technologies)
		p.URL = sanitize.URL(p.URL)
		p.GitHub = sanitize.URL(p.GitHub)
		out.Projects[i] = p
	}

	out.Certifications = make([]dto.Certification, len(data.Certifications))
	for i, c := range data.Certifications {
		c.Name = sanitize.Text(c.Name)
		c.Issuer = sanitize.Text(c.Issuer)
		c.CredentialID = sanitize.Text(c.CredentialID)
		c.URL = sanitize.URL(c.URL)
		out.Certifications[i] = c
	}

	out.Awards = make([]dto.Award, len(data.Awards))
	for i, a := range data.Awards {
		a.Title = sanitize.Text(a.Title)
		a.Issuer = sanitize.Text(a.Issuer)
		a.Description = sanitize.Text(a.Description)
		out.Awards[i] = a
	}

	out.Publications = make([]dto.Publication, len(data.Publications))
	for i, p := range data.Publications {
		p.Title = sanitize.Text(p.Title)
		p.Publisher = sanitize.Text(p.Publisher)
		p.URL = sanitize.URL(p.URL)
		p.Description = sanitize.Text(p.Description)
		out.Publications[i] = p
	}

	out.VolunteerWork = make([]dto.VolunteerWork, len(data.VolunteerWork))
	for i, v := range data.VolunteerWork {
		v.Organization = sanitize.Text(v.Organization)
		v.Position = sanitize.Text(v.Position)
		v.Description = sanitize.Text(v.Description)
		out.VolunteerWork[i] = v
	}

	return out
}
