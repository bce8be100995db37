package models

import "time"

// PersonalInfoRequest replaces the whole personalInfo sub-document. Fields
// omitted here (such as the seeded email) are absent after the update, not
// merged with prior values.
type PersonalInfoRequest struct {
	FullName          string    `json:"fullName"`
	ProfessionalTitle string    `json:"professionalTitle"`
	Summary           string    `json:"summary,omitempty"`
	Location          *Location `json:"location,omitempty"`
	PhotoURL          string    `json:"photoUrl,omitempty"`
}

type SkillRequest struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type ExperienceRequest struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

type EducationRequest struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	EndDate     string `json:"endDate"`
}

type PortfolioRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	DocumentURL string `json:"documentUrl,omitempty"`
}

// AccountVerifiedEvent is the inbound queue message that seeds a new
// profile shell. No reply is produced.
type AccountVerifiedEvent struct {
	AccountID string `json:"accountId"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Status    int               `json:"status"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Path      string            `json:"path"`
	Errors    []ValidationError `json:"errors,omitempty"`
}
