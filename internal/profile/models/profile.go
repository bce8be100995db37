package models

import (
	"time"
)

type Location struct {
	City    string `json:"city" bson:"city"`
	Country string `json:"country" bson:"country"`
}

type PersonalInfo struct {
	FullName          string    `json:"fullName" bson:"fullName"`
	Email             string    `json:"email,omitempty" bson:"email,omitempty"`
	ProfessionalTitle string    `json:"professionalTitle,omitempty" bson:"professionalTitle,omitempty"`
	Summary           string    `json:"summary,omitempty" bson:"summary,omitempty"`
	Location          *Location `json:"location,omitempty" bson:"location,omitempty"`
	PhotoURL          string    `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
}

type Skill struct {
	ID    string     `json:"id" bson:"id"`
	Name  string     `json:"name" bson:"name"`
	Level SkillLevel `json:"level" bson:"level"`
}

// Experience dates use the YYYY-MM-DD wire format; EndDate empty means the
// position is current.
type Experience struct {
	ID          string `json:"id" bson:"id"`
	Company     string `json:"company" bson:"company"`
	Role        string `json:"role" bson:"role"`
	StartDate   string `json:"startDate" bson:"startDate"`
	EndDate     string `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

type Education struct {
	ID          string `json:"id" bson:"id"`
	Institution string `json:"institution" bson:"institution"`
	Degree      string `json:"degree" bson:"degree"`
	EndDate     string `json:"endDate" bson:"endDate"`
}

type PortfolioItem struct {
	ID          string `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	URL         string `json:"url,omitempty" bson:"url,omitempty"`
	DocumentURL string `json:"documentUrl,omitempty" bson:"documentUrl,omitempty"`
}

// Metadata is derived state, never set directly by a client.
type Metadata struct {
	IsComplete    bool      `json:"isComplete" bson:"isComplete"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt" bson:"lastUpdatedAt"`
}

// Profile is the root aggregate. The document id is the upstream account id
// and is immutable once the document exists. Every mutation rewrites the
// whole document.
type Profile struct {
	UserID       string          `json:"userId" bson:"_id"`
	PersonalInfo *PersonalInfo   `json:"personalInfo,omitempty" bson:"personalInfo,omitempty"`
	Skills       []Skill         `json:"skills" bson:"skills"`
	Experience   []Experience    `json:"experience" bson:"experience"`
	Education    []Education     `json:"education" bson:"education"`
	Portfolio    []PortfolioItem `json:"portfolio" bson:"portfolio"`
	Metadata     Metadata        `json:"metadata" bson:"metadata"`
}

// IsComplete reports whether the profile satisfies the completeness rule:
// personal info with full name and professional title, at least one skill
// and at least one experience entry.
func (p *Profile) IsComplete() bool {
	hasPersonalInfo := p.PersonalInfo != nil &&
		p.PersonalInfo.FullName != "" &&
		p.PersonalInfo.ProfessionalTitle != ""

	return hasPersonalInfo && len(p.Skills) > 0 && len(p.Experience) > 0
}
