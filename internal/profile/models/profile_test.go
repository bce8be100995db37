package models

import "testing"

func completeProfile() *Profile {
	return &Profile{
		UserID: "acc-1",
		PersonalInfo: &PersonalInfo{
			FullName:          "Jane Doe",
			ProfessionalTitle: "Software Engineer",
		},
		Skills:     []Skill{{ID: "s1", Name: "Go", Level: SkillLevelExpert}},
		Experience: []Experience{{ID: "e1", Company: "ACME", Role: "Engineer", StartDate: "2020-01-01"}},
	}
}

func TestIsComplete(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Profile)
		want   bool
	}{
		{"all requirements met", func(p *Profile) {}, true},
		{"no personal info", func(p *Profile) { p.PersonalInfo = nil }, false},
		{"empty full name", func(p *Profile) { p.PersonalInfo.FullName = "" }, false},
		{"empty professional title", func(p *Profile) { p.PersonalInfo.ProfessionalTitle = "" }, false},
		{"no skills", func(p *Profile) { p.Skills = nil }, false},
		{"no experience", func(p *Profile) { p.Experience = nil }, false},
		{"education and portfolio irrelevant", func(p *Profile) {
			p.Education = []Education{{ID: "ed1", Institution: "MIT", Degree: "BSc", EndDate: "2015-06-30"}}
			p.Portfolio = []PortfolioItem{{ID: "p1", Title: "Side project"}}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := completeProfile()
			tt.mutate(p)
			if got := p.IsComplete(); got != tt.want {
				t.Errorf("IsComplete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseSkillLevel(t *testing.T) {
	for _, valid := range []string{"BASIC", "INTERMEDIATE", "ADVANCED", "EXPERT"} {
		if _, err := ParseSkillLevel(valid); err != nil {
			t.Errorf("ParseSkillLevel(%q) failed: %v", valid, err)
		}
	}

	for _, invalid := range []string{"", "basic", "GURU", "Expert"} {
		if _, err := ParseSkillLevel(invalid); err == nil {
			t.Errorf("ParseSkillLevel(%q) must fail", invalid)
		}
	}
}
