package models

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

func isValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func checkLength(errs []ValidationError, field, value string, min, max int) []ValidationError {
	if value == "" {
		return append(errs, ValidationError{Field: field, Message: field + " is required"})
	}
	if len(value) < min || len(value) > max {
		return append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be between %d and %d characters", field, min, max),
		})
	}
	return errs
}

func checkMaxLength(errs []ValidationError, field, value string, max int) []ValidationError {
	if len(value) > max {
		return append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must not exceed %d characters", field, max),
		})
	}
	return errs
}

// Validate checks the personal-info payload before the mutation path runs.
func (r *PersonalInfoRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = checkLength(errs, "fullName", r.FullName, 3, 150)
	errs = checkLength(errs, "professionalTitle", r.ProfessionalTitle, 3, 200)
	errs = checkMaxLength(errs, "summary", r.Summary, 2000)
	if r.Location != nil {
		errs = checkLength(errs, "location.city", r.Location.City, 2, 100)
		errs = checkLength(errs, "location.country", r.Location.Country, 2, 100)
	}
	return errs
}

func (r *SkillRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = checkLength(errs, "name", r.Name, 2, 100)
	if r.Level == "" {
		errs = append(errs, ValidationError{Field: "level", Message: "level is required"})
	} else if _, err := ParseSkillLevel(r.Level); err != nil {
		errs = append(errs, ValidationError{
			Field:   "level",
			Message: "level must be one of BASIC, INTERMEDIATE, ADVANCED, EXPERT",
		})
	}
	return errs
}

func (r *ExperienceRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = checkLength(errs, "company", r.Company, 2, 200)
	errs = checkLength(errs, "role", r.Role, 2, 200)
	if r.StartDate == "" {
		errs = append(errs, ValidationError{Field: "startDate", Message: "startDate is required"})
	} else if !isValidDate(r.StartDate) {
		errs = append(errs, ValidationError{Field: "startDate", Message: "startDate must be a date in YYYY-MM-DD format"})
	}
	if r.EndDate != "" && !isValidDate(r.EndDate) {
		errs = append(errs, ValidationError{Field: "endDate", Message: "endDate must be a date in YYYY-MM-DD format"})
	}
	errs = checkMaxLength(errs, "description", r.Description, 2000)
	return errs
}

func (r *EducationRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = checkLength(errs, "institution", r.Institution, 3, 200)
	errs = checkLength(errs, "degree", r.Degree, 3, 200)
	if r.EndDate == "" {
		errs = append(errs, ValidationError{Field: "endDate", Message: "endDate is required"})
	} else if !isValidDate(r.EndDate) {
		errs = append(errs, ValidationError{Field: "endDate", Message: "endDate must be a date in YYYY-MM-DD format"})
	}
	return errs
}

func (r *PortfolioRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = checkLength(errs, "title", r.Title, 3, 200)
	errs = checkMaxLength(errs, "description", r.Description, 2000)
	return errs
}
