// Package types provides type definitions for structured resume data used throughout the resume-structurer system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PersonalInfo holds contact details extracted from the top of a resume.
// Any field may be empty; extraction is best-effort.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// DateRange is a canonical start/end date pair. Dates are either a full
// month name plus a 4-digit year ("January 2020") or a bare year ("2020").
// If Current is true, EndDate is always empty.
type DateRange struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Current   bool   `json:"current,omitempty"`
}

// IsZero reports whether no part of the range is populated.
func (d DateRange) IsZero() bool {
	return d.StartDate == "" && d.EndDate == "" && !d.Current
}

// WorkExperience represents one position extracted from the experience section.
type WorkExperience struct {
	Company      string   `json:"company" validate:"required"`
	Position     string   `json:"position" validate:"required"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Current      bool     `json:"current,omitempty"`
	Description  []string `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Website      string   `json:"website,omitempty"`
}

// SetDateRange copies a parsed date range onto the entry.
func (w *WorkExperience) SetDateRange(dr DateRange) {
	w.StartDate = dr.StartDate
	w.EndDate = dr.EndDate
	w.Current = dr.Current
}

// DateRange returns the entry's dates as a DateRange value.
func (w *WorkExperience) DateRange() DateRange {
	return DateRange{StartDate: w.StartDate, EndDate: w.EndDate, Current: w.Current}
}

// IsValid reports whether the entry carries enough signal to keep:
// it must name either a company or a position, and it must have either
// a start date or at least one description line. Placeholder names are
// applied later, after strategy selection, so an entry missing one of
// company/position can still be valid here.
func (w *WorkExperience) IsValid() bool {
	if w.Company == "" && w.Position == "" {
		return false
	}
	return w.StartDate != "" || len(w.Description) > 0
}

// Education represents one education entry.
type Education struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree,omitempty"`
	Field       string   `json:"field,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Current     bool     `json:"current,omitempty"`
	GPA         string   `json:"gpa,omitempty"`
	Honors      []string `json:"honors,omitempty"`
	Coursework  []string `json:"coursework,omitempty"`
	Website     string   `json:"website,omitempty"`
}

// SetDateRange copies a parsed date range onto the entry.
func (e *Education) SetDateRange(dr DateRange) {
	e.StartDate = dr.StartDate
	e.EndDate = dr.EndDate
	e.Current = dr.Current
}

// Skill represents a single skill token from the skills section.
type Skill struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category"`
	Level    string `json:"level,omitempty"`
}

// CompanyInfo is the result of an enrichment lookup for a named organization.
// Website and Domain are empty when no canonical site could be resolved.
type CompanyInfo struct {
	Name    string `json:"name"`
	Website string `json:"website,omitempty"`
	Domain  string `json:"domain,omitempty"`
}

// ParsedResume is the aggregate record produced by one parse invocation.
// It is constructed once by the engine and treated as immutable afterwards.
type ParsedResume struct {
	ID           uuid.UUID        `json:"id"`
	PersonalInfo PersonalInfo     `json:"personal_info"`
	Summary      string           `json:"summary,omitempty"`
	Experience   []WorkExperience `json:"experience" validate:"dive"`
	Education    []Education      `json:"education"`
	Skills       []Skill          `json:"skills" validate:"dive"`
	Technologies []string         `json:"technologies,omitempty"`
	ParsedAt     time.Time        `json:"parsed_at"`
}

// Validate validates the aggregate using the validator. Every surviving
// experience entry must name a company and a position.
func (r *ParsedResume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
