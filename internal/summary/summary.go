// Package summary composes a natural-language professional summary from
// extracted experience, technologies, and education.
package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-structurer/internal/types"
)

// maxSummaryTechnologies is how many technologies the summary names.
const maxSummaryTechnologies = 5

// roleCascade is checked in order against the most recent position; the
// first keyword hit decides the role label.
var roleCascade = []struct {
	keyword string
	label   string
}{
	{"senior", "Senior Software Engineer"},
	{"lead", "Technical Lead"},
	{"architect", "Software Architect"},
	{"engineer", "Software Engineer"},
	{"developer", "Software Developer"},
}

const defaultRole = "Technology Professional"

// YearsOfExperience sums the month delta of every entry, using now for
// ongoing or open-ended entries, and floors the total to whole years.
func YearsOfExperience(experience []types.WorkExperience, now time.Time) int {
	months := 0
	for _, exp := range experience {
		start, ok := parseDate(exp.StartDate)
		if !ok {
			continue
		}
		end := now
		if !exp.Current {
			if parsed, ok := parseDate(exp.EndDate); ok {
				end = parsed
			}
		}
		if end.Before(start) {
			continue
		}
		months += (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	}
	return months / 12
}

// PrimaryRole derives a role label from the most recent entry's position.
// Entries are assumed reverse-chronological, so the first one is used.
func PrimaryRole(experience []types.WorkExperience) string {
	if len(experience) == 0 {
		return defaultRole
	}
	position := strings.ToLower(experience[0].Position)
	for _, r := range roleCascade {
		if strings.Contains(position, r.keyword) {
			return r.label
		}
	}
	return defaultRole
}

// Compose builds the professional summary string. Zero years and missing
// technologies degrade gracefully rather than producing awkward text.
func Compose(experience []types.WorkExperience, technologies []string, now time.Time) string {
	role := PrimaryRole(experience)
	years := YearsOfExperience(experience, now)

	var sb strings.Builder
	sb.WriteString(role)
	if years > 0 {
		sb.WriteString(fmt.Sprintf(" with %d+ years of experience", years))
	}

	if len(technologies) > 0 {
		top := technologies
		if len(top) > maxSummaryTechnologies {
			top = top[:maxSummaryTechnologies]
		}
		sb.WriteString(" specializing in ")
		sb.WriteString(strings.Join(top, ", "))
		sb.WriteString(" and other technologies")
	}

	sb.WriteString(". Proven track record in full-stack development, system architecture, and delivering scalable solutions.")
	return sb.String()
}

// parseDate accepts the canonical forms produced by the date parser: a full
// month name with year, or a bare year.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("January 2006", s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
