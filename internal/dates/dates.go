// Package dates extracts and canonicalizes date ranges from resume text fragments.
package dates

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-structurer/internal/types"
)

// canonicalMonths maps a three-letter month prefix to its full name.
var canonicalMonths = map[string]string{
	"jan": "January",
	"feb": "February",
	"mar": "March",
	"apr": "April",
	"may": "May",
	"jun": "June",
	"jul": "July",
	"aug": "August",
	"sep": "September",
	"oct": "October",
	"nov": "November",
	"dec": "December",
}

var (
	monthYearRe = regexp.MustCompile(`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?,?\s+(\d{4})\b`)

	// yearRangeRe covers the bare "2020-2023" and "2019 to Present" forms used
	// when no month names appear. Separators include hyphen variants, the
	// en dash, em dash, and minus sign.
	yearRangeRe = regexp.MustCompile(`(?i)\b((?:19|20)\d{2})\s*(?:[-–—−]|to)\s*((?:19|20)\d{2}|present|current)\b`)

	bareYearRe = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)

	presentRe = regexp.MustCompile(`(?i)\b(present|current|now|ongoing)\b`)
)

// Parse scans a text fragment for a date range and returns its canonical form.
// The second return value is false when no date pattern is found. Parse is
// idempotent: re-parsing Format's output yields an equal DateRange.
func Parse(text string) (types.DateRange, bool) {
	var dr types.DateRange

	matches := monthYearRe.FindAllStringSubmatch(text, -1)
	if len(matches) > 0 {
		dr.StartDate = canonical(matches[0][1], matches[0][2])

		loc := monthYearRe.FindStringIndex(text)
		rest := text[loc[1]:]
		switch {
		case presentRe.MatchString(rest):
			dr.Current = true
		case len(matches) > 1:
			dr.EndDate = canonical(matches[1][1], matches[1][2])
		}
		return dr, true
	}

	if m := yearRangeRe.FindStringSubmatch(text); m != nil {
		dr.StartDate = m[1]
		if presentRe.MatchString(m[2]) {
			dr.Current = true
		} else {
			dr.EndDate = m[2]
		}
		return dr, true
	}

	if m := bareYearRe.FindStringSubmatch(text); m != nil {
		dr.StartDate = m[1]
		if presentRe.MatchString(text) {
			dr.Current = true
		}
		return dr, true
	}

	return dr, false
}

// HasDatePattern reports whether the fragment contains an explicit
// month-year or year-range pattern. Unlike Parse it ignores bare single
// years, which carry too little signal for line classification.
func HasDatePattern(text string) bool {
	return monthYearRe.MatchString(text) || yearRangeRe.MatchString(text)
}

// Format renders a DateRange back into its canonical textual form.
func Format(dr types.DateRange) string {
	switch {
	case dr.StartDate == "":
		return ""
	case dr.Current:
		return dr.StartDate + " - Present"
	case dr.EndDate != "":
		return dr.StartDate + " - " + dr.EndDate
	default:
		return dr.StartDate
	}
}

// canonical expands a month name or abbreviation and joins it with the year.
func canonical(month, year string) string {
	key := strings.ToLower(month)
	if len(key) > 3 {
		key = key[:3]
	}
	full, ok := canonicalMonths[key]
	if !ok {
		return year
	}
	return full + " " + year
}
