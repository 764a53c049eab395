package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-structurer/internal/classify"
	"github.com/jonathan/resume-structurer/internal/dates"
	"github.com/jonathan/resume-structurer/internal/types"
)

// Education sections are short and ambiguous, so all lines are aggregated
// into one blob and scanned once rather than segmented into entries.

var institutionRe = regexp.MustCompile(`(?i)\b(university|college|institute|academy|polytechnic)\b`)

// trailingDateParenRe strips a trailing parenthetical that carries a year,
// e.g. "State University (2016-2020)".
var trailingDateParenRe = regexp.MustCompile(`\s*\([^)]*\d{4}[^)]*\)\s*$`)

// degreeForms maps degree-level patterns to canonical names, most specific
// first.
var degreeForms = []struct {
	re        *regexp.Regexp
	canonical string
}{
	{regexp.MustCompile(`(?i)\bbachelor(?:'?s)?(?:\s+degree)?\s+of\s+science\b`), "Bachelor of Science"},
	{regexp.MustCompile(`(?i)\bbachelor(?:'?s)?(?:\s+degree)?\s+of\s+arts\b`), "Bachelor of Arts"},
	{regexp.MustCompile(`(?i)\bbachelor(?:'?s)?\b`), "Bachelor's Degree"},
	{regexp.MustCompile(`(?i)\bmaster(?:'?s)?(?:\s+degree)?\s+of\s+science\b`), "Master of Science"},
	{regexp.MustCompile(`(?i)\bmaster(?:'?s)?\b`), "Master's Degree"},
	{regexp.MustCompile(`(?i)\bph\.?\s?d\b|\bdoctorate\b|\bdoctoral\b`), "PhD"},
	{regexp.MustCompile(`(?i)\bassociate\b`), "Associate's Degree"},
	{regexp.MustCompile(`(?i)\bdiploma\b`), "Diploma"},
	{regexp.MustCompile(`(?i)\bcertificate\b|\bcertification\b`), "Certificate"},
}

// fieldClauseRe captures an explicit "in <field>" clause after a degree word.
var fieldClauseRe = regexp.MustCompile(`(?i)\b(?:bachelor|master|ph\.?\s?d|doctorate|associate|diploma|certificate)[^\n]*?\bin\s+([A-Za-z][A-Za-z &/]{2,40})`)

// commonFields is the fallback scanned when no explicit field clause exists.
// Keys are lowercase match strings; values are display forms.
var commonFields = []struct{ match, display string }{
	{"computer science", "Computer Science"},
	{"software engineering", "Software Engineering"},
	{"information technology", "Information Technology"},
	{"computer engineering", "Computer Engineering"},
	{"electrical engineering", "Electrical Engineering"},
	{"mechanical engineering", "Mechanical Engineering"},
	{"data science", "Data Science"},
	{"mathematics", "Mathematics"},
	{"statistics", "Statistics"},
	{"physics", "Physics"},
	{"chemistry", "Chemistry"},
	{"biology", "Biology"},
	{"economics", "Economics"},
	{"business administration", "Business Administration"},
	{"accounting", "Accounting"},
	{"finance", "Finance"},
	{"marketing", "Marketing"},
	{"psychology", "Psychology"},
}

var (
	gpaRe        = regexp.MustCompile(`(?i)\bgpa[:\s]*([0-4](?:\.\d{1,2})?)`)
	honorsRe     = regexp.MustCompile(`(?i)\b(summa cum laude|magna cum laude|cum laude|dean'?s list|with distinction|with honors)\b`)
	courseworkRe = regexp.MustCompile(`(?i)\bcoursework[:\s]+(.+)`)
)

// Education aggregates the education-section lines into a single structured
// entry. An empty section, or one with no recognizable signal, yields nil.
func Education(lines []classify.TextLine) []types.Education {
	if len(lines) == 0 {
		return nil
	}

	var blob strings.Builder
	for _, ln := range lines {
		blob.WriteString(ln.Text)
		blob.WriteString("\n")
	}
	text := blob.String()

	var edu types.Education

	for _, ln := range lines {
		if institutionRe.MatchString(ln.Text) {
			edu.Institution = strings.TrimSpace(trailingDateParenRe.ReplaceAllString(ln.Text, ""))
			break
		}
	}

	for _, form := range degreeForms {
		if form.re.MatchString(text) {
			edu.Degree = form.canonical
			break
		}
	}

	if m := fieldClauseRe.FindStringSubmatch(text); m != nil {
		edu.Field = strings.TrimSpace(m[1])
	} else {
		lower := strings.ToLower(text)
		for _, f := range commonFields {
			if strings.Contains(lower, f.match) {
				edu.Field = f.display
				break
			}
		}
	}

	if dr, ok := dates.Parse(text); ok {
		edu.SetDateRange(dr)
	}

	if m := gpaRe.FindStringSubmatch(text); m != nil {
		edu.GPA = m[1]
	}
	for _, m := range honorsRe.FindAllStringSubmatch(text, -1) {
		edu.Honors = append(edu.Honors, m[1])
	}
	if m := courseworkRe.FindStringSubmatch(text); m != nil {
		for _, course := range strings.Split(m[1], ",") {
			if course = strings.TrimSpace(course); course != "" {
				edu.Coursework = append(edu.Coursework, course)
			}
		}
	}

	if edu.Institution == "" && edu.Degree == "" && edu.StartDate == "" {
		return nil
	}
	return []types.Education{edu}
}
