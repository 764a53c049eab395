package classify

import (
	"regexp"

	"github.com/jonathan/resume-structurer/internal/dates"
)

// Scores holds the four independent per-line likelihoods, each in [0, 1].
// The axes are not mutually exclusive; a line may score high on several.
// Ambiguity is resolved by the calling strategy, not here.
type Scores struct {
	JobTitle    float64
	Company     float64
	Date        float64
	Description float64
}

// Weights for the pattern rules. Each axis sums its contributions and is
// capped at 1.0.
const (
	dateMatchWeight = 0.9

	roleNounWeight     = 0.6
	parenTechWeight    = 0.4
	titleLengthWeight  = 0.2
	minTitleLineLength = 10
	maxTitleLineLength = 80

	orgSuffixWeight      = 0.7
	companyLengthWeight  = 0.3
	minCompanyLineLength = 3
	maxCompanyLineLength = 50

	bulletWeight         = 0.9
	longLineWeight       = 0.4
	minDescriptionLength = 30
)

var (
	roleNounRe = regexp.MustCompile(`(?i)\b(engineer|developer|programmer|manager|director|analyst|architect|consultant|designer|scientist|administrator|specialist|lead|senior|principal|intern|officer|coordinator)\b`)

	// A parenthetical list with at least one comma reads like a technology
	// list attached to a title: "Backend Engineer (Go, Postgres)".
	parenTechRe = regexp.MustCompile(`\([^)]+,[^)]+\)`)

	orgSuffixRe = regexp.MustCompile(`(?i)\b(inc|llc|corp|corporation|ltd|limited|co|company|systems|solutions|technologies|labs|university|college|institute|bank|group|agency|consulting|software|partners|studio)\b\.?`)

	bulletRe = regexp.MustCompile(`^[-*•·▪◦‣]`)
)

// ScoreLine evaluates a single line against the weighted pattern rules of
// all four axes. Pure function, no side effects.
func ScoreLine(line TextLine) Scores {
	text := line.Text
	n := len(text)

	var s Scores

	if dates.HasDatePattern(text) {
		s.Date = dateMatchWeight
	}

	hasRoleNoun := roleNounRe.MatchString(text)
	if hasRoleNoun {
		s.JobTitle += roleNounWeight
	}
	if parenTechRe.MatchString(text) {
		s.JobTitle += parenTechWeight
	}
	if n >= minTitleLineLength && n <= maxTitleLineLength {
		s.JobTitle += titleLengthWeight
	}

	if orgSuffixRe.MatchString(text) {
		s.Company += orgSuffixWeight
	}
	if n >= minCompanyLineLength && n <= maxCompanyLineLength && !hasRoleNoun {
		s.Company += companyLengthWeight
	}

	if bulletRe.MatchString(text) {
		s.Description += bulletWeight
	}
	if n > minDescriptionLength {
		s.Description += longLineWeight
	}

	s.JobTitle = cap1(s.JobTitle)
	s.Company = cap1(s.Company)
	s.Date = cap1(s.Date)
	s.Description = cap1(s.Description)
	return s
}

func cap1(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	return v
}
