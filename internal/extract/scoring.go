package extract

import "github.com/jonathan/resume-structurer/internal/types"

// Point values for scoring one strategy's candidate list.
const (
	positionPoints       = 20
	companyPoints        = 20
	startDatePoints      = 15
	endDatePoints        = 10
	descriptionPoints    = 20
	richDescriptionBonus = 10
	lengthBonus          = 5

	minPlausiblePositionLen = 5
	maxPlausiblePositionLen = 60
	minPlausibleCompanyLen  = 2
	maxPlausibleCompanyLen  = 50
)

// scoreCandidates sums field-presence points and plausibility bonuses over a
// strategy's candidates. Strategies only emit valid candidates, so invalid
// ones never contribute here.
func scoreCandidates(cands []types.WorkExperience) int {
	total := 0
	for _, c := range cands {
		if c.Position != "" {
			total += positionPoints
		}
		if c.Company != "" {
			total += companyPoints
		}
		if c.StartDate != "" {
			total += startDatePoints
		}
		if c.EndDate != "" || c.Current {
			total += endDatePoints
		}
		if len(c.Description) > 0 {
			total += descriptionPoints
		}
		if len(c.Description) > 2 {
			total += richDescriptionBonus
		}
		if inRange(len(c.Position), minPlausiblePositionLen, maxPlausiblePositionLen) {
			total += lengthBonus
		}
		if inRange(len(c.Company), minPlausibleCompanyLen, maxPlausibleCompanyLen) {
			total += lengthBonus
		}
	}
	return total
}

func inRange(n, lo, hi int) bool {
	return n >= lo && n <= hi
}
