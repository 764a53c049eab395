package enrich

import (
	"strings"

	"github.com/jonathan/resume-structurer/internal/extract"
	"github.com/jonathan/resume-structurer/internal/types"
)

// knownCompanyWebsites maps normalized company names to canonical sites,
// covering employers common enough that a network lookup would be wasteful.
var knownCompanyWebsites = map[string]string{
	"google":     "https://www.google.com",
	"microsoft":  "https://www.microsoft.com",
	"amazon":     "https://www.amazon.com",
	"apple":      "https://www.apple.com",
	"meta":       "https://www.meta.com",
	"facebook":   "https://www.facebook.com",
	"netflix":    "https://www.netflix.com",
	"ibm":        "https://www.ibm.com",
	"oracle":     "https://www.oracle.com",
	"salesforce": "https://www.salesforce.com",
	"intel":      "https://www.intel.com",
	"nvidia":     "https://www.nvidia.com",
	"adobe":      "https://www.adobe.com",
	"stripe":     "https://www.stripe.com",
	"shopify":    "https://www.shopify.com",
	"airbnb":     "https://www.airbnb.com",
	"uber":       "https://www.uber.com",
	"spotify":    "https://www.spotify.com",
	"twilio":     "https://www.twilio.com",
	"atlassian":  "https://www.atlassian.com",
}

// knownInstitutionWebsites maps normalized institution names to canonical
// sites for widely attended universities.
var knownInstitutionWebsites = map[string]string{
	"massachusetts institute of technology": "https://www.mit.edu",
	"mit":                                   "https://www.mit.edu",
	"stanford university":                   "https://www.stanford.edu",
	"harvard university":                    "https://www.harvard.edu",
	"university of california berkeley":     "https://www.berkeley.edu",
	"carnegie mellon university":            "https://www.cmu.edu",
	"georgia institute of technology":       "https://www.gatech.edu",
	"university of washington":              "https://www.washington.edu",
	"university of michigan":                "https://www.umich.edu",
	"university of texas at austin":         "https://www.utexas.edu",
	"cornell university":                    "https://www.cornell.edu",
	"university of illinois":                "https://www.illinois.edu",
	"university of toronto":                 "https://www.utoronto.ca",
	"university of waterloo":                "https://www.uwaterloo.ca",
}

// Companies is the enrichment target for work-experience entries. Placeholder
// company names are skipped so they never reach the network.
func Companies() Target[types.WorkExperience] {
	return Target[types.WorkExperience]{
		Kind: "company",
		Key: func(w types.WorkExperience) string {
			if strings.EqualFold(w.Company, extract.UnknownCompany) {
				return ""
			}
			return w.Company
		},
		Apply: func(w *types.WorkExperience, info types.CompanyInfo) {
			if info.Website != "" {
				w.Website = info.Website
			}
		},
		Known: knownCompanyWebsites,
	}
}

// Institutions is the enrichment target for education entries.
func Institutions() Target[types.Education] {
	return Target[types.Education]{
		Kind: "institution",
		Key: func(e types.Education) string {
			return e.Institution
		},
		Apply: func(e *types.Education, info types.CompanyInfo) {
			if info.Website != "" {
				e.Website = info.Website
			}
		},
		Known: knownInstitutionWebsites,
	}
}
