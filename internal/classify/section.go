package classify

import "strings"

// Section identifies one logical resume section.
type Section int

const (
	SectionExperience Section = iota
	SectionEducation
	SectionSkills
)

// String returns the section's lowercase name.
func (s Section) String() string {
	switch s {
	case SectionExperience:
		return "experience"
	case SectionEducation:
		return "education"
	case SectionSkills:
		return "skills"
	default:
		return "unknown"
	}
}

// sectionRule configures the segmenter state machine for one section kind.
// A heading line must contain one of the keywords AND one of the suffixes
// (the sets may overlap, so a bare "EXPERIENCE" heading qualifies). A line
// containing any stop keyword while in-section terminates it.
type sectionRule struct {
	keywords []string
	suffixes []string
	stops    []string
}

var sectionRules = map[Section]sectionRule{
	SectionExperience: {
		keywords: []string{"experience", "employment", "work history", "career history"},
		suffixes: []string{"experience", "history", "employment"},
		stops:    []string{"education", "skills", "projects", "certifications", "awards", "publications", "languages", "interests"},
	},
	SectionEducation: {
		keywords: []string{"education", "academic"},
		suffixes: []string{"education", "academic", "qualifications", "studies"},
		stops:    []string{"experience", "employment", "skills", "projects", "certifications", "awards", "publications", "interests"},
	},
	SectionSkills: {
		keywords: []string{"skills", "technical skills", "competencies", "technologies"},
		suffixes: []string{"skills", "competencies", "technologies", "proficiencies"},
		stops:    []string{"experience", "employment", "education", "projects", "certifications", "awards", "publications", "interests"},
	},
}

// segmenter states
type segState int

const (
	stateSearching segState = iota
	stateInSection
	stateTerminated
)

// ExtractSection runs the segmenter state machine over the line stream and
// returns the ordered lines observed inside the requested section. The
// heading line itself is not included. It does not classify or interpret
// the yielded lines.
func ExtractSection(lines []TextLine, sec Section) []TextLine {
	rule := sectionRules[sec]

	var out []TextLine
	state := stateSearching

	for _, line := range lines {
		lower := strings.ToLower(line.Text)

		switch state {
		case stateSearching:
			if containsAny(lower, rule.keywords) && containsAny(lower, rule.suffixes) {
				state = stateInSection
			}
		case stateInSection:
			if containsAny(lower, rule.stops) {
				state = stateTerminated
				break
			}
			out = append(out, line)
		}

		if state == stateTerminated {
			break
		}
	}

	return out
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
