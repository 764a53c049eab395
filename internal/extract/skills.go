package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-structurer/internal/classify"
	"github.com/jonathan/resume-structurer/internal/types"
)

// DefaultSkillCategory is assigned to every extracted skill.
const DefaultSkillCategory = "technical"

// skillDelimRe splits on the common skill delimiters: comma, semicolon,
// pipe, middle dot, and bullet glyphs.
var skillDelimRe = regexp.MustCompile(`[,;|•·▪‣]+`)

// labelPrefixRe strips a short leading label such as "Languages:" or
// "Skills:" from a line before tokenizing.
var labelPrefixRe = regexp.MustCompile(`^[A-Za-z][A-Za-z /&]{0,30}:\s*`)

// Skills tokenizes every non-empty line of the skills section. No
// deduplication or frequency analysis happens here; that belongs to the
// technology analyzer over work-experience text.
func Skills(lines []classify.TextLine) []types.Skill {
	var out []types.Skill
	for _, ln := range lines {
		text := labelPrefixRe.ReplaceAllString(stripBullet(ln.Text), "")
		for _, token := range skillDelimRe.Split(text, -1) {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			out = append(out, types.Skill{
				Name:     token,
				Category: DefaultSkillCategory,
			})
		}
	}
	return out
}
