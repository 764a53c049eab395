// Package analysis counts known technology tokens across work-experience text.
package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-structurer/internal/types"
)

// maxTechnologies is the number of tokens returned by TopTechnologies.
const maxTechnologies = 8

// Vocabulary is the fixed set of recognized technology tokens. Order matters:
// ties in match count break by first appearance here. Several tokens carry
// embedded punctuation (C#, C++, Node.js, T-SQL) and must never be credited
// from their bare prefixes.
var Vocabulary = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C#", "C++", "Go", "Rust",
	"Ruby", "PHP", "Swift", "Kotlin", "Scala", "T-SQL", "SQL", "MySQL",
	"PostgreSQL", "MongoDB", "Redis", "Elasticsearch", "Node.js", "React",
	"Angular", "Vue.js", "Next.js", "Express", "Django", "Flask", "Spring",
	"ASP.NET", ".NET", "Rails", "GraphQL", "gRPC", "REST", "Kafka",
	"RabbitMQ", "Docker", "Kubernetes", "Terraform", "Jenkins", "AWS",
	"Azure", "GCP", "Linux", "Git", "CI/CD", "HTML", "CSS", "Sass", "jQuery",
}

// boundary characters that may not sit directly against a token. The set
// includes the punctuation that appears inside vocabulary tokens, so "T-SQL"
// never credits "SQL" and "C++11" never credits "C++".
const tokenBoundary = `[^A-Za-z0-9+#.-]`

// rule is a boundary-aware matcher for one vocabulary token.
type rule struct {
	token string
	re    *regexp.Regexp
}

var rules = buildRules(Vocabulary)

func buildRules(vocab []string) []rule {
	out := make([]rule, 0, len(vocab))
	for _, token := range vocab {
		expr := `(?i)(?:^|` + tokenBoundary + `)` + regexp.QuoteMeta(token) + `(?:$|` + tokenBoundary + `)`
		out = append(out, rule{token: token, re: regexp.MustCompile(expr)})
	}
	return out
}

// count tallies non-overlapping matches of the rule in text. After each match
// the scan resumes at the trailing boundary character, so adjacent
// occurrences separated by a single delimiter are all counted.
func (r rule) count(text string) int {
	n := 0
	i := 0
	for i < len(text) {
		loc := r.re.FindStringIndex(text[i:])
		if loc == nil {
			break
		}
		n++
		next := i + loc[1]
		if next < len(text) {
			next-- // trailing boundary may open the next match
		}
		if next <= i {
			next = i + 1
		}
		i = next
	}
	return n
}

// TopTechnologies scans every position title and description line of the
// candidate list and returns up to 8 vocabulary tokens ordered by descending
// total match count. Ties preserve vocabulary order.
func TopTechnologies(experience []types.WorkExperience) []string {
	var sb strings.Builder
	for _, exp := range experience {
		sb.WriteString(exp.Position)
		sb.WriteString("\n")
		for _, line := range exp.Description {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return topTokens(sb.String())
}

func topTokens(corpus string) []string {
	type tally struct {
		token string
		count int
	}

	tallies := make([]tally, 0, len(rules))
	for _, r := range rules {
		if c := r.count(corpus); c > 0 {
			tallies = append(tallies, tally{token: r.token, count: c})
		}
	}

	// Stable sort keeps vocabulary order for equal counts.
	sort.SliceStable(tallies, func(i, j int) bool {
		return tallies[i].count > tallies[j].count
	})

	n := len(tallies)
	if n > maxTechnologies {
		n = maxTechnologies
	}
	out := make([]string, 0, n)
	for _, t := range tallies[:n] {
		out = append(out, t.token)
	}
	return out
}
