// Package extract turns section-scoped line streams into structured resume
// entries. Work experience runs through three independent strategies; the
// best-scoring result wins.
package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-structurer/internal/classify"
	"github.com/jonathan/resume-structurer/internal/dates"
	"github.com/jonathan/resume-structurer/internal/types"
)

// Placeholders applied to surviving candidates after strategy selection.
// They are never present during scoring, so they cannot inflate a strategy.
const (
	UnknownCompany  = "Unknown Company"
	UnknownPosition = "Unknown Position"
)

// jobTitleThreshold is the classifier score above which a line opens a new
// candidate in the structured strategy.
const jobTitleThreshold = 0.7

// axisThreshold is the minimum score for the structured strategy to accept
// a line as the expected date or company field.
const axisThreshold = 0.5

// StrategyResult pairs one strategy's candidates with its quality score.
type StrategyResult struct {
	Strategy   string
	Candidates []types.WorkExperience
	Score      int
}

type strategy struct {
	name string
	run  func(lines []classify.TextLine) []types.WorkExperience
}

// Evaluation order doubles as the tie-break: on equal scores the earlier
// strategy wins.
func strategies() []strategy {
	return []strategy{
		{name: "structured", run: extractStructured},
		{name: "flexible", run: extractFlexible},
		{name: "block", run: extractBlocks},
	}
}

// Experience runs every strategy over the experience-section lines, selects
// the highest-scoring result, and applies the placeholder cleanup pass.
func Experience(lines []classify.TextLine) []types.WorkExperience {
	if len(lines) == 0 {
		return nil
	}

	var best StrategyResult
	for _, s := range strategies() {
		res := StrategyResult{
			Strategy:   s.name,
			Candidates: runStrategy(s.run, lines),
		}
		res.Score = scoreCandidates(res.Candidates)
		if res.Score > best.Score {
			best = res
		}
	}

	out := best.Candidates
	for i := range out {
		if out[i].Company == "" {
			out[i].Company = UnknownCompany
		}
		if out[i].Position == "" {
			out[i].Position = UnknownPosition
		}
	}
	return out
}

// runStrategy isolates a single strategy: a panic inside it is treated as a
// zero-candidate result, never escalated.
func runStrategy(fn func([]classify.TextLine) []types.WorkExperience, lines []classify.TextLine) (out []types.WorkExperience) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
		}
	}()
	return fn(lines)
}

// extractStructured assumes the fixed cadence job title, date, company, then
// description lines, advancing an expectation flag as each field is filled.
func extractStructured(lines []classify.TextLine) []types.WorkExperience {
	type expectation int
	const (
		expectNothing expectation = iota
		expectDate
		expectCompany
	)

	var out []types.WorkExperience
	var cur *types.WorkExperience
	expect := expectNothing

	flush := func() {
		if cur != nil && cur.IsValid() {
			out = append(out, *cur)
		}
		cur = nil
	}

	for _, ln := range lines {
		s := classify.ScoreLine(ln)

		if s.JobTitle > jobTitleThreshold {
			flush()
			cur = &types.WorkExperience{Position: ln.Text}
			expect = expectDate
			continue
		}
		if cur == nil {
			continue
		}

		switch {
		case expect == expectDate && s.Date >= axisThreshold:
			if dr, ok := dates.Parse(ln.Text); ok {
				cur.SetDateRange(dr)
			}
			expect = expectCompany
		case expect == expectCompany && s.Company >= axisThreshold:
			cur.Company = ln.Text
			expect = expectNothing
		case s.Description > 0:
			cur.Description = append(cur.Description, stripBullet(ln.Text))
		}
	}
	flush()
	return out
}

// inlineExperienceRe recognizes the compressed one-line form
// "<position> at <company> (<date range>)".
var inlineExperienceRe = regexp.MustCompile(`^(.{2,60}?)\s+(?:at|@)\s+(.{2,60}?)\s*\((.+)\)\s*$`)

// extractFlexible makes no ordering assumption: each line goes to whichever
// axis scores highest, with ties favoring job title (new entry) over
// company/date (field fill) over description (append).
func extractFlexible(lines []classify.TextLine) []types.WorkExperience {
	var out []types.WorkExperience
	var cur *types.WorkExperience

	flush := func() {
		if cur != nil && cur.IsValid() {
			out = append(out, *cur)
		}
		cur = nil
	}
	ensure := func() {
		if cur == nil {
			cur = &types.WorkExperience{}
		}
	}

	for _, ln := range lines {
		if m := inlineExperienceRe.FindStringSubmatch(ln.Text); m != nil {
			flush()
			cur = &types.WorkExperience{
				Position: strings.TrimSpace(m[1]),
				Company:  strings.TrimSpace(m[2]),
			}
			if dr, ok := dates.Parse(m[3]); ok {
				cur.SetDateRange(dr)
			}
			continue
		}

		s := classify.ScoreLine(ln)
		best := maxScore(s)
		if best == 0 {
			continue
		}

		switch {
		case s.JobTitle == best:
			flush()
			cur = &types.WorkExperience{Position: ln.Text}
		case s.Company == best:
			ensure()
			if cur.Company == "" {
				cur.Company = ln.Text
			} else {
				cur.Description = append(cur.Description, stripBullet(ln.Text))
			}
		case s.Date == best:
			ensure()
			if cur.StartDate == "" {
				if dr, ok := dates.Parse(ln.Text); ok {
					cur.SetDateRange(dr)
				}
			}
		default:
			ensure()
			cur.Description = append(cur.Description, stripBullet(ln.Text))
		}
	}
	flush()
	return out
}

// extractBlocks is the most permissive fallback: maximal runs of non-blank
// lines form blocks, dates are pulled from the whole block first, and the
// remaining lines are assigned by classifier score.
func extractBlocks(lines []classify.TextLine) []types.WorkExperience {
	var out []types.WorkExperience
	for _, block := range groupBlocks(lines) {
		if cand := extractFromBlock(block); cand.IsValid() {
			out = append(out, cand)
		}
	}
	return out
}

// groupBlocks splits on gaps in the original line positions, which mark
// blank lines in the source document.
func groupBlocks(lines []classify.TextLine) [][]classify.TextLine {
	var blocks [][]classify.TextLine
	var cur []classify.TextLine

	for i, ln := range lines {
		if i > 0 && ln.Pos > lines[i-1].Pos+1 && len(cur) > 0 {
			blocks = append(blocks, cur)
			cur = nil
		}
		cur = append(cur, ln)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

func extractFromBlock(block []classify.TextLine) types.WorkExperience {
	var cand types.WorkExperience

	var blob strings.Builder
	for _, ln := range block {
		blob.WriteString(ln.Text)
		blob.WriteString("\n")
	}
	if dr, ok := dates.Parse(blob.String()); ok {
		cand.SetDateRange(dr)
	}

	for _, ln := range block {
		s := classify.ScoreLine(ln)
		// Date-dominant lines were already consumed by the block-wide parse.
		if s.Date > s.JobTitle && s.Date > s.Company && s.Date > s.Description {
			continue
		}
		switch {
		case cand.Position == "" && s.JobTitle > 0 && s.JobTitle >= s.Company && s.JobTitle >= s.Description:
			cand.Position = ln.Text
		case cand.Company == "" && s.Company > 0 && s.Company >= s.Description:
			cand.Company = ln.Text
		case s.Description > 0:
			cand.Description = append(cand.Description, stripBullet(ln.Text))
		}
	}
	return cand
}

var bulletPrefixRe = regexp.MustCompile(`^[-*•·▪◦‣]+\s*`)

func stripBullet(text string) string {
	return strings.TrimSpace(bulletPrefixRe.ReplaceAllString(text, ""))
}

func maxScore(s classify.Scores) float64 {
	best := s.JobTitle
	for _, v := range []float64{s.Company, s.Date, s.Description} {
		if v > best {
			best = v
		}
	}
	return best
}
