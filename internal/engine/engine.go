// Package engine provides the high-level orchestration for the resume
// structuring process: classify lines, segment sections, extract entities,
// analyze technologies, synthesize a summary, and optionally enrich
// organizations with websites.
package engine

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-structurer/internal/analysis"
	"github.com/jonathan/resume-structurer/internal/classify"
	"github.com/jonathan/resume-structurer/internal/enrich"
	"github.com/jonathan/resume-structurer/internal/extract"
	"github.com/jonathan/resume-structurer/internal/observability"
	"github.com/jonathan/resume-structurer/internal/personal"
	"github.com/jonathan/resume-structurer/internal/summary"
	"github.com/jonathan/resume-structurer/internal/types"
)

// Options holds configuration for a structuring run.
type Options struct {
	// Enrich enables website enrichment for companies and institutions.
	Enrich bool
	// Lookup is the network collaborator used when Enrich is set. A nil
	// Lookup limits enrichment to the known-mapping tables.
	Lookup enrich.Lookup
	// Verbose prints formatted boxes for each stage to Out.
	Verbose bool
	// Out receives verbose output. Nil means os.Stdout.
	Out io.Writer
	// Now overrides the clock used for experience-span arithmetic. Nil
	// means time.Now.
	Now func() time.Time
}

// DefaultOptions returns the default structuring configuration: no
// enrichment, quiet output.
func DefaultOptions() *Options {
	return &Options{}
}

// Engine turns raw resume text into a structured record. It is safe for
// concurrent use; the enrichment cache is shared across runs.
type Engine struct {
	opts     *Options
	pipeline *enrich.Pipeline
	printer  *observability.Printer
}

// New creates an Engine with the given options.
func New(opts *Options) *Engine {
	if opts == nil {
		opts = DefaultOptions()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &Engine{
		opts:     opts,
		pipeline: enrich.New(opts.Lookup),
		printer:  observability.NewPrinter(out),
	}
}

// Structure parses raw resume text into a ParsedResume. Empty or
// whitespace-only input yields a record with empty collections rather than
// an error; extraction stages never fail the run.
func (e *Engine) Structure(ctx context.Context, rawText string) (*types.ParsedResume, error) {
	now := time.Now()
	if e.opts.Now != nil {
		now = e.opts.Now()
	}

	resume := &types.ParsedResume{
		ID:           uuid.New(),
		Experience:   []types.WorkExperience{},
		Education:    []types.Education{},
		Skills:       []types.Skill{},
		Technologies: []string{},
		ParsedAt:     now,
	}

	lines := classify.Lines(rawText)
	if len(lines) == 0 {
		return resume, nil
	}

	resume.PersonalInfo = personal.Extract(lines)
	if e.opts.Verbose {
		e.printer.PrintPersonalInfo(resume.PersonalInfo)
	}

	experienceLines := classify.ExtractSection(lines, classify.SectionExperience)
	educationLines := classify.ExtractSection(lines, classify.SectionEducation)
	skillLines := classify.ExtractSection(lines, classify.SectionSkills)

	experience := extract.Experience(experienceLines)
	education := extract.Education(educationLines)
	skills := extract.Skills(skillLines)

	if e.opts.Enrich {
		// Companies and institutions enrich concurrently; each branch
		// degrades independently on lookup failure.
		var g errgroup.Group
		g.Go(func() error {
			experience = enrich.EnrichAll(ctx, e.pipeline, enrich.Companies(), experience)
			return nil
		})
		g.Go(func() error {
			education = enrich.EnrichAll(ctx, e.pipeline, enrich.Institutions(), education)
			return nil
		})
		_ = g.Wait()
	}

	if experience != nil {
		resume.Experience = experience
	}
	if education != nil {
		resume.Education = education
	}
	if skills != nil {
		resume.Skills = skills
	}

	if technologies := analysis.TopTechnologies(resume.Experience); technologies != nil {
		resume.Technologies = technologies
	}
	resume.Summary = summary.Compose(resume.Experience, resume.Technologies, now)

	if e.opts.Verbose {
		e.printer.PrintExperience(resume.Experience)
		e.printer.PrintEducation(resume.Education)
		e.printer.PrintSkills(resume.Skills)
		e.printer.PrintTechnologies(resume.Technologies)
		e.printer.PrintSummary(resume.Summary)
	}

	return resume, nil
}
