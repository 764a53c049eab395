// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-structurer/internal/dates"
	"github.com/jonathan/resume-structurer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPersonalInfo outputs the extracted contact details.
func (p *Printer) PrintPersonalInfo(info types.PersonalInfo) {
	var sb strings.Builder

	if info.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:     %s\n", info.Name))
	}
	if info.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", info.Email))
	}
	if info.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", info.Phone))
	}
	if info.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", info.Location))
	}
	if info.LinkedIn != "" {
		sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", info.LinkedIn))
	}
	if info.GitHub != "" {
		sb.WriteString(fmt.Sprintf("GitHub:   %s\n", info.GitHub))
	}

	content := strings.TrimSuffix(sb.String(), "\n")
	if content == "" {
		content = "(no contact details found)"
	}
	p.printBox("PERSONAL INFO", content)
}

// PrintExperience outputs the extracted work history with dates and
// description counts.
func (p *Printer) PrintExperience(experience []types.WorkExperience) {
	if len(experience) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extracted %d entries:\n\n", len(experience)))

	count := min(len(experience), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := experience[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, entry.Position))
		sb.WriteString(fmt.Sprintf("    %s", entry.Company))
		if entry.Website != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", entry.Website))
		}
		sb.WriteString("\n")
		if span := dates.Format(entry.DateRange()); span != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", span))
		}
		if len(entry.Description) > 0 {
			sb.WriteString(fmt.Sprintf("    %d description lines\n", len(entry.Description)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(experience) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(experience)-maxItemsToShow))
	}

	p.printBox("WORK EXPERIENCE", sb.String())
}

// PrintEducation outputs the extracted education entries.
func (p *Printer) PrintEducation(education []types.Education) {
	if len(education) == 0 {
		return
	}

	var sb strings.Builder
	for i, entry := range education {
		sb.WriteString(fmt.Sprintf("%s\n", entry.Institution))
		if entry.Degree != "" {
			line := "  " + entry.Degree
			if entry.Field != "" {
				line += " in " + entry.Field
			}
			sb.WriteString(line + "\n")
		}
		if entry.GPA != "" {
			sb.WriteString(fmt.Sprintf("  GPA: %s\n", entry.GPA))
		}
		if i < len(education)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("EDUCATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs the skills list grouped on comma-joined lines.
func (p *Printer) PrintSkills(skills []types.Skill) {
	if len(skills) == 0 {
		return
	}

	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d skills:\n\n", len(skills)))

	// Wrap names into lines that fit the box.
	line := ""
	for _, name := range names {
		if line != "" && len(line)+len(name)+2 > boxWidth-8 {
			sb.WriteString("  " + line + "\n")
			line = ""
		}
		if line != "" {
			line += ", "
		}
		line += name
	}
	if line != "" {
		sb.WriteString("  " + line + "\n")
	}

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTechnologies outputs the ranked technology list.
func (p *Printer) PrintTechnologies(technologies []string) {
	if len(technologies) == 0 {
		return
	}

	var sb strings.Builder
	for i, tech := range technologies {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, tech))
	}

	p.printBox("TOP TECHNOLOGIES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the synthesized professional summary.
func (p *Printer) PrintSummary(summary string) {
	if summary == "" {
		return
	}

	// Wrap the summary sentence to the box width.
	var sb strings.Builder
	line := ""
	for _, word := range strings.Fields(summary) {
		if line != "" && len(line)+len(word)+1 > boxWidth-6 {
			sb.WriteString(line + "\n")
			line = ""
		}
		if line != "" {
			line += " "
		}
		line += word
	}
	if line != "" {
		sb.WriteString(line)
	}

	p.printBox("SUMMARY", sb.String())
}
