// Package personal extracts contact details from the top of a resume.
// Extraction is best-effort: any field may come back empty.
package personal

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-structurer/internal/classify"
	"github.com/jonathan/resume-structurer/internal/types"
)

// maxHeaderLines bounds the name search; contact blocks sit at the top.
const maxHeaderLines = 5

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`(\+?1[-.\s]?)?\(?(\d{3})\)?[-.\s]?(\d{3})[-.\s]?(\d{4})\b`)
	locationRe = regexp.MustCompile(`\b([A-Z][a-zA-Z .]+),\s*([A-Z]{2})\b`)
	linkedinRe = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_-]+`)
	githubRe   = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_-]+`)
	nameWordRe = regexp.MustCompile(`^[A-Za-z][A-Za-z'.-]*$`)
)

// Extract scans the full text for contact patterns and the leading lines for
// a human name.
func Extract(lines []classify.TextLine) types.PersonalInfo {
	var info types.PersonalInfo

	var all strings.Builder
	for _, ln := range lines {
		all.WriteString(ln.Text)
		all.WriteString("\n")
	}
	text := all.String()

	info.Email = emailRe.FindString(text)
	if m := phoneRe.FindString(text); m != "" {
		info.Phone = normalizePhone(m)
	}
	if m := locationRe.FindStringSubmatch(text); m != nil {
		info.Location = m[1] + ", " + m[2]
	}
	info.LinkedIn = linkedinRe.FindString(text)
	info.GitHub = githubRe.FindString(text)

	info.Name = findName(lines)
	return info
}

// findName looks at the first few lines for two to four capitalized words
// that are not a contact detail or a section heading.
func findName(lines []classify.TextLine) string {
	for i, ln := range lines {
		if i >= maxHeaderLines {
			break
		}
		text := ln.Text
		if strings.Contains(text, "@") || phoneRe.MatchString(text) {
			continue
		}
		if text == strings.ToUpper(text) {
			// Likely a section heading such as EXPERIENCE.
			continue
		}
		words := strings.Fields(text)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		ok := true
		for _, w := range words {
			if !nameWordRe.MatchString(w) || w[0] < 'A' || w[0] > 'Z' {
				ok = false
				break
			}
		}
		if ok {
			return text
		}
	}
	return ""
}

func normalizePhone(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)

	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return strings.TrimSpace(raw)
	}
	return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
}
