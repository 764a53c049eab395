package summary

import (
	"testing"
	"time"

	"github.com/jonathan/resume-structurer/internal/types"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestYearsOfExperience_SumsMonthDeltas(t *testing.T) {
	exps := []types.WorkExperience{
		{Position: "Engineer", StartDate: "January 2020", EndDate: "January 2022"}, // 24 months
		{Position: "Engineer", StartDate: "January 2017", EndDate: "July 2018"},    // 18 months
	}

	assert.Equal(t, 3, YearsOfExperience(exps, now), "42 months floors to 3 years")
}

func TestYearsOfExperience_CurrentUsesNow(t *testing.T) {
	exps := []types.WorkExperience{
		{Position: "Engineer", StartDate: "June 2022", Current: true},
	}

	assert.Equal(t, 2, YearsOfExperience(exps, now))
}

func TestYearsOfExperience_BareYears(t *testing.T) {
	exps := []types.WorkExperience{
		{Position: "Engineer", StartDate: "2018", EndDate: "2021"},
	}

	assert.Equal(t, 3, YearsOfExperience(exps, now))
}

func TestYearsOfExperience_UnparsableDatesSkipped(t *testing.T) {
	exps := []types.WorkExperience{
		{Position: "Engineer", StartDate: "sometime"},
		{Position: "Engineer"},
	}

	assert.Zero(t, YearsOfExperience(exps, now))
}

func TestPrimaryRole_Cascade(t *testing.T) {
	cases := map[string]string{
		"Senior Backend Engineer": "Senior Software Engineer",
		"Team Lead":               "Technical Lead",
		"Solutions Architect":     "Software Architect",
		"Software Engineer":       "Software Engineer",
		"Web Developer":           "Software Developer",
		"Product Manager":         "Technology Professional",
	}

	for position, want := range cases {
		got := PrimaryRole([]types.WorkExperience{{Position: position}})
		assert.Equal(t, want, got, position)
	}
}

func TestPrimaryRole_UsesMostRecentEntry(t *testing.T) {
	exps := []types.WorkExperience{
		{Position: "Senior Engineer"},
		{Position: "Junior Developer"},
	}
	assert.Equal(t, "Senior Software Engineer", PrimaryRole(exps))
}

func TestPrimaryRole_NoExperience(t *testing.T) {
	assert.Equal(t, defaultRole, PrimaryRole(nil))
}

func TestCompose_FullSummary(t *testing.T) {
	exps := []types.WorkExperience{
		{Position: "Senior Engineer", StartDate: "January 2019", Current: true},
	}
	techs := []string{"Go", "Python", "Docker", "Kubernetes", "PostgreSQL", "Redis"}

	got := Compose(exps, techs, now)

	assert.Equal(t, "Senior Software Engineer with 5+ years of experience specializing in Go, Python, Docker, Kubernetes, PostgreSQL and other technologies. Proven track record in full-stack development, system architecture, and delivering scalable solutions.", got)
}

func TestCompose_ZeroYearsOmitted(t *testing.T) {
	got := Compose(nil, []string{"Go"}, now)

	assert.NotContains(t, got, "years of experience")
	assert.Contains(t, got, "specializing in Go and other technologies")
}

func TestCompose_NoTechnologies(t *testing.T) {
	exps := []types.WorkExperience{
		{Position: "Developer", StartDate: "2020", EndDate: "2023"},
	}

	got := Compose(exps, nil, now)

	assert.NotContains(t, got, "specializing in")
	assert.Contains(t, got, "Software Developer with 3+ years of experience")
}
