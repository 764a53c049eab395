package engine

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormedResume = `John Doe
john.doe@example.com | (555) 123-4567
Seattle, WA

EXPERIENCE

Senior Software Engineer
Acme Corp
January 2020 - Present
- Built REST APIs in Go and Python serving 2M requests per day
- Led migration of legacy services to Kubernetes and Docker
- Designed PostgreSQL schemas for the billing platform

Software Engineer
Initech
2017 - 2019
- Developed internal tools in Python
- Maintained Jenkins CI pipelines and Docker images

EDUCATION

Stanford University
Bachelor of Science in Computer Science
2013 - 2017
GPA: 3.8

SKILLS

Languages: Go, Python, JavaScript
Tools: Docker, Kubernetes, PostgreSQL, Jenkins`

func fixedNow() time.Time {
	return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func TestStructure_WellFormedResume(t *testing.T) {
	e := New(&Options{Now: fixedNow})

	resume, err := e.Structure(context.Background(), wellFormedResume)
	require.NoError(t, err)
	require.NotNil(t, resume)

	assert.NotEqual(t, uuid.Nil, resume.ID)
	assert.Equal(t, fixedNow(), resume.ParsedAt)

	assert.Equal(t, "John Doe", resume.PersonalInfo.Name)
	assert.Equal(t, "john.doe@example.com", resume.PersonalInfo.Email)
	assert.Equal(t, "(555) 123-4567", resume.PersonalInfo.Phone)

	require.Len(t, resume.Experience, 2)
	first := resume.Experience[0]
	assert.Equal(t, "Senior Software Engineer", first.Position)
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "January 2020", first.StartDate)
	assert.True(t, first.Current)
	assert.Len(t, first.Description, 3)

	second := resume.Experience[1]
	assert.Equal(t, "Software Engineer", second.Position)
	assert.Equal(t, "Initech", second.Company)
	assert.Equal(t, "2017", second.StartDate)
	assert.Equal(t, "2019", second.EndDate)

	require.Len(t, resume.Education, 1)
	assert.Equal(t, "Stanford University", resume.Education[0].Institution)
	assert.Equal(t, "Bachelor of Science", resume.Education[0].Degree)
	assert.Equal(t, "Computer Science", resume.Education[0].Field)
	assert.Equal(t, "3.8", resume.Education[0].GPA)

	assert.NotEmpty(t, resume.Skills)
	skillNames := make([]string, 0, len(resume.Skills))
	for _, s := range resume.Skills {
		skillNames = append(skillNames, s.Name)
	}
	assert.Contains(t, skillNames, "Go")
	assert.Contains(t, skillNames, "Kubernetes")

	assert.NotEmpty(t, resume.Technologies)
	assert.LessOrEqual(t, len(resume.Technologies), 8)
	assert.Contains(t, resume.Technologies, "Docker")

	assert.Contains(t, resume.Summary, "Senior Software Engineer")
	assert.Contains(t, resume.Summary, "years of experience")

	require.NoError(t, resume.Validate())
}

func TestStructure_SparseExperienceExcluded(t *testing.T) {
	e := New(&Options{Now: fixedNow})

	raw := `Jane Smith

EXPERIENCE

Senior Developer
Globex Corporation`

	resume, err := e.Structure(context.Background(), raw)
	require.NoError(t, err)

	// A lone title and company with no dates and no description does not
	// form a valid entry.
	assert.Empty(t, resume.Experience)
}

func TestStructure_EmptyInput(t *testing.T) {
	e := New(nil)

	for _, raw := range []string{"", "   \n\n\t  "} {
		resume, err := e.Structure(context.Background(), raw)
		require.NoError(t, err)
		require.NotNil(t, resume)

		assert.NotNil(t, resume.Experience)
		assert.NotNil(t, resume.Education)
		assert.NotNil(t, resume.Skills)
		assert.NotNil(t, resume.Technologies)
		assert.Empty(t, resume.Experience)
		assert.Empty(t, resume.Education)
		assert.Empty(t, resume.Skills)
		assert.Empty(t, resume.Technologies)
		assert.Empty(t, resume.Summary)
		assert.NotEqual(t, uuid.Nil, resume.ID)
	}
}

func TestStructure_EnrichmentFromKnownMappings(t *testing.T) {
	e := New(&Options{Enrich: true, Now: fixedNow})

	raw := `John Doe

EXPERIENCE

Software Engineer
Google
January 2020 - Present
- Built distributed systems in Go

EDUCATION

Stanford University
Bachelor of Science in Computer Science
2013 - 2017`

	resume, err := e.Structure(context.Background(), raw)
	require.NoError(t, err)

	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "https://www.google.com", resume.Experience[0].Website)

	require.Len(t, resume.Education, 1)
	assert.Equal(t, "https://www.stanford.edu", resume.Education[0].Website)
}

func TestStructure_EnrichmentDisabledLeavesWebsitesEmpty(t *testing.T) {
	e := New(&Options{Now: fixedNow})

	resume, err := e.Structure(context.Background(), wellFormedResume)
	require.NoError(t, err)

	for _, entry := range resume.Experience {
		assert.Empty(t, entry.Website)
	}
}

func TestStructure_DistinctRunIDs(t *testing.T) {
	e := New(nil)

	a, err := e.Structure(context.Background(), wellFormedResume)
	require.NoError(t, err)
	b, err := e.Structure(context.Background(), wellFormedResume)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestStructure_VerboseWritesToConfiguredWriter(t *testing.T) {
	var buf bytes.Buffer
	e := New(&Options{Verbose: true, Out: &buf, Now: fixedNow})

	_, err := e.Structure(context.Background(), wellFormedResume)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "Acme Corp")
	assert.Contains(t, out, "Stanford University")
}

func TestStructure_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	e := New(&Options{Out: &buf, Now: fixedNow})

	_, err := e.Structure(context.Background(), wellFormedResume)
	require.NoError(t, err)

	assert.Empty(t, buf.String())
}
