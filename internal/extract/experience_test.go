package extract

import (
	"testing"

	"github.com/jonathan/resume-structurer/internal/classify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperience_InlineCompressedForm(t *testing.T) {
	lines := classify.Lines("Software Engineer at Acme Corp (2020-2023)\n- Built APIs")

	got := Experience(lines)

	require.Len(t, got, 1)
	assert.Equal(t, "Software Engineer", got[0].Position)
	assert.Equal(t, "Acme Corp", got[0].Company)
	assert.Equal(t, "2020", got[0].StartDate)
	assert.Equal(t, "2023", got[0].EndDate)
	assert.Equal(t, []string{"Built APIs"}, got[0].Description)
}

func TestExperience_StructuredCadence(t *testing.T) {
	lines := classify.Lines(`Senior Software Engineer
January 2020 - March 2022
Initech Inc
- Led the platform team
- Cut deploy times in half`)

	got := Experience(lines)

	require.Len(t, got, 1)
	assert.Equal(t, "Senior Software Engineer", got[0].Position)
	assert.Equal(t, "Initech Inc", got[0].Company)
	assert.Equal(t, "January 2020", got[0].StartDate)
	assert.Equal(t, "March 2022", got[0].EndDate)
	assert.Len(t, got[0].Description, 2)
}

func TestExperience_MultipleEntries(t *testing.T) {
	lines := classify.Lines(`Senior Software Engineer
January 2020 - Present
Initech Inc
- Led the platform team
Software Developer
June 2017 - December 2019
Acme Corp
- Built internal dashboards`)

	got := Experience(lines)

	require.Len(t, got, 2)
	assert.Equal(t, "Senior Software Engineer", got[0].Position)
	assert.True(t, got[0].Current)
	assert.Empty(t, got[0].EndDate)
	assert.Equal(t, "Software Developer", got[1].Position)
	assert.Equal(t, "Acme Corp", got[1].Company)
}

func TestExperience_InvalidCandidateExcluded(t *testing.T) {
	// Title and company alone, with no dates and no description, fail the
	// validity invariant and must not survive.
	lines := classify.Lines("Software Engineer\nAcme Corp")

	got := Experience(lines)
	assert.Empty(t, got)
}

func TestExperience_PlaceholderAppliedAfterSelection(t *testing.T) {
	lines := classify.Lines("Senior Software Engineer\n- Built many APIs for enterprise clients")

	got := Experience(lines)

	require.Len(t, got, 1)
	assert.Equal(t, UnknownCompany, got[0].Company)
	assert.Equal(t, "Senior Software Engineer", got[0].Position)
}

func TestExperience_CompanyOnlyBlock(t *testing.T) {
	lines := classify.Lines(`Acme Systems
2019 - 2021
Maintained internal tooling and the build farm`)

	got := Experience(lines)

	require.Len(t, got, 1)
	assert.Equal(t, "Acme Systems", got[0].Company)
	assert.Equal(t, UnknownPosition, got[0].Position)
	assert.Equal(t, "2019", got[0].StartDate)
	assert.Equal(t, "2021", got[0].EndDate)
}

func TestExperience_EmptyInput(t *testing.T) {
	assert.Empty(t, Experience(nil))
}

func TestExperience_BulletGlyphsStripped(t *testing.T) {
	lines := classify.Lines("Software Engineer at Acme Corp (2020-2023)\n• Built APIs\n- Shipped features")

	got := Experience(lines)

	require.Len(t, got, 1)
	assert.Equal(t, []string{"Built APIs", "Shipped features"}, got[0].Description)
}

func TestGroupBlocks_SplitsOnBlankLines(t *testing.T) {
	lines := classify.Lines("one\ntwo\n\nthree")

	blocks := groupBlocks(lines)

	require.Len(t, blocks, 2)
	assert.Len(t, blocks[0], 2)
	assert.Len(t, blocks[1], 1)
}

func TestScoreCandidates_FieldPoints(t *testing.T) {
	lines := classify.Lines(`Senior Software Engineer
January 2020 - March 2022
Initech Inc
- Led the platform team`)

	cands := extractStructured(lines)
	require.Len(t, cands, 1)

	// position 20 + company 20 + start 15 + end 10 + description 20
	// + position length bonus 5 + company length bonus 5
	assert.Equal(t, 95, scoreCandidates(cands))
}

func TestScoreCandidates_RichDescriptionBonus(t *testing.T) {
	lines := classify.Lines(`Senior Software Engineer
January 2020 - March 2022
Initech Inc
- one thing
- another thing
- a third thing`)

	cands := extractStructured(lines)
	require.Len(t, cands, 1)
	assert.Equal(t, 105, scoreCandidates(cands))
}

func TestScoreCandidates_Empty(t *testing.T) {
	assert.Zero(t, scoreCandidates(nil))
}
