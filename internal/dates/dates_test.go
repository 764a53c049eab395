package dates

import (
	"testing"

	"github.com/jonathan/resume-structurer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_MonthYearPair(t *testing.T) {
	dr, ok := Parse("January 2020 - March 2022")
	require.True(t, ok)
	assert.Equal(t, "January 2020", dr.StartDate)
	assert.Equal(t, "March 2022", dr.EndDate)
	assert.False(t, dr.Current)
}

func TestParse_AbbreviatedMonthsExpand(t *testing.T) {
	dr, ok := Parse("Aug 2021 - Sep 2023")
	require.True(t, ok)
	assert.Equal(t, "August 2021", dr.StartDate)
	assert.Equal(t, "September 2023", dr.EndDate)
}

func TestParse_AbbreviatedEqualsFullForm(t *testing.T) {
	abbrev, ok := Parse("Aug 2021")
	require.True(t, ok)
	full, ok2 := Parse("August 2021")
	require.True(t, ok2)
	assert.Equal(t, full, abbrev)
}

func TestParse_PresentSentinel(t *testing.T) {
	for _, text := range []string{
		"June 2019 - Present",
		"June 2019 – current",
		"Jun 2019 to Present",
	} {
		dr, ok := Parse(text)
		require.True(t, ok, text)
		assert.Equal(t, "June 2019", dr.StartDate, text)
		assert.True(t, dr.Current, text)
		assert.Empty(t, dr.EndDate, "current ranges must not carry an end date")
	}
}

func TestParse_BareYearRange(t *testing.T) {
	dr, ok := Parse("(2020-2023)")
	require.True(t, ok)
	assert.Equal(t, "2020", dr.StartDate)
	assert.Equal(t, "2023", dr.EndDate)
}

func TestParse_YearToPresent(t *testing.T) {
	dr, ok := Parse("2018 - Present")
	require.True(t, ok)
	assert.Equal(t, "2018", dr.StartDate)
	assert.True(t, dr.Current)
}

func TestParse_SingleBareYear(t *testing.T) {
	dr, ok := Parse("Graduated 2016")
	require.True(t, ok)
	assert.Equal(t, "2016", dr.StartDate)
	assert.Empty(t, dr.EndDate)
}

func TestParse_SeparatorVariants(t *testing.T) {
	for _, sep := range []string{"-", "–", "—", "−"} {
		dr, ok := Parse("2019 " + sep + " 2021")
		require.True(t, ok, "separator %q", sep)
		assert.Equal(t, "2019", dr.StartDate)
		assert.Equal(t, "2021", dr.EndDate)
	}
}

func TestParse_NoMatch(t *testing.T) {
	_, ok := Parse("Built scalable APIs for the payments team")
	assert.False(t, ok)
}

func TestParse_Idempotent(t *testing.T) {
	ranges := []types.DateRange{
		{StartDate: "January 2020", EndDate: "March 2022"},
		{StartDate: "August 2021", Current: true},
		{StartDate: "2020", EndDate: "2023"},
		{StartDate: "2016"},
	}

	for _, dr := range ranges {
		formatted := Format(dr)
		reparsed, ok := Parse(formatted)
		require.True(t, ok, formatted)
		assert.Equal(t, dr, reparsed, "re-parsing %q should be a fixed point", formatted)
	}
}

func TestFormat_EmptyRange(t *testing.T) {
	assert.Empty(t, Format(types.DateRange{}))
}
