package personal

import (
	"testing"

	"github.com/jonathan/resume-structurer/internal/classify"
	"github.com/stretchr/testify/assert"
)

func TestExtract_FullContactBlock(t *testing.T) {
	lines := classify.Lines(`Jane Doe
Seattle, WA
jane.doe@example.com | (555) 123-4567
linkedin.com/in/janedoe | github.com/janedoe

EXPERIENCE`)

	info := Extract(lines)

	assert.Equal(t, "Jane Doe", info.Name)
	assert.Equal(t, "jane.doe@example.com", info.Email)
	assert.Equal(t, "(555) 123-4567", info.Phone)
	assert.Equal(t, "Seattle, WA", info.Location)
	assert.Equal(t, "linkedin.com/in/janedoe", info.LinkedIn)
	assert.Equal(t, "github.com/janedoe", info.GitHub)
}

func TestExtract_PhoneNormalization(t *testing.T) {
	for _, raw := range []string{
		"555-123-4567",
		"555.123.4567",
		"(555) 123 4567",
		"+1 555 123 4567",
	} {
		info := Extract(classify.Lines("Jane Doe\n" + raw))
		assert.Equal(t, "(555) 123-4567", info.Phone, raw)
	}
}

func TestExtract_SkipsHeadingsAndContactLinesForName(t *testing.T) {
	lines := classify.Lines("EXPERIENCE NOTES\njane@x.com\nJane Doe")

	info := Extract(lines)
	assert.Equal(t, "Jane Doe", info.Name)
}

func TestExtract_NameNotFound(t *testing.T) {
	info := Extract(classify.Lines("EXPERIENCE\n- built things"))
	assert.Empty(t, info.Name)
}

func TestExtract_EmptyInput(t *testing.T) {
	info := Extract(nil)
	assert.Empty(t, info.Name)
	assert.Empty(t, info.Email)
}
