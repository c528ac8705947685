package experience

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/autoresume/internal/schemas"
	"github.com/jonathan/autoresume/internal/types"
)

const sampleJSON = `{
	"contact": {"full_name": "Jane Doe", "email": "jane@example.com"},
	"education": [{"school": "State University", "degree": "BS Computer Science", "dates": "Aug 2021 - May 2025", "gpa": "3.8"}],
	"skills": {"Languages": "python, Go"},
	"experience": [{
		"title": "Software Intern",
		"company": "Crest",
		"dates": "May 2025 - Present",
		"summary": "I was tasked with creating and managing the company's website using Python and GitHub Actions.",
		"tools": "python and docker"
	}],
	"projects": [{"title": "Club Site", "bullets": ["Co-founded the club", "taught female students HTML and CSS"]}],
	"extracurriculars": [{"title": "Volunteer", "organization": "HiTech Club", "description": "I organized events."}]
}`

const sampleYAML = `
contact:
  full_name: Jane Doe
  email: jane@example.com
education:
  - school: State University
    degree: BS Computer Science
    dates: Aug 2021 - May 2025
    gpa: 3.8
skills:
  Languages: python, Go
experience:
  - title: Software Intern
    company: Crest
    dates: May 2025 - Present
    summary: I was tasked with creating and managing the company's website using Python and GitHub Actions.
    tools: python and docker
projects:
  - title: Club Site
    bullets:
      - Co-founded the club
      - taught female students HTML and CSS
extracurriculars:
  - title: Volunteer
    organization: HiTech Club
    description: I organized events.
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadResume_JSON(t *testing.T) {
	raw, err := LoadResume(writeFile(t, "resume.json", sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", raw.Contact.FullName)
	require.Len(t, raw.Experience, 1)
	assert.Equal(t, types.ToolList{"python", "docker"}, raw.Experience[0].Tools)
	assert.Equal(t, []string{"python", "Go"}, raw.Skills["Languages"])
	assert.Equal(t, "I organized events.", raw.Extracurriculars[0].SourceText())
}

func TestLoadResume_YAMLMatchesJSON(t *testing.T) {
	fromJSON, err := LoadResume(writeFile(t, "resume.json", sampleJSON))
	require.NoError(t, err)

	for _, name := range []string{"resume.yaml", "resume.yml"} {
		t.Run(name, func(t *testing.T) {
			fromYAML, err := LoadResume(writeFile(t, name, sampleYAML))
			require.NoError(t, err)
			if diff := cmp.Diff(fromJSON, fromYAML); diff != "" {
				t.Errorf("YAML and JSON inputs differ (-json +yaml):\n%s", diff)
			}
		})
	}
}

func TestParseResume_YAMLScalarsStayText(t *testing.T) {
	raw, err := ParseResume([]byte("education:\n  - school: MIT\n    date: 2025\n    gpa: 4.0\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "2025", raw.Education[0].Date)
	assert.Equal(t, "4.0", raw.Education[0].GPA)
}

func TestParseResume_EmptyYAML(t *testing.T) {
	raw, err := ParseResume([]byte(""), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, raw.Experience)
}

func TestLoadResume_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantMsg string
	}{
		{"unsupported extension", "resume.txt", "{}", "unsupported file extension"},
		{"malformed JSON", "resume.json", "{ invalid json }", "raw resume schema"},
		{"malformed YAML", "resume.yaml", "contact: [unclosed", "failed to parse YAML"},
		{"schema violation", "resume.json", `{"experience": [{"summary": "no title"}]}`, "raw resume schema"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := LoadResume(path)
			require.Error(t, err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr), "error should be LoadError type")
			assert.Contains(t, loadErr.Message, tt.wantMsg)
			assert.Equal(t, path, loadErr.Path)
			assert.Contains(t, err.Error(), "load "+path)
		})
	}
}

func TestLoadResume_SchemaViolationUnwraps(t *testing.T) {
	_, err := LoadResume(writeFile(t, "resume.json", `{"projects": [{"title": 5}]}`))
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "projects.0.title", validationErr.Errors[0].Field)
}

func TestLoadResume_MissingFile(t *testing.T) {
	_, err := LoadResume(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseResume_UnknownFormat(t *testing.T) {
	_, err := ParseResume([]byte("{}"), "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
