package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"golang to Go", "golang", "Go"},
		{"GOLANG to Go", "GOLANG", "Go"},
		{"JS to JavaScript uppercase", "JS", "JavaScript"},
		{"K8s to Kubernetes", "k8s", "Kubernetes"},
		{"react.js to React", "react.js", "React"},
		{"nodejs to Node.js", "nodejs", "Node.js"},
		{"python to Python", "python", "Python"},
		{"github actions", "github  actions", "GitHub Actions"},
		{"Empty string", "", ""},
		{"Whitespace only", "   ", ""},
		{"Multi-word stays as-is", "Distributed Systems", "Distributed Systems"},
		{"Mixed case single word", "LaTeX", "LaTeX"},
		{"unknown lower case capitalized", "vim", "Vim"},
		{"short acronym kept", "ETL", "ETL"},
		{"long all-caps softened", "PHOTOSHOP", "Photoshop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSkillName(nil, tt.input))
		})
	}
}

func TestCanonicalTool(t *testing.T) {
	assert.Equal(t, "Python", CanonicalTool(nil, "python"))
	assert.Equal(t, "GitHub Actions", CanonicalTool(nil, "GitHub actions"))
	assert.Equal(t, "vim", CanonicalTool(nil, " vim "), "unknown names pass through")
	assert.Equal(t, "", CanonicalTool(nil, ""))
}

func TestNormalizeTools(t *testing.T) {
	got := NormalizeTools(nil, []string{"python", "Python", "docker", "", "custom rig"})
	assert.Equal(t, []string{"Python", "Docker", "custom rig"}, got)
	assert.Nil(t, NormalizeTools(nil, nil))
}

func TestNormalizeSkills(t *testing.T) {
	got := NormalizeSkills(nil, map[string][]string{
		"Languages": {"python", "Python", "golang"},
		"Empty":     {" "},
		" ":         {"git"},
	})
	assert.Equal(t, map[string][]string{"Languages": {"Python", "Go"}}, got)
}
