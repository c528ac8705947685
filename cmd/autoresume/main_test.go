package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/autoresume/internal/types"
)

const rawResumeJSON = `{
	"contact": {"full_name": "Jane Doe", "email": "jane@example.com"},
	"education": [{"school": "State University", "degree": "BS Computer Science", "dates": "Aug 2021 - May 2025"}],
	"skills": {"Languages": "python, Go"},
	"experience": [{
		"title": "Software Intern",
		"company": "Crest",
		"dates": "May 2025 - Present",
		"summary": "I was tasked with creating and managing the company's website using Python and GitHub Actions."
	}],
	"projects": [{"title": "Club Site", "bullets": ["Co-founded the club", "taught female students HTML and CSS"]}]
}`

// resetFlags restores every flag to its default so tests do not leak state
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("AUTORESUME_LEXICON", "")
	t.Setenv("AUTORESUME_PORT", "")
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBulletsCommand(t *testing.T) {
	out, err := execute(t, "bullets", "I helped to build the new dashboard.")
	require.NoError(t, err)
	assert.Equal(t, "• Built the new dashboard.\n", out)
}

func TestBulletsCommand_FromFile(t *testing.T) {
	path := writeFile(t, "text.txt", "Built the system using python, docker.")
	out, err := execute(t, "bullets", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "• Built the system using Python, Docker.\n", out)
}

func TestBulletsCommand_NoInput(t *testing.T) {
	_, err := execute(t, "bullets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input text")
}

func TestStarCommand(t *testing.T) {
	out, err := execute(t, "star",
		"--org", "Crest", "--tools", "python, Git",
		"I was tasked with creating and managing the company's website using Python and GitHub Actions. "+
			"Delivered measurable outcomes by speeding up feedback cycles.")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		"• Created and managed the company's website using Python, GitHub Actions.",
		"• Delivered measurable outcomes by speeding up feedback cycles using Python, Git.",
		"• Supported Crest objectives by enhancing usability.",
	}, lines)
}

func TestXyzCommand(t *testing.T) {
	out, err := execute(t, "xyz", "Co-founded the club; taught female students HTML and CSS.")
	require.NoError(t, err)
	assert.Equal(t, "• Co-founded the club by teaching female students HTML and CSS, improving audience engagement.\n", out)
}

func TestXyzCommand_MaxBulletsOutOfRange(t *testing.T) {
	_, err := execute(t, "xyz", "--max-bullets", "9", "Built things.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--max-bullets")
}

func TestClassifyCommand(t *testing.T) {
	out, err := execute(t, "classify", "I migrated it to Go. Latency dropped by 40%.")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], string(types.RoleAction)))
	assert.Contains(t, lines[0], "I migrated it to Go.")
	assert.True(t, strings.HasPrefix(lines[1], string(types.RoleResult)))
}

func TestBuildCommand_JSON(t *testing.T) {
	input := writeFile(t, "resume.json", rawResumeJSON)
	output := filepath.Join(t.TempDir(), "out", "resume.json")

	_, err := execute(t, "build", "--input", input, "--output", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var resume types.Resume
	require.NoError(t, json.Unmarshal(data, &resume))

	assert.Equal(t, "Jane Doe", resume.Contact.FullName)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "• Created and managed the company's website using Python, GitHub Actions.", resume.Experience[0].Bullets[0])
	assert.NotNil(t, resume.Extracurriculars)
}

func TestBuildCommand_Formats(t *testing.T) {
	input := writeFile(t, "resume.yaml", `
contact:
  full_name: Jane Doe
experience:
  - title: Software Intern
    company: Crest & Co
    summary: Built the system using python, docker.
`)

	tests := []struct {
		format   string
		contains []string
	}{
		{"tex", []string{`\section*{Experience}`, `Crest \& Co`, `\item Built the system using Python, Docker.`}},
		{"html", []string{"<h1", "Jane Doe", "Crest &amp; Co"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := execute(t, "build", "--input", input, "--format", tt.format)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestBuildCommand_FormatFromConfig(t *testing.T) {
	input := writeFile(t, "resume.json", rawResumeJSON)
	cfg := writeFile(t, "autoresume.yaml", "format: html\n")

	out, err := execute(t, "--config", cfg, "build", "--input", input)
	require.NoError(t, err)
	assert.Contains(t, out, "<html")
}

func TestBuildCommand_Errors(t *testing.T) {
	badEmail := writeFile(t, "bad.json", `{"contact": {"full_name": "Jane", "email": "not-an-email"}}`)
	good := writeFile(t, "resume.json", rawResumeJSON)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing input flag", []string{"build"}, "required"},
		{"missing file", []string{"build", "--input", "/nonexistent/resume.json"}, "failed to load resume"},
		{"strict validation", []string{"build", "--input", badEmail, "--strict"}, "not a valid email address"},
		{"pdf to stdout", []string{"build", "--input", good, "--format", "pdf"}, "--output is required"},
		{"unknown format", []string{"build", "--input", good, "--format", "docx"}, "unsupported format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuildCommand_LenientValidation(t *testing.T) {
	input := writeFile(t, "bad.json", `{"contact": {"full_name": "Jane", "email": "not-an-email"}}`)
	out, err := execute(t, "build", "--input", input)
	require.NoError(t, err)
	assert.Contains(t, out, `"full_name": "Jane"`)
}

func TestLintCommand(t *testing.T) {
	resume := func(bullet string) string {
		return `{
			"contact": {"full_name": "Jane"},
			"education": [],
			"skills": {},
			"experience": [{"title": "Intern", "dates": "", "bullets": ["` + bullet + `"]}],
			"projects": [],
			"extracurriculars": []
		}`
	}

	t.Run("clean", func(t *testing.T) {
		out, err := execute(t, "lint", "--input", writeFile(t, "ok.json", resume("• Built the new dashboard.")))
		require.NoError(t, err)
		assert.Contains(t, out, "1 BULLETS PASSED")
	})

	t.Run("pronoun", func(t *testing.T) {
		out, err := execute(t, "lint", "--input", writeFile(t, "bad.json", resume("• I was responsible for testing.")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 bullet(s) failed lint")
		assert.Contains(t, out, "✗pronoun")
	})

	t.Run("schema violation", func(t *testing.T) {
		_, err := execute(t, "lint", "--input", writeFile(t, "bad.json", `{"contact": {}}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

func TestValidateCommand(t *testing.T) {
	t.Run("raw passes", func(t *testing.T) {
		out, err := execute(t, "validate", "--input", writeFile(t, "resume.json", rawResumeJSON))
		require.NoError(t, err)
		assert.Contains(t, out, "Validation passed")
	})

	t.Run("raw field issue", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "contact:\n  email: nope\n")
		out, err := execute(t, "validate", "--input", path)
		require.Error(t, err)
		assert.Contains(t, out, "Validation failed")
		assert.Contains(t, out, "not a valid email address")
	})

	t.Run("raw schema issue", func(t *testing.T) {
		path := writeFile(t, "bad.json", `{"projects": [{"bullets": []}]}`)
		out, err := execute(t, "validate", "--input", path)
		require.Error(t, err)
		assert.Contains(t, out, "Validation failed")
	})

	t.Run("built fails output schema", func(t *testing.T) {
		out, err := execute(t, "validate", "--built", "--input", writeFile(t, "raw.json", rawResumeJSON))
		require.Error(t, err)
		assert.Contains(t, out, "Validation failed")
	})
}

func TestBuildCommand_VerboseSummary(t *testing.T) {
	input := writeFile(t, "resume.json", rawResumeJSON)
	out, err := execute(t, "build", "--verbose", "--input", input, "--output", filepath.Join(t.TempDir(), "resume.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "BUILT RESUME")
	assert.Contains(t, out, "Jane Doe")
}

func TestInvalidConfig(t *testing.T) {
	cfg := writeFile(t, "autoresume.json", `{"format": "docx"}`)
	_, err := execute(t, "--config", cfg, "bullets", "Built it.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format")
}
