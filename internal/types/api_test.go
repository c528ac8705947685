package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRequest_Validate(t *testing.T) {
	assert.NoError(t, (&TextRequest{Text: "Built it."}).Validate())
	assert.Error(t, (&TextRequest{}).Validate())
}

func TestXyzRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     XyzRequest
		wantErr bool
	}{
		{"default bullets", XyzRequest{Text: "Built it."}, false},
		{"two bullets", XyzRequest{Text: "Built it.", MaxBullets: 2}, false},
		{"negative", XyzRequest{Text: "Built it.", MaxBullets: -1}, true},
		{"too many", XyzRequest{Text: "Built it.", MaxBullets: MaxRequestBullets + 1}, true},
		{"missing text", XyzRequest{MaxBullets: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStarRequest_ToolsCoerced(t *testing.T) {
	var req StarRequest
	require.NoError(t, json.Unmarshal([]byte(`{"text": "Built it.", "tools": "Go and Docker"}`), &req))
	assert.Equal(t, ToolList{"Go", "Docker"}, req.Tools)
	assert.NoError(t, req.Validate())
}

func TestRawResume_Validate(t *testing.T) {
	raw := &RawResume{
		Contact:    Contact{Email: "jane@example.com"},
		Education:  []Education{{School: "State U", GPA: "3.8"}},
		Experience: []RawEntry{{Title: "Intern"}},
	}
	assert.NoError(t, raw.Validate())

	raw.Contact.Email = "not-an-email"
	raw.Education[0].GPA = "3.8/4"
	raw.Projects = []RawEntry{{Summary: "no title"}}
	err := raw.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email")
	assert.Contains(t, err.Error(), "GPA")
	assert.Contains(t, err.Error(), "Title")
}
