package rewriting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPastOfGerund(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		input    string
		expected string
	}{
		{"creating", "created"},
		{"managing", "managed"},
		{"trying", "tried"},
		{"playing", "played"},
		{"teaching", "taught"},
		{"leading", "led"},
		{"building", "built"},
		{"writing", "wrote"},
		{"running", "ran"},
		{"planning", "planned"},
		{"testing", "tested"},
		{"co-leading", "co-led"},
		{"co-founding", "co-founded"},
		{"Making,", "made"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.pastOfGerund(tt.input))
		})
	}
}

func TestGerundOfPast(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		input    string
		expected string
	}{
		{"created", "creating"},
		{"Managed", "managing"},
		{"tried", "trying"},
		{"planned", "planning"},
		{"taught", "teaching"},
		{"led", "leading"},
		{"ran", "running"},
		{"wrote", "writing"},
		{"oversaw", "overseeing"},
		{"co-founded", "co-founding"},
		{"agreed", "agreeing"},
		{"students", "students"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.gerundOfPast(tt.input))
		})
	}
}

func TestRegularPast(t *testing.T) {
	assert.Equal(t, "created", regularPast("create"))
	assert.Equal(t, "tried", regularPast("try"))
	assert.Equal(t, "played", regularPast("play"))
	assert.Equal(t, "planned", regularPast("plan"))
	assert.Equal(t, "visited", regularPast("visit"))
	assert.Equal(t, "fixed", regularPast("fix"))
	assert.Equal(t, "", regularPast(""))
}

func TestIsGerund(t *testing.T) {
	e := newTestEngine(t)

	assert.True(t, e.isGerund("managing"))
	assert.True(t, e.isGerund("Building,"))
	assert.False(t, e.isGerund("during"))
	assert.False(t, e.isGerund("string"))
	assert.False(t, e.isGerund("king"))
	assert.False(t, e.isGerund("built"))
}

func TestSwapCore(t *testing.T) {
	assert.Equal(t, "Created,", swapCore("Creating,", "created"))
	assert.Equal(t, "(led)", swapCore("(leading)", "led"))
	assert.Equal(t, "built", swapCore("building", "built"))
}
