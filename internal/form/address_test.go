package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		address string
		want    string
	}{
		{"standard", "123 Main St, Springfield, IL 62704", "IL"},
		{"zip plus four", "1 Market Plaza, San Francisco, CA 94105-1420", "CA"},
		{"no zip", "somewhere in Texas", ""},
		{"lowercase state", "123 Main St, Springfield, il 62704", ""},
		{"empty", "", ""},
		{"state without comma", "123 Main St Springfield IL 62704", ""},
		{"dc address", "1600 Pennsylvania Ave NW, Washington, DC 20500", "DC"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseState(tt.address))
		})
	}
}

func TestParseCity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		address string
		want    string
	}{
		{"standard", "123 Main St, Springfield, IL 62704", "Springfield"},
		{"two word city", "500 5th Ave, New York, NY 10110", "New York"},
		{"no state tail", "123 Main St Springfield", ""},
		{"empty", "", ""},
		{"single segment before state", "Springfield, IL 62704", "Springfield"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseCity(tt.address))
		})
	}
}

func TestStateName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Illinois", StateName("IL"))
	assert.Equal(t, "California", StateName("ca"))
	assert.Equal(t, "District of Columbia", StateName("DC"))
	// Unknown input passes through unchanged.
	assert.Equal(t, "ZZ", StateName("ZZ"))
	assert.Equal(t, "", StateName(""))
}
