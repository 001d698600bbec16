package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRef(t *testing.T) {
	tests := []struct {
		in     string
		wantID int
		wantOK bool
	}{
		{in: "42", wantID: 42, wantOK: true},
		{in: " 7 "},
		{in: "7 "},
		{in: "-3", wantID: -3, wantOK: true},
		{in: "abc"},
		{in: ""},
		{in: "1.5"},
		{in: "99999999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			id, ok := ParseRef(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestParseIDOrZero(t *testing.T) {
	assert.Equal(t, 12, parseIDOrZero("12"))
	assert.Equal(t, 0, parseIDOrZero("x"))
	assert.Equal(t, 0, parseIDOrZero(""))
	assert.Equal(t, 0, parseIDOrZero(" 12"))
}
