package comment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNestingLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"null", 0},
		{"0", 0},
		{"1", 1},
		{"3", 3},
		{"2.0", 2},
		{"-4", 0},
		{`"2"`, 2},
		{`" 5 "`, 5},
		{`"deep"`, 0},
		{`{"level":2}`, 0},
		{`[1]`, 0},
		{"true", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNestingLevel(json.RawMessage(tt.raw)))
		})
	}
}

func TestParseStatus(t *testing.T) {
	assert.Equal(t, StatusApproved, ParseStatus("approved"))
	assert.Equal(t, StatusApproved, ParseStatus(" APPROVED "))
	assert.Equal(t, StatusUnapproved, ParseStatus("unapproved"))
	assert.Equal(t, StatusUnapproved, ParseStatus("hold"))
	assert.Equal(t, StatusSpam, ParseStatus("spam"))
	assert.Equal(t, StatusTrash, ParseStatus("trash"))
	assert.Equal(t, StatusUnknown, ParseStatus(""))
	assert.Equal(t, StatusUnknown, ParseStatus("whatever"))
}
