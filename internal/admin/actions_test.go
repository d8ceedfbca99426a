package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcknowledge(t *testing.T) {
	testCases := []struct {
		name        string
		notes       string
		expected    string
		expectWrite bool
	}{
		{
			name:        "empty notes get the bare marker",
			notes:       "",
			expected:    "JUN ack'd",
			expectWrite: true,
		},
		{
			name:        "existing notes are kept after the separator",
			notes:       "prefers mid watches",
			expected:    "JUN ack'd // prefers mid watches",
			expectWrite: true,
		},
		{
			name:        "already acknowledged",
			notes:       "JUN ack'd // prefers mid watches",
			expected:    "JUN ack'd // prefers mid watches",
			expectWrite: false,
		},
		{
			name:        "marker anywhere counts",
			notes:       "on leave; JUN ack'd by phone",
			expected:    "on leave; JUN ack'd by phone",
			expectWrite: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, changed := Acknowledge(tc.notes)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, tc.expectWrite, changed)
		})
	}
}

func TestAcknowledgeIsIdempotent(t *testing.T) {
	once, _ := Acknowledge("")
	assert.Equal(t, "JUN ack'd", once)

	twice, changed := Acknowledge(once)
	assert.Equal(t, once, twice)
	assert.False(t, changed)
}
