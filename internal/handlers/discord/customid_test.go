package discord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomID_Encode(t *testing.T) {
	tests := []struct {
		name     string
		customID *CustomID
		expected string
		wantErr  bool
	}{
		{
			name:     "action only",
			customID: &CustomID{Domain: DomainDungeon, Action: "reroll"},
			expected: "dungeon:reroll",
		},
		{
			name:     "with target",
			customID: NewCustomID("play-hand", "user-1"),
			expected: "dungeon:play-hand:user-1",
		},
		{
			name:     "with args",
			customID: NewCustomID("toggle-lock", "user-1", "3"),
			expected: "dungeon:toggle-lock:user-1:3",
		},
		{
			name:     "exceeds max length",
			customID: NewCustomID("use-item", "user-1", strings.Repeat("x", MaxCustomIDLength)),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.customID.Encode()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseCustomID(t *testing.T) {
	tests := []struct {
		name     string
		customID string
		expected *CustomID
		wantErr  bool
	}{
		{
			name:     "domain and action",
			customID: "dungeon:reroll",
			expected: &CustomID{Domain: "dungeon", Action: "reroll", Args: []string{}},
		},
		{
			name:     "target and args",
			customID: "dungeon:choose-room-action:user-1:leave",
			expected: &CustomID{Domain: "dungeon", Action: "choose-room-action", Target: "user-1", Args: []string{"leave"}},
		},
		{name: "empty", customID: "", wantErr: true},
		{name: "single part", customID: "dungeon", wantErr: true},
		{name: "missing action", customID: "dungeon:", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseCustomID(tt.customID)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCustomID_Arg(t *testing.T) {
	id := NewCustomID("buy", "user-1", "2")

	assert.Equal(t, "2", id.Arg(0))
	assert.Equal(t, "", id.Arg(1))
	assert.Equal(t, "", id.Arg(-1))
}
