package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "09:00", want: "09:00"},
		{in: "00:00", want: "00:00"},
		{in: "23:30", want: "23:30"},
		{in: "9:00", wantErr: true},
		{in: "25:00", wantErr: true},
		{in: "garbage", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		tod, err := ParseTimeOfDay(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, tod.String())
	}
}

func TestGenerateSlots_StandardDay(t *testing.T) {
	open := mustTime(t, "09:00")
	close := mustTime(t, "18:00")

	slots := GenerateSlots(open, close, SlotIntervalMinutes)

	require.Len(t, slots, 18)
	assert.Equal(t, "09:00", slots[0].String())
	assert.Equal(t, "09:30", slots[1].String())
	assert.Equal(t, "17:30", slots[len(slots)-1].String())
}

func TestGenerateSlots_CoversHalfOpenWindow(t *testing.T) {
	open := mustTime(t, "08:00")
	close := mustTime(t, "12:00")

	slots := GenerateSlots(open, close, SlotIntervalMinutes)

	seen := make(map[TimeOfDay]struct{}, len(slots))
	for i, slot := range slots {
		assert.True(t, !slot.Before(open), "slot %s before opening", slot)
		assert.True(t, slot.Before(close), "slot %s at or past closing", slot)

		if i > 0 {
			assert.True(t, slots[i-1].Before(slot), "slots not strictly ascending")
		}

		_, dup := seen[slot]
		assert.False(t, dup, "duplicate slot %s", slot)
		seen[slot] = struct{}{}
	}

	assert.Len(t, slots, 8)
}

func TestGenerateSlots_EmptyWindow(t *testing.T) {
	tests := []struct {
		name  string
		open  string
		close string
	}{
		{name: "closing equals opening", open: "09:00", close: "09:00"},
		{name: "closing before opening", open: "18:00", close: "09:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateSlots(mustTime(t, tt.open), mustTime(t, tt.close), SlotIntervalMinutes)
			assert.Empty(t, slots)
			assert.NotNil(t, slots)
		})
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	open := mustTime(t, "10:00")
	close := mustTime(t, "14:00")

	first := GenerateSlots(open, close, SlotIntervalMinutes)
	second := GenerateSlots(open, close, SlotIntervalMinutes)

	assert.Equal(t, first, second)
}
