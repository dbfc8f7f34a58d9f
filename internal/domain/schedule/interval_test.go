package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeRange
		want bool
	}{
		{"disjoint", TimeRange{0, 30}, TimeRange{60, 90}, false},
		{"touching edges", TimeRange{0, 30}, TimeRange{30, 60}, false},
		{"one minute over", TimeRange{0, 31}, TimeRange{30, 60}, true},
		{"contained", TimeRange{10, 20}, TimeRange{0, 60}, true},
		{"identical", TimeRange{0, 30}, TimeRange{0, 30}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangesOverlap(tt.a, tt.b))
			assert.Equal(t, tt.want, RangesOverlap(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestRangeWithin(t *testing.T) {
	day := NewRange("09:00", "18:00")

	assert.True(t, RangeWithin(NewRange("09:00", "18:00"), day))
	assert.True(t, RangeWithin(NewRange("10:00", "11:00"), day))
	assert.False(t, RangeWithin(NewRange("08:59", "10:00"), day))
	assert.False(t, RangeWithin(NewRange("17:30", "18:01"), day))
}

func TestSlotRange(t *testing.T) {
	r := SlotRange("10:30", 45)
	assert.Equal(t, TimeRange{630, 675}, r)
}

func TestOverlapMinutes(t *testing.T) {
	assert.Equal(t, 30, overlapMinutes(TimeRange{0, 60}, TimeRange{30, 90}))
	assert.Equal(t, 0, overlapMinutes(TimeRange{0, 30}, TimeRange{30, 60}))
	assert.Equal(t, 60, overlapMinutes(TimeRange{0, 120}, TimeRange{30, 90}))
}
