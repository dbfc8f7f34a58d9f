package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeToMinutes(t *testing.T) {
	assert.Equal(t, 0, ParseTimeToMinutes("00:00"))
	assert.Equal(t, 540, ParseTimeToMinutes("09:00"))
	assert.Equal(t, 750, ParseTimeToMinutes("12:30"))
	assert.Equal(t, 1439, ParseTimeToMinutes("23:59"))
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "09:05", MinutesToTime(545))
	assert.Equal(t, "23:59", MinutesToTime(1439))
}

func TestAddMinutesToTime(t *testing.T) {
	assert.Equal(t, "09:30", AddMinutesToTime("09:00", 30))
	assert.Equal(t, "13:15", AddMinutesToTime("11:45", 90))
	assert.Equal(t, "10:00", AddMinutesToTime("10:00", 0))
}

func TestTimeRoundTrip(t *testing.T) {
	for _, hm := range []string{"00:00", "07:45", "12:00", "18:30", "23:59"} {
		assert.Equal(t, hm, MinutesToTime(ParseTimeToMinutes(hm)))
	}
}
