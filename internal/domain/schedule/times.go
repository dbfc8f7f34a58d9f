package schedule

import "fmt"

// Wall-clock times travel through the system as "HH:MM" strings, the
// same form they are persisted and serialized in. Inside this package
// they are converted to minutes-since-midnight at every boundary so
// the interval math stays exact.
//
// None of these helpers validate their input. Well-formed, zero-padded
// strings are the caller's contract; a malformed time produces a wrong
// number, not an error.

// ParseTimeToMinutes converts "HH:MM" to minutes since midnight.
func ParseTimeToMinutes(t string) int {
	if len(t) < 5 {
		return 0
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	return hours*60 + mins
}

// MinutesToTime converts minutes since midnight back to "HH:MM".
// Values outside [0, 1440) are not normalized.
func MinutesToTime(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddMinutesToTime shifts an "HH:MM" time forward by duration minutes.
func AddMinutesToTime(t string, duration int) string {
	return MinutesToTime(ParseTimeToMinutes(t) + duration)
}
