package schedule

// TimeRange is a half-open interval [Start, End) in minutes since
// midnight. Invariant: 0 <= Start < End <= 1440 for well-formed input.
type TimeRange struct {
	Start int
	End   int
}

// NewRange builds a TimeRange from two "HH:MM" times.
func NewRange(startTime, endTime string) TimeRange {
	return TimeRange{
		Start: ParseTimeToMinutes(startTime),
		End:   ParseTimeToMinutes(endTime),
	}
}

// SlotRange is the range occupied by a slot of the given duration.
func SlotRange(startTime string, duration int) TimeRange {
	start := ParseTimeToMinutes(startTime)
	return TimeRange{Start: start, End: start + duration}
}

// RangesOverlap reports whether two half-open ranges intersect.
// Touching edges do not overlap: back-to-back bookings are allowed.
func RangesOverlap(a, b TimeRange) bool {
	return a.Start < b.End && b.Start < a.End
}

// RangeWithin reports whether needle lies entirely inside haystack.
func RangeWithin(needle, haystack TimeRange) bool {
	return needle.Start >= haystack.Start && needle.End <= haystack.End
}

func overlapMinutes(a, b TimeRange) int {
	start := a.Start
	if b.Start > start {
		start = b.Start
	}
	end := a.End
	if b.End < end {
		end = b.End
	}
	if end <= start {
		return 0
	}
	return end - start
}
