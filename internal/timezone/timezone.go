package timezone

import "time"

// BusinessTimezone is the single civil timezone every schedule in the
// system is expressed in. It is not configurable per shop.
const BusinessTimezone = "America/Sao_Paulo"

var location = mustLoad()

func mustLoad() *time.Location {
	loc, err := time.LoadLocation(BusinessTimezone)
	if err != nil {
		// tzdata missing from the host; Sao Paulo has no DST since 2019
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}

func Location() *time.Location {
	return location
}

func Now() time.Time {
	return time.Now().In(location)
}
