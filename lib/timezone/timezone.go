package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/Los_Angeles")
	if err != nil {
		panic(err)
	}
}

// offer expirations and run history dates are store-local (Pacific),
// so pin the clock no matter where the clipper actually runs
func Now() time.Time {
	return time.Now().In(Location)
}
