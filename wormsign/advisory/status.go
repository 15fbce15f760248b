package advisory

import "time"

type Status struct {
	Location string
	Built    time.Time
	Count    int
	Err      error
}
