package adapter

import "time"

// Clock provides the current instant for date-dependent calculations.
type Clock interface {
	Now() time.Time
}
