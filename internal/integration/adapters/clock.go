// Package adapters provides implementations of application adapter interfaces.
package adapters

import (
	"time"

	"github.com/finance-tracker/goals/internal/application/adapter"
)

// systemClock implements the adapter.Clock interface with the wall clock.
type systemClock struct{}

// NewSystemClock creates a new clock backed by time.Now.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

// Now returns the current time in UTC.
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
