package service

import (
	"time"

	"confdiscovery/helpers"
	"confdiscovery/interfaces"
)

// timeProvider implements interfaces.TimeProvider via the injected now func.
// Registries stamp LastSeen with it and the bridge selector compares against
// it for staleness; tests inject a fixed clock.
type timeProvider struct {
	now func() time.Time
}

// NewTimeProvider creates a TimeProvider backed by the given now func
// (time.Now().UTC in prod, a fixed time in tests). Panics on nil now.
func NewTimeProvider(now func() time.Time) interfaces.TimeProvider {
	return &timeProvider{now: helpers.NilPanic(now, "service.time_provider.go: now is required")}
}

// Now returns the current time from the injected function.
func (t *timeProvider) Now() time.Time {
	return t.now()
}
