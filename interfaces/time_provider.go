package interfaces

import "time"

// TimeProvider supplies the current time for last-seen bookkeeping and
// staleness gating. Injected so tests can use a fixed clock instead of
// time.Now().
//
// Used by service.InstanceRegistry (LastSeen stamps) and
// service.BridgeSelector (staleness gate). Constructed in cmd/main as
// service.NewTimeProvider(func() time.Time { return time.Now().UTC() }).
//
//go:generate moq -stub -out mock/time_provider.go -pkg mock . TimeProvider
type TimeProvider interface {
	// Now returns the current time (UTC in prod; fixed in tests).
	Now() time.Time
}
