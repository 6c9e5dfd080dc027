package domain

import "time"

// BreweryConfig enables discovery for one kind/variant and names the
// coordination group its instances announce in.
type BreweryConfig struct {
	Enabled bool
	Group   string
}

// DiscoveryConfig holds the per-brewery toggles plus the selection staleness
// threshold. A disabled brewery gets no registry at all: its getters report
// configuration_absent rather than an empty instance set.
type DiscoveryConfig struct {
	Bridge      BreweryConfig
	Recorder    BreweryConfig
	SIPRecorder BreweryConfig
	Gateway     BreweryConfig

	// StaleTimeout is how long a bridge may go without any presence event
	// before the selector treats it as unhealthy, even if its last reported
	// state was healthy. Zero or negative disables the staleness gate.
	StaleTimeout time.Duration
}
