package domain

import "time"

// ServiceKind is the class of backend worker an instance belongs to.
type ServiceKind string

const (
	// KindBridge hosts conference media.
	KindBridge ServiceKind = "bridge"
	// KindRecorder records conferences; SIP-capable recorders are the same
	// kind with the SIP variant flag set.
	KindRecorder ServiceKind = "recorder"
	// KindGateway bridges conferences to external telephony.
	KindGateway ServiceKind = "gateway"
)

// InstanceState is the mutable payload an instance reports through presence.
// Load is policy-specific; for bridges it is the current conference count.
type InstanceState struct {
	Healthy bool
	Load    int
	Region  string
	Version string
}

// ServiceInstance is one live backend worker known to a registry.
// InstanceID is unique within its (Kind, SIP) brewery. Kind and SIP never
// change after the instance joins; a variant change shows up as a leave
// followed by a join.
type ServiceInstance struct {
	InstanceID string
	Kind       ServiceKind
	SIP        bool
	State      InstanceState
	LastSeen   time.Time
}
