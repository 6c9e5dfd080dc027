package interfaces

import "confdiscovery/domain"

// Discovery is the facade contract the orchestrator and the HTTP surface
// consume: lifecycle, typed getters and the aggregated stats snapshot.
//
// Implemented by service.Discovery. Called from handlers.HTTPServer and from
// cmd/main (Start/Stop around the process lifetime).
//
//go:generate moq -stub -out mock/discovery.go -pkg mock . Discovery
type Discovery interface {
	// Start activates every enabled brewery; idempotent. Returns an error
	// when a presence subscription fails, after rolling back the ones that
	// already succeeded.
	Start() error

	// Stop deactivates everything and clears state; idempotent and safe
	// without a prior Start. Afterwards every getter reports
	// configuration_absent.
	Stop()

	// GetInstance returns the first instance of the kind/variant in stable
	// order. Errors: configuration_absent when the brewery is not enabled,
	// entity_not_found when enabled but currently empty.
	GetInstance(kind domain.ServiceKind, sip bool) (domain.ServiceInstance, error)

	// Instances returns all instances of the kind/variant in stable order,
	// with the same error contract as GetInstance.
	Instances(kind domain.ServiceKind, sip bool) ([]domain.ServiceInstance, error)

	// SelectBridge picks the bridge to host the next conference. Errors:
	// configuration_absent when bridge discovery is not enabled,
	// no_healthy_instance (retryable) when no bridge qualifies.
	SelectBridge() (domain.ServiceInstance, error)

	// Stats returns one entry per active subsystem; disabled subsystems are
	// absent from the map, not present with a null value.
	Stats() map[string]any
}
