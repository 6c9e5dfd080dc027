package interfaces

import "confdiscovery/domain"

// PresenceSource delivers membership events for named coordination groups
// ("breweries") where backend workers announce liveness. The wire protocol is
// the adapter's concern; the core only consumes joined/updated/left events.
//
// Implemented by adapters/redispresence.Source. Called from
// service.Discovery.Start, one Subscribe per enabled brewery.
//
//go:generate moq -stub -out mock/presence.go -pkg mock . PresenceSource Subscription
type PresenceSource interface {
	// Subscribe starts delivering membership events for one group.
	// Parameter group — coordination group name (non-empty).
	// Returns: (Subscription, nil) on success; (nil, error) when the
	// underlying transport cannot watch the group.
	// Called from service.Discovery.Start for each enabled brewery.
	Subscribe(group string) (Subscription, error)
}

// Subscription is one live presence feed. Events for the same instance id
// arrive in causal order; no ordering is guaranteed across instances.
type Subscription interface {
	// Events returns the event channel. The channel is closed by Close, never
	// by the consumer.
	Events() <-chan domain.PresenceEvent

	// Close stops delivery and closes the events channel; idempotent.
	Close() error
}
