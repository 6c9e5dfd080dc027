package domain

// PresenceEventType discriminates the three membership changes a coordination
// group can report.
type PresenceEventType string

const (
	EventJoined  PresenceEventType = "joined"
	EventUpdated PresenceEventType = "updated"
	EventLeft    PresenceEventType = "left"
)

// PresenceEvent is one membership change for one instance. State carries the
// reported payload for joined and updated; it is ignored for left. Events for
// the same InstanceID arrive in causal order, events for different instances
// may be arbitrarily delayed or reordered relative to each other.
type PresenceEvent struct {
	Type       PresenceEventType
	InstanceID string
	State      InstanceState
}
