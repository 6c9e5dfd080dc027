package service

import (
	"sync"

	"confdiscovery/domain"
	"confdiscovery/helpers"
	"confdiscovery/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// InstanceRegistry owns the id→instance table for one kind/variant brewery.
// It is mutated only through Apply (presence events); selection and stats
// readers work on value-copy snapshots and never block a writer for longer
// than one instance update. Registries for different kinds never share
// instances or locks.
type InstanceRegistry struct {
	kind         domain.ServiceKind
	sip          bool
	timeProvider interfaces.TimeProvider
	logger       log.Logger

	mu        sync.RWMutex
	instances map[string]domain.ServiceInstance
}

// NewInstanceRegistry creates an empty registry for one kind/variant brewery.
// Panics on nil timeProvider or logger.
func NewInstanceRegistry(kind domain.ServiceKind, sip bool, timeProvider interfaces.TimeProvider, logger log.Logger) *InstanceRegistry {
	return &InstanceRegistry{
		kind:         kind,
		sip:          sip,
		timeProvider: helpers.NilPanic(timeProvider, "service.registry.go: timeProvider is required"),
		logger: log.With(
			helpers.NilPanic(logger, "service.registry.go: logger is required"),
			"component", "registry", "kind", string(kind), "sip", sip,
		),
		instances: make(map[string]domain.ServiceInstance),
	}
}

// Apply consumes one presence event. The presence stream may replay or
// reorder events across instances, so the registry is idempotent where it
// can be: a duplicate joined is treated as an update, updated or left for an
// unknown id is logged and dropped. Nothing here is ever surfaced to callers.
func (r *InstanceRegistry) Apply(ev domain.PresenceEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch ev.Type {
	case domain.EventJoined:
		if _, ok := r.instances[ev.InstanceID]; ok {
			_ = level.Debug(r.logger).Log("msg", "duplicate joined treated as update", "instance_id", ev.InstanceID)
		}
		r.instances[ev.InstanceID] = domain.ServiceInstance{
			InstanceID: ev.InstanceID,
			Kind:       r.kind,
			SIP:        r.sip,
			State:      ev.State,
			LastSeen:   r.timeProvider.Now(),
		}
	case domain.EventUpdated:
		inst, ok := r.instances[ev.InstanceID]
		if !ok {
			_ = level.Debug(r.logger).Log("msg", "updated for unknown instance ignored", "instance_id", ev.InstanceID)
			return
		}
		inst.State = ev.State
		inst.LastSeen = r.timeProvider.Now()
		r.instances[ev.InstanceID] = inst
	case domain.EventLeft:
		if _, ok := r.instances[ev.InstanceID]; !ok {
			_ = level.Debug(r.logger).Log("msg", "left for unknown instance ignored", "instance_id", ev.InstanceID)
			return
		}
		delete(r.instances, ev.InstanceID)
	default:
		_ = level.Warn(r.logger).Log("msg", "unknown presence event type ignored", "type", string(ev.Type), "instance_id", ev.InstanceID)
	}
}

// Run drains the subscription into Apply until its events channel closes.
// Blocks; the facade runs one Run goroutine per brewery so event delivery
// never waits on anything but a single registry update.
func (r *InstanceRegistry) Run(sub interfaces.Subscription) {
	for ev := range sub.Events() {
		r.Apply(ev)
	}
	_ = level.Debug(r.logger).Log("msg", "presence subscription drained")
}

// Snapshot returns a point-in-time value copy of all instances, in no
// particular order. O(current instance count); later Apply calls never show
// through a snapshot already taken.
func (r *InstanceRegistry) Snapshot() []domain.ServiceInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ServiceInstance, 0, len(r.instances))
	for _, inst := range r.instances {
		out = append(out, inst)
	}
	return out
}

// IsEmpty reports whether no instance is currently registered.
func (r *InstanceRegistry) IsEmpty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instances) == 0
}

// Stats returns the current instance and healthy counts.
func (r *InstanceRegistry) Stats() domain.BreweryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := domain.BreweryStats{InstanceCount: len(r.instances)}
	for _, inst := range r.instances {
		if inst.State.Healthy {
			stats.HealthyCount++
		}
	}
	return stats
}
