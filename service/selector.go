package service

import (
	"sync"
	"time"

	"confdiscovery/domain"
	"confdiscovery/helpers"
	"confdiscovery/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// BridgeSelector picks the bridge instance to host the next conference.
// Stateless given a registry snapshot: each Select call takes one snapshot
// and evaluates it without remembering prior selections, so concurrent
// selection calls never block each other and never straddle two views of
// the registry. Only the outcome counters live behind the selector's mutex.
type BridgeSelector struct {
	registry     *InstanceRegistry
	staleTimeout time.Duration
	timeProvider interfaces.TimeProvider
	logger       log.Logger

	mu      sync.Mutex
	selects int
	misses  int
}

// NewBridgeSelector creates a selector over the bridge registry.
// staleTimeout zero or negative disables the staleness gate. Panics on nil
// registry, timeProvider or logger.
func NewBridgeSelector(registry *InstanceRegistry, staleTimeout time.Duration, timeProvider interfaces.TimeProvider, logger log.Logger) *BridgeSelector {
	return &BridgeSelector{
		registry:     helpers.NilPanic(registry, "service.selector.go: registry is required"),
		staleTimeout: staleTimeout,
		timeProvider: helpers.NilPanic(timeProvider, "service.selector.go: timeProvider is required"),
		logger: log.With(
			helpers.NilPanic(logger, "service.selector.go: logger is required"),
			"component", "bridge_selector",
		),
	}
}

// Select returns the healthy, non-stale bridge with the lowest reported load.
// A bridge whose last presence event is older than staleTimeout is treated as
// unhealthy even if it last reported healthy — it may be partitioned and
// never sent a leave. Ties resolve by instance id ascending, so repeated
// calls under identical load are reproducible. When nothing qualifies the
// error carries code no_healthy_instance; callers should retry, not fail.
func (s *BridgeSelector) Select() (domain.ServiceInstance, error) {
	now := s.timeProvider.Now()
	candidates := SelectInstances(s.registry.Snapshot(), func(inst domain.ServiceInstance) bool {
		if !inst.State.Healthy {
			return false
		}
		if s.staleTimeout > 0 && now.Sub(inst.LastSeen) > s.staleTimeout {
			return false
		}
		return true
	})
	if len(candidates) == 0 {
		s.mu.Lock()
		s.misses++
		s.mu.Unlock()
		_ = level.Debug(s.logger).Log("msg", "no eligible bridge instance")
		return domain.ServiceInstance{}, NewNoHealthyInstanceError("no healthy bridge instance", nil)
	}

	// Candidates are already in id order; keep the first among equals.
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.State.Load < best.State.Load {
			best = c
		}
	}

	s.mu.Lock()
	s.selects++
	s.mu.Unlock()
	return best, nil
}

// Stats returns the selection outcome counters since start.
func (s *BridgeSelector) Stats() domain.SelectorStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.SelectorStats{SelectCount: s.selects, MissCount: s.misses}
}
