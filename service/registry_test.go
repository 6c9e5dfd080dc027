package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"confdiscovery/domain"
	"confdiscovery/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(at time.Time) *mock.TimeProviderMock {
	return &mock.TimeProviderMock{NowFunc: func() time.Time { return at }}
}

func newTestRegistry(t *testing.T) *InstanceRegistry {
	t.Helper()
	return NewInstanceRegistry(domain.KindBridge, false, fixedClock(time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)), log.NewNopLogger())
}

func joined(id string, load int) domain.PresenceEvent {
	return domain.PresenceEvent{
		Type:       domain.EventJoined,
		InstanceID: id,
		State:      domain.InstanceState{Healthy: true, Load: load},
	}
}

func updated(id string, load int) domain.PresenceEvent {
	return domain.PresenceEvent{
		Type:       domain.EventUpdated,
		InstanceID: id,
		State:      domain.InstanceState{Healthy: true, Load: load},
	}
}

func left(id string) domain.PresenceEvent {
	return domain.PresenceEvent{Type: domain.EventLeft, InstanceID: id}
}

func snapshotIDs(reg *InstanceRegistry) []string {
	instances := SelectInstances(reg.Snapshot(), nil)
	ids := make([]string, 0, len(instances))
	for _, inst := range instances {
		ids = append(ids, inst.InstanceID)
	}
	return ids
}

func TestNewInstanceRegistry_Panics(t *testing.T) {
	t.Run("timeProvider_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.registry.go: timeProvider is required", func() {
			NewInstanceRegistry(domain.KindBridge, false, nil, log.NewNopLogger())
		})
	})
	t.Run("logger_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.registry.go: logger is required", func() {
			NewInstanceRegistry(domain.KindBridge, false, fixedClock(time.Now()), nil)
		})
	})
}

func TestRegistry_Apply(t *testing.T) {
	t.Run("joined adds instance with registry kind and variant", func(t *testing.T) {
		now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
		reg := NewInstanceRegistry(domain.KindRecorder, true, fixedClock(now), log.NewNopLogger())
		reg.Apply(joined("rec-1", 0))

		snap := reg.Snapshot()
		require.Len(t, snap, 1)
		assert.Equal(t, "rec-1", snap[0].InstanceID)
		assert.Equal(t, domain.KindRecorder, snap[0].Kind)
		assert.True(t, snap[0].SIP)
		assert.True(t, snap[0].State.Healthy)
		assert.Equal(t, now, snap[0].LastSeen)
	})

	t.Run("duplicate joined treated as update", func(t *testing.T) {
		reg := newTestRegistry(t)
		reg.Apply(joined("b-1", 1))
		reg.Apply(joined("b-1", 7))

		snap := reg.Snapshot()
		require.Len(t, snap, 1)
		assert.Equal(t, 7, snap[0].State.Load)
	})

	t.Run("updated mutates state and last seen", func(t *testing.T) {
		first := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
		second := first.Add(30 * time.Second)
		clock := first
		tp := &mock.TimeProviderMock{NowFunc: func() time.Time { return clock }}
		reg := NewInstanceRegistry(domain.KindBridge, false, tp, log.NewNopLogger())

		reg.Apply(joined("b-1", 1))
		clock = second
		reg.Apply(updated("b-1", 4))

		snap := reg.Snapshot()
		require.Len(t, snap, 1)
		assert.Equal(t, 4, snap[0].State.Load)
		assert.Equal(t, second, snap[0].LastSeen)
	})

	t.Run("updated for unknown id is a no-op", func(t *testing.T) {
		reg := newTestRegistry(t)
		reg.Apply(updated("ghost", 3))
		assert.True(t, reg.IsEmpty())
	})

	t.Run("left removes instance", func(t *testing.T) {
		reg := newTestRegistry(t)
		reg.Apply(joined("b-1", 1))
		reg.Apply(left("b-1"))
		assert.True(t, reg.IsEmpty())
	})

	t.Run("left for unknown id is a no-op", func(t *testing.T) {
		reg := newTestRegistry(t)
		reg.Apply(joined("b-1", 1))
		reg.Apply(left("ghost"))
		reg.Apply(left("b-1"))
		reg.Apply(left("b-1"))
		assert.True(t, reg.IsEmpty())
	})

	t.Run("unknown event type is a no-op", func(t *testing.T) {
		reg := newTestRegistry(t)
		reg.Apply(domain.PresenceEvent{Type: "rejoined", InstanceID: "b-1"})
		assert.True(t, reg.IsEmpty())
	})

	// The final snapshot contains exactly the ids whose joined was not
	// followed by a left, regardless of duplicates and strays.
	t.Run("event sequence yields exact membership", func(t *testing.T) {
		reg := newTestRegistry(t)
		events := []domain.PresenceEvent{
			joined("b-1", 1),
			joined("b-2", 2),
			updated("ghost", 9),
			left("never-joined"),
			joined("b-2", 5), // duplicate joined
			left("b-1"),
			left("b-1"), // duplicate left
			joined("b-3", 0),
			updated("b-3", 2),
		}
		for _, ev := range events {
			reg.Apply(ev)
		}
		assert.Equal(t, []string{"b-2", "b-3"}, snapshotIDs(reg))
	})
}

func TestRegistry_Snapshot_IsolatedFromLaterWrites(t *testing.T) {
	reg := newTestRegistry(t)
	reg.Apply(joined("b-1", 1))

	snap := reg.Snapshot()
	reg.Apply(updated("b-1", 9))
	reg.Apply(joined("b-2", 2))

	require.Len(t, snap, 1)
	assert.Equal(t, 1, snap[0].State.Load)
}

func TestRegistry_IsEmpty(t *testing.T) {
	reg := newTestRegistry(t)
	assert.True(t, reg.IsEmpty())
	reg.Apply(joined("b-1", 1))
	assert.False(t, reg.IsEmpty())
}

func TestRegistry_Stats(t *testing.T) {
	reg := newTestRegistry(t)
	reg.Apply(joined("b-1", 1))
	reg.Apply(joined("b-2", 2))
	reg.Apply(domain.PresenceEvent{
		Type:       domain.EventUpdated,
		InstanceID: "b-2",
		State:      domain.InstanceState{Healthy: false, Load: 2},
	})

	stats := reg.Stats()
	assert.Equal(t, 2, stats.InstanceCount)
	assert.Equal(t, 1, stats.HealthyCount)
}

func TestRegistry_Run_DrainsUntilChannelCloses(t *testing.T) {
	reg := newTestRegistry(t)
	events := make(chan domain.PresenceEvent)
	sub := &mock.SubscriptionMock{
		EventsFunc: func() <-chan domain.PresenceEvent { return events },
	}

	done := make(chan struct{})
	go func() {
		reg.Run(sub)
		close(done)
	}()

	events <- joined("b-1", 1)
	events <- left("b-1")
	events <- joined("b-2", 2)
	close(events)
	<-done

	assert.Equal(t, []string{"b-2"}, snapshotIDs(reg))
}

func TestRegistry_ConcurrentApplyAndSnapshot(t *testing.T) {
	reg := newTestRegistry(t)
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				id := fmt.Sprintf("b-%d-%d", w, i)
				reg.Apply(joined(id, i))
				if i%2 == 0 {
					reg.Apply(left(id))
				}
			}
		}(w)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = reg.Snapshot()
			_ = reg.Stats()
			_ = reg.IsEmpty()
		}
	}()
	wg.Wait()

	// Each worker leaves its odd-numbered instances behind.
	assert.Equal(t, 4*50, len(reg.Snapshot()))
}
