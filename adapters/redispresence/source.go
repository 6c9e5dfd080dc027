// Package redispresence implements interfaces.PresenceSource over redis.
//
// Worker instances announce liveness by writing a TTL'd JSON key
// brewery:{group}:{instance_id} and refreshing it while they run. Each
// subscription polls its group prefix and diffs consecutive views into
// joined/updated/left events; a key whose TTL expired simply disappears from
// the scan and surfaces as left, so a crashed worker needs no explicit leave.
package redispresence

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"confdiscovery/domain"
	"confdiscovery/helpers"
	"confdiscovery/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"
)

const keyPrefix = "brewery"

// scanTimeout bounds one poll round trip against redis.
const scanTimeout = 5 * time.Second

// announcement is the JSON payload a worker writes under its brewery key.
type announcement struct {
	Healthy bool   `json:"healthy"`
	Load    int    `json:"load"`
	Region  string `json:"region,omitempty"`
	Version string `json:"version,omitempty"`
}

func (a announcement) state() domain.InstanceState {
	return domain.InstanceState{
		Healthy: a.Healthy,
		Load:    a.Load,
		Region:  a.Region,
		Version: a.Version,
	}
}

// Source creates subscriptions that watch one redis-backed brewery each.
type Source struct {
	client       redis.UniversalClient
	pollInterval time.Duration
	logger       log.Logger
}

// NewSource creates a presence source over the given redis client. Panics on
// nil client or logger, or non-positive pollInterval.
func NewSource(client redis.UniversalClient, pollInterval time.Duration, logger log.Logger) *Source {
	if pollInterval <= 0 {
		panic("redispresence.source.go: pollInterval must be positive")
	}
	return &Source{
		client: helpers.NilPanic(client, "redispresence.source.go: client is required"),
		logger: log.With(
			helpers.NilPanic(logger, "redispresence.source.go: logger is required"),
			"component", "redispresence",
		),
		pollInterval: pollInterval,
	}
}

// Subscribe starts a poll loop for the group and returns its subscription.
func (s *Source) Subscribe(group string) (interfaces.Subscription, error) {
	sub := &subscription{
		client:       s.client,
		prefix:       keyPrefix + ":" + helpers.StrPanic(group, "redispresence.source.go: group is required") + ":",
		pollInterval: s.pollInterval,
		logger:       log.With(s.logger, "group", group),
		events:       make(chan domain.PresenceEvent, 16),
		stop:         make(chan struct{}),
	}
	go sub.poll()
	return sub, nil
}

// subscription implements interfaces.Subscription for one brewery group. The
// poll goroutine is the only writer to events and the only one that closes
// it.
type subscription struct {
	client       redis.UniversalClient
	prefix       string
	pollInterval time.Duration
	logger       log.Logger

	events    chan domain.PresenceEvent
	stop      chan struct{}
	closeOnce sync.Once
}

// Events returns the event channel; closed when the subscription closes.
func (s *subscription) Events() <-chan domain.PresenceEvent {
	return s.events
}

// Close stops the poll loop and closes the events channel. Idempotent.
func (s *subscription) Close() error {
	s.closeOnce.Do(func() { close(s.stop) })
	return nil
}

func (s *subscription) poll() {
	defer close(s.events)
	known := make(map[string]announcement)
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()
	for {
		s.scan(known)
		select {
		case <-s.stop:
			return
		case <-ticker.C:
		}
	}
}

// scan reads the current view of the brewery and emits the diff against the
// last known view, then replaces it. A failed scan keeps the previous view:
// not being able to look is not evidence that anyone left.
func (s *subscription) scan(known map[string]announcement) {
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	keys, err := s.client.Keys(ctx, s.prefix+"*").Result()
	if err != nil {
		_ = level.Warn(s.logger).Log("msg", "brewery scan failed", "err", err)
		return
	}

	current := make(map[string]announcement, len(keys))
	for _, key := range keys {
		id := strings.TrimPrefix(key, s.prefix)
		data, err := s.client.Get(ctx, key).Bytes()
		if err != nil {
			// Expired between the scan and the read; it will show up as
			// left on this or the next pass.
			continue
		}
		var ann announcement
		if err := json.Unmarshal(data, &ann); err != nil {
			_ = level.Warn(s.logger).Log("msg", "malformed announcement ignored", "instance_id", id, "err", err)
			continue
		}
		current[id] = ann
	}

	for _, ev := range diffViews(known, current) {
		select {
		case s.events <- ev:
		case <-s.stop:
			return
		}
	}

	for id := range known {
		delete(known, id)
	}
	for id, ann := range current {
		known[id] = ann
	}
}

// diffViews turns two consecutive brewery views into presence events:
// joined for new ids, updated for changed payloads, left for vanished ids.
// Order within one diff is unspecified except that it is per-id consistent,
// which is all the registry assumes.
func diffViews(prev, current map[string]announcement) []domain.PresenceEvent {
	events := make([]domain.PresenceEvent, 0)
	for id, ann := range current {
		before, ok := prev[id]
		switch {
		case !ok:
			events = append(events, domain.PresenceEvent{Type: domain.EventJoined, InstanceID: id, State: ann.state()})
		case before != ann:
			events = append(events, domain.PresenceEvent{Type: domain.EventUpdated, InstanceID: id, State: ann.state()})
		}
	}
	for id := range prev {
		if _, ok := current[id]; !ok {
			events = append(events, domain.PresenceEvent{Type: domain.EventLeft, InstanceID: id})
		}
	}
	return events
}
