package service

import (
	"fmt"
	"sync"

	"confdiscovery/domain"
	"confdiscovery/helpers"
	"confdiscovery/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// breweryKey identifies one registry: kind plus the SIP variant flag.
type breweryKey struct {
	kind domain.ServiceKind
	sip  bool
}

// Discovery composes one registry per enabled brewery plus the bridge
// selector, and is the only component the orchestrator talks to. Two
// presence handles are injected: the bridge brewery rides its own connection,
// the recorder/gateway breweries share the second one.
type Discovery struct {
	bridgeSource  interfaces.PresenceSource
	serviceSource interfaces.PresenceSource
	config        domain.DiscoveryConfig
	timeProvider  interfaces.TimeProvider
	logger        log.Logger

	mu         sync.RWMutex
	started    bool
	registries map[breweryKey]*InstanceRegistry
	subs       []interfaces.Subscription
	selector   *BridgeSelector
	wg         sync.WaitGroup
}

var _ interfaces.Discovery = &Discovery{}

// NewDiscovery creates the facade. Nothing is subscribed until Start. Panics
// on nil bridgeSource, serviceSource, timeProvider or logger.
func NewDiscovery(
	bridgeSource interfaces.PresenceSource,
	serviceSource interfaces.PresenceSource,
	config domain.DiscoveryConfig,
	timeProvider interfaces.TimeProvider,
	logger log.Logger,
) *Discovery {
	return &Discovery{
		bridgeSource:  helpers.NilPanic(bridgeSource, "service.discovery.go: bridgeSource is required"),
		serviceSource: helpers.NilPanic(serviceSource, "service.discovery.go: serviceSource is required"),
		config:        config,
		timeProvider:  helpers.NilPanic(timeProvider, "service.discovery.go: timeProvider is required"),
		logger: log.With(
			helpers.NilPanic(logger, "service.discovery.go: logger is required"),
			"component", "discovery",
		),
	}
}

// Start subscribes every enabled brewery and spawns one drain goroutine per
// registry. Idempotent: a second Start while started is a no-op and never
// double-subscribes. On a subscription error the breweries already started
// are closed again and the error is returned; the facade stays stopped.
func (d *Discovery) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started {
		return nil
	}

	breweries := []struct {
		key    breweryKey
		cfg    domain.BreweryConfig
		source interfaces.PresenceSource
	}{
		{breweryKey{domain.KindBridge, false}, d.config.Bridge, d.bridgeSource},
		{breweryKey{domain.KindRecorder, false}, d.config.Recorder, d.serviceSource},
		{breweryKey{domain.KindRecorder, true}, d.config.SIPRecorder, d.serviceSource},
		{breweryKey{domain.KindGateway, false}, d.config.Gateway, d.serviceSource},
	}

	registries := make(map[breweryKey]*InstanceRegistry)
	var subs []interfaces.Subscription
	for _, b := range breweries {
		if !b.cfg.Enabled {
			continue
		}
		sub, err := b.source.Subscribe(b.cfg.Group)
		if err != nil {
			for _, s := range subs {
				_ = s.Close()
			}
			d.wg.Wait()
			return fmt.Errorf("subscribe %s brewery %q: %w", statsKey(b.key), b.cfg.Group, err)
		}
		reg := NewInstanceRegistry(b.key.kind, b.key.sip, d.timeProvider, d.logger)
		d.wg.Add(1)
		go func(reg *InstanceRegistry, sub interfaces.Subscription) {
			defer d.wg.Done()
			reg.Run(sub)
		}(reg, sub)
		registries[b.key] = reg
		subs = append(subs, sub)
		_ = level.Info(d.logger).Log("msg", "brewery discovery started", "subsystem", statsKey(b.key), "group", b.cfg.Group)
	}

	d.registries = registries
	d.subs = subs
	if reg, ok := registries[breweryKey{domain.KindBridge, false}]; ok {
		d.selector = NewBridgeSelector(reg, d.config.StaleTimeout, d.timeProvider, d.logger)
	}
	d.started = true
	return nil
}

// Stop closes all presence subscriptions, waits for the drain goroutines and
// clears state. Idempotent and safe without a prior Start. Selection or
// stats calls racing with Stop observe either the pre-stop registries (still
// valid value snapshots) or configuration_absent — never a torn-down state.
func (d *Discovery) Stop() {
	d.mu.Lock()
	if !d.started {
		d.mu.Unlock()
		return
	}
	subs := d.subs
	d.started = false
	d.registries = nil
	d.subs = nil
	d.selector = nil
	d.mu.Unlock()

	for _, sub := range subs {
		_ = sub.Close()
	}
	d.wg.Wait()
	_ = level.Info(d.logger).Log("msg", "discovery stopped")
}

// registry returns the live registry for the kind/variant, or nil when that
// brewery is not enabled or the facade is stopped.
func (d *Discovery) registry(kind domain.ServiceKind, sip bool) *InstanceRegistry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if !d.started {
		return nil
	}
	return d.registries[breweryKey{kind, sip}]
}

// Instances returns every known instance of the kind/variant in stable id
// order. configuration_absent when the brewery was never enabled (or the
// facade is stopped); entity_not_found when enabled but currently empty.
// The two outcomes are deliberately distinct: "not supported here" versus
// "supported but nobody announced yet".
func (d *Discovery) Instances(kind domain.ServiceKind, sip bool) ([]domain.ServiceInstance, error) {
	reg := d.registry(kind, sip)
	if reg == nil {
		return nil, NewConfigurationAbsentError(fmt.Sprintf("%s discovery is not configured", statsKey(breweryKey{kind, sip})), nil)
	}
	instances := SelectInstances(reg.Snapshot(), nil)
	if len(instances) == 0 {
		return nil, NewEntityNotFoundError(fmt.Sprintf("no %s instance is currently registered", statsKey(breweryKey{kind, sip})), nil)
	}
	return instances, nil
}

// GetInstance returns the first instance of the kind/variant in stable order,
// with the same error contract as Instances.
func (d *Discovery) GetInstance(kind domain.ServiceKind, sip bool) (domain.ServiceInstance, error) {
	instances, err := d.Instances(kind, sip)
	if err != nil {
		return domain.ServiceInstance{}, err
	}
	return instances[0], nil
}

// SelectBridge delegates to the bridge selector over the live bridge
// registry. configuration_absent when bridge discovery is disabled or the
// facade is stopped.
func (d *Discovery) SelectBridge() (domain.ServiceInstance, error) {
	d.mu.RLock()
	selector := d.selector
	d.mu.RUnlock()
	if selector == nil {
		return domain.ServiceInstance{}, NewConfigurationAbsentError("bridge discovery is not configured", nil)
	}
	return selector.Select()
}

// Stats returns one entry per active subsystem, keyed by the stable operator
// facing names. Disabled subsystems are absent from the map entirely.
func (d *Discovery) Stats() map[string]any {
	d.mu.RLock()
	defer d.mu.RUnlock()
	stats := make(map[string]any)
	if !d.started {
		return stats
	}
	for key, reg := range d.registries {
		stats[statsKey(key)] = reg.Stats()
	}
	if d.selector != nil {
		stats["bridge_selector"] = d.selector.Stats()
	}
	return stats
}

// statsKey maps a brewery to its stable stats/log name. These names are an
// external contract with the operator dashboard; do not rename.
func statsKey(key breweryKey) string {
	if key.kind == domain.KindRecorder && key.sip {
		return "sip_recorder"
	}
	return string(key.kind)
}
