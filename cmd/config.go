package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"confdiscovery/adapters/redispresence"
	"confdiscovery/domain"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envHTTPPort   = "SERVICE_PORT_HTTP"
	envRedisAddr  = "REDIS_ADDR"
	envConfigPath = "CONFIG_PATH"
)

// Defaults applied when the YAML omits the timing knobs.
const (
	defaultStaleTimeout = 15 * time.Second
	defaultPollInterval = 2 * time.Second
)

// Config holds the full confdiscovery configuration: HTTP port and redis
// address from environment variables, the per-brewery toggles and timing
// knobs from the YAML file at CONFIG_PATH.
type Config struct {
	HTTPPort     int
	Redis        redispresence.RedisConfig
	Discovery    domain.DiscoveryConfig
	PollInterval time.Duration
}

// yamlConfig is the root struct for YAML unmarshalling.
type yamlConfig struct {
	StaleTimeoutMs int                    `yaml:"stale_timeout_ms"`
	PollIntervalMs int                    `yaml:"poll_interval_ms"`
	Breweries      map[string]yamlBrewery `yaml:"breweries"`
}

// yamlBrewery is one brewery entry: enabled flag and group name.
type yamlBrewery struct {
	Enabled bool   `yaml:"enabled"`
	Group   string `yaml:"group"`
}

// breweryNames are the YAML keys the config accepts under breweries.
var breweryNames = map[string]bool{
	"bridge":       true,
	"recorder":     true,
	"sip_recorder": true,
	"gateway":      true,
}

// loadYAMLConfig reads and unmarshals the file at path.
func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig loads configuration from environment variables and the YAML
// file at CONFIG_PATH. SERVICE_PORT_HTTP, REDIS_ADDR and CONFIG_PATH are
// required; every enabled brewery must name a group; unknown brewery keys
// are rejected; omitted timing knobs get defaults, negative ones are errors.
func LoadConfig() (*Config, error) {
	httpPortStr := os.Getenv(envHTTPPort)
	if httpPortStr == "" {
		return nil, fmt.Errorf("%s is required", envHTTPPort)
	}
	httpPort, err := strconv.Atoi(httpPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envHTTPPort, err)
	}
	if httpPort <= 0 || httpPort > 65535 {
		return nil, fmt.Errorf("%s must be 1-65535, got %d", envHTTPPort, httpPort)
	}

	redisAddr := os.Getenv(envRedisAddr)
	if redisAddr == "" {
		return nil, fmt.Errorf("%s is required", envRedisAddr)
	}

	configPath := strings.TrimSpace(os.Getenv(envConfigPath))
	if configPath == "" {
		return nil, fmt.Errorf("%s is required", envConfigPath)
	}
	if !filepath.IsAbs(configPath) {
		abs, absErr := filepath.Abs(configPath)
		if absErr != nil {
			return nil, absErr
		}
		configPath = abs
	}
	raw, err := loadYAMLConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configPath, err)
	}

	for name := range raw.Breweries {
		if !breweryNames[name] {
			return nil, fmt.Errorf("unknown brewery %q in %s", name, configPath)
		}
	}

	discovery := domain.DiscoveryConfig{}
	for name, target := range map[string]*domain.BreweryConfig{
		"bridge":       &discovery.Bridge,
		"recorder":     &discovery.Recorder,
		"sip_recorder": &discovery.SIPRecorder,
		"gateway":      &discovery.Gateway,
	} {
		b, ok := raw.Breweries[name]
		if !ok {
			continue
		}
		if b.Enabled && strings.TrimSpace(b.Group) == "" {
			return nil, fmt.Errorf("brewery %q is enabled but has no group", name)
		}
		target.Enabled = b.Enabled
		target.Group = b.Group
	}

	if raw.StaleTimeoutMs < 0 {
		return nil, fmt.Errorf("stale_timeout_ms must not be negative")
	}
	discovery.StaleTimeout = defaultStaleTimeout
	if raw.StaleTimeoutMs > 0 {
		discovery.StaleTimeout = time.Duration(raw.StaleTimeoutMs) * time.Millisecond
	}

	if raw.PollIntervalMs < 0 {
		return nil, fmt.Errorf("poll_interval_ms must not be negative")
	}
	pollInterval := defaultPollInterval
	if raw.PollIntervalMs > 0 {
		pollInterval = time.Duration(raw.PollIntervalMs) * time.Millisecond
	}

	return &Config{
		HTTPPort:     httpPort,
		Redis:        redispresence.RedisConfig{Addr: redisAddr},
		Discovery:    discovery,
		PollInterval: pollInterval,
	}, nil
}
