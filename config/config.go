// Copyright 2026 The Wavelink Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvVar is the environment variable naming the configuration file
// for [Load].
const EnvVar = "WAVELINK_CONFIG"

// transportFrameLimit is the underlying transport's per-message size
// ceiling. Data.MaxChunkSize must stay strictly below it so the frame
// envelope fits. Mirrors chunk.TransportFrameLimit; duplicated here
// because this package depends on no other Wavelink packages.
const transportFrameLimit = 16 << 10

// Duration wraps time.Duration so interval fields unmarshal from the
// YAML duration strings humans write ("5s", "250ms"); yaml.v3 has no
// native time.Duration support.
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the standard library representation.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// String formats like time.Duration.
func (d Duration) String() string { return time.Duration(d).String() }

// Config is the complete client configuration. Immutable after load:
// pass it by value to constructors.
type Config struct {
	// Discovery configures the signaling/discovery service connection.
	Discovery DiscoveryConfig `yaml:"discovery"`

	// Relay configures the TURN relay service.
	Relay RelayConfig `yaml:"relay"`

	// ICE configures interactive connectivity establishment.
	ICE ICEConfig `yaml:"ice"`

	// Session configures connection lifecycle behavior.
	Session SessionConfig `yaml:"session"`

	// Data configures the data channel payload pipeline.
	Data DataConfig `yaml:"data"`
}

// DiscoveryConfig locates the signaling/discovery service.
type DiscoveryConfig struct {
	// Host is the discovery service hostname.
	Host string `yaml:"host"`

	// Port is the discovery service port.
	Port int `yaml:"port"`

	// Secure selects TLS for the signaling connection.
	Secure bool `yaml:"secure"`

	// Timeout bounds the initial connection attempt.
	Timeout Duration `yaml:"timeout"`
}

// RelayConfig locates the TURN relay service.
type RelayConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// ICEServer describes one STUN or TURN server. Plain strings here;
// the transport package maps them to pion types.
type ICEServer struct {
	// URLs are the server URIs (stun:, turn:, turns: schemes).
	URLs []string `yaml:"urls"`

	// Username and Credential authenticate against TURN servers.
	// Empty for STUN.
	Username   string `yaml:"username,omitempty"`
	Credential string `yaml:"credential,omitempty"`
}

// ICEConfig configures candidate gathering.
type ICEConfig struct {
	// Servers is the default ICE server list, tried in order.
	Servers []ICEServer `yaml:"servers"`

	// TransportPolicy is "all" (direct + relayed candidates) or
	// "relay" (TURN only).
	TransportPolicy string `yaml:"transport_policy"`
}

// SessionConfig configures connection lifecycle behavior.
type SessionConfig struct {
	// ReconnectAttempts is how many times to retry a dropped
	// signaling connection before giving up.
	ReconnectAttempts int `yaml:"reconnect_attempts"`

	// AlternateServerTries is how many alternate discovery servers
	// to try when the primary is unreachable.
	AlternateServerTries int `yaml:"alternate_server_tries"`

	// SendInterval paces the outbound send loop.
	SendInterval Duration `yaml:"send_interval"`

	// PingInterval paces keep-alive pings to the signaling server.
	PingInterval Duration `yaml:"ping_interval"`
}

// DataConfig configures the payload pipeline.
type DataConfig struct {
	// MaxChunkSize caps chunk data bytes for oversized payloads.
	// Must be strictly below the transport's 16 KiB per-message
	// ceiling to leave headroom for the frame envelope.
	MaxChunkSize int `yaml:"max_chunk_size"`
}

// Default returns a Config with standard defaults: public Google STUN,
// one-second send pacing, 25-second keep-alive, and a 16000-byte chunk
// cap below the 16 KiB frame ceiling.
func Default() Config {
	return Config{
		Discovery: DiscoveryConfig{
			Host:    "0.wavelink.io",
			Port:    443,
			Secure:  true,
			Timeout: Duration(10 * time.Second),
		},
		Relay: RelayConfig{
			Host: "turn.wavelink.io",
			Port: 443,
		},
		ICE: ICEConfig{
			Servers: []ICEServer{
				{URLs: []string{"stun:stun.l.google.com:19302"}},
			},
			TransportPolicy: "all",
		},
		Session: SessionConfig{
			ReconnectAttempts:    2,
			AlternateServerTries: 3,
			SendInterval:         Duration(time.Second),
			PingInterval:         Duration(25 * time.Second),
		},
		Data: DataConfig{
			MaxChunkSize: 16000,
		},
	}
}

// Load reads the configuration file named by WAVELINK_CONFIG. Missing
// environment variable returns Default() unchanged.
func Load() (Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates a configuration file. Fields absent
// from the file keep their Default() values.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate performs type and range checks. It does not reach the
// network or resolve hostnames.
func (c Config) Validate() error {
	if c.Discovery.Host == "" {
		return fmt.Errorf("discovery.host is empty")
	}
	if err := validatePort(c.Discovery.Port, "discovery.port"); err != nil {
		return err
	}
	if c.Discovery.Timeout <= 0 {
		return fmt.Errorf("discovery.timeout %v is not positive", c.Discovery.Timeout)
	}
	if c.Relay.Host != "" {
		if err := validatePort(c.Relay.Port, "relay.port"); err != nil {
			return err
		}
	}
	switch c.ICE.TransportPolicy {
	case "all", "relay":
	default:
		return fmt.Errorf("ice.transport_policy %q is not \"all\" or \"relay\"", c.ICE.TransportPolicy)
	}
	for i, server := range c.ICE.Servers {
		if len(server.URLs) == 0 {
			return fmt.Errorf("ice.servers[%d] has no URLs", i)
		}
	}
	if c.Session.ReconnectAttempts < 0 {
		return fmt.Errorf("session.reconnect_attempts %d is negative", c.Session.ReconnectAttempts)
	}
	if c.Session.AlternateServerTries < 0 {
		return fmt.Errorf("session.alternate_server_tries %d is negative", c.Session.AlternateServerTries)
	}
	if c.Session.SendInterval <= 0 {
		return fmt.Errorf("session.send_interval %v is not positive", c.Session.SendInterval)
	}
	if c.Session.PingInterval <= 0 {
		return fmt.Errorf("session.ping_interval %v is not positive", c.Session.PingInterval)
	}
	if c.Data.MaxChunkSize <= 0 || c.Data.MaxChunkSize >= transportFrameLimit {
		return fmt.Errorf("data.max_chunk_size %d outside (0, %d)", c.Data.MaxChunkSize, transportFrameLimit)
	}
	return nil
}

func validatePort(port int, label string) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%s %d outside [1, 65535]", label, port)
	}
	return nil
}
