// Copyright 2026 The Wavelink Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"fmt"
	"sync"

	"github.com/pion/webrtc/v4"
)

// Capability identifies which real-time transport implementation is
// available in the current runtime.
type Capability int

const (
	// CapabilityUnsupported means no usable transport implementation
	// was found. Session negotiation must fail fast rather than
	// attempt a connection.
	CapabilityUnsupported Capability = iota

	// CapabilityStandard is a spec-conformant PeerConnection with
	// data channel support (pion/webrtc in native runtimes).
	CapabilityStandard

	// CapabilityLegacyMoz is the Firefox-prefixed implementation.
	// Never detected natively; present so capability reports from
	// browser peers decode into the closed set.
	CapabilityLegacyMoz

	// CapabilityLegacyWebKit is the Chrome/WebKit-prefixed
	// implementation. Never detected natively.
	CapabilityLegacyWebKit
)

// String returns the capability's stable name.
func (c Capability) String() string {
	switch c {
	case CapabilityUnsupported:
		return "unsupported"
	case CapabilityStandard:
		return "standard"
	case CapabilityLegacyMoz:
		return "moz"
	case CapabilityLegacyWebKit:
		return "webkit"
	default:
		return fmt.Sprintf("capability(%d)", int(c))
	}
}

// ParseCapability resolves a capability name from a peer's capability
// report.
func ParseCapability(name string) (Capability, error) {
	switch name {
	case "unsupported":
		return CapabilityUnsupported, nil
	case "standard":
		return CapabilityStandard, nil
	case "moz":
		return CapabilityLegacyMoz, nil
	case "webkit":
		return CapabilityLegacyWebKit, nil
	default:
		return CapabilityUnsupported, fmt.Errorf("transport: unknown capability %q", name)
	}
}

// Supported reports whether the capability can carry a session.
func (c Capability) Supported() bool {
	return c != CapabilityUnsupported
}

// detectOnce caches the probe result for the process lifetime. The
// environment does not change at runtime, so one probe suffices.
var detectOnce = sync.OnceValue(probe)

// Detect returns the runtime's transport capability, probing on first
// call and returning the cached result thereafter.
func Detect() Capability {
	return detectOnce()
}

// probe attempts to construct a PeerConnection and open a data
// channel. Construction is local-only: no network traffic and no ICE
// gathering, so it exercises the implementation's availability rather
// than connectivity.
func probe() Capability {
	pc, err := webrtc.NewPeerConnection(webrtc.Configuration{})
	if err != nil {
		return CapabilityUnsupported
	}
	defer pc.Close()

	if _, err := pc.CreateDataChannel("capability-probe", nil); err != nil {
		return CapabilityUnsupported
	}
	return CapabilityStandard
}
