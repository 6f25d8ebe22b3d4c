// Copyright 2026 The Wavelink Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"github.com/pion/webrtc/v4"

	"github.com/wavelink-rtc/wavelink/config"
)

// ICEServers converts the configuration's plain ICE server list into
// pion entries. Order is preserved: pion tries servers in sequence.
func ICEServers(cfg config.ICEConfig) []webrtc.ICEServer {
	servers := make([]webrtc.ICEServer, 0, len(cfg.Servers))
	for _, server := range cfg.Servers {
		entry := webrtc.ICEServer{URLs: server.URLs}
		if server.Username != "" {
			entry.Username = server.Username
			entry.Credential = server.Credential
		}
		servers = append(servers, entry)
	}
	return servers
}

// TransportPolicy maps the configuration's policy string to the pion
// enumeration. Unrecognized values fall back to "all"; config
// validation rejects them before they reach here.
func TransportPolicy(policy string) webrtc.ICETransportPolicy {
	if policy == "relay" {
		return webrtc.ICETransportPolicyRelay
	}
	return webrtc.ICETransportPolicyAll
}

// PeerConfiguration builds the webrtc.Configuration for new
// PeerConnections from the client configuration.
func PeerConfiguration(cfg config.ICEConfig) webrtc.Configuration {
	return webrtc.Configuration{
		ICEServers:         ICEServers(cfg),
		ICETransportPolicy: TransportPolicy(cfg.TransportPolicy),
	}
}
