// Copyright 2026 The Wavelink Authors
// SPDX-License-Identifier: Apache-2.0

// Package transport detects real-time transport capability and maps
// configuration to pion/webrtc types.
//
// [Detect] probes the runtime exactly once per process (constructing
// a pion PeerConnection with a data channel) and caches the result,
// since transport availability does not change while the process
// runs. Session-negotiation code receives the resulting [Capability]
// as a value rather than re-probing ad hoc. The Capability enumeration
// is closed: native runtimes only ever detect [CapabilityStandard] or
// [CapabilityUnsupported], but the legacy browser-prefixed values are
// members so capability reports from browser peers decode into the
// same set.
//
// [PeerConfiguration] converts the plain config.ICEConfig surface
// (string URLs and credentials) into a webrtc.Configuration with
// ICE servers and transport policy applied.
package transport
