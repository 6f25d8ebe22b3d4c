// Copyright 2026 The Wavelink Authors
// SPDX-License-Identifier: Apache-2.0

// Package chunk splits oversized payloads into bounded-size fragments
// for transports with a per-frame size ceiling, and reassembles
// received fragments back into the original payload.
//
// Outbound, a [Splitter] divides a payload into ceil(size/max)
// contiguous ranges in original order. A payload that fits in a single
// frame is passed through untouched (no chunk metadata, no overhead).
// Each fragment of a split payload carries a freshly generated
// parent identifier shared by all of its siblings, its 0-based
// sequence index, the total count, and a BLAKE3 checksum of the
// complete payload. Optionally the payload is zstd-compressed before
// splitting; reassembly reverses this transparently.
//
// Inbound, a [Reassembler] buffers fragments per parent identifier,
// tolerating out-of-order and duplicate delivery, and returns the
// byte-exact original payload once all indices are present. Buffers
// for transfers that never complete (peer disconnected mid-transfer)
// are evicted after a bounded inactivity window, so an abandoned
// transfer cannot leak memory indefinitely.
//
// Splitting is a pure, synchronous computation. Reassembly holds only
// transient per-transfer state: fragments for different parent
// identifiers never contend on the same lock, and completed transfers
// release their buffers immediately. Receive returns the completed
// payload synchronously; callers should hand it to the application
// on their own goroutine rather than blocking the ingestion path.
package chunk
