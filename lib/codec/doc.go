// Copyright 2026 The Wavelink Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides Wavelink's standard CBOR encoding configuration.
//
// Every value that crosses the wire (signaling frames, chunked data
// payloads, capability reports) is encoded as CBOR through this
// package. The encoder uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. The same logical value always produces
// identical bytes, and decoding the result yields a value structurally
// equal to the input for every supported shape: nil, booleans,
// integers, floats, strings, byte strings, and nested sequences and
// string-keyed maps of those. Integers and floats round-trip without
// precision loss.
//
// For buffer-oriented operations (single frames):
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations (a socket carrying many frames):
//
//	encoder := codec.NewEncoder(conn)
//	decoder := codec.NewDecoder(conn)
//
// Marshal and Unmarshal are pure: no side effects, no retained
// references to their arguments. Decode failures are returned as
// errors and never terminate the caller; the signal package wraps
// them into its malformed-frame taxonomy.
package codec
