// Copyright 2026 The Wavelink Authors
// SPDX-License-Identifier: Apache-2.0

// wavelink-inspect decodes a Wavelink wire frame from stdin and
// prints its message kind, chunk metadata, and payload in CBOR
// diagnostic notation (RFC 8949 §8).
//
// Unlike JSON output, diagnostic notation preserves CBOR type
// information: integer vs float, byte strings vs text strings. This
// is the tool to reach for when a wire trace needs inspecting.
//
// Usage:
//
//	wavelink-inspect < frame.bin
//	xxd -p frame.bin | wavelink-inspect --hex
//	wavelink-inspect --raw < payload.cbor
//
// With --raw, stdin is treated as a bare CBOR item rather than a
// frame envelope. Exits non-zero on malformed input.
package main
