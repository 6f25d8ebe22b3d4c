// Copyright 2026 The Wavelink Authors
// SPDX-License-Identifier: Apache-2.0

package chunk

import "errors"

// ErrInconsistentChunkMeta reports chunk metadata that conflicts with
// an in-flight transfer for the same parent identifier (a different
// total count, compression algorithm, or checksum), or metadata that
// is internally invalid (zero total, index out of range). The entire
// in-flight payload for that parent is dropped, since it cannot be
// reassembled safely.
var ErrInconsistentChunkMeta = errors.New("chunk: inconsistent chunk metadata")

// ErrChecksumMismatch reports a reassembled payload whose BLAKE3
// checksum does not match the value declared by the sender. The
// payload is discarded.
var ErrChecksumMismatch = errors.New("chunk: payload checksum mismatch")

// ErrPayloadTooLarge reports a chunk whose data exceeds the
// splitter's maximum chunk size, or a declared transfer too large to
// buffer.
var ErrPayloadTooLarge = errors.New("chunk: payload too large")
