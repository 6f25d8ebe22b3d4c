// Copyright 2026 The Wavelink Authors
// SPDX-License-Identifier: Apache-2.0

package signal

import "errors"

// ErrUnknownKind reports a message-kind name or code that belongs to
// neither family. Frames carrying an unknown kind are rejected; the
// connection is not torn down.
var ErrUnknownKind = errors.New("signal: unknown message kind")

// ErrMalformedFrame reports a byte sequence that does not decode to a
// well-formed frame: truncated input, an unrecognized CBOR type tag,
// or trailing bytes beyond the declared item. The frame is dropped;
// the error carries the underlying decoder failure for diagnostics.
var ErrMalformedFrame = errors.New("signal: malformed frame")
