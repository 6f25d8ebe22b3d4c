// Copyright 2026 The Wavelink Authors
// SPDX-License-Identifier: Apache-2.0

// Package signal defines the closed vocabulary of Wavelink's signaling
// protocol: the message kinds exchanged with the signaling server and
// with peers, and the binary frame envelope that carries them.
//
// Message kinds come in two disjoint families. [ClientKind] values are
// client-originated (offers, answers, candidates, room operations, SFU
// negotiation, keep-alive, credential refresh). [ServerKind] values are
// server-originated (session open, relayed offers/answers/candidates,
// room events, errors). Both families are closed enumerations of typed
// constants with stable numeric codes: the code ranges are disjoint
// (client 1–14, server 64–76) so a raw code appearing in a log line or
// wire trace is unambiguous. The sets are fixed at compile time and
// never mutated, so reads need no synchronization.
//
// Consumers that dispatch on a kind should switch over the typed
// constant set rather than comparing raw codes, so that adding a new
// family member shows up as a missing case under exhaustiveness
// linting instead of a silent runtime fallthrough. The package's
// completeness test pins every name/code pair.
//
// A [Frame] is one discrete unit placed on the wire: a kind code, an
// opaque CBOR payload, and optional chunk metadata when the payload is
// one fragment of an oversized transfer (see the chunk package).
// [EncodeFrame] and [DecodeFrame] convert frames to and from bytes via
// lib/codec. Decode failures are classified as [ErrMalformedFrame]
// (truncation, bad CBOR, trailing bytes) or [ErrUnknownKind]
// (unrecognized code); both are local to the frame in question and
// never fatal to the connection or process.
package signal
