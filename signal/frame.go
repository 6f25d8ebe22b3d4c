// Copyright 2026 The Wavelink Authors
// SPDX-License-Identifier: Apache-2.0

package signal

import (
	"fmt"

	"github.com/wavelink-rtc/wavelink/lib/codec"
)

// Frame is the wire envelope for one signaling message: a kind code,
// an opaque CBOR-encoded payload, and optional chunk metadata when
// the payload is one fragment of an oversized transfer.
//
// The payload stays encoded (codec.RawMessage) so the envelope can be
// decoded, classified, and routed without touching application data.
type Frame struct {
	// Kind is the numeric message-kind code. Resolve it with
	// [Frame.MessageKind]; construct frames with [NewFrame] so the
	// code is always a family member.
	Kind uint8 `cbor:"kind"`

	// Payload is the CBOR-encoded message body. May be empty for
	// kinds that carry no body (e.g. PING).
	Payload codec.RawMessage `cbor:"payload,omitempty"`

	// Chunk is set only on fragments of an oversized payload.
	Chunk *ChunkMeta `cbor:"chunk,omitempty"`
}

// ChunkMeta tags one fragment of an oversized payload with the
// ordering metadata the receiver needs for reassembly. It is wire
// vocabulary; the splitting and reassembly logic lives in the chunk
// package.
type ChunkMeta struct {
	// Parent is the opaque correlation token shared by every chunk
	// of one original payload.
	Parent string `cbor:"parent"`

	// Index is the 0-based, contiguous sequence index of this chunk.
	Index uint32 `cbor:"index"`

	// Total is the number of chunks in the transfer. Every chunk of
	// one parent declares the same total.
	Total uint32 `cbor:"total"`

	// Compression names the algorithm applied to the payload before
	// splitting ("zstd"), or is empty for uncompressed transfers.
	Compression string `cbor:"compression,omitempty"`

	// Checksum is the BLAKE3 hash of the complete original
	// (uncompressed) payload, verified after reassembly.
	Checksum []byte `cbor:"checksum,omitempty"`
}

// NewFrame encodes body via lib/codec and wraps it in a frame of the
// given kind. A nil body produces a frame with no payload.
func NewFrame(kind Kind, body any) (*Frame, error) {
	frame := &Frame{Kind: kind.Code()}
	if body != nil {
		payload, err := codec.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("signal: encoding %s payload: %w", kind.Name(), err)
		}
		frame.Payload = payload
	}
	return frame, nil
}

// MessageKind resolves the frame's numeric code to its typed kind.
func (f *Frame) MessageKind() (Kind, error) {
	return KindFromCode(f.Kind)
}

// DecodePayload decodes the frame's payload into v via lib/codec.
func (f *Frame) DecodePayload(v any) error {
	if err := codec.Unmarshal(f.Payload, v); err != nil {
		return fmt.Errorf("%w: payload: %v", ErrMalformedFrame, err)
	}
	return nil
}

// EncodeFrame serializes a frame to its wire bytes. Encoding is
// deterministic: the same frame always produces identical bytes.
func EncodeFrame(f *Frame) ([]byte, error) {
	data, err := codec.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("signal: encoding frame: %w", err)
	}
	return data, nil
}

// DecodeFrame parses wire bytes into a frame and validates the kind
// code against the closed families. Truncated or trailing input fails
// with [ErrMalformedFrame]; an unrecognized code fails with
// [ErrUnknownKind]. Both reject only this frame; the caller's read
// loop continues.
func DecodeFrame(data []byte) (*Frame, error) {
	var frame Frame
	if err := codec.Unmarshal(data, &frame); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	if _, err := KindFromCode(frame.Kind); err != nil {
		return nil, err
	}
	return &frame, nil
}
