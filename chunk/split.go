// Copyright 2026 The Wavelink Authors
// SPDX-License-Identifier: Apache-2.0

package chunk

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/zeebo/blake3"

	"github.com/wavelink-rtc/wavelink/lib/codec"
	"github.com/wavelink-rtc/wavelink/signal"
)

// Size limits. These are protocol constants shared with the transport
// layer's frame budget.
const (
	// TransportFrameLimit is the absolute per-frame size ceiling of
	// the underlying transport (SCTP data channel message limit).
	// No encoded frame may exceed it.
	TransportFrameLimit = 16 << 10 // 16 KiB

	// DefaultMaxChunkSize is the default cap on chunk data bytes.
	// Strictly below TransportFrameLimit to leave headroom for the
	// CBOR envelope and chunk metadata (kind code, parent UUID,
	// indices, checksum: under 120 bytes worst case).
	DefaultMaxChunkSize = 16000

	// CompressionZstd is the compression label carried in chunk
	// metadata for zstd-compressed transfers.
	CompressionZstd = "zstd"
)

// zstdEncoder and zstdDecoder are reused across calls to avoid
// repeated initialization overhead. zstd.Encoder and zstd.Decoder
// are safe for concurrent use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic("chunk: zstd encoder initialization failed: " + err.Error())
	}

	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("chunk: zstd decoder initialization failed: " + err.Error())
	}
}

// Chunk is one outbound fragment produced by a Splitter. Meta is nil
// when the payload fit in a single frame and was passed through
// whole. Data is a slice into the original payload (or its compressed
// form); it stays valid as long as the caller does not modify the
// payload buffer.
type Chunk struct {
	Meta *signal.ChunkMeta
	Data []byte
}

// Splitter divides payloads into bounded-size chunks. Immutable after
// construction and safe for concurrent use.
type Splitter struct {
	maxChunkSize int
	compress     bool
}

// SplitterOption configures a Splitter.
type SplitterOption func(*Splitter)

// WithMaxChunkSize sets the maximum chunk data size in bytes. The
// value must leave headroom for the frame envelope below the
// transport's per-frame ceiling; NewSplitter rejects values outside
// (0, TransportFrameLimit).
func WithMaxChunkSize(n int) SplitterOption {
	return func(s *Splitter) { s.maxChunkSize = n }
}

// WithCompression enables zstd compression of payloads that exceed
// the chunking threshold. Compression is applied before splitting
// and only kept when it actually shrinks the payload; single-frame
// payloads are never compressed.
func WithCompression() SplitterOption {
	return func(s *Splitter) { s.compress = true }
}

// NewSplitter creates a splitter with the given options.
func NewSplitter(opts ...SplitterOption) (*Splitter, error) {
	s := &Splitter{maxChunkSize: DefaultMaxChunkSize}
	for _, opt := range opts {
		opt(s)
	}
	if s.maxChunkSize <= 0 || s.maxChunkSize >= TransportFrameLimit {
		return nil, fmt.Errorf("chunk: max chunk size %d outside (0, %d)",
			s.maxChunkSize, TransportFrameLimit)
	}
	return s, nil
}

// MaxChunkSize returns the configured chunk data cap.
func (s *Splitter) MaxChunkSize() int { return s.maxChunkSize }

// Split divides payload into chunks. A payload of maxChunkSize bytes
// or fewer yields exactly one Chunk with nil Meta. A larger payload
// yields ceil(size/maxChunkSize) chunks in original byte order, all
// sharing a freshly generated parent identifier and declaring the
// same total, each carrying its 0-based index and the BLAKE3
// checksum of the complete original payload.
func (s *Splitter) Split(payload []byte) ([]Chunk, error) {
	if len(payload) <= s.maxChunkSize {
		return []Chunk{{Data: payload}}, nil
	}

	data := payload
	compression := ""
	if s.compress {
		compressed := zstdEncoder.EncodeAll(payload, nil)
		if len(compressed) < len(payload) {
			data = compressed
			compression = CompressionZstd
		}
	}

	checksum := blake3.Sum256(payload)
	parent := uuid.NewString()
	total := uint32((len(data) + s.maxChunkSize - 1) / s.maxChunkSize)

	chunks := make([]Chunk, 0, total)
	for index := uint32(0); index < total; index++ {
		start := int(index) * s.maxChunkSize
		end := min(start+s.maxChunkSize, len(data))
		chunks = append(chunks, Chunk{
			Meta: &signal.ChunkMeta{
				Parent:      parent,
				Index:       index,
				Total:       total,
				Compression: compression,
				Checksum:    checksum[:],
			},
			Data: data[start:end],
		})
	}
	return chunks, nil
}

// Frames wraps chunks into wire frames tagged with the given kind.
// Chunk data is encoded as a CBOR byte string payload; chunk metadata
// rides in the frame envelope.
func Frames(kind signal.Kind, chunks []Chunk) ([]*signal.Frame, error) {
	frames := make([]*signal.Frame, 0, len(chunks))
	for _, c := range chunks {
		payload, err := codec.Marshal(c.Data)
		if err != nil {
			return nil, fmt.Errorf("chunk: encoding chunk payload: %w", err)
		}
		frames = append(frames, &signal.Frame{
			Kind:    kind.Code(),
			Payload: payload,
			Chunk:   c.Meta,
		})
	}
	return frames, nil
}

// FromFrame extracts the chunk metadata and raw data bytes from an
// inbound data frame, ready to feed to a Reassembler. The metadata is
// nil for non-chunked data frames.
func FromFrame(frame *signal.Frame) (*signal.ChunkMeta, []byte, error) {
	var data []byte
	if err := frame.DecodePayload(&data); err != nil {
		return nil, nil, err
	}
	return frame.Chunk, data, nil
}
