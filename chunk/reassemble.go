// Copyright 2026 The Wavelink Authors
// SPDX-License-Identifier: Apache-2.0

package chunk

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/zeebo/blake3"

	"github.com/wavelink-rtc/wavelink/lib/clock"
	"github.com/wavelink-rtc/wavelink/signal"
)

const (
	// DefaultEvictAfter is the inactivity window after which a
	// partial transfer is abandoned and its buffer reclaimed. The
	// protocol does not bound transfer duration, so the window is a
	// local hardening choice: long enough for slow links to deliver
	// the next chunk, short enough that a disconnected peer cannot
	// pin memory for long.
	DefaultEvictAfter = 30 * time.Second

	// maxTotal caps the declared chunk count of a single transfer.
	// At DefaultMaxChunkSize this bounds one transfer to ~1 GiB of
	// buffered data.
	maxTotal = 1 << 16
)

// Reassembler accumulates inbound chunks per parent identifier and
// yields each payload once complete. Safe for concurrent use: chunks
// for different parent identifiers never contend on the same lock,
// and concurrent arrivals for one identifier are serialized.
type Reassembler struct {
	clock      clock.Clock
	logger     *slog.Logger
	evictAfter time.Duration

	// mu guards pending, lastSweep, and each entry's metadata and
	// touched timestamp. Chunk data writes are serialized by the
	// per-entry mutex so unrelated transfers do not contend here.
	mu        sync.Mutex
	pending   map[string]*pendingPayload
	lastSweep time.Time
}

// pendingPayload is the reassembly buffer for one parent identifier.
// Metadata fields are fixed at creation; parts and received are
// guarded by mu.
type pendingPayload struct {
	total       uint32
	compression string
	checksum    []byte
	touched     time.Time // guarded by Reassembler.mu

	mu       sync.Mutex
	parts    [][]byte
	received uint32
}

// ReassemblerOption configures a Reassembler.
type ReassemblerOption func(*Reassembler)

// WithClock injects the time source used for eviction. Tests pass
// clock.Fake to exercise the inactivity window deterministically.
func WithClock(c clock.Clock) ReassemblerOption {
	return func(r *Reassembler) { r.clock = c }
}

// WithLogger sets the logger for dropped-transfer diagnostics.
func WithLogger(logger *slog.Logger) ReassemblerOption {
	return func(r *Reassembler) { r.logger = logger }
}

// WithEvictAfter overrides the inactivity window for abandoning
// partial transfers.
func WithEvictAfter(d time.Duration) ReassemblerOption {
	return func(r *Reassembler) { r.evictAfter = d }
}

// NewReassembler creates a reassembler with the given options.
func NewReassembler(opts ...ReassemblerOption) *Reassembler {
	r := &Reassembler{
		clock:      clock.Real(),
		logger:     slog.Default(),
		evictAfter: DefaultEvictAfter,
		pending:    make(map[string]*pendingPayload),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.lastSweep = r.clock.Now()
	return r
}

// Receive stores one chunk. It returns the complete payload once all
// indices 0..total-1 for the chunk's parent have arrived, and nil
// while the transfer is still partial. Out-of-order arrival is
// tolerated; redelivery of an already-received index overwrites
// idempotently. Metadata conflicting with the in-flight transfer for
// the same parent drops the whole transfer with
// [ErrInconsistentChunkMeta].
//
// Receive never blocks on delivery: the returned payload should be
// handed to the application on the caller's own goroutine.
func (r *Reassembler) Receive(meta *signal.ChunkMeta, data []byte) ([]byte, error) {
	if meta == nil {
		// Non-chunked data frame: the payload is already whole.
		return data, nil
	}
	if meta.Total == 0 || meta.Index >= meta.Total {
		return nil, fmt.Errorf("%w: parent %s index %d of %d",
			ErrInconsistentChunkMeta, meta.Parent, meta.Index, meta.Total)
	}
	if meta.Total > maxTotal {
		return nil, fmt.Errorf("%w: parent %s declares %d chunks (limit %d)",
			ErrPayloadTooLarge, meta.Parent, meta.Total, maxTotal)
	}

	now := r.clock.Now()

	r.mu.Lock()
	r.sweepLocked(now)

	entry, ok := r.pending[meta.Parent]
	if !ok {
		entry = &pendingPayload{
			total:       meta.Total,
			compression: meta.Compression,
			checksum:    meta.Checksum,
			parts:       make([][]byte, meta.Total),
		}
		r.pending[meta.Parent] = entry
	} else if entry.total != meta.Total ||
		entry.compression != meta.Compression ||
		!bytes.Equal(entry.checksum, meta.Checksum) {
		// The sender's view of the transfer changed mid-flight.
		// Nothing already buffered can be trusted.
		delete(r.pending, meta.Parent)
		r.mu.Unlock()
		r.logger.Warn("dropping in-flight payload with conflicting chunk metadata",
			"parent", meta.Parent,
			"declared_total", meta.Total,
			"buffered_total", entry.total)
		return nil, fmt.Errorf("%w: parent %s declared total %d, in-flight transfer has %d",
			ErrInconsistentChunkMeta, meta.Parent, meta.Total, entry.total)
	}
	entry.touched = now
	r.mu.Unlock()

	entry.mu.Lock()
	if entry.parts[meta.Index] == nil {
		entry.received++
	}
	entry.parts[meta.Index] = data
	complete := entry.received == entry.total
	var joined []byte
	if complete {
		size := 0
		for _, part := range entry.parts {
			size += len(part)
		}
		joined = make([]byte, 0, size)
		for _, part := range entry.parts {
			joined = append(joined, part...)
		}
	}
	entry.mu.Unlock()

	if !complete {
		return nil, nil
	}

	r.mu.Lock()
	delete(r.pending, meta.Parent)
	r.mu.Unlock()

	return r.finish(meta, joined)
}

// finish reverses compression and verifies the payload checksum.
func (r *Reassembler) finish(meta *signal.ChunkMeta, joined []byte) ([]byte, error) {
	payload := joined
	if meta.Compression != "" {
		if meta.Compression != CompressionZstd {
			return nil, fmt.Errorf("%w: parent %s uses unsupported compression %q",
				ErrInconsistentChunkMeta, meta.Parent, meta.Compression)
		}
		decompressed, err := zstdDecoder.DecodeAll(joined, nil)
		if err != nil {
			return nil, fmt.Errorf("chunk: decompressing payload %s: %w", meta.Parent, err)
		}
		payload = decompressed
	}

	if len(meta.Checksum) > 0 {
		sum := blake3.Sum256(payload)
		if !bytes.Equal(sum[:], meta.Checksum) {
			r.logger.Warn("discarding reassembled payload with bad checksum",
				"parent", meta.Parent, "size", len(payload))
			return nil, fmt.Errorf("%w: parent %s", ErrChecksumMismatch, meta.Parent)
		}
	}
	return payload, nil
}

// Pending returns the number of in-flight partial transfers.
func (r *Reassembler) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// EvictIdle drops every partial transfer that has been idle longer
// than the eviction window and returns the number dropped. Eviction
// also runs lazily during Receive; this entry point exists for
// explicit sweeps on disconnect paths and for tests.
func (r *Reassembler) EvictIdle() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.evictLocked(r.clock.Now())
}

// sweepLocked runs a lazy eviction pass at most once per quarter of
// the eviction window. Caller holds r.mu.
func (r *Reassembler) sweepLocked(now time.Time) {
	if now.Sub(r.lastSweep) < r.evictAfter/4 {
		return
	}
	r.lastSweep = now
	r.evictLocked(now)
}

// evictLocked drops idle entries. Caller holds r.mu.
func (r *Reassembler) evictLocked(now time.Time) int {
	evicted := 0
	for parent, entry := range r.pending {
		if now.Sub(entry.touched) >= r.evictAfter {
			delete(r.pending, parent)
			evicted++
			entry.mu.Lock()
			received := entry.received
			entry.mu.Unlock()
			r.logger.Warn("evicting abandoned partial transfer",
				"parent", parent,
				"received", received,
				"total", entry.total,
				"idle", now.Sub(entry.touched))
		}
	}
	return evicted
}
