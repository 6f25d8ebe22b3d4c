// Copyright 2026 The Wavelink Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source for testability.
//
// Production code accepts a Clock parameter instead of calling
// time.Now directly. In production, Real() provides standard library
// behavior. In tests, Fake() provides a deterministic clock that
// advances only when Advance is called; the chunk package's
// reassembly eviction tests depend on this to exercise the inactivity
// window without sleeping.
package clock

import "time"

// Clock abstracts the current time. Every production function that
// reads the wall clock should take a Clock (or be a method on a
// struct with a Clock field) instead of calling time.Now.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
