// Copyright 2026 The Wavelink Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for Wavelink
// clients.
//
// Configuration is loaded from a single file specified by either the
// WAVELINK_CONFIG environment variable (via [Load]) or an explicit
// path (via [LoadFile]). There are no fallbacks, no home-directory
// discovery, and no per-field environment overrides. This keeps
// configuration deterministic and auditable.
//
// The loaded [Config] is a plain immutable value: construct it once at
// startup, validate it, and pass it (or the relevant sub-struct) to
// component constructors. Nothing in this package or its consumers
// mutates configuration after load; there is deliberately no shared
// mutable settings object.
//
// Key exports:
//
//   - [Config] -- master struct with Discovery, Relay, ICE, Session, Data
//   - [Default] -- returns a Config with standard defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other Wavelink packages.
package config
