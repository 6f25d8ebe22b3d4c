// Copyright 2026 The Wavelink Authors
// SPDX-License-Identifier: Apache-2.0

// Package ident provides peer identifier and API key validation and
// short random identifier generation for client-session correlation.
//
// Validation is advisory: callers get a boolean, not an error, because
// a failed format check is a caller mistake to surface synchronously,
// not a fault to propagate. Random identifiers are low-collision but
// not cryptographically secure and not globally unique; callers that
// need global uniqueness must tolerate and retry collisions.
package ident

import (
	"math/rand/v2"
	"regexp"
	"strconv"

	"github.com/google/uuid"
)

// peerIDPattern matches identifiers made of alphanumeric, underscore,
// and hyphen segments joined by single space, underscore, or hyphen
// separators: no leading or trailing separator, no consecutive
// separators, no other characters.
var peerIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+([ _-][A-Za-z0-9_-]+)*$`)

// ValidatePeerID reports whether id is an acceptable peer identifier.
// An empty id is valid: it means "let the server assign one".
func ValidatePeerID(id string) bool {
	if id == "" {
		return true
	}
	return peerIDPattern.MatchString(id)
}

// ValidateAPIKey reports whether key is an acceptable API key: empty
// (absent), or the canonical UUID textual form: lowercase hex in
// 8-4-4-4-12 groups. Only the canonical form passes: uuid.Parse
// accepts several variants, so the parsed value must reproduce the
// input exactly.
func ValidateAPIKey(key string) bool {
	if key == "" {
		return true
	}
	parsed, err := uuid.Parse(key)
	if err != nil {
		return false
	}
	return parsed.String() == key
}

// tokenAlphabet is the base-36 digit set used by RandomID.
const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandomToken returns a short base-36 identifier for client-session
// correlation. Roughly 12–13 characters of a random 64-bit value;
// collisions are improbable but possible.
func RandomToken() string {
	return strconv.FormatUint(rand.Uint64(), 36)
}

// RandomID returns a fixed-length identifier of length characters
// drawn from the base-36 alphabet. Generation always yields exactly
// the requested length; short draws are extended, never padded with
// a filler character.
func RandomID(length int) string {
	id := make([]byte, length)
	for i := range id {
		id[i] = tokenAlphabet[rand.IntN(len(tokenAlphabet))]
	}
	return string(id)
}

// DefaultIDLength is the length used by NewID.
const DefaultIDLength = 16

// NewID returns a RandomID of the default length.
func NewID() string {
	return RandomID(DefaultIDLength)
}
