// Copyright 2026 The Wavelink Authors
// SPDX-License-Identifier: Apache-2.0

package ident

import (
	"strings"
	"testing"
)

func TestValidatePeerID(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"", true}, // absent means "auto-assign"
		{"alice", true},
		{"ALICE42", true},
		{"a b-c_d", true},
		{"peer_one-two three", true},
		{"a", true},
		{"a  b", false},  // consecutive separators
		{"a!b", false},   // disallowed character
		{" alice", false}, // leading separator
		{"alice ", false}, // trailing separator
		{"-alice", true},  // hyphen is a segment character too
		{"日本", false},
		{"a\tb", false},
	}
	for _, tc := range cases {
		if got := ValidatePeerID(tc.id); got != tc.want {
			t.Errorf("ValidatePeerID(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestValidateAPIKey(t *testing.T) {
	cases := []struct {
		key  string
		want bool
	}{
		{"", true}, // absent is acceptable
		{"12345678-1234-1234-1234-123456789012", true},
		{"f81d4fae-7dec-11e0-a765-00a0c91e6bf6", true},
		{"not-a-uuid", false},
		{"F81D4FAE-7DEC-11E0-A765-00A0C91E6BF6", false}, // uppercase is not canonical
		{"urn:uuid:f81d4fae-7dec-11e0-a765-00a0c91e6bf6", false},
		{"f81d4fae7dec11e0a76500a0c91e6bf6", false}, // missing hyphens
		{"12345678-1234-1234-1234-12345678901", false},
	}
	for _, tc := range cases {
		if got := ValidateAPIKey(tc.key); got != tc.want {
			t.Errorf("ValidateAPIKey(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestRandomToken(t *testing.T) {
	token := RandomToken()
	if token == "" {
		t.Fatal("empty token")
	}
	for _, c := range token {
		if !strings.ContainsRune(tokenAlphabet, c) {
			t.Errorf("token %q contains %q outside the base-36 alphabet", token, c)
		}
	}

	// Low collision probability: a small sample should not collide.
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token := RandomToken()
		if seen[token] {
			t.Fatalf("token collision after %d draws: %q", i, token)
		}
		seen[token] = true
	}
}

func TestRandomID(t *testing.T) {
	for _, length := range []int{1, 8, 16, 64} {
		id := RandomID(length)
		if len(id) != length {
			t.Errorf("RandomID(%d) length = %d", length, len(id))
		}
		for _, c := range id {
			if !strings.ContainsRune(tokenAlphabet, c) {
				t.Errorf("id %q contains %q outside the base-36 alphabet", id, c)
			}
		}
	}

	if len(NewID()) != DefaultIDLength {
		t.Errorf("NewID length = %d, want %d", len(NewID()), DefaultIDLength)
	}
}
