// Copyright 2026 The Wavelink Authors
// SPDX-License-Identifier: Apache-2.0

package signal

import (
	"errors"
	"testing"
)

// wireNames pins every name/code pair in both families. The codes are
// protocol constants: a change here is a wire-compatibility break,
// not a refactor.
var wireNames = []struct {
	kind Kind
	name string
	code uint8
}{
	{ClientSendOffer, "SEND_OFFER", 1},
	{ClientSendAnswer, "SEND_ANSWER", 2},
	{ClientSendCandidate, "SEND_CANDIDATE", 3},
	{ClientSendLeave, "SEND_LEAVE", 4},
	{ClientRoomJoin, "ROOM_JOIN", 5},
	{ClientRoomLeave, "ROOM_LEAVE", 6},
	{ClientRoomGetLogs, "ROOM_GET_LOGS", 7},
	{ClientRoomGetUsers, "ROOM_GET_USERS", 8},
	{ClientRoomSendData, "ROOM_SEND_DATA", 9},
	{ClientSFUGetOffer, "SFU_GET_OFFER", 10},
	{ClientSFUAnswer, "SFU_ANSWER", 11},
	{ClientSFUCandidate, "SFU_CANDIDATE", 12},
	{ClientPing, "PING", 13},
	{ClientUpdateCredential, "UPDATE_CREDENTIAL", 14},
	{ServerOpen, "OPEN", 64},
	{ServerError, "ERROR", 65},
	{ServerOffer, "OFFER", 66},
	{ServerAnswer, "ANSWER", 67},
	{ServerCandidate, "CANDIDATE", 68},
	{ServerLeave, "LEAVE", 69},
	{ServerAuthExpiresIn, "AUTH_EXPIRES_IN", 70},
	{ServerRoomLogs, "ROOM_LOGS", 71},
	{ServerRoomUsers, "ROOM_USERS", 72},
	{ServerRoomData, "ROOM_DATA", 73},
	{ServerRoomUserJoin, "ROOM_USER_JOIN", 74},
	{ServerRoomUserLeave, "ROOM_USER_LEAVE", 75},
	{ServerSFUOffer, "SFU_OFFER", 76},
}

func TestWireNamesAndCodes(t *testing.T) {
	for _, entry := range wireNames {
		if got := entry.kind.Name(); got != entry.name {
			t.Errorf("%T(%d).Name() = %q, want %q", entry.kind, entry.kind.Code(), got, entry.name)
		}
		if got := entry.kind.Code(); got != entry.code {
			t.Errorf("%s.Code() = %d, want %d", entry.name, got, entry.code)
		}
	}
}

// TestFamiliesComplete verifies the wireNames table and the exported
// closed sets agree, and that no two kinds share a name or code.
func TestFamiliesComplete(t *testing.T) {
	if got, want := len(ClientKinds()), 14; got != want {
		t.Errorf("client family has %d members, want %d", got, want)
	}
	if got, want := len(ServerKinds()), 13; got != want {
		t.Errorf("server family has %d members, want %d", got, want)
	}
	if got, want := len(wireNames), 27; got != want {
		t.Fatalf("pinned table has %d entries, want %d", got, want)
	}

	names := make(map[string]bool)
	codes := make(map[uint8]bool)
	for _, entry := range wireNames {
		if names[entry.name] {
			t.Errorf("duplicate name %q", entry.name)
		}
		if codes[entry.code] {
			t.Errorf("duplicate code %d", entry.code)
		}
		names[entry.name] = true
		codes[entry.code] = true
	}
}

func TestParseKind(t *testing.T) {
	for _, entry := range wireNames {
		kind, err := ParseKind(entry.name)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", entry.name, err)
		}
		if kind != entry.kind {
			t.Errorf("ParseKind(%q) = %v, want %v", entry.name, kind, entry.kind)
		}
	}

	if _, err := ParseKind("NOT_A_KIND"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind unknown name error = %v, want ErrUnknownKind", err)
	}
	// Family-specific parsers reject the other family's names.
	if _, err := ParseClientKind("OPEN"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseClientKind(server name) error = %v, want ErrUnknownKind", err)
	}
	if _, err := ParseServerKind("PING"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseServerKind(client name) error = %v, want ErrUnknownKind", err)
	}
}

func TestKindFromCode(t *testing.T) {
	for _, entry := range wireNames {
		kind, err := KindFromCode(entry.code)
		if err != nil {
			t.Fatalf("KindFromCode(%d): %v", entry.code, err)
		}
		if kind != entry.kind {
			t.Errorf("KindFromCode(%d) = %v, want %v", entry.code, kind, entry.kind)
		}
	}

	for _, code := range []uint8{0, 15, 63, 77, 255} {
		if _, err := KindFromCode(code); !errors.Is(err, ErrUnknownKind) {
			t.Errorf("KindFromCode(%d) error = %v, want ErrUnknownKind", code, err)
		}
	}
}

func TestFamilyPartition(t *testing.T) {
	for _, kind := range ClientKinds() {
		if !kind.Client() {
			t.Errorf("%s.Client() = false", kind)
		}
	}
	for _, kind := range ServerKinds() {
		if kind.Client() {
			t.Errorf("%s.Client() = true", kind)
		}
	}
}

func TestUnknownCodeName(t *testing.T) {
	// Out-of-range values format rather than panic: codes can arrive
	// from the wire before validation.
	if got := ClientKind(200).Name(); got != "CLIENT_UNKNOWN(200)" {
		t.Errorf("ClientKind(200).Name() = %q", got)
	}
	if got := ServerKind(7).Name(); got != "SERVER_UNKNOWN(7)" {
		t.Errorf("ServerKind(7).Name() = %q", got)
	}
}
