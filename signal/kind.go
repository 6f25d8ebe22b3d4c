// Copyright 2026 The Wavelink Authors
// SPDX-License-Identifier: Apache-2.0

package signal

import "fmt"

// Kind is a member of one of the two message-kind families. It is
// implemented only by [ClientKind] and [ServerKind]; the interface
// exists so transport code can log and route frames uniformly without
// losing the family distinction.
type Kind interface {
	// Code returns the stable numeric code used on the wire and in
	// logs. Codes never change within a protocol version.
	Code() uint8

	// Name returns the canonical protocol name (e.g. "SEND_OFFER").
	Name() string

	// Client reports whether the kind is client-originated.
	Client() bool
}

// ClientKind identifies a client-originated signaling message.
// Codes occupy the range 1–14.
type ClientKind uint8

// Client-originated message kinds. The numeric codes are protocol
// constants: they appear in wire traces and must remain stable.
const (
	ClientSendOffer        ClientKind = 1  // SDP offer to a remote peer
	ClientSendAnswer       ClientKind = 2  // SDP answer to a remote peer
	ClientSendCandidate    ClientKind = 3  // ICE candidate to a remote peer
	ClientSendLeave        ClientKind = 4  // notify a peer of disconnect
	ClientRoomJoin         ClientKind = 5  // join a named room
	ClientRoomLeave        ClientKind = 6  // leave a room
	ClientRoomGetLogs      ClientKind = 7  // request room event history
	ClientRoomGetUsers     ClientKind = 8  // request room member list
	ClientRoomSendData     ClientKind = 9  // broadcast data to a room
	ClientSFUGetOffer      ClientKind = 10 // request an offer from the SFU
	ClientSFUAnswer        ClientKind = 11 // SDP answer to the SFU
	ClientSFUCandidate     ClientKind = 12 // ICE candidate to the SFU
	ClientPing             ClientKind = 13 // keep-alive
	ClientUpdateCredential ClientKind = 14 // refresh auth credential
)

// ServerKind identifies a server-originated signaling message.
// Codes occupy the range 64–76, disjoint from client codes.
type ServerKind uint8

// Server-originated message kinds.
const (
	ServerOpen          ServerKind = 64 // session established, peer ID assigned
	ServerError         ServerKind = 65 // server-side error report
	ServerOffer         ServerKind = 66 // relayed SDP offer from a peer
	ServerAnswer        ServerKind = 67 // relayed SDP answer from a peer
	ServerCandidate     ServerKind = 68 // relayed ICE candidate from a peer
	ServerLeave         ServerKind = 69 // peer disconnected
	ServerAuthExpiresIn ServerKind = 70 // credential lifetime warning
	ServerRoomLogs      ServerKind = 71 // room event history
	ServerRoomUsers     ServerKind = 72 // room member list
	ServerRoomData      ServerKind = 73 // data broadcast from a room member
	ServerRoomUserJoin  ServerKind = 74 // member joined a room
	ServerRoomUserLeave ServerKind = 75 // member left a room
	ServerSFUOffer      ServerKind = 76 // SDP offer from the SFU
)

// Code returns the kind's stable numeric code.
func (k ClientKind) Code() uint8 { return uint8(k) }

// Client reports true for all ClientKind values.
func (ClientKind) Client() bool { return true }

// Name returns the canonical protocol name. The switch is exhaustive
// over the closed constant set; an out-of-range value formats as
// CLIENT_UNKNOWN(code) rather than panicking, since kinds can arrive
// from the wire.
func (k ClientKind) Name() string {
	switch k {
	case ClientSendOffer:
		return "SEND_OFFER"
	case ClientSendAnswer:
		return "SEND_ANSWER"
	case ClientSendCandidate:
		return "SEND_CANDIDATE"
	case ClientSendLeave:
		return "SEND_LEAVE"
	case ClientRoomJoin:
		return "ROOM_JOIN"
	case ClientRoomLeave:
		return "ROOM_LEAVE"
	case ClientRoomGetLogs:
		return "ROOM_GET_LOGS"
	case ClientRoomGetUsers:
		return "ROOM_GET_USERS"
	case ClientRoomSendData:
		return "ROOM_SEND_DATA"
	case ClientSFUGetOffer:
		return "SFU_GET_OFFER"
	case ClientSFUAnswer:
		return "SFU_ANSWER"
	case ClientSFUCandidate:
		return "SFU_CANDIDATE"
	case ClientPing:
		return "PING"
	case ClientUpdateCredential:
		return "UPDATE_CREDENTIAL"
	default:
		return fmt.Sprintf("CLIENT_UNKNOWN(%d)", uint8(k))
	}
}

// String returns the protocol name, satisfying fmt.Stringer.
func (k ClientKind) String() string { return k.Name() }

// Code returns the kind's stable numeric code.
func (k ServerKind) Code() uint8 { return uint8(k) }

// Client reports false for all ServerKind values.
func (ServerKind) Client() bool { return false }

// Name returns the canonical protocol name.
func (k ServerKind) Name() string {
	switch k {
	case ServerOpen:
		return "OPEN"
	case ServerError:
		return "ERROR"
	case ServerOffer:
		return "OFFER"
	case ServerAnswer:
		return "ANSWER"
	case ServerCandidate:
		return "CANDIDATE"
	case ServerLeave:
		return "LEAVE"
	case ServerAuthExpiresIn:
		return "AUTH_EXPIRES_IN"
	case ServerRoomLogs:
		return "ROOM_LOGS"
	case ServerRoomUsers:
		return "ROOM_USERS"
	case ServerRoomData:
		return "ROOM_DATA"
	case ServerRoomUserJoin:
		return "ROOM_USER_JOIN"
	case ServerRoomUserLeave:
		return "ROOM_USER_LEAVE"
	case ServerSFUOffer:
		return "SFU_OFFER"
	default:
		return fmt.Sprintf("SERVER_UNKNOWN(%d)", uint8(k))
	}
}

// String returns the protocol name, satisfying fmt.Stringer.
func (k ServerKind) String() string { return k.Name() }

// ClientKinds returns the complete client family in code order. The
// returned slice is freshly allocated; callers may modify it.
func ClientKinds() []ClientKind {
	return []ClientKind{
		ClientSendOffer, ClientSendAnswer, ClientSendCandidate,
		ClientSendLeave, ClientRoomJoin, ClientRoomLeave,
		ClientRoomGetLogs, ClientRoomGetUsers, ClientRoomSendData,
		ClientSFUGetOffer, ClientSFUAnswer, ClientSFUCandidate,
		ClientPing, ClientUpdateCredential,
	}
}

// ServerKinds returns the complete server family in code order. The
// returned slice is freshly allocated; callers may modify it.
func ServerKinds() []ServerKind {
	return []ServerKind{
		ServerOpen, ServerError, ServerOffer, ServerAnswer,
		ServerCandidate, ServerLeave, ServerAuthExpiresIn,
		ServerRoomLogs, ServerRoomUsers, ServerRoomData,
		ServerRoomUserJoin, ServerRoomUserLeave, ServerSFUOffer,
	}
}

// clientByName and serverByName are the reverse name lookups, built
// once from the closed sets and read-only afterwards.
var (
	clientByName = make(map[string]ClientKind, 14)
	serverByName = make(map[string]ServerKind, 13)
)

func init() {
	for _, k := range ClientKinds() {
		clientByName[k.Name()] = k
	}
	for _, k := range ServerKinds() {
		serverByName[k.Name()] = k
	}
}

// ParseClientKind resolves a canonical protocol name to its client
// kind. Returns an error wrapping [ErrUnknownKind] for non-members.
func ParseClientKind(name string) (ClientKind, error) {
	if k, ok := clientByName[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: client name %q", ErrUnknownKind, name)
}

// ParseServerKind resolves a canonical protocol name to its server
// kind. Returns an error wrapping [ErrUnknownKind] for non-members.
func ParseServerKind(name string) (ServerKind, error) {
	if k, ok := serverByName[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: server name %q", ErrUnknownKind, name)
}

// ParseKind resolves a name against both families. The families share
// no names, so the result is unambiguous.
func ParseKind(name string) (Kind, error) {
	if k, ok := clientByName[name]; ok {
		return k, nil
	}
	if k, ok := serverByName[name]; ok {
		return k, nil
	}
	return nil, fmt.Errorf("%w: name %q", ErrUnknownKind, name)
}

// KindFromCode resolves a numeric wire code to its kind. The client
// and server code ranges are disjoint, so a bare code identifies the
// family as well as the member.
func KindFromCode(code uint8) (Kind, error) {
	if code >= uint8(ClientSendOffer) && code <= uint8(ClientUpdateCredential) {
		return ClientKind(code), nil
	}
	if code >= uint8(ServerOpen) && code <= uint8(ServerSFUOffer) {
		return ServerKind(code), nil
	}
	return nil, fmt.Errorf("%w: code %d", ErrUnknownKind, code)
}
