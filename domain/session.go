// Package domain contains core concepts of the breakout system.
// This file defines Session entities and the breakout state they carry.
// No runtime, storage, or transport logic should be added here.
package domain

import (
	"time"
)

type Token string

func (t Token) String() string {
	return string(t)
}

type SessionKind int

const (
	KindOneToOne SessionKind = iota + 1
	KindGroup
	KindPublic
	KindChangelog
)

func (k SessionKind) String() string {
	switch k {
	case KindOneToOne:
		return "one-to-one"
	case KindGroup:
		return "group"
	case KindPublic:
		return "public"
	case KindChangelog:
		return "changelog"
	default:
		return "unknown"
	}
}

// SupportsBreakout reports whether sessions of this kind can be split.
func (k SessionKind) SupportsBreakout() bool {
	return k == KindGroup || k == KindPublic
}

// ParentObjectType tags a session as the breakout child of another session.
const ParentObjectType = "room"

// ParentRef links a child session to the object it was spawned from.
type ParentRef struct {
	ObjectType string
	Token      Token
}

// BreakoutParentRef returns the reference every child of parent carries.
func BreakoutParentRef(parent Token) ParentRef {
	return ParentRef{ObjectType: ParentObjectType, Token: parent}
}

type Session struct {
	Token      Token
	Kind       SessionKind
	Name       string
	Parent     *ParentRef
	Mode       Mode
	Status     Status
	Lobby      LobbyState
	Assistance AssistanceStatus
	CreatedAt  time.Time
}

// IsBreakoutChild reports whether the session was spawned as a breakout room.
func (s Session) IsBreakoutChild() bool {
	return s.Parent != nil && s.Parent.ObjectType == ParentObjectType
}

// IsBreakoutConfigured reports whether a breakout mode has been chosen on the session.
func (s Session) IsBreakoutConfigured() bool {
	return s.Mode != ModeNotConfigured
}
