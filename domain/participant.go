// Package domain contains core concepts of the breakout system.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

type ActorType string

const (
	ActorUsers          ActorType = "users"
	ActorGuests         ActorType = "guests"
	ActorEmails         ActorType = "emails"
	ActorGroups         ActorType = "groups"
	ActorFederatedUsers ActorType = "federated_users"
)

type ParticipantType int

const (
	ParticipantOwner ParticipantType = iota + 1
	ParticipantModerator
	ParticipantUser
	ParticipantGuest
	ParticipantUserSelfJoined
	ParticipantGuestModerator
)

// Attendee is the identity bound to one session.
type Attendee struct {
	ID              string
	SessionToken    Token
	ActorType       ActorType
	ActorID         string
	DisplayName     string
	ParticipantType ParticipantType
}

type Participant struct {
	Attendee Attendee
}

func (p Participant) HasModeratorPermissions() bool {
	switch p.Attendee.ParticipantType {
	case ParticipantOwner, ParticipantModerator, ParticipantGuestModerator:
		return true
	default:
		return false
	}
}

// Descriptor re-projects the attendee so it can be added to another session.
func (p Participant) Descriptor() AttendeeDescriptor {
	return AttendeeDescriptor{
		ActorType:       p.Attendee.ActorType,
		ActorID:         p.Attendee.ActorID,
		DisplayName:     p.Attendee.DisplayName,
		ParticipantType: p.Attendee.ParticipantType,
	}
}

// AttendeeDescriptor is what a directory needs to add someone to a session.
type AttendeeDescriptor struct {
	ActorType       ActorType
	ActorID         string
	DisplayName     string
	ParticipantType ParticipantType
}
