// Package assignment turns a participant list and a breakout configuration
// into a membership plan for the child sessions.
//
// Everything here is pure: no storage, no logging. The only source of
// non-determinism is the Shuffler used by automatic mode, which callers inject.
package assignment

import (
	"breakout-lab/domain"
	"math/rand/v2"

	"github.com/samber/lo"
)

// Shuffler permutes n elements through swap, like rand.Shuffle.
type Shuffler func(n int, swap func(i, j int))

// RandomShuffler is the production shuffler: a uniform, unseeded permutation.
var RandomShuffler Shuffler = rand.Shuffle

// Plan is the membership computed once per setup.
// Rooms has one entry per child session, indexed from 0.
type Plan struct {
	Moderators []domain.AttendeeDescriptor
	Rooms      [][]domain.AttendeeDescriptor
}

// Eligible keeps logged-in users only.
// Guests, e-mail invitees and federated users are not carried into breakout
// rooms in this version.
func Eligible(participants []domain.Participant) []domain.Participant {
	return lo.Filter(participants, func(p domain.Participant, _ int) bool {
		return p.Attendee.ActorType == domain.ActorUsers
	})
}

// Partition splits participants into moderators and everybody else,
// preserving the input order on both sides.
func Partition(participants []domain.Participant) (moderators, others []domain.Participant) {
	for _, p := range participants {
		if p.HasModeratorPermissions() {
			moderators = append(moderators, p)
			continue
		}
		others = append(others, p)
	}
	return moderators, others
}

// BuildPlan distributes the eligible participants across amount rooms.
// attendeeMap is only read in manual mode and must already be range checked.
func BuildPlan(mode domain.Mode, amount int, attendeeMap AttendeeMap,
	participants []domain.Participant, shuffle Shuffler) Plan {
	moderators, others := Partition(Eligible(participants))

	plan := Plan{
		Moderators: lo.Map(moderators, toDescriptor),
		Rooms:      make([][]domain.AttendeeDescriptor, amount),
	}

	switch mode {
	case domain.ModeAutomatic:
		distributeAutomatic(plan.Rooms, others, shuffle)
	case domain.ModeManual:
		distributeManual(plan.Rooms, others, attendeeMap)
	}
	return plan
}

// distributeAutomatic shuffles a copy of others and deals them round-robin,
// so two rooms never differ by more than one attendee.
func distributeAutomatic(rooms [][]domain.AttendeeDescriptor, others []domain.Participant, shuffle Shuffler) {
	if len(rooms) == 0 {
		return
	}
	if shuffle == nil {
		shuffle = RandomShuffler
	}
	shuffled := make([]domain.Participant, len(others))
	copy(shuffled, others)
	shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for i, p := range shuffled {
		room := i % len(rooms)
		rooms[room] = append(rooms[room], p.Descriptor())
	}
}

// distributeManual places each attendee in its mapped room.
// Attendees missing from the map stay out of every room.
func distributeManual(rooms [][]domain.AttendeeDescriptor, others []domain.Participant, attendeeMap AttendeeMap) {
	for _, p := range others {
		room, ok := attendeeMap[p.Attendee.ID]
		if !ok || room < 0 || room >= len(rooms) {
			continue
		}
		rooms[room] = append(rooms[room], p.Descriptor())
	}
}

func toDescriptor(p domain.Participant, _ int) domain.AttendeeDescriptor {
	return p.Descriptor()
}
