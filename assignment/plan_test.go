package assignment

import (
	"breakout-lab/domain"
	"breakout-lab/errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func participant(id string, actorType domain.ActorType, pType domain.ParticipantType) domain.Participant {
	return domain.Participant{Attendee: domain.Attendee{
		ID:              id,
		ActorType:       actorType,
		ActorID:         "actor-" + id,
		DisplayName:     "Display " + id,
		ParticipantType: pType,
	}}
}

func user(id string) domain.Participant {
	return participant(id, domain.ActorUsers, domain.ParticipantUser)
}

func moderator(id string) domain.Participant {
	return participant(id, domain.ActorUsers, domain.ParticipantModerator)
}

func noShuffle(int, func(i, j int)) {}

func actorIDs(descriptors []domain.AttendeeDescriptor) []string {
	return lo.Map(descriptors, func(d domain.AttendeeDescriptor, _ int) string { return d.ActorID })
}

func TestEligible_Keeps_Users_Only(t *testing.T) {
	req := require.New(t)
	participants := []domain.Participant{
		user("A"),
		participant("B", domain.ActorGuests, domain.ParticipantGuest),
		participant("C", domain.ActorFederatedUsers, domain.ParticipantUser),
		participant("D", domain.ActorEmails, domain.ParticipantGuestModerator),
		moderator("E"),
	}

	eligible := Eligible(participants)

	req.Equal([]string{"A", "E"}, lo.Map(eligible, func(p domain.Participant, _ int) string { return p.Attendee.ID }))
}

func TestPartition(t *testing.T) {
	req := require.New(t)
	owner := participant("O", domain.ActorUsers, domain.ParticipantOwner)
	selfJoined := participant("S", domain.ActorUsers, domain.ParticipantUserSelfJoined)

	moderators, others := Partition([]domain.Participant{user("A"), owner, moderator("M"), selfJoined})

	req.Equal([]domain.Participant{owner, moderator("M")}, moderators)
	req.Equal([]domain.Participant{user("A"), selfJoined}, others)
}

func TestBuildPlan_Automatic_Worked_Example(t *testing.T) {
	req := require.New(t)
	// Given 1 moderator and 4 attendees in the parent
	participants := []domain.Participant{moderator("M"), user("A"), user("B"), user("C"), user("D")}

	// When they are split into 2 rooms without shuffling
	plan := BuildPlan(domain.ModeAutomatic, 2, nil, participants, noShuffle)

	// Then attendees are dealt round-robin
	req.Equal([]string{"actor-M"}, actorIDs(plan.Moderators))
	req.Len(plan.Rooms, 2)
	req.Equal([]string{"actor-A", "actor-C"}, actorIDs(plan.Rooms[0]))
	req.Equal([]string{"actor-B", "actor-D"}, actorIDs(plan.Rooms[1]))
}

func TestBuildPlan_Automatic_Balanced_For_Every_Amount(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1024))
	for amount := domain.MinimumRoomAmount; amount <= domain.MaximumRoomAmount; amount++ {
		for _, size := range []int{0, 1, amount - 1, amount, amount + 1, 3*amount + 2, 57} {
			t.Run(fmt.Sprintf("amount=%d/attendees=%d", amount, size), func(t *testing.T) {
				req := require.New(t)
				var participants []domain.Participant
				for i := 0; i < size; i++ {
					participants = append(participants, user(fmt.Sprintf("u%d", i)))
				}

				plan := BuildPlan(domain.ModeAutomatic, amount, nil, participants, rng.Shuffle)

				req.Len(plan.Rooms, amount)
				floor, ceil := size/amount, (size+amount-1)/amount
				var all []string
				for _, room := range plan.Rooms {
					req.GreaterOrEqual(len(room), floor)
					req.LessOrEqual(len(room), ceil)
					all = append(all, actorIDs(room)...)
				}
				// Every attendee lands in exactly one room
				req.Len(all, size)
				req.Len(lo.Uniq(all), size)
			})
		}
	}
}

func TestBuildPlan_Automatic_Does_Not_Reorder_Input(t *testing.T) {
	req := require.New(t)
	participants := []domain.Participant{user("A"), user("B"), user("C")}
	rng := rand.New(rand.NewPCG(7, 7))

	BuildPlan(domain.ModeAutomatic, 2, nil, participants, rng.Shuffle)

	req.Equal([]domain.Participant{user("A"), user("B"), user("C")}, participants)
}

func TestBuildPlan_Manual_Worked_Example(t *testing.T) {
	req := require.New(t)
	participants := []domain.Participant{moderator("M"), user("A"), user("B"), user("C"), user("D")}
	attendeeMap, err := ParseAttendeeMap(`{"A":0,"B":1,"C":0}`, 2)
	req.NoError(err)

	plan := BuildPlan(domain.ModeManual, 2, attendeeMap, participants, nil)

	req.Equal([]string{"actor-M"}, actorIDs(plan.Moderators))
	req.Equal([]string{"actor-A", "actor-C"}, actorIDs(plan.Rooms[0]))
	req.Equal([]string{"actor-B"}, actorIDs(plan.Rooms[1]))
	// D is unmapped and left out of every room
	req.NotContains(append(actorIDs(plan.Rooms[0]), actorIDs(plan.Rooms[1])...), "actor-D")
}

func TestBuildPlan_Manual_Ignores_Mapped_Moderators(t *testing.T) {
	req := require.New(t)
	participants := []domain.Participant{moderator("M"), user("A")}

	plan := BuildPlan(domain.ModeManual, 2, AttendeeMap{"M": 1, "A": 1}, participants, nil)

	req.Equal([]string{"actor-M"}, actorIDs(plan.Moderators))
	req.Empty(plan.Rooms[0])
	req.Equal([]string{"actor-A"}, actorIDs(plan.Rooms[1]))
}

func TestBuildPlan_Free_Only_Replicates_Moderators(t *testing.T) {
	req := require.New(t)
	participants := []domain.Participant{moderator("M"), user("A"), user("B")}

	plan := BuildPlan(domain.ModeFree, 3, nil, participants, noShuffle)

	req.Equal([]string{"actor-M"}, actorIDs(plan.Moderators))
	req.Len(plan.Rooms, 3)
	for _, room := range plan.Rooms {
		req.Empty(room)
	}
}

func TestParseAttendeeMap(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		amount  int
		want    AttendeeMap
		wantErr bool
	}{
		{name: "valid", raw: `{"a":0,"b":2}`, amount: 3, want: AttendeeMap{"a": 0, "b": 2}},
		{name: "empty object", raw: `{}`, amount: 1, want: AttendeeMap{}},
		{name: "null", raw: `null`, amount: 1, want: AttendeeMap{}},
		{name: "empty list", raw: `[]`, amount: 2, want: AttendeeMap{}},
		{name: "empty list with spaces", raw: " [ ] ", amount: 2, want: AttendeeMap{}},
		{name: "non empty list", raw: `[1,0]`, amount: 2, wantErr: true},
		{name: "duplicate key keeps last", raw: `{"a":0,"a":1}`, amount: 2, want: AttendeeMap{"a": 1}},
		{name: "index equal to amount", raw: `{"a":2}`, amount: 2, wantErr: true},
		{name: "negative index", raw: `{"a":-1}`, amount: 2, wantErr: true},
		{name: "not json", raw: `a=1`, amount: 2, wantErr: true},
		{name: "empty string", raw: ``, amount: 2, wantErr: true},
		{name: "nested value", raw: `{"a":{"b":1}}`, amount: 2, wantErr: true},
		{name: "trailing data", raw: `{"a":1} {}`, amount: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)

			got, err := ParseAttendeeMap(tt.raw, tt.amount)

			if tt.wantErr {
				req.ErrorIs(err, errors.ErrInvalidAttendeeMap)
				req.Nil(got)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}
