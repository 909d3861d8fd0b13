package services

import (
	"breakout-lab/assignment"
	"breakout-lab/domain"
	"breakout-lab/errors"
	"context"
	"fmt"
)

// SetupBreakoutRooms creates amount child sessions under parent and fills them.
//
// Every check runs before the first write. Once writes begin there is no
// rollback; orphans from a failed attempt are removed by the next setup.
func (s *BreakoutService) SetupBreakoutRooms(ctx context.Context, parent *domain.Session,
	mode domain.Mode, amount int, attendeeMapRaw string) ([]*domain.Session, error) {
	defer s.lock(parent)()

	if err := s.reload(ctx, parent); err != nil {
		return nil, err
	}
	attendeeMap, err := s.validateSetup(parent, mode, amount, attendeeMapRaw)
	if err != nil {
		return nil, err
	}

	// SetMode checks the stored mode again, which covers writers outside this process
	ok, err := s.sessions.SetMode(ctx, parent, mode)
	if err != nil {
		return nil, fmt.Errorf("set breakout mode: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s refused by registry", errors.ErrInvalidMode, mode)
	}

	rooms, err := s.createBreakoutRooms(ctx, parent, amount)
	if err != nil {
		return nil, err
	}

	participants, err := s.participants.ListParticipants(ctx, parent)
	if err != nil {
		return nil, fmt.Errorf("list parent participants: %w", err)
	}
	plan := assignment.BuildPlan(mode, amount, attendeeMap, participants, s.shuffle)

	if err = s.addModerators(ctx, rooms, plan); err != nil {
		return nil, err
	}
	if err = s.addOthers(ctx, rooms, plan); err != nil {
		return nil, err
	}

	s.log.Info("Breakout rooms configured",
		"parent", parent.Token, "mode", mode.String(), "amount", amount,
		"moderators", len(plan.Moderators))
	return rooms, nil
}

// validateSetup performs every check of a setup without touching storage.
// The attendee map is only parsed in manual mode.
func (s *BreakoutService) validateSetup(parent *domain.Session, mode domain.Mode,
	amount int, attendeeMapRaw string) (assignment.AttendeeMap, error) {
	if !s.flags.IsBreakoutRoomsEnabled() {
		return nil, errors.ErrConfigDisabled
	}
	if parent.IsBreakoutConfigured() {
		return nil, errors.ErrAlreadyConfigured
	}
	if !parent.Kind.SupportsBreakout() {
		// Can only do breakout rooms in group and public rooms
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedRoomType, parent.Kind)
	}
	if parent.IsBreakoutChild() {
		return nil, errors.ErrNestedBreakoutNotAllowed
	}
	if err := ValidateSetup(SetupRequest{Mode: mode, Amount: amount}); err != nil {
		return nil, err
	}
	if mode != domain.ModeManual {
		return nil, nil
	}
	return assignment.ParseAttendeeMap(attendeeMapRaw, amount)
}

func (s *BreakoutService) createBreakoutRooms(ctx context.Context, parent *domain.Session, amount int) ([]*domain.Session, error) {
	// Safety caution cleaning up potential orphan rooms
	if err := s.deleteBreakoutRooms(ctx, parent); err != nil {
		return nil, err
	}

	ref := domain.BreakoutParentRef(parent.Token)
	rooms := make([]*domain.Session, 0, amount)
	for i := 1; i <= amount; i++ {
		room, err := s.sessions.CreateSession(ctx, parent.Kind, s.localizer.RoomLabel(i), &ref)
		if err != nil {
			return nil, fmt.Errorf("create breakout room %d/%d: %w", i, amount, err)
		}
		if err = s.sessions.SetLobby(ctx, room, domain.LobbyModeratorsOnly); err != nil {
			return nil, fmt.Errorf("close lobby of breakout room %d/%d: %w", i, amount, err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (s *BreakoutService) addModerators(ctx context.Context, rooms []*domain.Session, plan assignment.Plan) error {
	if len(plan.Moderators) == 0 {
		return nil
	}
	for _, room := range rooms {
		if err := s.participants.AddParticipants(ctx, room, plan.Moderators); err != nil {
			return fmt.Errorf("add moderators to %s: %w", room.Token, err)
		}
	}
	return nil
}

func (s *BreakoutService) addOthers(ctx context.Context, rooms []*domain.Session, plan assignment.Plan) error {
	for i, room := range rooms {
		if len(plan.Rooms[i]) == 0 {
			continue
		}
		if err := s.participants.AddParticipants(ctx, room, plan.Rooms[i]); err != nil {
			return fmt.Errorf("add attendees to %s: %w", room.Token, err)
		}
	}
	return nil
}

// RemoveBreakoutRooms deletes every child of parent, whatever its members,
// and returns the parent to NOT_CONFIGURED and STOPPED.
func (s *BreakoutService) RemoveBreakoutRooms(ctx context.Context, parent *domain.Session) error {
	defer s.lock(parent)()

	if err := s.reload(ctx, parent); err != nil {
		return err
	}
	if err := s.deleteBreakoutRooms(ctx, parent); err != nil {
		return err
	}
	ok, err := s.sessions.SetMode(ctx, parent, domain.ModeNotConfigured)
	if err != nil {
		return fmt.Errorf("reset breakout mode: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: reset refused by registry", errors.ErrInvalidMode)
	}
	if parent.Status != domain.StatusStopped {
		if err := s.sessions.SetStatus(ctx, parent, domain.StatusStopped); err != nil {
			return fmt.Errorf("reset breakout status: %w", err)
		}
	}
	s.log.Info("Breakout rooms removed", "parent", parent.Token)
	return nil
}

func (s *BreakoutService) deleteBreakoutRooms(ctx context.Context, parent *domain.Session) error {
	rooms, err := s.children(ctx, parent)
	if err != nil {
		return fmt.Errorf("find breakout rooms: %w", err)
	}
	for _, room := range rooms {
		if err = s.sessions.DeleteSession(ctx, room); err != nil {
			return fmt.Errorf("delete breakout room %s: %w", room.Token, err)
		}
	}
	if len(rooms) > 0 {
		s.log.Debug("Breakout rooms deleted", "parent", parent.Token, "count", len(rooms))
	}
	return nil
}
