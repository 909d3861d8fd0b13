package services

import (
	"breakout-lab/domain"
	"breakout-lab/errors"
	"context"
	"fmt"
)

// StartBreakoutRooms opens every child lobby to all attendees, then marks the
// parent as started. Repeating it is harmless.
func (s *BreakoutService) StartBreakoutRooms(ctx context.Context, parent *domain.Session) error {
	defer s.lock(parent)()

	children, err := s.switchLobbies(ctx, parent, domain.LobbyOpenToAll, domain.StatusStarted)
	if err != nil {
		return err
	}
	s.signaling.BreakoutStarted(ctx, parent, children)
	return nil
}

// StopBreakoutRooms restricts every child lobby to moderators again, then marks
// the parent as stopped. Repeating it is harmless.
func (s *BreakoutService) StopBreakoutRooms(ctx context.Context, parent *domain.Session) error {
	defer s.lock(parent)()

	children, err := s.switchLobbies(ctx, parent, domain.LobbyModeratorsOnly, domain.StatusStopped)
	if err != nil {
		return err
	}
	s.signaling.BreakoutStopped(ctx, parent, children)
	return nil
}

func (s *BreakoutService) switchLobbies(ctx context.Context, parent *domain.Session,
	lobby domain.LobbyState, status domain.Status) ([]*domain.Session, error) {
	if err := s.reload(ctx, parent); err != nil {
		return nil, err
	}
	if !parent.IsBreakoutConfigured() {
		return nil, errors.ErrNotConfigured
	}

	children, err := s.children(ctx, parent)
	if err != nil {
		return nil, fmt.Errorf("find breakout rooms: %w", err)
	}
	for _, child := range children {
		if err = s.sessions.SetLobby(ctx, child, lobby); err != nil {
			return nil, fmt.Errorf("set lobby of %s: %w", child.Token, err)
		}
	}
	if err = s.sessions.SetStatus(ctx, parent, status); err != nil {
		return nil, fmt.Errorf("set breakout status: %w", err)
	}

	s.log.Info("Breakout status changed",
		"parent", parent.Token, "status", status.String(), "rooms", len(children))
	return children, nil
}

// SetAssistanceRequest raises or clears the help signal of a running breakout room.
func (s *BreakoutService) SetAssistanceRequest(ctx context.Context, child *domain.Session, status int) error {
	defer s.lock(child)()

	if err := s.reload(ctx, child); err != nil {
		return err
	}
	if !child.IsBreakoutChild() {
		return fmt.Errorf("%w: not a breakout room", errors.ErrInvalidRoomState)
	}
	if child.Lobby != domain.LobbyOpenToAll {
		return fmt.Errorf("%w: breakout rooms are not started", errors.ErrInvalidRoomState)
	}

	assistance := domain.AssistanceStatus(status)
	if !assistance.IsValid() {
		return fmt.Errorf("%w: %d", errors.ErrInvalidStatus, status)
	}

	if err := s.sessions.SetAssistance(ctx, child, assistance); err != nil {
		return fmt.Errorf("set assistance: %w", err)
	}
	s.log.Info("Breakout assistance changed",
		"room", child.Token, "parent", child.Parent.Token, "assistance", assistance.String())
	return nil
}
