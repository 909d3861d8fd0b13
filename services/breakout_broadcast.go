package services

import (
	"breakout-lab/domain"
	"breakout-lab/errors"
	"context"
	stderrors "errors"
	"fmt"
)

// BroadcastMessage posts text, as author, in every breakout room of parent.
//
// All rooms receive the same creation time. Notifications are held back in a
// batch of this call until every room has been attempted, then flushed once,
// even when a room fails.
// Failures do not stop the loop; they are joined into the returned error.
func (s *BreakoutService) BroadcastMessage(ctx context.Context, parent *domain.Session,
	author domain.Participant, text string) error {
	defer s.lock(parent)()

	if err := s.reload(ctx, parent); err != nil {
		return err
	}
	if !parent.IsBreakoutConfigured() {
		return errors.ErrNotConfigured
	}

	rooms, err := s.children(ctx, parent)
	if err != nil {
		return fmt.Errorf("find breakout rooms: %w", err)
	}
	actorType := author.Attendee.ActorType
	actorID := author.Attendee.ActorID
	createdAt := s.now().UTC()

	batchCtx, shouldFlush := s.notifier.Defer(ctx)
	defer func() {
		if shouldFlush {
			s.notifier.Flush(batchCtx)
		}
	}()

	var failures []error
	for _, room := range rooms {
		roomParticipant, err := s.participants.FindParticipantByActor(ctx, room, actorType, actorID)
		if err != nil {
			failures = append(failures, fmt.Errorf("room %s: %w", room.Token, err))
			continue
		}
		if _, err = s.chat.SendMessage(batchCtx, room, roomParticipant, actorType, actorID, text, createdAt); err != nil {
			failures = append(failures, fmt.Errorf("room %s: %w", room.Token, err))
		}
	}

	if len(failures) > 0 {
		s.log.Warn("Broadcast partially failed",
			"parent", parent.Token, "rooms", len(rooms), "failed", len(failures))
		return stderrors.Join(failures...)
	}
	s.log.Debug("Broadcast delivered", "parent", parent.Token, "rooms", len(rooms))
	return nil
}
