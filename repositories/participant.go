package repositories

import (
	"breakout-lab/domain"
	"breakout-lab/errors"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// ParticipantRepository stores session membership in BadgerDB.
// It implements contract.IParticipantDirectory.
type ParticipantRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewParticipantRepository(db *badger.DB, log *slog.Logger) ParticipantRepository {
	return ParticipantRepository{db: db, log: log}
}

type diskAttendee struct {
	ID              string `json:"id"`
	SessionToken    string `json:"session_token"`
	ActorType       string `json:"actor_type"`
	ActorID         string `json:"actor_id"`
	DisplayName     string `json:"display_name"`
	ParticipantType int    `json:"participant_type"`
}

func participantPrefix(token domain.Token) string {
	return fmt.Sprintf("participant:%s:", token)
}

// participantKey is formatted as "participant:{session}:{actor_type}:{actor_id}",
// one attendee per actor and session.
func participantKey(token domain.Token, actorType domain.ActorType, actorID string) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", participantPrefix(token), actorType, actorID))
}

func (r ParticipantRepository) ListParticipants(_ context.Context, session *domain.Session) ([]domain.Participant, error) {
	var participants []domain.Participant
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(participantPrefix(session.Token))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				participant, err := decodeParticipant(value)
				if err != nil {
					return err
				}
				participants = append(participants, participant)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return participants, nil
}

func (r ParticipantRepository) FindParticipantByActor(_ context.Context, session *domain.Session,
	actorType domain.ActorType, actorID string) (domain.Participant, error) {
	var participant domain.Participant
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(participantKey(session.Token, actorType, actorID))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %s/%s in %s", errors.ErrParticipantNotFound, actorType, actorID, session.Token)
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			participant, err = decodeParticipant(value)
			return err
		})
	})
	return participant, err
}

// AddParticipants adds every attendee that is not already a member of the session.
// Existing members keep their attendee id and participant type.
func (r ParticipantRepository) AddParticipants(_ context.Context, session *domain.Session, attendees []domain.AttendeeDescriptor) error {
	added := 0
	err := r.db.Update(func(txn *badger.Txn) error {
		for _, attendee := range attendees {
			key := participantKey(session.Token, attendee.ActorType, attendee.ActorID)
			_, err := txn.Get(key)
			if err == nil {
				continue
			}
			if err != badger.ErrKeyNotFound {
				return err
			}
			bytes, err := json.Marshal(diskAttendee{
				ID:              uuid.NewString(),
				SessionToken:    session.Token.String(),
				ActorType:       string(attendee.ActorType),
				ActorID:         attendee.ActorID,
				DisplayName:     attendee.DisplayName,
				ParticipantType: int(attendee.ParticipantType),
			})
			if err != nil {
				return err
			}
			if err = txn.Set(key, bytes); err != nil {
				return err
			}
			added++
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("add participants to %s: %w", session.Token, err)
	}
	r.log.Debug("Participants added", "token", session.Token, "requested", len(attendees), "added", added)
	return nil
}

func decodeParticipant(value []byte) (domain.Participant, error) {
	var stored diskAttendee
	if err := json.Unmarshal(value, &stored); err != nil {
		return domain.Participant{}, err
	}
	return domain.Participant{Attendee: domain.Attendee{
		ID:              stored.ID,
		SessionToken:    domain.Token(stored.SessionToken),
		ActorType:       domain.ActorType(stored.ActorType),
		ActorID:         stored.ActorID,
		DisplayName:     stored.DisplayName,
		ParticipantType: domain.ParticipantType(stored.ParticipantType),
	}}, nil
}
