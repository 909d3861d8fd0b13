package services

import (
	"breakout-lab/contract"
	"breakout-lab/domain"
	"breakout-lab/repositories"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const previewLength = 64

type IChatService interface {
	contract.IChatDelivery
	GetMessages(token domain.Token, cursor *string) ([]domain.Message, *string, error)
}

// ChatService stores messages and notifies the other members of the session.
type ChatService struct {
	log               *slog.Logger
	messageRepository repositories.IMessageRepository
	participants      contract.IParticipantDirectory
	notifier          contract.INotifier
	maxContentLength  int
}

func NewChatService(log *slog.Logger, messageRepository repositories.IMessageRepository,
	participants contract.IParticipantDirectory, notifier contract.INotifier, maxContentLength int) *ChatService {
	return &ChatService{
		log:               log,
		messageRepository: messageRepository,
		participants:      participants,
		notifier:          notifier,
		maxContentLength:  maxContentLength,
	}
}

// SendMessage persists the message with the given creation time, then emits one
// notification per other member of the session.
func (s *ChatService) SendMessage(ctx context.Context, session *domain.Session, author domain.Participant,
	actorType domain.ActorType, actorID, text string, at time.Time) (domain.Message, error) {
	if err := validateChatMessage(text, s.maxContentLength); err != nil {
		return domain.Message{}, err
	}

	diskMessage := repositories.DiskMessage{
		ID:        uuid.New(),
		Session:   session.Token,
		ActorType: actorType,
		Author:    actorID,
		Content:   text,
		At:        at,
	}
	if err := s.messageRepository.StoreMessage(diskMessage); err != nil {
		return domain.Message{}, fmt.Errorf("store message in %s: %w", session.Token, err)
	}
	message := diskMessage.ToMessage()

	members, err := s.participants.ListParticipants(ctx, session)
	if err != nil {
		// The message is stored; only its notifications are lost
		s.log.Warn("Could not list members to notify", "token", session.Token, "error", err)
		return message, nil
	}
	for _, member := range members {
		if member.Attendee.ActorType == actorType && member.Attendee.ActorID == actorID {
			continue
		}
		s.notifier.Notify(ctx, domain.Notification{
			Recipient:    domain.RecipientID(member.Attendee.ActorType, member.Attendee.ActorID),
			SessionToken: session.Token,
			MessageID:    message.ID,
			AuthorID:     actorID,
			AuthorName:   author.Attendee.DisplayName,
			Preview:      preview(text),
			At:           at,
		})
	}
	return message, nil
}

func (s *ChatService) GetMessages(token domain.Token, cursor *string) ([]domain.Message, *string, error) {
	messages, next, err := s.messageRepository.GetMessages(token, cursor)
	if err != nil {
		return nil, nil, err
	}
	return lo.Map(messages, func(item repositories.DiskMessage, _ int) domain.Message {
		return item.ToMessage()
	}), next, nil
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength]) + "…"
}
