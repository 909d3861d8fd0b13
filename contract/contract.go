//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"breakout-lab/domain"
	"context"
	"time"
)

// ISessionRegistry owns session records and their breakout flags.
// A session handed in by a caller may be stale: flags are checked on the
// GetSession result.
type ISessionRegistry interface {
	GetSession(ctx context.Context, token domain.Token) (*domain.Session, error)
	CreateSession(ctx context.Context, kind domain.SessionKind, name string, parent *domain.ParentRef) (*domain.Session, error)
	DeleteSession(ctx context.Context, session *domain.Session) error
	FindChildrenByParentRef(ctx context.Context, parent domain.ParentRef) ([]*domain.Session, error)
	// SetMode returns false when the registry refuses the mode value.
	// Moving a configured session to another configured mode fails with ErrAlreadyConfigured.
	SetMode(ctx context.Context, session *domain.Session, mode domain.Mode) (bool, error)
	SetStatus(ctx context.Context, session *domain.Session, status domain.Status) error
	SetLobby(ctx context.Context, session *domain.Session, lobby domain.LobbyState) error
	SetAssistance(ctx context.Context, session *domain.Session, assistance domain.AssistanceStatus) error
}

// IParticipantDirectory owns session membership.
type IParticipantDirectory interface {
	ListParticipants(ctx context.Context, session *domain.Session) ([]domain.Participant, error)
	FindParticipantByActor(ctx context.Context, session *domain.Session, actorType domain.ActorType, actorID string) (domain.Participant, error)
	AddParticipants(ctx context.Context, session *domain.Session, attendees []domain.AttendeeDescriptor) error
}

// IChatDelivery stores a message in a session and notifies its members.
type IChatDelivery interface {
	SendMessage(ctx context.Context, session *domain.Session, author domain.Participant,
		actorType domain.ActorType, actorID, text string, at time.Time) (domain.Message, error)
}

// INotificationBatcher postpones notification delivery for one caller.
// Defer returns a context carrying a batch: notifications emitted with it are
// queued until Flush is called with that same context. When ctx already carries
// a batch, Defer returns it unchanged with false, and the outer caller flushes.
type INotificationBatcher interface {
	Defer(ctx context.Context) (context.Context, bool)
	Flush(ctx context.Context)
}

// INotifier delivers a notification, or queues it when ctx carries an open batch.
type INotifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

type IFeatureFlags interface {
	IsBreakoutRoomsEnabled() bool
}

type ILocalizer interface {
	RoomLabel(number int) string
}

// ISignaling is told about lobby changes so connected clients can be moved
// between the parent and its children.
type ISignaling interface {
	BreakoutStarted(ctx context.Context, parent *domain.Session, children []*domain.Session)
	BreakoutStopped(ctx context.Context, parent *domain.Session, children []*domain.Session)
}

// NotificationSink receives the digests addressed to one subscriber.
type NotificationSink interface {
	Consume(ctx context.Context, digest domain.Digest) error
}

type IRegistry interface {
	GetSinks(recipient string) []NotificationSink
	Subscribe(recipient string, connectionID string, sink NotificationSink)
	Unsubscribe(recipient string, connectionID string)
}
