package services

import (
	"breakout-lab/i18n"
	"breakout-lab/internal"
	"breakout-lab/notification"
	"breakout-lab/repositories"
	"breakout-lab/runtime"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// Stack is the breakout engine wired from configuration on top of one database.
type Stack struct {
	Sessions     repositories.SessionRepository
	Participants repositories.ParticipantRepository
	Registry     *runtime.Registry
	Notifier     *notification.Manager
	Chat         *ChatService
	Breakout     *BreakoutService
}

// NewStack builds every service from config.
// LOCALE names the rooms, HISTORY_LIMIT pages the chat history and
// SINK_TIMEOUT bounds each notification delivery.
func NewStack(config internal.Config, db *badger.DB, log *slog.Logger, opts ...Option) *Stack {
	sessions := repositories.NewSessionRepository(db, log)
	participants := repositories.NewParticipantRepository(db, log)
	messages := repositories.NewMessageRepository(db, log, config.HistoryLimit)
	registry := runtime.NewRegistry()
	notifier := notification.NewManager(log, registry, config.SinkTimeout)
	chat := NewChatService(log, messages, participants, notifier, config.MaxContentLength)
	breakout := NewBreakoutService(log, config, sessions, participants, chat, notifier,
		i18n.NewLocalizer(config.Locale), opts...)

	log.Debug("Breakout stack ready",
		"locale", config.Locale, "sink_timeout", config.SinkTimeout, "enabled", config.IsBreakoutRoomsEnabled())
	return &Stack{
		Sessions:     sessions,
		Participants: participants,
		Registry:     registry,
		Notifier:     notifier,
		Chat:         chat,
		Breakout:     breakout,
	}
}
