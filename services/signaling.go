package services

import (
	"breakout-lab/domain"
	"context"
	"log/slog"

	"github.com/samber/lo"
)

// LogSignaling is the default ISignaling. It only records the transition:
// moving already connected clients between the parent and its rooms needs a
// signaling server, which this module does not ship.
type LogSignaling struct {
	log *slog.Logger
}

func NewLogSignaling(log *slog.Logger) LogSignaling {
	return LogSignaling{log: log}
}

func (l LogSignaling) BreakoutStarted(_ context.Context, parent *domain.Session, children []*domain.Session) {
	l.log.Info("Clients should join their breakout room",
		"parent", parent.Token, "rooms", tokens(children))
}

func (l LogSignaling) BreakoutStopped(_ context.Context, parent *domain.Session, children []*domain.Session) {
	l.log.Info("Clients should return to the parent room",
		"parent", parent.Token, "rooms", tokens(children))
}

func tokens(sessions []*domain.Session) []string {
	return lo.Map(sessions, func(s *domain.Session, _ int) string { return s.Token.String() })
}
