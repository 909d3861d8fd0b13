package services

import (
	"breakout-lab/assignment"
	"breakout-lab/contract"
	"breakout-lab/domain"
	"breakout-lab/runtime"
	"context"
	"fmt"
	"log/slog"
	"time"
)

type IBreakoutService interface {
	SetupBreakoutRooms(ctx context.Context, parent *domain.Session, mode domain.Mode, amount int, attendeeMap string) ([]*domain.Session, error)
	RemoveBreakoutRooms(ctx context.Context, parent *domain.Session) error
	StartBreakoutRooms(ctx context.Context, parent *domain.Session) error
	StopBreakoutRooms(ctx context.Context, parent *domain.Session) error
	SetAssistanceRequest(ctx context.Context, child *domain.Session, status int) error
	BroadcastMessage(ctx context.Context, parent *domain.Session, author domain.Participant, text string) error
}

// BreakoutService orchestrates breakout rooms on top of the session registry,
// the participant directory and the chat.
//
// Operations on the same parent are serialized, and each one re-reads the
// session it was handed once the lock is held. Multi-room mutations are not
// transactional: a failure on one child leaves the previous ones in place, and
// the next setup (or an explicit remove) cleans them up.
type BreakoutService struct {
	log          *slog.Logger
	flags        contract.IFeatureFlags
	sessions     contract.ISessionRegistry
	participants contract.IParticipantDirectory
	chat         contract.IChatDelivery
	notifier     contract.INotificationBatcher
	localizer    contract.ILocalizer
	signaling    contract.ISignaling
	locker       *runtime.KeyedLocker
	shuffle      assignment.Shuffler
	now          func() time.Time
}

type Option func(*BreakoutService)

// WithShuffler replaces the random permutation used by automatic mode.
func WithShuffler(shuffle assignment.Shuffler) Option {
	return func(s *BreakoutService) { s.shuffle = shuffle }
}

func WithClock(now func() time.Time) Option {
	return func(s *BreakoutService) { s.now = now }
}

func WithSignaling(signaling contract.ISignaling) Option {
	return func(s *BreakoutService) { s.signaling = signaling }
}

func NewBreakoutService(log *slog.Logger, flags contract.IFeatureFlags,
	sessions contract.ISessionRegistry, participants contract.IParticipantDirectory,
	chat contract.IChatDelivery, notifier contract.INotificationBatcher,
	localizer contract.ILocalizer, opts ...Option) *BreakoutService {
	s := &BreakoutService{
		log:          log,
		flags:        flags,
		sessions:     sessions,
		participants: participants,
		chat:         chat,
		notifier:     notifier,
		localizer:    localizer,
		signaling:    NewLogSignaling(log),
		locker:       runtime.NewKeyedLocker(),
		shuffle:      assignment.RandomShuffler,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *BreakoutService) lock(session *domain.Session) func() {
	return s.locker.Lock(session.Token.String())
}

// reload replaces the caller's copy of session with the stored record.
// Flags are only trusted once read under the session lock.
func (s *BreakoutService) reload(ctx context.Context, session *domain.Session) error {
	stored, err := s.sessions.GetSession(ctx, session.Token)
	if err != nil {
		return fmt.Errorf("reload session %s: %w", session.Token, err)
	}
	*session = *stored
	return nil
}

func (s *BreakoutService) children(ctx context.Context, parent *domain.Session) ([]*domain.Session, error) {
	return s.sessions.FindChildrenByParentRef(ctx, domain.BreakoutParentRef(parent.Token))
}
