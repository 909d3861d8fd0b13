package repositories

import (
	"breakout-lab/domain"
	"breakout-lab/errors"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type ISessionRepository interface {
	GetSession(ctx context.Context, token domain.Token) (*domain.Session, error)
	ListSessions(ctx context.Context) ([]*domain.Session, error)
}

// SessionRepository stores sessions and their breakout flags in BadgerDB.
// It implements contract.ISessionRegistry.
type SessionRepository struct {
	db  *badger.DB
	log *slog.Logger
	now func() time.Time
}

func NewSessionRepository(db *badger.DB, log *slog.Logger) SessionRepository {
	return SessionRepository{db: db, log: log, now: time.Now}
}

// diskSession is the stored form of a session.
type diskSession struct {
	Token            string `json:"token"`
	Kind             int    `json:"kind"`
	Name             string `json:"name"`
	ParentObjectType string `json:"parent_object_type,omitempty"`
	ParentToken      string `json:"parent_token,omitempty"`
	Mode             int    `json:"mode"`
	Status           int    `json:"status"`
	Lobby            int    `json:"lobby"`
	Assistance       int    `json:"assistance"`
	CreatedAt        int64  `json:"created_at"`
	Seq              uint64 `json:"seq,omitempty"`
}

func sessionKey(token domain.Token) []byte {
	return []byte("session:" + token.String())
}

func parentIndexPrefix(ref domain.ParentRef) string {
	return fmt.Sprintf("idx:parent:%s:%s:", ref.ObjectType, ref.Token)
}

// parentIndexKey is formatted as "idx:parent:{type}:{parent}:{seq_padded}:{token}"
// so a prefix scan returns children in creation order, whatever the clock resolution.
func parentIndexKey(ref domain.ParentRef, seq uint64, token domain.Token) []byte {
	return []byte(fmt.Sprintf("%s%020d:%s", parentIndexPrefix(ref), seq, token))
}

// nextChildSeq reads the highest sequence under the parent prefix.
// The read is part of the transaction, so two concurrent creations conflict
// instead of sharing a number.
func nextChildSeq(txn *badger.Txn, ref domain.ParentRef) (uint64, error) {
	prefix := []byte(parentIndexPrefix(ref))
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	options.Reverse = true
	it := txn.NewIterator(options)
	defer it.Close()

	it.Seek(append(append([]byte{}, prefix...), 0xff))
	if !it.ValidForPrefix(prefix) {
		return 1, nil
	}
	seq, _, _ := strings.Cut(strings.TrimPrefix(string(it.Item().Key()), string(prefix)), ":")
	last, err := strconv.ParseUint(seq, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupted parent index key %q: %w", it.Item().Key(), err)
	}
	return last + 1, nil
}

// CreateSession generates a token and persists the session together with its parent index entry.
func (r SessionRepository) CreateSession(_ context.Context, kind domain.SessionKind, name string, parent *domain.ParentRef) (*domain.Session, error) {
	session := &domain.Session{
		Token:     domain.Token(uuid.NewString()),
		Kind:      kind,
		Name:      name,
		Parent:    parent,
		Mode:      domain.ModeNotConfigured,
		Status:    domain.StatusStopped,
		Lobby:     domain.LobbyOpenToAll,
		CreatedAt: r.now().UTC(),
	}
	err := r.db.Update(func(txn *badger.Txn) error {
		stored := fromSession(session)
		if parent != nil {
			seq, err := nextChildSeq(txn, *parent)
			if err != nil {
				return err
			}
			stored.Seq = seq
			if err = txn.Set(parentIndexKey(*parent, seq, session.Token), []byte{}); err != nil {
				return err
			}
		}
		bytes, err := json.Marshal(stored)
		if err != nil {
			return err
		}
		return txn.Set(sessionKey(session.Token), bytes)
	})
	if err != nil {
		return nil, fmt.Errorf("create session %q: %w", name, err)
	}
	r.log.Debug("Session created", "token", session.Token, "kind", kind.String(), "name", name)
	return session, nil
}

// DeleteSession removes the session, its parent index entry, its participants and
// its messages in a single transaction. The index entry is located from the stored
// record, so a missing session fails with ErrSessionNotFound.
func (r SessionRepository) DeleteSession(_ context.Context, session *domain.Session) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		stored, err := getDiskSession(txn, session.Token)
		if err != nil {
			return err
		}
		if err = txn.Delete(sessionKey(session.Token)); err != nil {
			return err
		}
		if stored.ParentObjectType != "" {
			ref := domain.ParentRef{ObjectType: stored.ParentObjectType, Token: domain.Token(stored.ParentToken)}
			if err = txn.Delete(parentIndexKey(ref, stored.Seq, session.Token)); err != nil {
				return err
			}
		}
		for _, prefix := range []string{participantPrefix(session.Token), messagePrefix(session.Token)} {
			if err := deletePrefix(txn, []byte(prefix)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete session %s: %w", session.Token, err)
	}
	r.log.Debug("Session deleted", "token", session.Token)
	return nil
}

// FindChildrenByParentRef resolves the parent index into sessions, oldest first.
// Index entries pointing to a missing session are skipped.
func (r SessionRepository) FindChildrenByParentRef(_ context.Context, parent domain.ParentRef) ([]*domain.Session, error) {
	var children []*domain.Session
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(parentIndexPrefix(parent))
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		var tokens []domain.Token
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			tokens = append(tokens, domain.Token(key[strings.LastIndex(key, ":")+1:]))
		}

		for _, token := range tokens {
			session, err := getSession(txn, token)
			if err == errors.ErrSessionNotFound {
				r.log.Warn("Dangling parent index entry", "parent", parent.Token, "token", token)
				continue
			}
			if err != nil {
				return err
			}
			children = append(children, session)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return children, nil
}

func (r SessionRepository) GetSession(_ context.Context, token domain.Token) (*domain.Session, error) {
	var session *domain.Session
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		session, err = getSession(txn, token)
		return err
	})
	return session, err
}

// ListSessions scans every stored session, in key order.
func (r SessionRepository) ListSessions(_ context.Context) ([]*domain.Session, error) {
	var sessions []*domain.Session
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("session:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				session, err := decodeSession(value)
				if err != nil {
					return err
				}
				sessions = append(sessions, session)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return sessions, err
}

// SetMode refuses unknown mode values by returning false.
// The stored mode decides the transition: a configured session can only go back
// to NOT_CONFIGURED, any other change fails with ErrAlreadyConfigured.
func (r SessionRepository) SetMode(_ context.Context, session *domain.Session, mode domain.Mode) (bool, error) {
	if !mode.IsValid() {
		return false, nil
	}
	err := r.update(session, func(s *diskSession) error {
		if mode.IsAssignable() && domain.Mode(s.Mode).IsAssignable() {
			return fmt.Errorf("%w: %s is %s", errors.ErrAlreadyConfigured, session.Token, domain.Mode(s.Mode))
		}
		s.Mode = int(mode)
		return nil
	})
	if err != nil {
		return false, err
	}
	session.Mode = mode
	return true, nil
}

func (r SessionRepository) SetStatus(_ context.Context, session *domain.Session, status domain.Status) error {
	if err := r.update(session, func(s *diskSession) error { s.Status = int(status); return nil }); err != nil {
		return err
	}
	session.Status = status
	return nil
}

func (r SessionRepository) SetLobby(_ context.Context, session *domain.Session, lobby domain.LobbyState) error {
	if err := r.update(session, func(s *diskSession) error { s.Lobby = int(lobby); return nil }); err != nil {
		return err
	}
	session.Lobby = lobby
	return nil
}

func (r SessionRepository) SetAssistance(_ context.Context, session *domain.Session, assistance domain.AssistanceStatus) error {
	if err := r.update(session, func(s *diskSession) error { s.Assistance = int(assistance); return nil }); err != nil {
		return err
	}
	session.Assistance = assistance
	return nil
}

// update applies mutate to the stored record inside a read-modify-write transaction.
// Nothing is written when mutate fails.
func (r SessionRepository) update(session *domain.Session, mutate func(s *diskSession) error) error {
	return r.db.Update(func(txn *badger.Txn) error {
		stored, err := getDiskSession(txn, session.Token)
		if err != nil {
			return err
		}
		if err = mutate(&stored); err != nil {
			return err
		}
		bytes, err := json.Marshal(stored)
		if err != nil {
			return err
		}
		return txn.Set(sessionKey(session.Token), bytes)
	})
}

func getDiskSession(txn *badger.Txn, token domain.Token) (diskSession, error) {
	var stored diskSession
	item, err := txn.Get(sessionKey(token))
	if err == badger.ErrKeyNotFound {
		return stored, fmt.Errorf("%w: %s", errors.ErrSessionNotFound, token)
	}
	if err != nil {
		return stored, err
	}
	err = item.Value(func(value []byte) error {
		return json.Unmarshal(value, &stored)
	})
	return stored, err
}

func getSession(txn *badger.Txn, token domain.Token) (*domain.Session, error) {
	item, err := txn.Get(sessionKey(token))
	if err == badger.ErrKeyNotFound {
		return nil, errors.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session *domain.Session
	err = item.Value(func(value []byte) error {
		session, err = decodeSession(value)
		return err
	})
	return session, err
}

func deletePrefix(txn *badger.Txn, prefix []byte) error {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	it := txn.NewIterator(options)
	var keys [][]byte
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	it.Close()
	for _, key := range keys {
		if err := txn.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

func decodeSession(value []byte) (*domain.Session, error) {
	var stored diskSession
	if err := json.Unmarshal(value, &stored); err != nil {
		return nil, err
	}
	return toSession(stored), nil
}

func fromSession(session *domain.Session) diskSession {
	stored := diskSession{
		Token:      session.Token.String(),
		Kind:       int(session.Kind),
		Name:       session.Name,
		Mode:       int(session.Mode),
		Status:     int(session.Status),
		Lobby:      int(session.Lobby),
		Assistance: int(session.Assistance),
		CreatedAt:  session.CreatedAt.UnixNano(),
	}
	if session.Parent != nil {
		stored.ParentObjectType = session.Parent.ObjectType
		stored.ParentToken = session.Parent.Token.String()
	}
	return stored
}

func toSession(stored diskSession) *domain.Session {
	session := &domain.Session{
		Token:      domain.Token(stored.Token),
		Kind:       domain.SessionKind(stored.Kind),
		Name:       stored.Name,
		Mode:       domain.Mode(stored.Mode),
		Status:     domain.Status(stored.Status),
		Lobby:      domain.LobbyState(stored.Lobby),
		Assistance: domain.AssistanceStatus(stored.Assistance),
		CreatedAt:  time.Unix(0, stored.CreatedAt).UTC(),
	}
	if stored.ParentObjectType != "" {
		session.Parent = lo.ToPtr(domain.ParentRef{
			ObjectType: stored.ParentObjectType,
			Token:      domain.Token(stored.ParentToken),
		})
	}
	return session
}
