//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"breakout-lab/domain"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IMessageRepository interface {
	StoreMessage(message DiskMessage) error
	GetMessages(token domain.Token, cursor *string) ([]DiskMessage, *string, error)
}

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) MessageRepository {
	return MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

type DiskMessage struct {
	ID        uuid.UUID
	Session   domain.Token
	ActorType domain.ActorType
	Author    string
	Content   string
	At        time.Time
}

type storedMessage struct {
	ID        string `json:"id"`
	Session   string `json:"session"`
	ActorType string `json:"actor_type"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	At        int64  `json:"at"`
}

func messagePrefix(token domain.Token) string {
	return fmt.Sprintf("msg:%s:", token)
}

// StoreMessage persists a message in BadgerDB.
// The key is formatted as "msg:{session}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Keep messages sharing a timestamp apart, which a broadcast always produces
//     across sessions and may produce within one.
func (m MessageRepository) StoreMessage(message DiskMessage) error {
	key := fmt.Sprintf("%s%019d:%s",
		messagePrefix(message.Session),
		message.At.UnixNano(),
		message.ID,
	)
	bytes, err := json.Marshal(fromDiskMessage(message))
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetMessages retrieves messages for a session, newest first, using a reverse prefix scan.
// The returned cursor is the key suffix of the last message read; passing it back
// resumes right after that message.
// It stops collecting messages once the configured limitMessages is reached.
func (m MessageRepository) GetMessages(token domain.Token, cursor *string) ([]DiskMessage, *string, error) {
	var byteMessages [][]byte
	var diskMessages []DiskMessage
	var lastKey string
	err := m.db.View(func(txn *badger.Txn) error {
		prefixStr := messagePrefix(token)
		prefix := []byte(prefixStr)
		prefixLen := len(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Seek past the newest possible timestamp, then walk backwards
			seekKey = append(append([]byte{}, prefix...), []byte("9999999999999999999~")...)
		default:
			seekKey = append(append([]byte{}, prefix...), []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()[prefixLen:]) == *cursor {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(byteMessages) == *m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d message reached", *m.limitMessages))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[prefixLen:])
			err := item.Value(func(value []byte) error {
				byteMessages = append(byteMessages, append([]byte{}, value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	for _, b := range byteMessages {
		var stored storedMessage
		if err = json.Unmarshal(b, &stored); err != nil {
			return nil, nil, err
		}
		message, err := toDiskMessage(stored)
		if err != nil {
			return nil, nil, err
		}
		diskMessages = append(diskMessages, message)
	}
	return diskMessages, &lastKey, nil
}

// ToMessage maps the stored form to the domain message.
func (d DiskMessage) ToMessage() domain.Message {
	return domain.Message{
		ID:           d.ID,
		SessionToken: d.Session,
		ActorType:    d.ActorType,
		ActorID:      d.Author,
		Content:      d.Content,
		CreatedAt:    d.At,
	}
}

func fromDiskMessage(message DiskMessage) storedMessage {
	return storedMessage{
		ID:        message.ID.String(),
		Session:   message.Session.String(),
		ActorType: string(message.ActorType),
		Author:    message.Author,
		Content:   message.Content,
		At:        message.At.UnixNano(),
	}
}

func toDiskMessage(stored storedMessage) (DiskMessage, error) {
	parsedID, err := uuid.Parse(stored.ID)
	if err != nil {
		return DiskMessage{}, err
	}
	return DiskMessage{
		ID:        parsedID,
		Session:   domain.Token(stored.Session),
		ActorType: domain.ActorType(stored.ActorType),
		Author:    stored.Author,
		Content:   stored.Content,
		At:        time.Unix(0, stored.At).UTC(),
	}, nil
}
