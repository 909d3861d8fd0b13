// Package domain contains core concepts of the breakout system.
// This file defines Message and Notification values.
// Messages are immutable once delivered.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents an immutable chat entry in one session.
type Message struct {
	ID           uuid.UUID
	SessionToken Token
	ActorType    ActorType
	ActorID      string
	Content      string
	CreatedAt    time.Time
}

// Notification tells one recipient something happened in a session.
type Notification struct {
	Recipient    string
	SessionToken Token
	MessageID    uuid.UUID
	AuthorID     string
	AuthorName   string
	Preview      string
	At           time.Time
}

// RecipientID identifies a notification recipient across sessions.
func RecipientID(actorType ActorType, actorID string) string {
	return string(actorType) + "/" + actorID
}

// Digest groups every notification a recipient receives in one flush.
type Digest struct {
	Recipient     string
	Notifications []Notification
}
