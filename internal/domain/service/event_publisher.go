package service

import (
	"context"
	"time"
)

// AccountEventMessage is the wire form of an account event, published for asynchronous consumers.
type AccountEventMessage struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	AccountID  string    `json:"account_id"`
	Email      string    `json:"email"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account event for async processing
	PublishAccountEvent(ctx context.Context, event *AccountEventMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
