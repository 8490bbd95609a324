package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"authsvc/internal/domain/constants"
	"authsvc/internal/domain/service"
	"authsvc/internal/errors"
)

// LocalSubscription names the subscription the local publisher pretends to push from.
const LocalSubscription = "projects/local/subscriptions/account-events"

// PushMessage is the body Google Pub/Sub POSTs to push endpoints.
// The local publisher produces the same shape so the worker handles both alike.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Attributes returns the message attributes used for filtering and tracing.
func Attributes(event *service.AccountEventMessage) map[string]string {
	attributes := map[string]string{
		constants.AttributeEventID:   event.EventID,
		constants.AttributeEventType: event.Type,
		constants.AttributeAccountID: event.AccountID,
	}
	if event.RequestID != "" {
		attributes[constants.AttributeRequestID] = event.RequestID
	}

	return attributes
}

// NewPushMessage wraps event in a push envelope.
func NewPushMessage(event *service.AccountEventMessage, publishedAt time.Time) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: LocalSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = Attributes(event)
	msg.Message.MessageID = event.EventID
	msg.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return msg, nil
}

// DecodeEvent extracts the account event carried by a push envelope.
func (m *PushMessage) DecodeEvent() (*service.AccountEventMessage, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode push data")
	}

	var event service.AccountEventMessage
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal account event")
	}

	return &event, nil
}
