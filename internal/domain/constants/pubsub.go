package constants

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pub/Sub message attributes.
const (
	AttributeEventID   = "event_id"
	AttributeEventType = "event_type"
	AttributeAccountID = "account_id"
	AttributeRequestID = "request_id"
)
