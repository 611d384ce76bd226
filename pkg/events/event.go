package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USER_LOGIN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type codes published on the interaction topic.
const (
	TypeUserLogin         = "USER_LOGIN"
	TypeContextUpdated    = "CONTEXT_UPDATED"
	TypeProductViewed     = "PRODUCT_VIEWED"
	TypeCartItemAdded     = "CART_ITEM_ADDED"
	TypeCartItemRemoved   = "CART_ITEM_REMOVED"
	TypeWishlistItemSaved = "WISHLIST_ITEM_SAVED"
	TypeCheckoutCompleted = "CHECKOUT_COMPLETED"
	TypeVoiceCommand      = "VOICE_COMMAND"
)

// BaseEvent is the common implementation embedded by concrete events.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewInteraction builds a shopper interaction event. UserID always rides in
// the payload so the audit consumer can attribute it without extra lookups.
func NewInteraction(eventType, userID string, data map[string]interface{}) BaseEvent {
	if data == nil {
		data = map[string]interface{}{}
	}
	data["user_id"] = userID
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
