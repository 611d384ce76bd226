// FILE: internal/entity/interaction_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Interaction is one audited shopper event (login, context change, cart
// activity, voice command). Rows feed the dashboard's activity feed.
type Interaction struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	EventType   string
	ProductName *string
	ContextData map[string]interface{}
	CreatedAt   time.Time
}
