package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Action identifies what kind of change an audit entry records.
type Action string

const (
	ActionSaleCreated Action = "SALE_CREATED"
)

// Entry is one immutable record in the audit log. Entries are only ever
// appended, never updated or deleted.
type Entry struct {
	ID         uuid.UUID       `json:"id"`
	ActorID    *uuid.UUID      `json:"actor_id,omitempty"`
	Action     Action          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Detail     json.RawMessage `json:"detail,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
