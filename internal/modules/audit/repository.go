package audit

import (
	"context"
	"database/sql"
)

// Repository defines append-only access to the audit log.
type Repository interface {
	// Append writes one entry inside the caller's transaction so the entry
	// commits or rolls back together with the change it describes.
	Append(ctx context.Context, tx *sql.Tx, e *Entry) error

	List(ctx context.Context, limit int) ([]*Entry, error)
}
