package audit

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Append(ctx context.Context, tx *sql.Tx, e *Entry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	_, err := tx.ExecContext(ctx, `
		INSERT INTO audit_log_entries (id, actor_id, action, entity_type, entity_id, detail)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		e.ID, e.ActorID, e.Action, e.EntityType, e.EntityID, nullableJSON(e.Detail))
	return err
}

func (r *postgresRepo) List(ctx context.Context, limit int) ([]*Entry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, actor_id, action, entity_type, entity_id, detail, created_at
		FROM audit_log_entries
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		var actorID sql.NullString
		var detail []byte
		if err := rows.Scan(&e.ID, &actorID, &e.Action, &e.EntityType,
			&e.EntityID, &detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		if actorID.Valid {
			uid, _ := uuid.Parse(actorID.String)
			e.ActorID = &uid
		}
		e.Detail = detail
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func nullableJSON(b []byte) interface{} {
	if len(b) == 0 {
		return nil
	}
	return b
}
