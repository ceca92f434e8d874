package postgres

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows, so one scan
// function per entity serves GetByID and ListByUser alike.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// nullTime converts a nullable domain timestamp into its SQL representation
func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// nullUUID converts a nullable domain UUID into its SQL representation
func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

// requireRow maps a zero-row write onto domain.ErrNotFound. Updates and
// deletes are always user-scoped, so a miss means the record does not exist
// or belongs to someone else; the two are indistinguishable on purpose.
func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
