package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/clubops/ace-checkin/internal/model"
)

// EntryRepo encapsulates all database queries against the entry_logs table.
type EntryRepo struct {
	db *sql.DB
}

// NewEntryRepo constructs an EntryRepo with the provided DB handle.
func NewEntryRepo(db *sql.DB) *EntryRepo {
	return &EntryRepo{db: db}
}

// Create inserts a new entry log row. The timestamp is assigned server side
// at call time; on success the ID field is populated. Member existence is
// checked by the caller before inserting.
func (r *EntryRepo) Create(ctx context.Context, e *model.EntryLog) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC().Truncate(time.Microsecond)
	}
	const q = `INSERT INTO entry_logs (member_id, timestamp, notes) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, e.MemberID, e.Timestamp, e.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	return nil
}

// ListByMember returns a page of a member's entries, most recent first.
// Two rows can carry the same timestamp, so id breaks ties to keep the
// order deterministic. A member with no entries yields an empty slice.
func (r *EntryRepo) ListByMember(ctx context.Context, memberID uint64, skip, limit int) ([]*model.EntryLog, error) {
	const q = `SELECT id, member_id, timestamp, notes
	           FROM entry_logs WHERE member_id = ?
	           ORDER BY timestamp DESC, id DESC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, q, memberID, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.EntryLog{}
	for rows.Next() {
		e := new(model.EntryLog)
		if err := rows.Scan(&e.ID, &e.MemberID, &e.Timestamp, &e.Notes); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats returns the number of entries a member has logged and the timestamp
// of the most recent one (nil when there are none). Used by the member
// summary endpoint.
func (r *EntryRepo) Stats(ctx context.Context, memberID uint64) (count int64, last *time.Time, err error) {
	const qCount = `SELECT COUNT(*) FROM entry_logs WHERE member_id = ?`
	if err = r.db.QueryRowContext(ctx, qCount, memberID).Scan(&count); err != nil {
		return 0, nil, err
	}
	const qLast = `SELECT timestamp FROM entry_logs WHERE member_id = ?
	               ORDER BY timestamp DESC, id DESC LIMIT 1`
	var ts time.Time
	if err = r.db.QueryRowContext(ctx, qLast, memberID).Scan(&ts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return count, nil, nil
		}
		return 0, nil, err
	}
	return count, &ts, nil
}
