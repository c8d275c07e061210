package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/clubops/ace-checkin/internal/model"
)

// MemberRepo encapsulates all database queries against the members table.
// It depends on a sql.DB connection pool injected at startup, which also
// allows tests to supply their own database.
type MemberRepo struct {
	db *sql.DB
}

// NewMemberRepo constructs a MemberRepo with the provided DB handle.
func NewMemberRepo(db *sql.DB) *MemberRepo {
	return &MemberRepo{db: db}
}

// Create inserts a new member. The CreatedAt timestamp is assigned here,
// server side, when the caller has not set one; on success the ID field is
// populated with the auto-generated value.
func (r *MemberRepo) Create(ctx context.Context, m *model.Member) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}
	const q = `INSERT INTO members (name, email, phone, created_at) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.Name, m.Email, m.Phone, m.CreatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// GetByID fetches a member by id. It returns ErrMemberNotFound when no row
// exists.
func (r *MemberRepo) GetByID(ctx context.Context, id uint64) (*model.Member, error) {
	const q = `SELECT id, name, email, phone, created_at FROM members WHERE id = ?`
	var m model.Member
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

// List returns a page of members ordered by id ascending. An empty page is
// not an error.
func (r *MemberRepo) List(ctx context.Context, skip, limit int) ([]*model.Member, error) {
	const q = `SELECT id, name, email, phone, created_at
	           FROM members ORDER BY id LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, q, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Member{}
	for rows.Next() {
		m := new(model.Member)
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
