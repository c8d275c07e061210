package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/clubops/ace-checkin/internal/model"
)

// PaymentRepo encapsulates all database queries against the payment_logs
// table. Amounts are integer cents throughout; nothing in this package
// touches the decimal dollar representation.
type PaymentRepo struct {
	db *sql.DB
}

// NewPaymentRepo constructs a PaymentRepo with the provided DB handle.
func NewPaymentRepo(db *sql.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// Create inserts a new payment log row. The timestamp is assigned server
// side at call time; on success the ID field is populated. The amount must
// already be validated (> 0) by the caller.
func (r *PaymentRepo) Create(ctx context.Context, p *model.PaymentLog) error {
	if p.Timestamp.IsZero() {
		p.Timestamp = time.Now().UTC().Truncate(time.Microsecond)
	}
	const q = `INSERT INTO payment_logs (member_id, amount_cents, timestamp, notes) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, p.MemberID, p.AmountCents, p.Timestamp, p.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// ListByMember returns a page of a member's payments, most recent first with
// id as tie-break. A member with no payments yields an empty slice.
func (r *PaymentRepo) ListByMember(ctx context.Context, memberID uint64, skip, limit int) ([]*model.PaymentLog, error) {
	const q = `SELECT id, member_id, amount_cents, timestamp, notes
	           FROM payment_logs WHERE member_id = ?
	           ORDER BY timestamp DESC, id DESC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, q, memberID, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.PaymentLog{}
	for rows.Next() {
		p := new(model.PaymentLog)
		if err := rows.Scan(&p.ID, &p.MemberID, &p.AmountCents, &p.Timestamp, &p.Notes); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Summary aggregates a member's payments: row count, total summed in cents
// so the result is exact, and the timestamp of the most recent payment (nil
// when there are none).
func (r *PaymentRepo) Summary(ctx context.Context, memberID uint64) (model.PaymentSummary, error) {
	var s model.PaymentSummary
	const qTotals = `SELECT COUNT(*), COALESCE(SUM(amount_cents), 0)
	                 FROM payment_logs WHERE member_id = ?`
	if err := r.db.QueryRowContext(ctx, qTotals, memberID).Scan(&s.Count, &s.TotalCents); err != nil {
		return model.PaymentSummary{}, err
	}
	if s.Count == 0 {
		return s, nil
	}
	const qLast = `SELECT timestamp FROM payment_logs WHERE member_id = ?
	               ORDER BY timestamp DESC, id DESC LIMIT 1`
	var ts time.Time
	if err := r.db.QueryRowContext(ctx, qLast, memberID).Scan(&ts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s, nil
		}
		return model.PaymentSummary{}, err
	}
	s.LastPayment = &ts
	return s, nil
}
