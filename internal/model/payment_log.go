package model

import "time"

// PaymentLog records a single payment in the `payment_logs` table. The
// amount is stored as an integer number of cents so that sums stay exact;
// conversion to and from the decimal dollar value used on the wire lives in
// the money package. Rows are append-only like entry logs.
type PaymentLog struct {
	ID          uint64    // payment_logs.id
	MemberID    uint64    // payment_logs.member_id (references members.id)
	AmountCents int64     // payment_logs.amount_cents (always > 0)
	Timestamp   time.Time // payment_logs.timestamp (UTC, server-assigned)
	Notes       *string   // payment_logs.notes (nullable)
}

// PaymentSummary aggregates a member's payment history. TotalCents is summed
// in cents and converted to dollars once at the response boundary.
// LastPayment is nil when the member has no payments.
type PaymentSummary struct {
	Count       int64
	TotalCents  int64
	LastPayment *time.Time
}
