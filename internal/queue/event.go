// Package queue defines the message payload published to the broker after
// every successful check-in write, plus the background consumer that mirrors
// those messages to a local log file.
package queue

// Kinds of check-in events.
const (
	KindEntry   = "entry"
	KindPayment = "payment"
)

// CheckinEventsQueue is the durable queue both publisher and consumer use.
const CheckinEventsQueue = "checkin.events"

// CheckinEvent is published when an entry or payment has been persisted. It
// carries enough information for downstream consumers (audit log, club
// notifications) without querying the primary database. AmountCents is zero
// for entry events.
type CheckinEvent struct {
	EventID     string  `json:"event_id"`
	Kind        string  `json:"kind"`
	RecordID    uint64  `json:"record_id"`
	MemberID    uint64  `json:"member_id"`
	MemberName  string  `json:"member_name"`
	AmountCents int64   `json:"amount_cents,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Timestamp   string  `json:"timestamp"`
}
