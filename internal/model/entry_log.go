package model

import "time"

// EntryLog records a single court check-in in the `entry_logs` table. Rows
// are append-only: once written they are never updated or deleted. The
// timestamp is assigned by the server at write time, never by the client.
type EntryLog struct {
	ID        uint64    `json:"id"`        // entry_logs.id
	MemberID  uint64    `json:"member_id"` // entry_logs.member_id (references members.id)
	Timestamp time.Time `json:"timestamp"` // entry_logs.timestamp (UTC, server-assigned)
	Notes     *string   `json:"notes"`     // entry_logs.notes (nullable, e.g. court label)
}
