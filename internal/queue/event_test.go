package queue

import (
	"strings"
	"testing"
)

func TestFormatEvent(t *testing.T) {
	notes := "Court A"

	t.Run("entry", func(t *testing.T) {
		line := formatEvent(CheckinEvent{
			EventID:    "ev-1",
			Kind:       KindEntry,
			RecordID:   7,
			MemberID:   1,
			MemberName: "Alice",
			Notes:      &notes,
			Timestamp:  "2026-03-01T09:00:00Z",
		})
		for _, want := range []string{"entry", "entry_id=7", "member_id=1", `"Alice"`, `"Court A"`, "ev-1"} {
			if !strings.Contains(line, want) {
				t.Errorf("line %q missing %q", line, want)
			}
		}
		if !strings.HasSuffix(line, "\n") {
			t.Error("line must end with a newline")
		}
	})

	t.Run("payment", func(t *testing.T) {
		line := formatEvent(CheckinEvent{
			EventID:     "ev-2",
			Kind:        KindPayment,
			RecordID:    9,
			MemberID:    1,
			MemberName:  "Alice",
			AmountCents: 2550,
			Timestamp:   "2026-03-01T09:05:00Z",
		})
		if !strings.Contains(line, "amount=$25.50") {
			t.Errorf("line %q missing formatted amount", line)
		}
		if !strings.Contains(line, "payment_id=9") {
			t.Errorf("line %q missing payment id", line)
		}
	})
}
