package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clubops/ace-checkin/internal/model"
	"github.com/clubops/ace-checkin/internal/queue"
)

// entryCheckinRequest is the body of POST /api/entry. The member id comes
// from the scanned barcode; notes usually carry the court label.
type entryCheckinRequest struct {
	MemberID uint64  `json:"member_id" validate:"required,gt=0"`
	Notes    *string `json:"notes" validate:"omitempty,max=255"`
}

// entryResponse echoes the persisted row plus the member name and a
// confirmation message for the scanner screen.
type entryResponse struct {
	ID         uint64    `json:"id"`
	MemberID   uint64    `json:"member_id"`
	MemberName string    `json:"member_name"`
	Timestamp  time.Time `json:"timestamp"`
	Notes      *string   `json:"notes"`
	Message    string    `json:"message"`
}

// recordEntry is the single implementation behind both entry routes: it
// verifies the member, persists the row with a server-assigned timestamp and
// writes the response. The POST and GET adapters differ only in how they
// extract memberID and notes.
func (h *CheckinHandler) recordEntry(c echo.Context, memberID uint64, notes *string) error {
	m, ok := h.getMemberOr404(c, memberID)
	if !ok {
		return nil
	}
	entry := &model.EntryLog{MemberID: memberID, Notes: notes}
	if err := h.Entries.Create(c.Request().Context(), entry); err != nil {
		return detail(c, http.StatusInternalServerError, "could not log entry")
	}
	h.emitEvent(queue.KindEntry, entry.ID, m, 0, entry.Notes, entry.Timestamp)
	return c.JSON(http.StatusOK, entryResponse{
		ID:         entry.ID,
		MemberID:   entry.MemberID,
		MemberName: m.Name,
		Timestamp:  entry.Timestamp,
		Notes:      entry.Notes,
		Message:    fmt.Sprintf("Entry logged for %s", m.Name),
	})
}

// LogEntry handles POST /api/entry with a JSON body.
func (h *CheckinHandler) LogEntry(c echo.Context) error {
	var body entryCheckinRequest
	if err := c.Bind(&body); err != nil {
		return detail(c, http.StatusUnprocessableEntity, "invalid request body")
	}
	if err := c.Validate(&body); err != nil {
		return detail(c, http.StatusUnprocessableEntity, err.Error())
	}
	notes := body.Notes
	if notes != nil && *notes == "" {
		notes = nil
	}
	return h.recordEntry(c, body.MemberID, notes)
}

// ScanEntry handles GET /api/entry/checkin/:id for barcode scanners that can
// only follow links. It persists exactly what LogEntry would for the same
// inputs.
func (h *CheckinHandler) ScanEntry(c echo.Context) error {
	id, ok := memberIDParam(c)
	if !ok {
		return detail(c, http.StatusUnprocessableEntity, "invalid member id")
	}
	notes, ok := notesQuery(c)
	if !ok {
		return detail(c, http.StatusUnprocessableEntity, "notes must be at most 255 characters")
	}
	return h.recordEntry(c, id, notes)
}

// ListEntries handles GET /api/entry/:id, returning a member's entries
// newest-first. A member with no entries yields an empty list; existence is
// not checked on this read-only path.
func (h *CheckinHandler) ListEntries(c echo.Context) error {
	id, ok := memberIDParam(c)
	if !ok {
		return detail(c, http.StatusUnprocessableEntity, "invalid member id")
	}
	skip, limit, ok := pagination(c)
	if !ok {
		return detail(c, http.StatusUnprocessableEntity, "skip and limit must be non-negative integers")
	}
	entries, err := h.Entries.ListByMember(c.Request().Context(), id, skip, limit)
	if err != nil {
		return detail(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, entries)
}
