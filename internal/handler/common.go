// Package handler implements the HTTP endpoints of the check-in API. Every
// error leaving this package is resolved into a {"detail": "..."} body with
// the status mapping: not found -> 404, validation -> 422, store failure ->
// 500. The dual POST/GET routes for entries and payments are thin adapters
// over one shared function each, so both produce identical rows and
// responses by construction.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clubops/ace-checkin/internal/model"
	"github.com/clubops/ace-checkin/internal/queue"
	"github.com/clubops/ace-checkin/internal/repository"
	queue_publisher "github.com/clubops/ace-checkin/internal/service"
)

// CheckinHandler bundles the repositories behind the member, entry and
// payment endpoints.
type CheckinHandler struct {
	Members  *repository.MemberRepo
	Entries  *repository.EntryRepo
	Payments *repository.PaymentRepo

	// EventsEnabled turns on best-effort broker publishing after writes.
	EventsEnabled bool
}

// NewCheckinHandler constructs a CheckinHandler and panics if any repository
// is nil, since that is a wiring bug rather than a runtime condition.
func NewCheckinHandler(members *repository.MemberRepo, entries *repository.EntryRepo, payments *repository.PaymentRepo, eventsEnabled bool) *CheckinHandler {
	if members == nil || entries == nil || payments == nil {
		panic("nil repository passed to NewCheckinHandler")
	}
	return &CheckinHandler{
		Members:       members,
		Entries:       entries,
		Payments:      payments,
		EventsEnabled: eventsEnabled,
	}
}

// detail writes the uniform error body used by every failure response.
func detail(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"detail": msg})
}

// memberIDParam parses the :id path segment.
func memberIDParam(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// pagination reads the skip/limit query parameters, defaulting to 0/100 and
// rejecting negative or non-numeric values.
func pagination(c echo.Context) (skip, limit int, ok bool) {
	skip, limit = 0, 100
	if s := c.QueryParam("skip"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return 0, 0, false
		}
		skip = n
	}
	if s := c.QueryParam("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return 0, 0, false
		}
		limit = n
	}
	return skip, limit, true
}

// maxNotesLen mirrors the length limit validated on the POST bodies and the
// size of the notes columns.
const maxNotesLen = 255

// notesQuery reads the optional notes query parameter, mapping the empty
// string to nil so both adapters persist the same value for an omitted note.
// ok is false when the note exceeds the limit the POST adapters enforce.
func notesQuery(c echo.Context) (notes *string, ok bool) {
	s := c.QueryParam("notes")
	if len(s) > maxNotesLen {
		return nil, false
	}
	if s == "" {
		return nil, true
	}
	return &s, true
}

// emitEvent publishes a check-in event in the background. Failures are
// logged by the publisher and never affect the request that triggered them.
func (h *CheckinHandler) emitEvent(kind string, recordID uint64, m *model.Member, amountCents int64, notes *string, ts time.Time) {
	if !h.EventsEnabled {
		return
	}
	ev := queue.CheckinEvent{
		EventID:     uuid.NewString(),
		Kind:        kind,
		RecordID:    recordID,
		MemberID:    m.ID,
		MemberName:  m.Name,
		AmountCents: amountCents,
		Notes:       notes,
		Timestamp:   ts.Format(time.RFC3339Nano),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishCheckinEvent(ctx, ev)
	}()
}

// getMemberOr404 resolves a member id, writing the 404/500 response itself
// when the lookup fails. The bool reports whether the caller may proceed.
func (h *CheckinHandler) getMemberOr404(c echo.Context, id uint64) (*model.Member, bool) {
	m, err := h.Members.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrMemberNotFound {
			_ = detail(c, http.StatusNotFound, memberNotFoundMsg(id))
			return nil, false
		}
		_ = detail(c, http.StatusInternalServerError, "database error")
		return nil, false
	}
	return m, true
}

func memberNotFoundMsg(id uint64) string {
	return "member with id " + strconv.FormatUint(id, 10) + " not found"
}
