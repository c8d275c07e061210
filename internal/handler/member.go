package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clubops/ace-checkin/internal/model"
	"github.com/clubops/ace-checkin/internal/money"
)

// createMemberRequest is the body of POST /api/members. Name is the only
// required field; email and phone mirror what the club records on paper.
type createMemberRequest struct {
	Name  string  `json:"name" validate:"required,max=255"`
	Email *string `json:"email" validate:"omitempty,email,max=255"`
	Phone *string `json:"phone" validate:"omitempty,max=20"`
}

// memberStats is the aggregate block of the member summary response, used by
// the mobile client's member detail screen.
type memberStats struct {
	TotalEntries    int64      `json:"total_entries"`
	TotalPayments   int64      `json:"total_payments"`
	TotalAmountPaid float64    `json:"total_amount_paid"`
	LastEntry       *time.Time `json:"last_entry"`
	LastPayment     *time.Time `json:"last_payment"`
}

// CreateMember handles POST /api/members.
func (h *CheckinHandler) CreateMember(c echo.Context) error {
	var body createMemberRequest
	if err := c.Bind(&body); err != nil {
		return detail(c, http.StatusUnprocessableEntity, "invalid request body")
	}
	body.Name = strings.TrimSpace(body.Name)
	if err := c.Validate(&body); err != nil {
		return detail(c, http.StatusUnprocessableEntity, err.Error())
	}
	m := &model.Member{
		Name:  body.Name,
		Email: body.Email,
		Phone: body.Phone,
	}
	if err := h.Members.Create(c.Request().Context(), m); err != nil {
		return detail(c, http.StatusInternalServerError, "could not create member")
	}
	return c.JSON(http.StatusOK, m)
}

// GetMember handles GET /api/members/:id. The mobile client calls this after
// a barcode scan to show the member's name before confirming an action.
func (h *CheckinHandler) GetMember(c echo.Context) error {
	id, ok := memberIDParam(c)
	if !ok {
		return detail(c, http.StatusUnprocessableEntity, "invalid member id")
	}
	m, ok := h.getMemberOr404(c, id)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, m)
}

// ListMembers handles GET /api/members with skip/limit pagination, ordered
// by id ascending.
func (h *CheckinHandler) ListMembers(c echo.Context) error {
	skip, limit, ok := pagination(c)
	if !ok {
		return detail(c, http.StatusUnprocessableEntity, "skip and limit must be non-negative integers")
	}
	members, err := h.Members.List(c.Request().Context(), skip, limit)
	if err != nil {
		return detail(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, members)
}

// MemberSummary handles GET /api/members/:id/summary, combining entry and
// payment aggregates for one member.
func (h *CheckinHandler) MemberSummary(c echo.Context) error {
	id, ok := memberIDParam(c)
	if !ok {
		return detail(c, http.StatusUnprocessableEntity, "invalid member id")
	}
	m, ok := h.getMemberOr404(c, id)
	if !ok {
		return nil
	}
	ctx := c.Request().Context()
	entryCount, lastEntry, err := h.Entries.Stats(ctx, id)
	if err != nil {
		return detail(c, http.StatusInternalServerError, "database error")
	}
	paySummary, err := h.Payments.Summary(ctx, id)
	if err != nil {
		return detail(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"member": m,
		"stats": memberStats{
			TotalEntries:    entryCount,
			TotalPayments:   paySummary.Count,
			TotalAmountPaid: money.ToDollars(paySummary.TotalCents),
			LastEntry:       lastEntry,
			LastPayment:     paySummary.LastPayment,
		},
	})
}
