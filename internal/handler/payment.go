package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clubops/ace-checkin/internal/model"
	"github.com/clubops/ace-checkin/internal/money"
	"github.com/clubops/ace-checkin/internal/queue"
)

// paymentCheckinRequest is the body of POST /api/payment. Amount is decimal
// dollars on the wire; conversion to cents (and rejection of values that are
// not exact at two decimals) happens in the money package.
type paymentCheckinRequest struct {
	MemberID uint64  `json:"member_id" validate:"required,gt=0"`
	Amount   float64 `json:"amount" validate:"required"`
	Notes    *string `json:"notes" validate:"omitempty,max=255"`
}

// paymentResponse echoes the persisted row with the amount converted back to
// dollars plus the confirmation message for the scanner screen.
type paymentResponse struct {
	ID         uint64    `json:"id"`
	MemberID   uint64    `json:"member_id"`
	MemberName string    `json:"member_name"`
	Amount     float64   `json:"amount"`
	Timestamp  time.Time `json:"timestamp"`
	Notes      *string   `json:"notes"`
	Message    string    `json:"message"`
}

// paymentRow is the list representation of a payment, amount in dollars.
type paymentRow struct {
	ID        uint64    `json:"id"`
	MemberID  uint64    `json:"member_id"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
	Notes     *string   `json:"notes"`
}

// paymentSummaryResponse aggregates a member's payments. LastPayment is null
// when the member has never paid.
type paymentSummaryResponse struct {
	MemberID    uint64     `json:"member_id"`
	Count       int64      `json:"count"`
	TotalAmount float64    `json:"total_amount"`
	LastPayment *time.Time `json:"last_payment"`
}

// recordPayment is the single implementation behind both payment routes.
// amountCents has already been validated as positive and exact.
func (h *CheckinHandler) recordPayment(c echo.Context, memberID uint64, amountCents int64, notes *string) error {
	m, ok := h.getMemberOr404(c, memberID)
	if !ok {
		return nil
	}
	payment := &model.PaymentLog{
		MemberID:    memberID,
		AmountCents: amountCents,
		Notes:       notes,
	}
	if err := h.Payments.Create(c.Request().Context(), payment); err != nil {
		return detail(c, http.StatusInternalServerError, "could not log payment")
	}
	h.emitEvent(queue.KindPayment, payment.ID, m, payment.AmountCents, payment.Notes, payment.Timestamp)
	dollars := money.ToDollars(payment.AmountCents)
	return c.JSON(http.StatusOK, paymentResponse{
		ID:         payment.ID,
		MemberID:   payment.MemberID,
		MemberName: m.Name,
		Amount:     dollars,
		Timestamp:  payment.Timestamp,
		Notes:      payment.Notes,
		Message:    fmt.Sprintf("Payment of $%.2f logged for %s", dollars, m.Name),
	})
}

// LogPayment handles POST /api/payment with a JSON body.
func (h *CheckinHandler) LogPayment(c echo.Context) error {
	var body paymentCheckinRequest
	if err := c.Bind(&body); err != nil {
		return detail(c, http.StatusUnprocessableEntity, "invalid request body")
	}
	if err := c.Validate(&body); err != nil {
		return detail(c, http.StatusUnprocessableEntity, err.Error())
	}
	cents, err := money.FromDollars(body.Amount)
	if err != nil {
		return detail(c, http.StatusUnprocessableEntity, err.Error())
	}
	notes := body.Notes
	if notes != nil && *notes == "" {
		notes = nil
	}
	return h.recordPayment(c, body.MemberID, cents, notes)
}

// ScanPayment handles GET /api/payment/checkin/:id?amount=&notes= for
// link-following barcode scanners. The amount is parsed from its decimal
// text so no float precision is involved.
func (h *CheckinHandler) ScanPayment(c echo.Context) error {
	id, ok := memberIDParam(c)
	if !ok {
		return detail(c, http.StatusUnprocessableEntity, "invalid member id")
	}
	cents, err := money.ParseDollars(c.QueryParam("amount"))
	if err != nil {
		return detail(c, http.StatusUnprocessableEntity, err.Error())
	}
	notes, ok := notesQuery(c)
	if !ok {
		return detail(c, http.StatusUnprocessableEntity, "notes must be at most 255 characters")
	}
	return h.recordPayment(c, id, cents, notes)
}

// ListPayments handles GET /api/payment/:id, newest-first, amounts reported
// in dollars. Like entry listing it does not check member existence.
func (h *CheckinHandler) ListPayments(c echo.Context) error {
	id, ok := memberIDParam(c)
	if !ok {
		return detail(c, http.StatusUnprocessableEntity, "invalid member id")
	}
	skip, limit, ok := pagination(c)
	if !ok {
		return detail(c, http.StatusUnprocessableEntity, "skip and limit must be non-negative integers")
	}
	payments, err := h.Payments.ListByMember(c.Request().Context(), id, skip, limit)
	if err != nil {
		return detail(c, http.StatusInternalServerError, "database error")
	}
	rows := make([]paymentRow, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, paymentRow{
			ID:        p.ID,
			MemberID:  p.MemberID,
			Amount:    money.ToDollars(p.AmountCents),
			Timestamp: p.Timestamp,
			Notes:     p.Notes,
		})
	}
	return c.JSON(http.StatusOK, rows)
}

// PaymentSummary handles GET /api/payment/summary/:id. The total is summed
// in cents by the repository and converted to dollars exactly once here.
func (h *CheckinHandler) PaymentSummary(c echo.Context) error {
	id, ok := memberIDParam(c)
	if !ok {
		return detail(c, http.StatusUnprocessableEntity, "invalid member id")
	}
	if _, ok := h.getMemberOr404(c, id); !ok {
		return nil
	}
	s, err := h.Payments.Summary(c.Request().Context(), id)
	if err != nil {
		return detail(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, paymentSummaryResponse{
		MemberID:    id,
		Count:       s.Count,
		TotalAmount: money.ToDollars(s.TotalCents),
		LastPayment: s.LastPayment,
	})
}
