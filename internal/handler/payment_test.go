package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type paymentResp struct {
	ID         uint64  `json:"id"`
	MemberID   uint64  `json:"member_id"`
	MemberName string  `json:"member_name"`
	Amount     float64 `json:"amount"`
	Timestamp  string  `json:"timestamp"`
	Notes      *string `json:"notes"`
	Message    string  `json:"message"`
}

type summaryResp struct {
	MemberID    uint64  `json:"member_id"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"total_amount"`
	LastPayment *string `json:"last_payment"`
}

func TestLogPaymentRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	id := registerMember(t, srv, "Alice")

	var got paymentResp
	code := doJSON(t, http.MethodPost, srv.URL+"/api/payment",
		map[string]any{"member_id": id, "amount": 25.50, "notes": "Fee"}, &got)
	require.Equal(t, http.StatusOK, code)
	require.NotZero(t, got.ID)
	require.Equal(t, "Alice", got.MemberName)
	require.Equal(t, 25.50, got.Amount)
	require.Equal(t, "Payment of $25.50 logged for Alice", got.Message)

	// The wire amount must come back exactly from the stored cents.
	var rows []paymentResp
	code = doJSON(t, http.MethodGet, srv.URL+"/api/payment/1", nil, &rows)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, rows, 1)
	require.Equal(t, 25.50, rows[0].Amount)
}

func TestLogPaymentRejections(t *testing.T) {
	srv := newTestServer(t)
	id := registerMember(t, srv, "Alice")

	tests := []struct {
		name string
		body map[string]any
		code int
	}{
		{"negative amount", map[string]any{"member_id": id, "amount": -5.00}, http.StatusUnprocessableEntity},
		{"zero amount", map[string]any{"member_id": id, "amount": 0}, http.StatusUnprocessableEntity},
		{"three decimals", map[string]any{"member_id": id, "amount": 1.005}, http.StatusUnprocessableEntity},
		{"missing member", map[string]any{"member_id": 999, "amount": 10.00}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]string
			code := doJSON(t, http.MethodPost, srv.URL+"/api/payment", tt.body, &got)
			require.Equal(t, tt.code, code)
			require.NotEmpty(t, got["detail"])
		})
	}

	// None of the rejected requests may have left a row behind.
	var s summaryResp
	code := doJSON(t, http.MethodGet, srv.URL+"/api/payment/summary/1", nil, &s)
	require.Equal(t, http.StatusOK, code)
	require.Zero(t, s.Count)
}

func TestScanPayment(t *testing.T) {
	srv := newTestServer(t)
	id := registerMember(t, srv, "Alice")

	var got paymentResp
	code := doJSON(t, http.MethodGet,
		srv.URL+"/api/payment/checkin/1?amount=10.00&notes=Fee", nil, &got)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, id, got.MemberID)
	require.Equal(t, 10.0, got.Amount)
	require.Equal(t, "Fee", *got.Notes)

	code = doJSON(t, http.MethodGet, srv.URL+"/api/payment/checkin/1?amount=abc", nil, nil)
	require.Equal(t, http.StatusUnprocessableEntity, code)

	code = doJSON(t, http.MethodGet, srv.URL+"/api/payment/checkin/1?amount=1.005", nil, nil)
	require.Equal(t, http.StatusUnprocessableEntity, code)

	code = doJSON(t, http.MethodGet, srv.URL+"/api/payment/checkin/1?amount=-0.50", nil, nil)
	require.Equal(t, http.StatusUnprocessableEntity, code)

	code = doJSON(t, http.MethodGet,
		srv.URL+"/api/payment/checkin/1?amount=10.00&notes="+strings.Repeat("x", 300), nil, nil)
	require.Equal(t, http.StatusUnprocessableEntity, code)

	// Only the first, valid scan may have been recorded.
	var s summaryResp
	code = doJSON(t, http.MethodGet, srv.URL+"/api/payment/summary/1", nil, &s)
	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 1, s.Count)
}

// The structured POST and the scanner GET are two adapters over the same
// operation and must persist equivalent rows.
func TestPaymentRouteEquivalence(t *testing.T) {
	srv := newTestServer(t)
	registerMember(t, srv, "Alice")

	var viaPost, viaGet paymentResp
	code := doJSON(t, http.MethodPost, srv.URL+"/api/payment",
		map[string]any{"member_id": 1, "amount": 12.34, "notes": "Fee"}, &viaPost)
	require.Equal(t, http.StatusOK, code)
	code = doJSON(t, http.MethodGet,
		srv.URL+"/api/payment/checkin/1?amount=12.34&notes=Fee", nil, &viaGet)
	require.Equal(t, http.StatusOK, code)

	require.NotEqual(t, viaPost.ID, viaGet.ID)
	require.Equal(t, viaPost.Amount, viaGet.Amount)
	require.Equal(t, *viaPost.Notes, *viaGet.Notes)
	require.Equal(t, viaPost.Message, viaGet.Message)
}

func TestPaymentSummary(t *testing.T) {
	srv := newTestServer(t)
	id := registerMember(t, srv, "Alice")

	for _, amount := range []float64{25.50, 10.00, 0.01} {
		code := doJSON(t, http.MethodPost, srv.URL+"/api/payment",
			map[string]any{"member_id": id, "amount": amount}, nil)
		require.Equal(t, http.StatusOK, code)
	}

	var s summaryResp
	code := doJSON(t, http.MethodGet, srv.URL+"/api/payment/summary/1", nil, &s)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, id, s.MemberID)
	require.EqualValues(t, 3, s.Count)
	require.InDelta(t, 35.51, s.TotalAmount, 0.001)
	require.NotNil(t, s.LastPayment)

	code = doJSON(t, http.MethodGet, srv.URL+"/api/payment/summary/999", nil, nil)
	require.Equal(t, http.StatusNotFound, code)
}

func TestPaymentSummaryEmpty(t *testing.T) {
	srv := newTestServer(t)
	registerMember(t, srv, "Alice")

	var s summaryResp
	code := doJSON(t, http.MethodGet, srv.URL+"/api/payment/summary/1", nil, &s)
	require.Equal(t, http.StatusOK, code)
	require.Zero(t, s.Count)
	require.Zero(t, s.TotalAmount)
	require.Nil(t, s.LastPayment)
}
