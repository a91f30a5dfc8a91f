package handlers

import (
	"fmt"
	"html"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/pxshao1010-gif/independent-station/internal/service"
)

// PaymentMockHandler simulates the KNET redirect: it marks the order paid
// and renders a small confirmation page. An unknown order id still
// renders the page, keeping the callback idempotent-looking.
type PaymentMockHandler struct {
	Orders *service.Orders
	Log    zerolog.Logger
}

func (h *PaymentMockHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("orderId")
	if orderID == "" {
		http.Error(w, "Missing orderId", http.StatusBadRequest)
		return
	}

	paid, err := h.Orders.ConfirmPayment(r.Context(), orderID)
	if err != nil {
		h.Log.Error().Err(err).Str("orderId", orderID).Msg("payment confirm failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if !paid {
		h.Log.Warn().Str("orderId", orderID).Msg("payment confirm matched no pending order")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<html><body><h2>Mock KNET Payment</h2><p>Order %s marked as paid (mock).</p><p>Return to store.</p></body></html>", html.EscapeString(orderID))
}
