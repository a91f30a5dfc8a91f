package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pxshao1010-gif/independent-station/internal/errs"
	httpx "github.com/pxshao1010-gif/independent-station/internal/http"
	"github.com/pxshao1010-gif/independent-station/internal/models"
	"github.com/pxshao1010-gif/independent-station/internal/service"
)

// CheckoutHandler accepts an optional bearer token: a valid one ties the
// order to the user, anything else silently falls back to guest checkout.
type CheckoutHandler struct {
	Orders   *service.Orders
	Identity *service.Identity
	// PublicBaseURL, when set, replaces the request host in the payment
	// redirect target.
	PublicBaseURL string
}

type checkoutReq struct {
	Cart     []models.LineItem `json:"cart"`
	Customer models.Customer   `json:"customer"`
}

type checkoutResp struct {
	OrderID    string `json:"orderId"`
	PaymentURL string `json:"paymentUrl"`
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req checkoutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, errs.Validation("Cart is empty"))
		return
	}

	userID := h.Identity.ResolveOptional(r.Context(), httpx.BearerToken(r))

	o, err := h.Orders.Checkout(r.Context(), req.Cart, req.Customer, userID)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, checkoutResp{
		OrderID:    o.ID,
		PaymentURL: fmt.Sprintf("%s/knet/mock?orderId=%s", h.baseURL(r), o.ID),
	})
}

func (h *CheckoutHandler) baseURL(r *http.Request) string {
	if h.PublicBaseURL != "" {
		return h.PublicBaseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
