package handlers

import (
	"net/http"

	"github.com/pxshao1010-gif/independent-station/internal/errs"
	httpx "github.com/pxshao1010-gif/independent-station/internal/http"
	"github.com/pxshao1010-gif/independent-station/internal/service"
)

type ListOrdersHandler struct {
	Orders *service.Orders
}

func (h *ListOrdersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u, ok := httpx.UserFrom(r.Context())
	if !ok {
		httpx.Error(w, errs.Auth("Missing authorization"))
		return
	}
	orders, err := h.Orders.ListOrders(r.Context(), u.ID)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, orders)
}
