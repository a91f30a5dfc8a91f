package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pxshao1010-gif/independent-station/internal/errs"
	httpx "github.com/pxshao1010-gif/independent-station/internal/http"
	"github.com/pxshao1010-gif/independent-station/internal/models"
	"github.com/pxshao1010-gif/independent-station/internal/service"
)

type GetCartHandler struct {
	Cart *service.Cart
}

func (h *GetCartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u, ok := httpx.UserFrom(r.Context())
	if !ok {
		httpx.Error(w, errs.Auth("Missing authorization"))
		return
	}
	cart, err := h.Cart.Get(r.Context(), u.ID)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, cart)
}

type ReplaceCartHandler struct {
	Cart *service.Cart
}

type replaceCartReq struct {
	Cart []models.LineItem `json:"cart"`
}

func (h *ReplaceCartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u, ok := httpx.UserFrom(r.Context())
	if !ok {
		httpx.Error(w, errs.Auth("Missing authorization"))
		return
	}
	var req replaceCartReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, errs.Validation("cart must be an array"))
		return
	}
	if err := h.Cart.Replace(r.Context(), u.ID, req.Cart); err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
