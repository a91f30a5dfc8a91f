package handlers

import (
	"net/http"

	"github.com/pxshao1010-gif/independent-station/internal/errs"
	httpx "github.com/pxshao1010-gif/independent-station/internal/http"
	"github.com/pxshao1010-gif/independent-station/internal/models"
	"github.com/pxshao1010-gif/independent-station/internal/service"
)

type MeHandler struct {
	Cart *service.Cart
}

type meResp struct {
	ID    string            `json:"id"`
	Email string            `json:"email"`
	Name  string            `json:"name"`
	Cart  []models.LineItem `json:"cart"`
}

func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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
	httpx.JSON(w, http.StatusOK, meResp{ID: u.ID, Email: u.Email, Name: u.Name, Cart: cart})
}
