package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pxshao1010-gif/independent-station/internal/errs"
	httpx "github.com/pxshao1010-gif/independent-station/internal/http"
	"github.com/pxshao1010-gif/independent-station/internal/service"
)

type RegisterHandler struct {
	Identity *service.Identity
}

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, errs.Validation("email and password required"))
		return
	}
	sess, err := h.Identity.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sess)
}

type LoginHandler struct {
	Identity *service.Identity
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, errs.Validation("email and password required"))
		return
	}
	sess, err := h.Identity.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sess)
}
