package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httpx "github.com/pxshao1010-gif/independent-station/internal/http"
	"github.com/pxshao1010-gif/independent-station/internal/repo"
)

type ListProductsHandler struct {
	Products repo.Products
}

func (h *ListProductsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.All(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

type GetProductHandler struct {
	Products repo.Products
}

func (h *GetProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, err := h.Products.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}
