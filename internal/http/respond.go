package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/pxshao1010-gif/independent-station/internal/errs"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the structured error body the storefront expects:
// {"error": "..."} with the status the taxonomy maps to.
func Error(w http.ResponseWriter, err error) {
	JSON(w, errs.HTTPStatus(err), map[string]string{"error": errs.Public(err)})
}
