package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pxshao1010-gif/independent-station/internal/auth"
	httpx "github.com/pxshao1010-gif/independent-station/internal/http"
	"github.com/pxshao1010-gif/independent-station/internal/models"
	"github.com/pxshao1010-gif/independent-station/internal/repo"
	"github.com/pxshao1010-gif/independent-station/internal/service"
	"github.com/pxshao1010-gif/independent-station/internal/store"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	ms := store.NewMemStore()
	require.NoError(t, ms.Save(context.Background(), store.CollectionProducts, []models.Product{
		{ID: "p1", TitleEN: "Dates Box", TitleAR: "علبة تمر", Price: 3.0, Currency: "KWD",
			Variants: []models.Variant{{SKU: "s1"}}},
	}))

	users := &repo.UsersJSON{S: ms}
	products := &repo.ProductsJSON{S: ms}
	orders := &repo.OrdersJSON{S: ms}

	log := zerolog.Nop()
	identity := &service.Identity{Users: users, Tokens: auth.NewTokens("test-secret"), Log: log}
	cartSvc := &service.Cart{Users: users}
	ordersSvc := &service.Orders{Repo: orders, Log: log}

	return httpx.NewRouter(&httpx.Handlers{
		Health:       Health,
		ListProducts: (&ListProductsHandler{Products: products}).ServeHTTP,
		GetProduct:   (&GetProductHandler{Products: products}).ServeHTTP,
		Register:     (&RegisterHandler{Identity: identity}).ServeHTTP,
		Login:        (&LoginHandler{Identity: identity}).ServeHTTP,
		Me:           (&MeHandler{Cart: cartSvc}).ServeHTTP,
		GetCart:      (&GetCartHandler{Cart: cartSvc}).ServeHTTP,
		ReplaceCart:  (&ReplaceCartHandler{Cart: cartSvc}).ServeHTTP,
		Checkout:     (&CheckoutHandler{Orders: ordersSvc, Identity: identity}).ServeHTTP,
		ListOrders:   (&ListOrdersHandler{Orders: ordersSvc}).ServeHTTP,
		PaymentMock:  (&PaymentMockHandler{Orders: ordersSvc, Log: log}).ServeHTTP,
	}, httpx.Auth(identity.Verify), log)
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

type sessionResp struct {
	Token string              `json:"token"`
	User  models.RedactedUser `json:"user"`
}

type checkoutRespBody struct {
	OrderID    string `json:"orderId"`
	PaymentURL string `json:"paymentUrl"`
}

func TestFullCheckoutScenario(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/api/register", "",
		map[string]string{"email": "a@x.com", "password": "pw1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	sess := decode[sessionResp](t, rec)
	require.NotEmpty(t, sess.Token)

	cart := []models.LineItem{{ID: "p1-s1", ProductID: "p1", SKU: "s1", Price: 3.0, Qty: 2}}
	rec = doJSON(t, h, http.MethodPost, "/api/checkout", sess.Token,
		map[string]any{"cart": cart, "customer": map[string]string{"name": "A"}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	co := decode[checkoutRespBody](t, rec)
	require.NotEmpty(t, co.OrderID)
	assert.Contains(t, co.PaymentURL, "/knet/mock?orderId="+co.OrderID)

	// Gateway callback flips the order to paid and renders the mock page.
	rec = doJSON(t, h, http.MethodGet, "/knet/mock?orderId="+co.OrderID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "marked as paid")

	rec = doJSON(t, h, http.MethodGet, "/api/orders", sess.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	orders := decode[[]models.Order](t, rec)
	require.Len(t, orders, 1)
	assert.Equal(t, co.OrderID, orders[0].ID)
	assert.Equal(t, models.OrderStatusPaid, orders[0].Status)
	assert.Equal(t, sess.User.ID, orders[0].UserID)
	assert.NotNil(t, orders[0].PaidAt)
}

func TestCheckout_InvalidTokenFallsBackToGuest(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/api/register", "",
		map[string]string{"email": "a@x.com", "password": "pw1"})
	sess := decode[sessionResp](t, rec)

	cart := []models.LineItem{{ID: "p1-s1", Price: 3.0, Qty: 1}}
	rec = doJSON(t, h, http.MethodPost, "/api/checkout", "not-a-real-token",
		map[string]any{"cart": cart, "customer": map[string]string{}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// The guest order is invisible to the registered user.
	rec = doJSON(t, h, http.MethodGet, "/api/orders", sess.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]models.Order](t, rec))
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	h := newTestRouter(t)
	rec := doJSON(t, h, http.MethodPost, "/api/checkout", "",
		map[string]any{"cart": []models.LineItem{}, "customer": map[string]string{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cart is empty")
}

func TestPaymentMock_MissingOrderID(t *testing.T) {
	h := newTestRouter(t)
	rec := doJSON(t, h, http.MethodGet, "/knet/mock", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaymentMock_UnknownOrderStillRendersPage(t *testing.T) {
	h := newTestRouter(t)
	rec := doJSON(t, h, http.MethodGet, "/knet/mock?orderId=ghost", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mock KNET Payment")
}

func TestCORS_BrowserFrontendAllowed(t *testing.T) {
	h := newTestRouter(t)

	// Preflight for an authenticated cross-origin request.
	req := httptest.NewRequest(http.MethodOptions, "/api/cart", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")

	// Simple requests carry the allow-origin header too.
	req = httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestProtectedRoutesRequireBearer(t *testing.T) {
	h := newTestRouter(t)

	for _, path := range []string{"/api/me", "/api/cart", "/api/orders"} {
		rec := doJSON(t, h, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "NotBearer xyz")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartRoundTripAndMe(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/api/register", "",
		map[string]string{"email": "a@x.com", "password": "pw1", "name": "Alice"})
	sess := decode[sessionResp](t, rec)

	rec = doJSON(t, h, http.MethodGet, "/api/cart", sess.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]models.LineItem](t, rec))

	items := []models.LineItem{{ID: "p1-s1", Title: "Dates Box", Price: 3.0, Qty: 2}}
	rec = doJSON(t, h, http.MethodPost, "/api/cart", sess.Token, map[string]any{"cart": items})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, h, http.MethodGet, "/api/me", sess.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[map[string]any](t, rec)
	assert.Equal(t, "Alice", me["name"])
	assert.NotContains(t, rec.Body.String(), "passwordHash")
	cartField, ok := me["cart"].([]any)
	require.True(t, ok)
	assert.Len(t, cartField, 1)
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/api/register", "",
		map[string]string{"email": "a@x.com", "password": "pw1"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/register", "",
		map[string]string{"email": "a@x.com", "password": "pw2"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already registered")
}

func TestLogin_BadCredentials(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/api/login", "",
		map[string]string{"email": "nobody@x.com", "password": "pw"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestProducts(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	products := decode[[]models.Product](t, rec)
	require.Len(t, products, 1)
	assert.Equal(t, "Dates Box", products[0].TitleEN)

	rec = doJSON(t, h, http.MethodGet, "/api/products/p1", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/products/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
