package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andregumieri/fiap-brigalab/internal/auth"
	"github.com/andregumieri/fiap-brigalab/internal/catalog"
	"github.com/andregumieri/fiap-brigalab/internal/middleware"
	"github.com/andregumieri/fiap-brigalab/internal/models"
	"github.com/andregumieri/fiap-brigalab/internal/order"
	"github.com/andregumieri/fiap-brigalab/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type acceptingSubmitter struct{}

func (acceptingSubmitter) Submit(ctx context.Context, req order.CheckoutRequest) (order.Confirmation, error) {
	return order.Confirmation{Reference: "pedido-" + req.Total.StringFixed(2)}, nil
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T, submitter order.Submitter) *testServer {
	gin.SetMode(gin.TestMode)
	cat := catalog.Default()
	issuer := auth.NewTokenIssuer("test-session-secret-32-characters", time.Hour)
	sessions := services.NewSessionService(cat, decimal.RequireFromString("7.90"), time.Hour)
	sc := NewStorefrontController(cat, sessions, issuer, submitter)

	router := gin.New()
	RegisterRoutes(router, sc, middleware.SessionAuth(issuer))
	return &testServer{t: t, router: router}
}

func (ts *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(ts.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) newSession() string {
	w := ts.do(http.MethodPost, "/api/v1/sessions", "", nil)
	require.Equal(ts.t, http.StatusCreated, w.Code)

	var resp SessionResponse
	require.NoError(ts.t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(ts.t, resp.Token)
	assert.Equal(ts.t, "Bearer", resp.TokenType)
	return resp.Token
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) order.View {
	var view order.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view), w.Body.String())
	return view
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.APIError {
	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr), w.Body.String())
	return apiErr
}

func TestGetCatalog(t *testing.T) {
	ts := newTestServer(t, nil)

	w := ts.do(http.MethodGet, "/api/v1/catalog", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var cat catalog.Catalog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cat))
	assert.Equal(t, catalog.Default(), cat)
}

func TestSessionRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t, nil)

	w := ts.do(http.MethodGet, "/api/v1/session", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(http.MethodPost, "/api/v1/session/cart/items", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t, nil)

	w := ts.do(http.MethodGet, "/api/v1/menu", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, models.ErrNotFound, decodeError(t, w).Code)
}

func TestUnknownSession(t *testing.T) {
	ts := newTestServer(t, nil)
	token, err := auth.NewTokenIssuer("test-session-secret-32-characters", time.Hour).Issue("not-a-live-session")
	require.NoError(t, err)

	w := ts.do(http.MethodGet, "/api/v1/session", token, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, models.ErrSessionNotFound, decodeError(t, w).Code)
}

func TestCreateSessionStartsOnDefaults(t *testing.T) {
	ts := newTestServer(t, nil)
	token := ts.newSession()

	w := ts.do(http.MethodGet, "/api/v1/session", token, nil)

	require.Equal(t, http.StatusOK, w.Code)
	view := decodeView(t, w)
	assert.Equal(t, "tradicional", view.Base.ID)
	assert.Equal(t, "chocolate", view.Topping.ID)
	assert.Equal(t, "R$ 7,90", view.Preview.Price.Display)
	assert.Empty(t, view.Items)
	assert.Equal(t, "0.00", view.Total.Amount)
	assert.False(t, view.CartPanelOpen)
}

func TestSelection(t *testing.T) {
	ts := newTestServer(t, nil)
	token := ts.newSession()

	w := ts.do(http.MethodPut, "/api/v1/session/selection/base", token, SelectionRequest{ID: "doce-leite"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Doce de Leite", decodeView(t, w).Preview.Title)

	w = ts.do(http.MethodPut, "/api/v1/session/selection/topping", token, SelectionRequest{ID: "sem-granulado"})
	require.Equal(t, http.StatusOK, w.Code)
	view := decodeView(t, w)
	assert.Equal(t, "com Sem Granulado", view.Preview.Subtitle)
	assert.Equal(t, 0.0, view.Preview.ToppingOpacity)

	w = ts.do(http.MethodPut, "/api/v1/session/selection/topping", token, SelectionRequest{ID: "morango"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	apiErr := decodeError(t, w)
	assert.Equal(t, models.ErrInvalidSelection, apiErr.Code)
	assert.Equal(t, "topping", apiErr.Details["kind"])

	w = ts.do(http.MethodPut, "/api/v1/session/selection/base", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.ErrBadRequest, decodeError(t, w).Code)

	w = ts.do(http.MethodGet, "/api/v1/session", token, nil)
	view = decodeView(t, w)
	assert.Equal(t, "doce-leite", view.Base.ID)
	assert.Equal(t, "sem-granulado", view.Topping.ID)
}

func TestCartFlow(t *testing.T) {
	ts := newTestServer(t, nil)
	token := ts.newSession()

	w := ts.do(http.MethodPost, "/api/v1/session/cart/items", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	view := decodeView(t, w)
	require.Len(t, view.Items, 1)
	assert.True(t, view.CartPanelOpen)
	assert.Equal(t, "7.90", view.Total.Amount)
	itemID := view.Items[0].ID

	w = ts.do(http.MethodPut, "/api/v1/session/cart/items/"+itemID, token, map[string]int{"quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)
	view = decodeView(t, w)
	assert.Equal(t, 3, view.ItemCount)
	assert.Equal(t, "23.70", view.Total.Amount)
	assert.Equal(t, "R$ 23,70", view.Total.Display)

	w = ts.do(http.MethodPost, "/api/v1/session/cart/items/"+itemID+"/increment", token, nil)
	assert.Equal(t, 4, decodeView(t, w).ItemCount)

	w = ts.do(http.MethodPost, "/api/v1/session/cart/items/"+itemID+"/decrement", token, nil)
	assert.Equal(t, 3, decodeView(t, w).ItemCount)

	w = ts.do(http.MethodPut, "/api/v1/session/cart/items/unknown", token, map[string]int{"quantity": 5})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, decodeView(t, w).ItemCount)

	w = ts.do(http.MethodPut, "/api/v1/session/cart/items/"+itemID, token, map[string]int{"quantity": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodPut, "/api/v1/session/cart/items/"+itemID, token, map[string]int{"quantity": order.MaxQuantity + 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodPut, "/api/v1/session/cart/items/"+itemID, token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodGet, "/api/v1/session", token, nil)
	assert.Equal(t, 3, decodeView(t, w).ItemCount)

	w = ts.do(http.MethodDelete, "/api/v1/session/cart/panel", token, nil)
	view = decodeView(t, w)
	assert.False(t, view.CartPanelOpen)
	assert.Equal(t, 3, view.ItemCount)

	w = ts.do(http.MethodPost, "/api/v1/session/cart/panel", token, nil)
	assert.True(t, decodeView(t, w).CartPanelOpen)

	w = ts.do(http.MethodDelete, "/api/v1/session/cart/items/"+itemID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeView(t, w).Items)

	w = ts.do(http.MethodDelete, "/api/v1/session/cart/items/"+itemID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClearCart(t *testing.T) {
	ts := newTestServer(t, nil)
	token := ts.newSession()
	ts.do(http.MethodPost, "/api/v1/session/cart/items", token, nil)
	ts.do(http.MethodPost, "/api/v1/session/cart/items", token, nil)

	w := ts.do(http.MethodDelete, "/api/v1/session/cart", token, nil)

	require.Equal(t, http.StatusOK, w.Code)
	view := decodeView(t, w)
	assert.Empty(t, view.Items)
	assert.Equal(t, "R$ 0,00", view.Total.Display)
}

func TestSessionsDoNotShareCarts(t *testing.T) {
	ts := newTestServer(t, nil)
	first := ts.newSession()
	second := ts.newSession()

	ts.do(http.MethodPost, "/api/v1/session/cart/items", first, nil)

	w := ts.do(http.MethodGet, "/api/v1/session", second, nil)
	assert.Equal(t, 0, decodeView(t, w).ItemCount)
}

func TestCheckoutDeferred(t *testing.T) {
	ts := newTestServer(t, nil)
	token := ts.newSession()

	w := ts.do(http.MethodPost, "/api/v1/session/checkout", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, models.ErrEmptyCart, decodeError(t, w).Code)

	ts.do(http.MethodPost, "/api/v1/session/cart/items", token, nil)
	w = ts.do(http.MethodPost, "/api/v1/session/checkout", token, nil)
	assert.Equal(t, http.StatusNotImplemented, w.Code)
	assert.Equal(t, models.ErrCheckoutUnavailable, decodeError(t, w).Code)

	w = ts.do(http.MethodGet, "/api/v1/session", token, nil)
	assert.Equal(t, 1, decodeView(t, w).ItemCount, "a rejected checkout keeps the cart")
}

func TestCheckoutAccepted(t *testing.T) {
	ts := newTestServer(t, acceptingSubmitter{})
	token := ts.newSession()
	ts.do(http.MethodPost, "/api/v1/session/cart/items", token, nil)
	ts.do(http.MethodPost, "/api/v1/session/cart/items", token, nil)

	w := ts.do(http.MethodPost, "/api/v1/session/checkout", token, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp CheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pedido-15.80", resp.Confirmation.Reference)
	assert.Empty(t, resp.Session.Items)
}
