package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "botfactory-miniapp/storefront-svc/internal/api/http"
	"botfactory-miniapp/storefront-svc/internal/cart"
	"botfactory-miniapp/storefront-svc/internal/domain"
	"botfactory-miniapp/storefront-svc/internal/mocks"
	"botfactory-miniapp/storefront-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	business *mocks.BusinessServiceInterface
	catalog  *mocks.CatalogServiceInterface
	orders   *mocks.OrderServiceInterface
	carts    *cart.Store
	router   *mux.Router
}

func newTestEnv(t *testing.T) *testEnv {
	env := &testEnv{
		business: mocks.NewBusinessServiceInterface(t),
		catalog:  mocks.NewCatalogServiceInterface(t),
		orders:   mocks.NewOrderServiceInterface(t),
		carts:    cart.NewStore(),
	}
	handler := httpapi.NewHandler(env.business, env.catalog, env.orders, env.carts)
	env.router = mux.NewRouter()
	handler.RegisterRoutes(env.router)
	return env
}

func (env *testEnv) do(method, path, session string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(httpapi.SessionHeader, session)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestGetBusinessHandler(t *testing.T) {
	env := newTestEnv(t)
	env.business.On("Get", 7).Return(&domain.Business{ID: 7, Name: "Choyxona"}, nil).Once()

	w := env.do(http.MethodGet, "/api/miniapp/business/7", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Choyxona"`)
}

func TestGetBusinessHandler_NotFound(t *testing.T) {
	env := newTestEnv(t)
	env.business.On("Get", 99).Return(nil, service.ErrBotNotFound).Once()

	w := env.do(http.MethodGet, "/api/miniapp/business/99", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestGetCatalogHandler_PassesQuery(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.On("Search", mock.Anything, 7, "choy").
		Return([]domain.CatalogItem{{ID: 1, Name: "Choy"}}, nil).Once()

	w := env.do(http.MethodGet, "/api/miniapp/catalog/7?q=choy", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Choy"`)
}

func TestGetCatalogHandler_ErrorDegradesToEmptyList(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.On("Search", mock.Anything, 7, "").
		Return(nil, assert.AnError).Once()

	w := env.do(http.MethodGet, "/api/miniapp/catalog/7", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestCartHandlers_AddUpdateRemove(t *testing.T) {
	env := newTestEnv(t)
	catalog := []domain.CatalogItem{
		{ID: 1, Name: "Choy", Price: 1000},
		{ID: 2, Name: "Somsa", Price: 500},
	}
	env.catalog.On("List", mock.Anything, 7).Return(catalog, nil).Times(3)

	// add choy twice: one entry, quantity 3
	w := env.do(http.MethodPost, "/api/miniapp/cart/items", "sess-1",
		[]byte(`{"bot_id":7,"item_id":1,"quantity":2}`))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Choy added to cart")

	w = env.do(http.MethodPost, "/api/miniapp/cart/items", "sess-1",
		[]byte(`{"bot_id":7,"item_id":1,"quantity":1}`))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items   []domain.CartEntry `json:"items"`
		Summary domain.CartSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.Equal(t, 3000.0, resp.Summary.Total)

	// add somsa, then drive its quantity to zero
	w = env.do(http.MethodPost, "/api/miniapp/cart/items", "sess-1",
		[]byte(`{"bot_id":7,"item_id":2}`))
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodPatch, "/api/miniapp/cart/items/1", "sess-1",
		[]byte(`{"delta":-1}`))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Choy", resp.Items[0].Item.Name)

	// removing the last entry empties the cart
	w = env.do(http.MethodDelete, "/api/miniapp/cart/items/0", "sess-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
	assert.Equal(t, domain.CartSummary{}, resp.Summary)
}

func TestCartHandlers_RequireSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/miniapp/cart", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPost, "/api/miniapp/cart/items", "",
		[]byte(`{"bot_id":7,"item_id":1}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddCartItem_UnknownItem(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.On("List", mock.Anything, 7).
		Return([]domain.CatalogItem{{ID: 1, Name: "Choy"}}, nil).Once()

	w := env.do(http.MethodPost, "/api/miniapp/cart/items", "sess-1",
		[]byte(`{"bot_id":7,"item_id":999}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateOrderHandler_SessionCartSnapshotAndClear(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.carts.Add("sess-1", domain.CatalogItem{ID: 1, Name: "Choy", Price: 1000}, 2))

	env.orders.On("Create", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
		return len(o.Items) == 1 && o.Items[0].Quantity == 2 && o.Total == 2000
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Order).ID = 55
	}).Return(nil).Once()

	w := env.do(http.MethodPost, "/api/miniapp/order", "sess-1",
		[]byte(`{"bot_id":7,"customer_name":"Akmal","customer_phone":"+998901234567"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"order_id":55`)
	assert.Contains(t, w.Body.String(), `"success":true`)

	// confirmed success empties the session cart
	assert.Empty(t, env.carts.Entries("sess-1"))
}

func TestCreateOrderHandler_FailureLeavesCartUntouched(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.carts.Add("sess-1", domain.CatalogItem{ID: 1, Name: "Choy", Price: 1000}, 2))

	env.orders.On("Create", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	w := env.do(http.MethodPost, "/api/miniapp/order", "sess-1",
		[]byte(`{"bot_id":7,"customer_name":"Akmal","customer_phone":"+998901234567"}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Len(t, env.carts.Entries("sess-1"), 1)
}

func TestCreateOrderHandler_ValidationError(t *testing.T) {
	env := newTestEnv(t)
	env.orders.On("Create", mock.Anything, mock.Anything).
		Return(service.ErrInvalidOrder).Once()

	w := env.do(http.MethodPost, "/api/miniapp/order", "",
		[]byte(`{"bot_id":0}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestGetOrderQRCodeHandler(t *testing.T) {
	env := newTestEnv(t)
	env.orders.On("GetQRCode", 55).Return([]byte{0x89, 0x50}, nil).Once()

	w := env.do(http.MethodGet, "/api/miniapp/orders/55/qrcode", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}
