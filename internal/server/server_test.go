package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"restaurant/internal/config"
	"restaurant/internal/domain/model"
	"restaurant/internal/handler"
	"restaurant/internal/infra/db"
	"restaurant/internal/infra/ids"
	"restaurant/internal/infra/session"
	repo "restaurant/internal/repository"
	"restaurant/internal/usecase"
	"restaurant/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// =====================
// in-memory repos（DBなしで通しのシナリオを回す）
// =====================

type memMenu struct {
	items map[string]model.MenuItem
}

func (r *memMenu) List(ctx context.Context, q repo.MenuListQuery) ([]model.MenuItem, int64, error) {
	out := []model.MenuItem{}
	for _, m := range r.items {
		if q.Category == "" || m.Category == q.Category {
			out = append(out, m)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memMenu) FindByID(ctx context.Context, id string) (model.MenuItem, error) {
	m, ok := r.items[id]
	if !ok {
		return model.MenuItem{}, repo.ErrNotFound
	}
	return m, nil
}

func (r *memMenu) UpsertMany(ctx context.Context, items []model.MenuItem) error {
	for _, m := range items {
		if _, ok := r.items[m.ID]; !ok {
			r.items[m.ID] = m
		}
	}
	return nil
}

type memOrders struct {
	mu     sync.Mutex
	orders []model.Order
	items  map[int64][]model.OrderItem
}

func (r *memOrders) FindByReceiptID(ctx context.Context, receiptID string) (model.Order, error) {
	for _, o := range r.orders {
		if o.ReceiptID == receiptID {
			return o, nil
		}
	}
	return model.Order{}, repo.ErrNotFound
}

func (r *memOrders) ListBySessionID(ctx context.Context, sessionID string, page int, limit int) ([]model.Order, int64, error) {
	out := []model.Order{}
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].SessionID == sessionID {
			out = append(out, r.orders[i])
		}
	}
	return out, int64(len(out)), nil
}

func (r *memOrders) Create(ctx context.Context, order model.Order) (int64, error) {
	for _, o := range r.orders {
		if o.ReceiptID == order.ReceiptID || (o.SessionID == order.SessionID && o.IdempotencyKey == order.IdempotencyKey) {
			return 0, repo.ErrConflict
		}
	}
	order.ID = int64(len(r.orders) + 1)
	r.orders = append(r.orders, order)
	return order.ID, nil
}

func (r *memOrders) FindByIdempotencyKey(ctx context.Context, sessionID string, key string) (model.Order, bool, error) {
	for _, o := range r.orders {
		if o.SessionID == sessionID && o.IdempotencyKey == key {
			return o, true, nil
		}
	}
	return model.Order{}, false, nil
}

func (r *memOrders) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	r.items[orderID] = append([]model.OrderItem(nil), items...)
	return nil
}

func (r *memOrders) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	return r.items[orderID], nil
}

func (r *memOrders) Orders() repo.OrderRepository         { return r }
func (r *memOrders) OrderItems() repo.OrderItemRepository { return r }

// 1つずつ直列に流すだけ
func (r *memOrders) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r)
}

type memBookings struct {
	list []model.Booking
}

func (r *memBookings) Create(ctx context.Context, b model.Booking) (model.Booking, error) {
	b.ID = int64(len(r.list) + 1)
	r.list = append(r.list, b)
	return b, nil
}

func (r *memBookings) ListBySessionID(ctx context.Context, sessionID string) ([]model.Booking, error) {
	out := []model.Booking{}
	for _, b := range r.list {
		if b.SessionID == sessionID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBookings) FindByCode(ctx context.Context, code string) (model.Booking, error) {
	return model.Booking{}, repo.ErrNotFound
}

type memInquiries struct {
	list []model.Inquiry
}

func (r *memInquiries) Create(ctx context.Context, in model.Inquiry) (model.Inquiry, error) {
	in.ID = int64(len(r.list) + 1)
	r.list = append(r.list, in)
	return in, nil
}

// =====================
// helper
// =====================

const testSecret = "test_secret"

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := config.Config{
		SessionSecret: testSecret,
		SessionTTL:    time.Hour,
		TaxRate:       decimal.RequireFromString("0.08"),
		GoEnv:         "test",
	}
	log := zap.NewNop()

	menus := &memMenu{items: map[string]model.MenuItem{}}
	require.NoError(t, db.SeedMenu(context.Background(), menus))

	orders := &memOrders{items: map[int64][]model.OrderItem{}}
	store := session.NewMemoryStore()
	clock := &ids.RealClock{}

	sessionUC := usecase.NewSessionUsecase(store, &ids.UUIDGenerator{}, session.NewJWTIssuer(cfg.SessionSecret, cfg.SessionTTL), clock)
	menuUC := usecase.NewMenuUsecase(menus)
	cartUC := usecase.NewCartUsecase(store, menus, cfg.TaxRate)
	checkoutUC := usecase.NewCheckoutUsecase(orders, store, validator.NewCheckoutValidator(), &ids.ReceiptIDGenerator{}, clock, cfg.TaxRate, log)
	bookingUC := usecase.NewBookingUsecase(&memBookings{}, validator.NewBookingValidator(), &ids.BookingCodeGenerator{}, clock, log)
	inquiryUC := usecase.NewInquiryUsecase(&memInquiries{}, validator.NewInquiryValidator(), clock, log)

	return New(cfg, log, store, Handlers{
		Session: handler.NewSessionHandler(sessionUC),
		Menu:    handler.NewMenuHandler(menuUC),
		Cart:    handler.NewCartHandler(cartUC),
		Order:   handler.NewOrderHandler(checkoutUC),
		Booking: handler.NewBookingHandler(bookingUC),
		Inquiry: handler.NewInquiryHandler(inquiryUC),
	})
}

func call(e *echo.Echo, method string, path string, body string, token string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func startSession(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := call(e, http.MethodPost, "/sessions", "", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	out := decode[usecase.SessionOutput](t, rec)
	require.NotEmpty(t, out.Token)
	return out.Token
}

// =====================
// scenario
// =====================

func TestHealthz(t *testing.T) {
	e := newTestServer(t)
	rec := call(e, http.MethodGet, "/healthz", "", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMenuRoutes(t *testing.T) {
	e := newTestServer(t)

	rec := call(e, http.MethodGet, "/menu?category=tea", "", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[usecase.MenuListOutput](t, rec)
	assert.Equal(t, int64(6), list.Total)

	rec = call(e, http.MethodGet, "/menu/categories", "", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.MenuCategory](t, rec), 5)

	rec = call(e, http.MethodGet, "/menu/13", "", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Espresso", decode[model.MenuItem](t, rec).Name)

	rec = call(e, http.MethodGet, "/menu/404", "", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartToCheckoutScenario(t *testing.T) {
	e := newTestServer(t)
	token := startSession(t, e)

	// 認証なしは401
	rec := call(e, http.MethodGet, "/cart", "", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	for _, id := range []string{"1", "15", "1"} {
		rec = call(e, http.MethodPost, "/cart/items", `{"menu_item_id":"`+id+`"}`, token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	c := decode[usecase.CartResponse](t, rec)
	require.Len(t, c.Items, 2)
	// 1299*2 + 549 = 3147, tax 251.76 -> 252
	assert.Equal(t, int64(3147), c.Pricing.Subtotal)
	assert.Equal(t, int64(252), c.Pricing.TaxAmount)
	assert.Equal(t, int64(3399), c.Pricing.Total)

	body := `{"reference_code":"TABLE-12","customer_name":"Alex","customer_email":"alex@example.com","customer_phone":"+1 555 123 4567"}`

	// キーなしは400
	rec = call(e, http.MethodPost, "/checkout", body, token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	idem := map[string]string{"X-Idempotency-Key": "order-1"}
	rec = call(e, http.MethodPost, "/checkout", body, token, idem)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	order := decode[usecase.OrderOutput](t, rec)
	assert.True(t, strings.HasPrefix(order.ReceiptID, "RC"))
	assert.Equal(t, int64(3399), order.Total)
	assert.Equal(t, int64(3), order.ItemCount)

	// 確定後はカートが空
	rec = call(e, http.MethodGet, "/cart", "", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[usecase.CartResponse](t, rec).Items)

	// 同じキーは同じ注文
	rec = call(e, http.MethodPost, "/checkout", body, token, idem)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, order.ReceiptID, decode[usecase.OrderOutput](t, rec).ReceiptID)

	// 別キーは空カート
	rec = call(e, http.MethodPost, "/checkout", body, token, map[string]string{"X-Idempotency-Key": "order-2"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(e, http.MethodGet, "/orders", "", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]usecase.OrderOutput](t, rec), 1)

	rec = call(e, http.MethodGet, "/orders/"+order.ReceiptID, "", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = call(e, http.MethodGet, "/orders/"+order.ReceiptID+"/receipt", "", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Total: $33.99")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "receipt-"+order.ReceiptID)

	// セッション終了後は同じトークンでも通らない
	rec = call(e, http.MethodDelete, "/sessions", "", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = call(e, http.MethodGet, "/cart", "", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBookingRoutes(t *testing.T) {
	e := newTestServer(t)
	token := startSession(t, e)

	rec := call(e, http.MethodGet, "/events/options", "", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[usecase.EventOptionsOutput](t, rec).MenuPackages, 3)

	date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	rec = call(e, http.MethodPost, "/bookings",
		`{"date":"`+date+`","time":"19:00","guests":4,"name":"Sam","email":"sam@example.com","phone":"+1 (555) 123-4567"}`,
		token, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	b := decode[model.Booking](t, rec)
	assert.True(t, strings.HasPrefix(b.BookingCode, "BK"))
	assert.False(t, b.IsConfirmed)

	rec = call(e, http.MethodPost, "/events",
		`{"event_date":"`+date+`","event_time":"18:00","guest_count":5,"event_type":"Anniversary","menu_package":"gold","budget":"$1000","name":"Kim","email":"kim@example.com","phone":"5559876543"}`,
		token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(e, http.MethodGet, "/bookings", "", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Booking](t, rec), 1)
}

// お問い合わせはセッションなしで送れる
func TestInquiryRoutes(t *testing.T) {
	e := newTestServer(t)

	rec := call(e, http.MethodGet, "/inquiries/types", "", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]string](t, rec), 4)

	rec = call(e, http.MethodPost, "/inquiries",
		`{"name":"Robin","email":"robin@example.com","subject":"Catering","message":"Lunch for 30 people next week"}`,
		"", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	in := decode[model.Inquiry](t, rec)
	assert.Equal(t, int64(1), in.ID)
	assert.Equal(t, "general", in.InquiryType)

	rec = call(e, http.MethodPost, "/inquiries",
		`{"name":"Robin","email":"robin@example.com","subject":"Catering","message":"short"}`,
		"", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// PATCHの数量が大きすぎると金額計算に入らない
func TestCartQuantityUpperBound(t *testing.T) {
	e := newTestServer(t)
	token := startSession(t, e)

	rec := call(e, http.MethodPost, "/cart/items", `{"menu_item_id":"1"}`, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = call(e, http.MethodPatch, "/cart/items/1", `{"quantity":9223372036854775}`, token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid quantity")

	rec = call(e, http.MethodGet, "/cart", "", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1299), decode[usecase.CartResponse](t, rec).Pricing.Subtotal)
}
