package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"
	"restaurant/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks
// =====================

type MenuRepoMock struct{ mock.Mock }

func (m *MenuRepoMock) List(ctx context.Context, q repo.MenuListQuery) ([]model.MenuItem, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.MenuItem)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MenuRepoMock) FindByID(ctx context.Context, id string) (model.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(model.MenuItem)
	return item, args.Error(1)
}

func (m *MenuRepoMock) UpsertMany(ctx context.Context, items []model.MenuItem) error {
	panic("not used in usecase tests")
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByReceiptID(ctx context.Context, receiptID string) (model.Order, error) {
	args := m.Called(ctx, receiptID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListBySessionID(ctx context.Context, sessionID string, page int, limit int) ([]model.Order, int64, error) {
	args := m.Called(ctx, sessionID, page, limit)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) FindByIdempotencyKey(ctx context.Context, sessionID string, key string) (model.Order, bool, error) {
	args := m.Called(ctx, sessionID, key)
	o, _ := args.Get(0).(model.Order)
	return o, args.Bool(1), args.Error(2)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

type BookingRepoMock struct{ mock.Mock }

func (m *BookingRepoMock) Create(ctx context.Context, b model.Booking) (model.Booking, error) {
	args := m.Called(ctx, b)
	if fn, ok := args.Get(0).(func(context.Context, model.Booking) model.Booking); ok {
		return fn(ctx, b), args.Error(1)
	}
	out, _ := args.Get(0).(model.Booking)
	return out, args.Error(1)
}

func (m *BookingRepoMock) ListBySessionID(ctx context.Context, sessionID string) ([]model.Booking, error) {
	args := m.Called(ctx, sessionID)
	list, _ := args.Get(0).([]model.Booking)
	return list, args.Error(1)
}

func (m *BookingRepoMock) FindByCode(ctx context.Context, code string) (model.Booking, error) {
	panic("not used in usecase tests")
}

type InquiryRepoMock struct{ mock.Mock }

func (m *InquiryRepoMock) Create(ctx context.Context, in model.Inquiry) (model.Inquiry, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(model.Inquiry)
	return out, args.Error(1)
}

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository         { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository { return r.orderItems }

// =====================
// ports
// =====================

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type seqIDs struct {
	ids []string
	i   int
}

func (g *seqIDs) NewID() string {
	if g.i >= len(g.ids) {
		return ""
	}
	id := g.ids[g.i]
	g.i++
	return id
}

type stubReceipts struct{ id string }

func (g stubReceipts) NewReceiptID(time.Time) string { return g.id }

type stubBookingCodes struct{ code string }

func (g stubBookingCodes) NewBookingCode(time.Time) string { return g.code }

type stubIssuer struct {
	err error
}

func (i stubIssuer) Issue(sessionID string, now time.Time) (string, time.Time, error) {
	if i.err != nil {
		return "", time.Time{}, i.err
	}
	return "token-" + sessionID, now.Add(time.Hour), nil
}

var errDB = errors.New("db down")

// =====================
// Helper
// =====================

func assertHTTPStatus(t *testing.T, err error, status int, wantMessage string) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok, "err=%v is not HTTPError", err) {
		assert.Equal(t, status, he.Status)
		assert.Contains(t, he.Message, wantMessage)
	}
}
