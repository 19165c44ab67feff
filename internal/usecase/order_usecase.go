package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"restaurant/internal/domain/cart"
	"restaurant/internal/domain/model"
	"restaurant/internal/domain/pricing"
	repo "restaurant/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CheckoutUsecase はカートを注文として確定する。
type CheckoutUsecase struct {
	tx        repo.TransactionManager
	sessions  repo.SessionRepository
	validator CheckoutValidator
	receipts  ReceiptIDGenerator
	clock     Clock
	rate      decimal.Decimal
	log       *zap.Logger
}

func NewCheckoutUsecase(
	tx repo.TransactionManager,
	sessions repo.SessionRepository,
	validator CheckoutValidator,
	receipts ReceiptIDGenerator,
	clock Clock,
	rate decimal.Decimal,
	log *zap.Logger,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		tx:        tx,
		sessions:  sessions,
		validator: validator,
		receipts:  receipts,
		clock:     clock,
		rate:      rate,
		log:       log,
	}
}

type PlaceOrderInput struct {
	ReferenceCode  string
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	IdempotencyKey string
}

type OrderItemOutput struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unit_price"`
	Quantity   int64  `json:"quantity"`
	LineTotal  int64  `json:"line_total"`
}

type OrderOutput struct {
	ReceiptID     string            `json:"receipt_id"`
	ReferenceCode string            `json:"reference_code"`
	Status        string            `json:"status"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	CustomerPhone string            `json:"customer_phone"`
	Items         []OrderItemOutput `json:"items"`
	ItemCount     int64             `json:"item_count"`
	Subtotal      int64             `json:"subtotal"`
	Tax           int64             `json:"tax"`
	Total         int64             `json:"total"`
	CreatedAt     time.Time         `json:"created_at"`
}

func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, sessionID string, in PlaceOrderInput) (OrderOutput, error) {
	if sessionID == "" {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	key := strings.TrimSpace(in.IdempotencyKey)
	if key == "" || len(key) > 255 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid idempotency_key")
	}
	in.IdempotencyKey = key
	in.ReferenceCode = strings.TrimSpace(in.ReferenceCode)
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)

	if err := u.validator.ValidateCheckout(in); err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var out OrderOutput
	created := false

	//カートを押さえたまま注文処理（同じセッションの操作は待たせる）
	err := u.sessions.WithCart(ctx, sessionID, func(c *cart.Cart) error {
		err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
			// 同じキーなら同じ結果
			existing, found, err := r.Orders().FindByIdempotencyKey(ctx, sessionID, key)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if found {
				items, err := r.OrderItems().ListByOrderID(ctx, existing.ID)
				if err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
				out = toOrderOutput(existing, items)
				return nil
			}

			if c.IsEmpty() {
				return NewHTTPError(http.StatusBadRequest, "cart empty")
			}

			//カートと金額のスナップショット
			lines := c.Items()
			snap := pricing.Compute(lines, u.rate)
			now := u.clock.Now()

			orderItems := make([]model.OrderItem, 0, len(lines))
			for _, li := range lines {
				orderItems = append(orderItems, model.OrderItem{
					MenuItemID:        li.ID,
					NameSnapshot:      li.Name,
					UnitPriceSnapshot: li.UnitPrice,
					Quantity:          li.Quantity,
					CreatedAt:         now,
				})
			}

			order := model.Order{
				ReceiptID:      u.receipts.NewReceiptID(now),
				SessionID:      sessionID,
				ReferenceCode:  in.ReferenceCode,
				CustomerName:   in.CustomerName,
				CustomerEmail:  in.CustomerEmail,
				CustomerPhone:  in.CustomerPhone,
				Status:         model.OrderStatusPending,
				Subtotal:       snap.Subtotal,
				Tax:            snap.TaxAmount,
				Total:          snap.Total,
				IdempotencyKey: key,
				CreatedAt:      now,
				UpdatedAt:      now,
			}

			orderID, err := r.Orders().Create(ctx, order)
			if err != nil {
				//競合はもう一回検索して同じ結果を返す
				ex2, found2, err2 := r.Orders().FindByIdempotencyKey(ctx, sessionID, key)
				if err2 == nil && found2 {
					items2, err3 := r.OrderItems().ListByOrderID(ctx, ex2.ID)
					if err3 != nil {
						return NewHTTPError(http.StatusInternalServerError, "db error")
					}
					out = toOrderOutput(ex2, items2)
					return nil
				}
				if errors.Is(err, repo.ErrConflict) {
					return NewHTTPError(http.StatusConflict, "idempotency conflict")
				}
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			//注文明細一括作成
			if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			order.ID = orderID
			out = toOrderOutput(order, orderItems)
			created = true
			return nil
		})
		if err != nil {
			return err
		}

		// commit後にカートを空にする
		if created {
			c.Clear()
		}
		return nil
	})
	if err != nil {
		return OrderOutput{}, u.mapSessionError(err)
	}

	if created {
		u.log.Info("order placed",
			zap.String("receipt_id", out.ReceiptID),
			zap.Int64("total", out.Total),
			zap.Int64("item_count", out.ItemCount))
	}
	return out, nil
}

// セッションの注文一覧（新しい順、先頭50件）
func (u *CheckoutUsecase) ListOrders(ctx context.Context, sessionID string) ([]OrderOutput, error) {
	if sessionID == "" {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, _, err := r.Orders().ListBySessionID(ctx, sessionID, 1, 50)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

func (u *CheckoutUsecase) GetReceipt(ctx context.Context, receiptID string) (OrderOutput, error) {
	receiptID = strings.TrimSpace(receiptID)
	if receiptID == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid receipt_id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByReceiptID(ctx, receiptID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// RenderReceipt はダウンロード用のテキストレシートを作る。
func RenderReceipt(o OrderOutput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "RECEIPT %s\n", o.ReceiptID)
	fmt.Fprintf(&b, "Date: %s\n", o.CreatedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "Reference: %s\n", o.ReferenceCode)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Customer: %s\n", o.CustomerName)
	fmt.Fprintf(&b, "Email: %s\n", o.CustomerEmail)
	fmt.Fprintf(&b, "Phone: %s\n", o.CustomerPhone)
	b.WriteString("\n")
	b.WriteString("Items:\n")
	for _, it := range o.Items {
		fmt.Fprintf(&b, "  %s x%d  $%s\n", it.Name, it.Quantity, pricing.FormatCents(it.LineTotal))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Subtotal: $%s\n", pricing.FormatCents(o.Subtotal))
	fmt.Fprintf(&b, "Tax: $%s\n", pricing.FormatCents(o.Tax))
	fmt.Fprintf(&b, "Total: $%s\n", pricing.FormatCents(o.Total))

	return b.String()
}

func (u *CheckoutUsecase) mapSessionError(err error) error {
	if _, ok := AsHTTPError(err); ok {
		return err
	}
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	u.log.Error("checkout failed", zap.Error(err))
	return NewHTTPError(http.StatusInternalServerError, "internal error")
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	var count int64
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			MenuItemID: it.MenuItemID,
			Name:       it.NameSnapshot,
			UnitPrice:  it.UnitPriceSnapshot,
			Quantity:   it.Quantity,
			LineTotal:  it.UnitPriceSnapshot * it.Quantity,
		})
		count += it.Quantity
	}

	return OrderOutput{
		ReceiptID:     o.ReceiptID,
		ReferenceCode: o.ReferenceCode,
		Status:        string(o.Status),
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		CustomerPhone: o.CustomerPhone,
		Items:         outItems,
		ItemCount:     count,
		Subtotal:      o.Subtotal,
		Tax:           o.Tax,
		Total:         o.Total,
		CreatedAt:     o.CreatedAt,
	}
}
