package repository

import (
	"context"
	"time"

	"restaurant/internal/domain/cart"
)

// セッションごとのカートを持つストア。
// WithCart の fn 実行中は同じセッションの他の操作は待たされる。
type SessionRepository interface {
	Create(ctx context.Context, sessionID string) error
	Exists(ctx context.Context, sessionID string) bool
	WithCart(ctx context.Context, sessionID string, fn func(c *cart.Cart) error) error
	End(ctx context.Context, sessionID string) error

	// ttl以上触られていないセッションを捨てる。捨てた数を返す。
	ExpireIdle(ctx context.Context, ttl time.Duration) int
}
