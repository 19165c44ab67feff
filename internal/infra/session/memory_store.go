package session

import (
	"context"
	"sync"
	"time"

	"restaurant/internal/domain/cart"
	repo "restaurant/internal/repository"
)

type entry struct {
	mu       sync.Mutex
	cart     *cart.Cart
	lastSeen time.Time
}

// プロセス内でセッションとカートを持つ。
// 1操作ごとにセッション単位でロックする（後勝ち）。
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	now      func() time.Time
}

// DI
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// テスト用に時計を差し替える
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.now = now
	return s
}

// 空のカートでセッションを開始
func (s *MemoryStore) Create(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; ok {
		return repo.ErrConflict
	}
	s.sessions[sessionID] = &entry{cart: cart.New(), lastSeen: s.now()}
	return nil
}

func (s *MemoryStore) Exists(ctx context.Context, sessionID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.sessions[sessionID]
	return ok
}

// カートを排他して fn を実行
func (s *MemoryStore) WithCart(ctx context.Context, sessionID string, fn func(c *cart.Cart) error) error {
	s.mu.RLock()
	e, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return repo.ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// 待っている間に終了・期限切れになっていないか
	if !s.holds(sessionID, e) {
		return repo.ErrNotFound
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	e.lastSeen = s.now()
	return fn(e.cart)
}

func (s *MemoryStore) holds(sessionID string, e *entry) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cur, ok := s.sessions[sessionID]
	return ok && cur == e
}

// セッション終了（カートも破棄）
func (s *MemoryStore) End(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return repo.ErrNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

func (s *MemoryStore) ExpireIdle(ctx context.Context, ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, e := range s.sessions {
		// 操作中のセッションは飛ばす
		if !e.mu.TryLock() {
			continue
		}
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
		e.mu.Unlock()
	}
	return n
}

var _ repo.SessionRepository = (*MemoryStore)(nil)
