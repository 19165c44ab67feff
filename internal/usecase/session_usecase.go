package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	repo "restaurant/internal/repository"
)

// セッション開始/終了。カートはセッションと一緒に生まれて消える。
type SessionUsecase struct {
	sessions repo.SessionRepository
	ids      IDGenerator
	issuer   SessionTokenIssuer
	clock    Clock
}

// DI
func NewSessionUsecase(sessions repo.SessionRepository, ids IDGenerator, issuer SessionTokenIssuer, clock Clock) *SessionUsecase {
	return &SessionUsecase{
		sessions: sessions,
		ids:      ids,
		issuer:   issuer,
		clock:    clock,
	}
}

type SessionOutput struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (u *SessionUsecase) Start(ctx context.Context) (SessionOutput, error) {
	id := u.ids.NewID()
	if id == "" {
		return SessionOutput{}, NewHTTPError(http.StatusInternalServerError, "id error")
	}

	if err := u.sessions.Create(ctx, id); err != nil {
		return SessionOutput{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}

	token, exp, err := u.issuer.Issue(id, u.clock.Now())
	if err != nil {
		// 発行できないセッションは残さない
		_ = u.sessions.End(ctx, id)
		return SessionOutput{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	return SessionOutput{
		SessionID: id,
		Token:     token,
		ExpiresAt: exp,
	}, nil
}

func (u *SessionUsecase) End(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	err := u.sessions.End(ctx, sessionID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "session error")
	}
	return nil
}
