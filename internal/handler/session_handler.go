package handler

import (
	"net/http"

	"restaurant/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /sessions（カート付きの匿名セッション）
type SessionHandler struct {
	uc *usecase.SessionUsecase
}

// DI
func NewSessionHandler(uc *usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

func (h *SessionHandler) RegisterRoutes(e *echo.Echo, auth ...echo.MiddlewareFunc) {
	e.POST("/sessions", h.start)
	e.DELETE("/sessions", h.end, auth...)
}

func (h *SessionHandler) start(c echo.Context) error {
	out, err := h.uc.Start(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *SessionHandler) end(c echo.Context) error {
	sessionID, ok := getSessionIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.End(c.Request().Context(), sessionID); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
