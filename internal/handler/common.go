package handler

import (
	"net/http"

	"restaurant/internal/middleware"
	"restaurant/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const ctxLoggerKey = "logger"

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

// WithLogger はハンドラが使うzapロガーをcontextに入れる
func WithLogger(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ctxLoggerKey, log)
			return next(c)
		}
	}
}

func loggerFrom(c echo.Context) *zap.Logger {
	if log, ok := c.Get(ctxLoggerKey).(*zap.Logger); ok && log != nil {
		return log
	}
	return zap.NewNop()
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		if he.Status >= http.StatusInternalServerError {
			logServerError(c, err)
		}
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	logServerError(c, err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func logServerError(c echo.Context, err error) {
	loggerFrom(c).Error("request failed",
		zap.String("method", c.Request().Method),
		zap.String("path", c.Path()),
		zap.Error(err))
}

// SessionJWTが入れたsession_id
func getSessionIDFromContext(c echo.Context) (string, bool) {
	v := c.Get(middleware.CtxSessionIDKey)
	if v == nil {
		return "", false
	}

	id, ok := v.(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}
