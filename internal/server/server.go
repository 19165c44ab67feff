package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"restaurant/internal/config"
	"restaurant/internal/handler"
	"restaurant/internal/middleware"
	repo "restaurant/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Handlers struct {
	Session *handler.SessionHandler
	Menu    *handler.MenuHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
	Booking *handler.BookingHandler
	Inquiry *handler.InquiryHandler
}

// New はミドルウェアとルートを登録したechoを返す。
func New(cfg config.Config, log *zap.Logger, sessions repo.SessionRepository, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(requestLogger(log))
	e.Use(handler.WithLogger(log))
	if cfg.FEURL != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: []string{cfg.FEURL},
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
			AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Idempotency-Key"},
		}))
	}

	//セッション必須のルート用
	auth := []echo.MiddlewareFunc{
		middleware.SessionJWT(cfg.SessionSecret),
		middleware.SessionGuard(sessions),
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, handler.SuccessResponse{Message: "ok"})
	})

	h.Session.RegisterRoutes(e, auth...)
	h.Menu.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e, auth...)
	h.Order.RegisterRoutes(e, auth...)
	h.Booking.RegisterRoutes(e, auth...)
	h.Inquiry.RegisterRoutes(e)

	return e
}

// Start はctxが終わるまで待ち、終わったら止める。
func Start(ctx context.Context, e *echo.Echo, addr string, log *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("http server starting", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutdown requested")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}

func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				log.Error("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	})
}
