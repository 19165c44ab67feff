package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant/internal/config"
	"restaurant/internal/handler"
	"restaurant/internal/infra/db"
	"restaurant/internal/infra/ids"
	infraRepo "restaurant/internal/infra/repository"
	"restaurant/internal/infra/session"
	"restaurant/internal/logger"
	"restaurant/internal/server"
	"restaurant/internal/usecase"
	"restaurant/internal/validator"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.GoEnv, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("db migrate", zap.Error(err))
	}

	//Repository（GORM実装）生成
	menuRepo := infraRepo.NewMenuGormRepository(gormDB)
	bookingRepo := infraRepo.NewBookingGormRepository(gormDB)
	inquiryRepo := infraRepo.NewInquiryGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//メニューは初回だけ投入（既存IDはそのまま）
	if err := db.SeedMenu(ctx, menuRepo); err != nil {
		log.Fatal("seed menu", zap.Error(err))
	}

	//セッションとカートはメモリ上
	store := session.NewMemoryStore()
	issuer := session.NewJWTIssuer(cfg.SessionSecret, cfg.SessionTTL)

	//usecaseに渡す部品
	idGen := &ids.UUIDGenerator{}
	clock := &ids.RealClock{}

	//Usecase生成
	sessionUC := usecase.NewSessionUsecase(store, idGen, issuer, clock)
	menuUC := usecase.NewMenuUsecase(menuRepo)
	cartUC := usecase.NewCartUsecase(store, menuRepo, cfg.TaxRate)
	checkoutUC := usecase.NewCheckoutUsecase(
		txm,
		store,
		validator.NewCheckoutValidator(),
		&ids.ReceiptIDGenerator{},
		clock,
		cfg.TaxRate,
		log,
	)
	bookingUC := usecase.NewBookingUsecase(
		bookingRepo,
		validator.NewBookingValidator(),
		&ids.BookingCodeGenerator{},
		clock,
		log,
	)
	inquiryUC := usecase.NewInquiryUsecase(inquiryRepo, validator.NewInquiryValidator(), clock, log)

	//Handler生成
	e := server.New(cfg, log, store, server.Handlers{
		Session: handler.NewSessionHandler(sessionUC),
		Menu:    handler.NewMenuHandler(menuUC),
		Cart:    handler.NewCartHandler(cartUC),
		Order:   handler.NewOrderHandler(checkoutUC),
		Booking: handler.NewBookingHandler(bookingUC),
		Inquiry: handler.NewInquiryHandler(inquiryUC),
	})

	go sweepSessions(ctx, store, cfg.SessionTTL, log)

	//Server起動
	if err := server.Start(ctx, e, cfg.Addr(), log); err != nil {
		log.Fatal("server", zap.Error(err))
	}
	log.Info("bye")
}

// 放置されたセッションを1分ごとに捨てる
func sweepSessions(ctx context.Context, store *session.MemoryStore, ttl time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.ExpireIdle(ctx, ttl); n > 0 {
				log.Info("sessions expired", zap.Int("count", n))
			}
		}
	}
}
