package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "library-backend/internal/adapter/http"
	appmw "library-backend/internal/adapter/middleware"
	"library-backend/internal/adapter/repository/mysql"
	"library-backend/internal/adapter/ws"
	"library-backend/internal/config"
	"library-backend/internal/domain/settings"
	"library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/db"
	"library-backend/internal/infrastructure/sigstore"
	catalogUC "library-backend/internal/usecase/catalog"
	"library-backend/internal/usecase/circulation"
	readersUC "library-backend/internal/usecase/readers"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	sigs, err := sigstore.New(cfg.SignaturesDir)
	if err != nil {
		log.Fatalf("sigstore: %v", err)
	}

	// repositories and services
	loans := mysql.NewLoanRepository(gdb)
	books := mysql.NewBookRepository(gdb)
	readers := mysql.NewReaderRepository(gdb)
	uow := mysql.NewGormUoW(gdb)
	audit := mysql.NewActivityLog(gdb)

	settingsSvc := settings.NewService(mysql.NewSettingsRepository(gdb))
	if err := settingsSvc.Seed(context.Background()); err != nil {
		log.Fatalf("settings seed: %v", err)
	}
	if err := settingsSvc.Validate(context.Background()); err != nil {
		log.Fatalf("settings: %v", err)
	}

	circUC := circulation.NewUsecase(uow, loans, settingsSvc, sigs, audit)
	rdrUC := readersUC.NewUsecase(readers, loans, audit)
	catUC := catalogUC.NewUsecase(books, audit)

	hub := ws.NewHub(time.Duration(cfg.SigRequestTimeoutSecs) * time.Second)

	// handlers
	h := httpadp.NewHandler()
	circH := httpadp.NewCirculationHandler(circUC)
	rdrH := httpadp.NewReaderHandler(rdrUC)
	bookH := httpadp.NewBookHandler(catUC)
	setH := httpadp.NewSettingsHandler(settingsSvc)
	sigH := httpadp.NewSignatureHandler(sigs)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// circulation
	e.POST("/borrow", circH.Borrow, idemp)
	e.POST("/return/:loan_id", circH.Return, idemp)
	e.POST("/pay_fine/:loan_id", circH.PayFine, idemp)
	e.GET("/api/loans/:loan_id", circH.GetLoan)
	e.GET("/api/borrowed_books", circH.BorrowedBooks)

	// readers and catalog
	e.POST("/api/readers", rdrH.Register)
	e.GET("/api/readers/:reader_no", rdrH.Details)
	e.DELETE("/api/readers/:reader_no", rdrH.Delete)
	e.POST("/api/books", bookH.Add)
	e.GET("/api/books/available", bookH.ListAvailable)

	// artifacts, settings, relay
	e.GET("/signatures/:filename", sigH.Serve)
	e.GET("/settings", setH.List)
	e.PUT("/settings", setH.Update)
	e.GET("/ws", hub.Handler())
	e.GET("/health", h.Health)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
