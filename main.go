package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pyronix-studio/internal/auth"
	"pyronix-studio/internal/draft"
	"pyronix-studio/internal/janitor"
	"pyronix-studio/internal/notify"
	"pyronix-studio/internal/order"
	"pyronix-studio/internal/pkg/config"
	"pyronix-studio/internal/summarizer"
	"pyronix-studio/internal/web"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal(err)
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DB.DSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := order.EnsureSchema(ctx, db); err != nil {
		log.Fatal(err)
	}

	orderRepo := order.NewDefaultRepo(db)
	orderService := order.NewDefaultService(orderRepo)

	var summarizerService summarizer.Service
	summarizerService, err = summarizer.NewGeminiService(ctx, cfg.Summarizer.APIKey, cfg.Summarizer.Model)
	if err != nil {
		slog.Warn("Summarizer disabled, submissions will carry the fallback summary", "error", err)
		summarizerService = summarizer.Unavailable{}
	}

	notifyService, err := notify.NewService(cfg.Auth.OperatorEmail, &cfg.Notify)
	if err != nil {
		log.Fatal(err)
	}

	draftStore := draft.NewStore(cfg.Drafts.TTL)
	draftService := draft.NewDefaultService(draftStore, orderService, summarizerService, notifyService)

	authService := auth.NewService(&cfg.Auth)

	janitorService := janitor.NewDefaultService(cfg.Drafts.SweepInterval, map[string]janitor.Pruner{
		"drafts":         draftStore,
		"admin_sessions": authService,
	})
	janitorService.Start(ctx)

	router := web.NewRouter(
		web.NewDraftHandler(draftService),
		web.NewAdminHandler(orderService, authService),
		authService,
	)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: router,
	}
	go func() {
		slog.Info("Listening", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down...")
	ctx, shutdown := context.WithTimeout(context.Background(), time.Second*15)
	defer shutdown()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}

	if err := janitorService.Stop(ctx); err != nil {
		log.Fatal(err)
	}

	if err := db.Close(); err != nil {
		log.Fatal(err)
	}
}
