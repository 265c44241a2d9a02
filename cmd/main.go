package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	contactapp "github.com/muhammadheryan/contact-store/application/contact"
	"github.com/muhammadheryan/contact-store/cmd/config"
	"github.com/muhammadheryan/contact-store/cmd/database"
	_ "github.com/muhammadheryan/contact-store/docs"
	contactRepo "github.com/muhammadheryan/contact-store/repository/contact"
	txRepo "github.com/muhammadheryan/contact-store/repository/tx"
	"github.com/muhammadheryan/contact-store/thirdparty/rabbitmq"
	"github.com/muhammadheryan/contact-store/transport"
	"github.com/muhammadheryan/contact-store/utils/logger"
	"go.uber.org/zap"
)

// @title CONTACT STORE API
// @version 1.0
// @description Contact Store API Documentation
// @host localhost:3000
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Fatal("err open db", zap.Error(err))
	}
	defer db.Close()
	logger.Info("Contacts table ready", zap.String("path", cfg.Database.Path))

	// Change events are optional
	var publisher rabbitmq.ContactEventPublisher
	if cfg.RabbitMQ.Enabled() {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.DSN(), cfg.RabbitMQ.Exchange)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	ContactRepo := contactRepo.NewContactRepository(db)
	TxRepo := txRepo.NewTxRepository(db, nil)

	ContactApp := contactapp.NewContactApp(cfg, TxRepo, ContactRepo, publisher)

	httpTransport := transport.NewTransport(ContactApp)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
