package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-api/internal/config"
	"github.com/s21platform/chat-api/internal/databus/failures"
	"github.com/s21platform/chat-api/internal/infra"
	"github.com/s21platform/chat-api/internal/pipeline"
	"github.com/s21platform/chat-api/internal/pkg/jwt"
	"github.com/s21platform/chat-api/internal/pkg/tx"
	"github.com/s21platform/chat-api/internal/pkg/validator"
	db "github.com/s21platform/chat-api/internal/repository/postgres"
	"github.com/s21platform/chat-api/internal/rest"
	"github.com/s21platform/chat-api/internal/storage/attachments"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	attachmentStore, err := attachments.New(cfg.Storage.DataDirectory)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to open attachment storage: %v", err))
		os.Exit(1)
	}

	failureProducer := failures.New(cfg)
	defer failureProducer.Close()

	msgPipeline := pipeline.New(cfg, dbRepo, attachmentStore, failureProducer, logger)
	if err := msgPipeline.Start(); err != nil {
		logger.Error(fmt.Sprintf("failed to start message pipeline: %v", err))
		os.Exit(1)
	}

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Service.Secret)

	handler := rest.New(dbRepo, msgPipeline, vldtr)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next, jwtGenerator)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	router.Route("/api/chat", func(r chi.Router) {
		r.Post("/rooms", handler.CreateRoom)
		r.Get("/rooms/search", handler.SearchRooms)
		r.Get("/users/search", handler.SearchUsers)
		r.Route("/rooms/{room_id}", func(r chi.Router) {
			r.Get("/", handler.GetRoom)
			r.Put("/", handler.UpdateRoom)
			r.Delete("/", handler.DeleteRoom)
			r.Post("/join", handler.JoinRoom)
			r.Get("/users", handler.GetRoomUsers)
			r.Get("/messages", handler.GetRoomMessages)
			r.Post("/messages", handler.SendMessage)
			r.Post("/attachments", handler.SendAttachment)
		})
		r.Route("/friends", func(r chi.Router) {
			r.Get("/", handler.GetFriends)
			r.Get("/requests", handler.GetFriendRequests)
			r.Post("/requests/{user_id}", handler.SendFriendRequest)
			r.Post("/requests/{user_id}/accept", handler.AcceptFriendRequest)
			r.Post("/requests/{user_id}/reject", handler.RejectFriendRequest)
		})
	})

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		if err := httpServer.Shutdown(context.Background()); err != nil {
			logger.Error(fmt.Sprintf("failed to stop HTTP server: %v", err))
		}

		// queued messages must land in the database before exit
		if err := msgPipeline.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("failed to drain message pipeline: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
