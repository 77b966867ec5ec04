package main

import (
	"context"
	"fmt"
	"os"

	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/chat-api/internal/config"
	"github.com/s21platform/chat-api/internal/databus/user"
	"github.com/s21platform/chat-api/internal/repository/postgres"
)

const consumerGroupID = "chat-api-user-sync"

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	dbRepo := postgres.New(cfg)
	defer dbRepo.Close()

	consumer, err := kafkalib.NewConsumer(
		kafkalib.DefaultConsumerConfig(cfg.Kafka.Host, cfg.Kafka.Port, cfg.Kafka.UserTopic, consumerGroupID),
		metrics,
	)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create user topic consumer: %v", err))
		os.Exit(1)
	}

	ctx := context.WithValue(context.Background(), config.KeyMetrics, metrics)
	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	userHandler := user.New(dbRepo)
	consumer.RegisterHandler(ctx, func(ctx context.Context, in []byte) error {
		userHandler.Handler(ctx, in)
		return nil
	})

	<-ctx.Done()
}
