package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/muhammadolammi/atsworker/internal/database"
	"github.com/muhammadolammi/atsworker/internal/storage"
	"github.com/streadway/amqp"
)

func main() {
	_ = godotenv.Load()
	cfg, err := LoadConfig()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx := context.Background()

	db, err := sql.Open("postgres", cfg.DBURL)
	if err != nil {
		slog.Error("error opening db", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	store, err := storage.NewR2(ctx, cfg.R2())
	if err != nil {
		slog.Error("error creating r2 client", slog.Any("error", err))
		os.Exit(1)
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		slog.Error("error connecting to rabbitmq", slog.Any("error", err))
		os.Exit(1)
	}
	defer conn.Close()

	publisher, err := newAMQPPublisher(conn, cfg.UpdateExchange)
	if err != nil {
		slog.Error("error preparing update publisher", slog.Any("error", err))
		os.Exit(1)
	}

	workerConfig := WorkerConfig{
		DB:          database.New(db),
		Store:       store,
		Updates:     publisher,
		RABBITMQUrl: cfg.RabbitMQURL,
		Queue:       cfg.SessionsQueue,
	}

	if cfg.GoogleAPIKey != "" {
		n, err := newAgentNarrator(ctx, cfg.GoogleAPIKey, "ats_coach")
		if err != nil {
			slog.Error("failed to create narrator agent", slog.Any("error", err))
			os.Exit(1)
		}
		workerConfig.Narrator = n
	} else {
		slog.Info("GOOGLE_API_KEY not set, narratives disabled")
	}

	slog.Info("starting consumer pool",
		slog.Int("workers", cfg.WorkerCount),
		slog.String("queue", cfg.SessionsQueue),
	)
	workerConfig.StartConsumerWorkerPool(cfg.WorkerCount)
}
