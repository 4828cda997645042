package main // Entry point for the thumbnail worker process

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/iliyamo/files-manager/internal/blob"
	"github.com/iliyamo/files-manager/internal/config"
	"github.com/iliyamo/files-manager/internal/database"
	"github.com/iliyamo/files-manager/internal/queue"
	"github.com/iliyamo/files-manager/internal/repository"
)

// The worker runs as its own process, decoupled from the API: it shares
// the database and the blob directory with the server but talks to it
// only through the job queue.
func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(initCtx, db); err != nil {
		cancel()
		log.Fatalf("ensure schema: %v", err)
	}
	cancel()

	worker := queue.NewWorker(cfg.AMQPURL, repository.NewFileRepo(db), blob.NewStore(cfg.StorageRoot))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("thumbnail worker consuming %q (env=%s)", queue.QueueName, cfg.Env)
	if err := worker.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
	log.Println("thumbnail worker stopped")
}
