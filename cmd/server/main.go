package main // Entry point package

import (
	"context"
	"log" // Logging library
	"time"

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/files-manager/internal/blob"
	"github.com/iliyamo/files-manager/internal/config"
	"github.com/iliyamo/files-manager/internal/database"
	"github.com/iliyamo/files-manager/internal/handler"
	"github.com/iliyamo/files-manager/internal/queue"
	"github.com/iliyamo/files-manager/internal/repository"
	"github.com/iliyamo/files-manager/internal/router"
	"github.com/iliyamo/files-manager/internal/service"
)

func main() {
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("ensure schema: %v", err)
	}
	cancel()

	rdb, err := config.NewRedisClient()
	if err != nil {
		log.Fatalf("connect redis: %v", err)
	}
	defer rdb.Close()

	users := repository.NewUserRepo(db)
	files := repository.NewFileRepo(db)
	sessions := repository.NewSessionRepo(rdb, time.Duration(cfg.SessionTTLSec)*time.Second)
	blobs := blob.NewStore(cfg.StorageRoot)
	jobs := queue.NewPublisher(cfg.AMQPURL)

	authSvc := service.NewAuthService(users, sessions)
	fileSvc := service.NewFileService(files, blobs, jobs)

	e := echo.New()
	router.Register(e,
		authSvc,
		handler.NewAuthHandler(authSvc),
		handler.NewUsersHandler(authSvc),
		handler.NewFilesHandler(fileSvc, authSvc),
		handler.NewAppHandler(db, rdb, users, files),
	)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
