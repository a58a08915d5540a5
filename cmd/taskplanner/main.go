package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-planner/internal/config"
	"task-planner/internal/logger"
	"task-planner/internal/repository"
	"task-planner/internal/secret"
	"task-planner/internal/server"
	"task-planner/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	slogger, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	key, err := cfg.EntriesSecret()
	if err != nil {
		log.Fatalf("entries key: %v", err)
	}
	encryptor, err := secret.NewEncryptor(key)
	if err != nil {
		log.Fatalf("entries key: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	taskModelRepo := repository.NewTaskModelRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	entryRepo := repository.NewEntryRepository(db, encryptor)
	mealRepo := repository.NewMealRepository(db)
	motivationRepo := repository.NewMotivationRepository(db)

	taskModelSvc := service.NewTaskModelService(taskModelRepo, taskRepo)
	taskSvc := service.NewTaskService(taskRepo)
	entrySvc := service.NewEntryService(entryRepo)
	mealSvc := service.NewMealService(mealRepo)
	motivationSvc := service.NewMotivationService(motivationRepo)
	generatorSvc := service.NewGeneratorService(taskModelRepo, taskRepo, taskModelSvc, slogger)

	scheduler := service.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleDaily(cfg.GenerateAt, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if _, err := generatorSvc.Run(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
			slogger.Error("generation cycle failed", "error", err)
		}
	}); err != nil {
		log.Fatalf("schedule generation: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	api := server.New(slogger, userRepo, taskModelSvc, taskSvc, entrySvc, mealSvc, motivationSvc)

	errCh := make(chan error, 1)
	go func() {
		errCh <- api.Listen(cfg.ListenAddr)
	}()
	slogger.Info("task planner started", "addr", cfg.ListenAddr, "generate_at", cfg.GenerateAt)

	select {
	case <-ctx.Done():
		if err := api.Shutdown(); err != nil {
			slogger.Error("shutdown", "error", err)
		}
	case err := <-errCh:
		if err != nil {
			log.Fatalf("server stopped with error: %v", err)
		}
	}
	slogger.Info("shutdown complete")
}
