package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"studentmarks_backend/internals/configs"
	database "studentmarks_backend/internals/databases"
	"studentmarks_backend/internals/features/students/marks/service"
	"studentmarks_backend/internals/features/students/marks/views"
	helper "studentmarks_backend/internals/helpers"
	middlewares "studentmarks_backend/internals/middlewares"
	routes "studentmarks_backend/internals/route"
	"studentmarks_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	cfg := configs.Load()

	// 🔌 storage client: dibuka di sini, ditutup saat shutdown
	store, err := database.OpenStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("❌ Gagal membuka store (%s): %v", cfg.StoreDriver, err)
	}
	database.WarmUp(store)

	svc := service.NewStudentMarkService(store, cfg.StoreTimeout)

	if cfg.SeedOnStart {
		seeds.RunAllSeeds(context.Background(), svc, cfg.SeedFile)
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		Views:                 views.NewEngine(),
		ErrorHandler:          helper.FromFiberError,
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	middlewares.SetupMiddlewares(app, cfg)
	routes.SetupRoutes(app, svc)

	go func() {
		log.Printf("✅ Server is running on http://localhost:%s (store=%s)", cfg.Port, cfg.StoreDriver)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup store
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("shutdown err: %v", err)
	}
	if err := store.Close(ctx); err != nil {
		log.Printf("store close err: %v", err)
	}
}
