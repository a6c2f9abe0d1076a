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
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"labtraining_backend/internals/configs"
	database "labtraining_backend/internals/databases"
	"labtraining_backend/internals/logger"
	middlewares "labtraining_backend/internals/middlewares"
	routes "labtraining_backend/internals/route"
	"labtraining_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	if err := logger.GetInstance().Initialize(configs.App.LogDir, logger.INFO); err != nil {
		log.Fatalf("❌ Logger init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		// 🚀 fast JSON
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	// ⚙️ base + performance middleware
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	// 🔎 Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		// HTTP timeout guard (aligned with statement_timeout on the DB side)
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()

	sqlDB, err := database.DB.DB()
	if err != nil {
		log.Fatalf("❌ Failed to access SQL pool: %v", err)
	}
	if err := database.RunMigrations(sqlDB); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	database.WarmUpQueries()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("❌ Zap init failed: %v", err)
	}
	defer zapLogger.Sync()

	// 🌱 demo dataset (opt-in)
	if configs.App.SeedOnBoot {
		if err := seeds.RunAllSeeds(database.DB); err != nil {
			log.Printf("[ERROR] Seed failed: %v", err)
		}
	}

	// ❤️ Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, zapLogger)

	// 🔒 server connection timeouts
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.App.Port
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + close DB pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	_ = sqlDB.Close()
}
