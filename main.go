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
	"github.com/google/uuid"

	"desacitamiang_backend/internals/configs"
	database "desacitamiang_backend/internals/databases"
	helperOSS "desacitamiang_backend/internals/helpers/oss"
	"desacitamiang_backend/internals/middlewares"
	routes "desacitamiang_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		AppName:     "desacitamiang-backend",
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		BodyLimit:   10 * 1024 * 1024, // upload gambar maks 10MB (sebelum re-encode)
		ReadTimeout: 15 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(etag.New())

	// Request-id + batas waktu per request (biarkan handler berat mati
	// duluan sebelum klien timeout).
	app.Use(func(c *fiber.Ctx) error {
		reqID := c.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set("X-Request-ID", reqID)

		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)

		start := time.Now()
		err := c.Next()
		if elapsed := time.Since(start); elapsed > time.Second {
			log.Printf("[SLOW] %s %s %v req_id=%s", c.Method(), c.Path(), elapsed, reqID)
		}
		return err
	})

	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	helperOSS.StartOrphanReaperCron(database.DB)

	routes.SetupRoutes(app, database.DB)

	port := configs.GetEnv("PORT", "8080")

	// Graceful shutdown: tunggu request in-flight maksimal 10 detik.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutdown signal diterima, menutup server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Println("[ERROR] Shutdown tidak mulus:", err)
		}
	}()

	log.Println("🚀 Server berjalan di port", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("❌ Server gagal berjalan:", err)
	}
}
