package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	config "github.com/wekesa540/school_portal/configs"
	"github.com/wekesa540/school_portal/database"
	"github.com/wekesa540/school_portal/handlers"
	"github.com/wekesa540/school_portal/routes"
	"github.com/wekesa540/school_portal/store"
)

func main() {
	var st store.Store
	db, err := database.Connect(config.Config("DATABASE_URL"))
	if err != nil {
		// Keep serving; data endpoints report the store fault per request.
		log.Printf("⚠️ Starting without a database: %v", err)
		st = store.Unavailable()
	} else {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("🔥 Failed to migrate database: %v", err)
		}
		st = store.NewGorm(db)
	}

	h := handlers.New(st)

	app := fiber.New(fiber.Config{
		AppName:       "School Portal Backend",
		CaseSensitive: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.PublicRoutes(app, h)
	routes.AuthRoutes(app, h)
	routes.OrderRoutes(app, h)
	routes.PayoutRoutes(app, h)

	port := config.Config("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
