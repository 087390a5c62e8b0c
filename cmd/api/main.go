package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-minimarket/internal/handler"
	"go-minimarket/internal/model"
	"go-minimarket/internal/report"
	"go-minimarket/internal/repository"
	"go-minimarket/internal/service"
	"go-minimarket/internal/ws"
	"go-minimarket/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer logger.Sync()

	// 2. Setup Storage
	// STORAGE=memory runs without a database; anything else connects
	// to Postgres.
	var productRepo repository.ProductRepository
	var txRepo repository.TransactionRepository
	if os.Getenv("STORAGE") == "memory" {
		memProducts := repository.NewMemoryProductRepo()
		productRepo = memProducts
		txRepo = repository.NewMemoryTransactionRepo(memProducts)
		logger.Info("using in-memory storage")
	} else {
		db := database.ConnectDB()
		db.AutoMigrate(&model.Product{}, &model.Transaction{})
		productRepo = repository.NewProductRepo(db)
		txRepo = repository.NewTransactionRepo(db)
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub(logger)
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	// Strategy/formatter/observer registries are built once here and
	// never mutated afterwards.
	strategies := service.PricingStrategies()
	formatters := report.Formatters()
	observers := []service.StockObserver{
		service.NewStockUpdater(productRepo, logger),
		service.NewStockBroadcaster(wsHub, logger),
	}

	productService := service.NewProductService(productRepo, logger)
	txService := service.NewTransactionService(txRepo, productRepo, strategies, observers, logger)
	reportService := service.NewReportService(txRepo, formatters)
	statsService := service.NewStatsService(txRepo)

	facade := service.NewFacade(productService, txService, reportService, statsService)

	productHandler := handler.NewProductHandler(facade)
	txHandler := handler.NewTransactionHandler(facade)
	reportHandler := handler.NewReportHandler(facade)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Minimarket Ledger v1.0",
	})

	app.Use(fiberlogger.New()) // Logging request
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	api.Get("/products", productHandler.GetProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Post("/products", productHandler.CreateProduct)
	api.Delete("/products/:id", productHandler.DeleteProduct)

	api.Get("/transactions", txHandler.GetTransactions)
	api.Post("/transactions", txHandler.CreateTransaction)

	api.Get("/reports", reportHandler.GenerateReport)
	api.Get("/stats", reportHandler.GetLedgerSummary)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
