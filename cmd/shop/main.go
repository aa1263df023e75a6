// Package main Shop API
//
// E-commerce backend: members, catalog items and orders over REST,
// with progressively optimized order read strategies.
//
//	@title			Shop API
//	@version		1.0
//	@description	Members, catalog items and orders backend
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//	@schemes	http https
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "go-shop/docs/swagger"
	itemadapters "go-shop/internal/items/adapters"
	itemapp "go-shop/internal/items/application"
	iteminfra "go-shop/internal/items/infrastructure"
	memberadapters "go-shop/internal/members/adapters"
	memberapp "go-shop/internal/members/application"
	memberinfra "go-shop/internal/members/infrastructure"
	memberports "go-shop/internal/members/ports"
	orderadapters "go-shop/internal/orders/adapters"
	orderapp "go-shop/internal/orders/application"
	orderinfra "go-shop/internal/orders/infrastructure"
	orderports "go-shop/internal/orders/ports"
	"go-shop/pkg/config"
	"go-shop/pkg/db"
	"go-shop/pkg/events"
	"go-shop/pkg/logger"
	"go-shop/pkg/middleware"
	"go-shop/pkg/rabbitmq"
	pkgtls "go-shop/pkg/tls"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log := logger.New(cfg.ServiceName, cfg.LogLevel)
	defer log.Sync()

	log.Info("starting shop service")

	// Connect to database
	dbConn, err := db.NewConnection(db.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
		Timeout:  cfg.DBTimeout,
	})
	if err != nil {
		log.Fatal("failed to connect to database: " + err.Error())
	}
	log.Info("connected to database")

	// Initialize repositories and run migrations. Members and items go
	// first: the order models join against their tables.
	memberRepo := memberadapters.NewPostgresMemberRepository(dbConn)
	itemRepo := itemadapters.NewPostgresItemRepository(dbConn)
	orderRepo := orderadapters.NewPostgresOrderRepository(dbConn)
	orderReader := orderadapters.NewPostgresOrderReader(dbConn)

	for _, migrate := range []func() error{memberRepo.Migrate, itemRepo.Migrate, orderRepo.Migrate} {
		if err := migrate(); err != nil {
			log.Fatal("failed to migrate database: " + err.Error())
		}
	}

	// Connect to RabbitMQ. The publisher variables stay nil interfaces
	// when the broker is unavailable so the use cases skip publishing.
	var memberPublisher memberports.EventPublisher
	var orderPublisher orderports.EventPublisher
	rabbitConn, err := rabbitmq.NewConnection(cfg.RabbitMQURL, log)
	if err != nil {
		log.Warn("failed to connect to RabbitMQ, events will be disabled: " + err.Error())
	} else {
		defer rabbitConn.Close()

		pub, err := rabbitmq.NewPublisher(rabbitConn, events.ExchangeShop, log)
		if err != nil {
			log.Warn("failed to create publisher: " + err.Error())
		} else {
			memberPublisher = memberadapters.NewRabbitMQPublisher(pub, log)
			orderPublisher = orderadapters.NewRabbitMQPublisher(pub, log)
		}
	}

	// Initialize use cases
	txManager := db.NewTxManager(dbConn)
	memberUseCase := memberapp.NewMemberUseCase(memberRepo, memberPublisher, log)
	itemUseCase := itemapp.NewItemUseCase(itemRepo, log)
	orderUseCase := orderapp.NewOrderUseCase(orderRepo, orderReader, memberRepo, itemRepo, txManager, orderPublisher, log)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.TraceID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.ErrorHandler(log))
	router.Use(middleware.CORS())

	api := router.Group("/api")
	v1 := api.Group("/v1")
	memberinfra.NewHTTPHandler(memberUseCase).RegisterRoutes(v1)
	iteminfra.NewHTTPHandler(itemUseCase).RegisterRoutes(v1)
	orderinfra.NewHTTPHandler(orderUseCase).RegisterRoutes(api)

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	httpServer := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
	}

	go func() {
		log.Info("HTTP server listening on :" + cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error: " + err.Error())
		}
	}()

	var httpsServer *http.Server
	if cfg.TLSEnabled {
		tlsConfig, err := pkgtls.ServerConfig(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			log.Fatal("failed to load TLS config: " + err.Error())
		}

		httpsServer = &http.Server{
			Addr:         ":" + cfg.HTTPSPort,
			Handler:      router,
			TLSConfig:    tlsConfig,
			ReadTimeout:  cfg.HTTPTimeout,
			WriteTimeout: cfg.HTTPTimeout,
		}

		go func() {
			log.Info("HTTPS server listening on :" + cfg.HTTPSPort)
			if err := httpsServer.ListenAndServeTLS("", ""); err != nil && err != http.ErrServerClosed {
				log.Fatal("HTTPS server error: " + err.Error())
			}
		}()
	}

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP shutdown error: " + err.Error())
	}
	if httpsServer != nil {
		if err := httpsServer.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTPS shutdown error: " + err.Error())
		}
	}

	log.Info("server stopped")
}
