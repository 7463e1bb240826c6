package routes

import (
	"context"
	"strconv"

	_ "printstudio/docs" // swag-generated swagger spec
	"printstudio/internal/adapter/http/handlers"
	"printstudio/internal/adapter/http/middleware"
	"printstudio/internal/adapter/persistence/repository"
	appconfig "printstudio/internal/infrastructure/config"
	"printstudio/internal/infrastructure/database"
	"printstudio/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run wires the application together and starts the HTTP server.
func Run() {
	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := registerRoutes(router, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to register routes")
	}

	log.Info().Int("port", cfg.Port).Msg("starting print studio api")
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatal().Err(err).Msg("failed to start the application")
	}
}

func registerRoutes(router *gin.Engine, cfg *appconfig.Config) error {
	ddb, err := database.NewDynamoDBClient(context.Background(), cfg)
	if err != nil {
		return err
	}

	serviceRepo := repository.NewServiceDynamoRepository(ddb, cfg.ServicesTable)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.QuotesTable)

	catalogUseCase := usecase.NewCatalogUseCase(serviceRepo, log.With().Str("component", "catalog").Logger())
	quoteUseCase := usecase.NewQuoteUseCase(serviceRepo, quoteRepo, log.With().Str("component", "quotes").Logger())

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	healthHandler := handlers.NewHealthHandler(handlers.StorePingerFunc(func(ctx context.Context) error {
		return database.Ping(ctx, ddb)
	}))

	addHealthRoutes(router, healthHandler)

	v1 := router.Group("/v1")
	addPrintshopRoutes(v1, catalogHandler, quoteHandler)
	return nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
}
