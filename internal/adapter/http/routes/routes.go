package routes

import (
	"log"
	"os"
	"strconv"

	_ "pedezap/docs" // swag-generated swagger registration
	"pedezap/internal/adapter/http/handlers"
	repository2 "pedezap/internal/adapter/persistence/repository"
	"pedezap/internal/adapter/persistence/session"
	"pedezap/internal/infrastructure/cache"
	"pedezap/internal/infrastructure/database"
	"pedezap/internal/infrastructure/messaging"
	"pedezap/internal/usecase"
	"pedezap/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	var productRepo interfaces.IProductRepository = repository2.NewProductDynamoRepository(ddb)
	promotionRepo := repository2.NewPromotionDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	storeRepo := repository2.NewStoreConfigDynamoRepository(ddb)

	// Redis is optional: without it the catalog is read straight from
	// DynamoDB on every message.
	if redisClient, err := cache.NewRedisClient(); err != nil {
		log.Printf("Catalog cache not configured: %v", err)
	} else {
		productRepo = repository2.NewCachedProductRepository(productRepo, redisClient.GetClient())
	}

	gateway, err := messaging.NewChannelGateway(os.Getenv("CHANNEL_GATEWAY_URL"))
	if err != nil {
		log.Fatalf("Channel gateway not configured: %v", err)
	}

	sessions := session.NewMemoryStore()
	conversation := usecase.NewConversationUseCase()

	botUseCase := usecase.NewBotUseCase(conversation, sessions, productRepo, promotionRepo, orderRepo, storeRepo, gateway)
	catalogUseCase := usecase.NewCatalogUseCase(productRepo, promotionRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	storeUseCase := usecase.NewStoreConfigUseCase(storeRepo)

	botHandler := handlers.NewBotHandler(botUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	storeHandler := handlers.NewStoreHandler(storeUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBotRoutes(v1, botHandler)
	addDashboardRoutes(v1, catalogHandler, orderHandler, storeHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
