package routes

import (
	"context"
	"log"
	"os"

	_ "m2_studio/docs"
	"m2_studio/internal/adapter/http/handlers"
	"m2_studio/internal/adapter/http/middleware"
	"m2_studio/internal/adapter/persistence/repository"
	"m2_studio/internal/infrastructure/database"
	"m2_studio/internal/infrastructure/notify"
	"m2_studio/internal/infrastructure/realtime"
	"m2_studio/internal/infrastructure/storage"
	"m2_studio/internal/session"
	"m2_studio/internal/usecase"
	"m2_studio/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultPort = "8080"

// Dependencies are the adapters the HTTP API runs on.
type Dependencies struct {
	Orders        interfaces.IOrderRepository
	Messages      interfaces.IMessageRepository
	Reviews       interfaces.IReviewRepository
	Users         interfaces.IUserRepository
	Notifications interfaces.INotificationRepository
	Storage       interfaces.IObjectStorage
	Notifier      interfaces.INotifier
	Hub           *realtime.Hub
	JWTSecret     string
}

// Run will start the server
func Run() {
	ctx := context.Background()
	ddb := database.ConnectDynamoDB(ctx)
	dispatcher := notify.NewDispatcherFromEnv()
	defer dispatcher.Close()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Printf("[api] JWT_SECRET is empty, every authenticated request will be rejected")
	}

	router := NewRouter(Dependencies{
		Orders:        repository.NewOrderDynamoRepository(ddb),
		Messages:      repository.NewMessageDynamoRepository(ddb),
		Reviews:       repository.NewReviewDynamoRepository(ddb),
		Users:         repository.NewUserDynamoRepository(ddb),
		Notifications: repository.NewNotificationDynamoRepository(ddb),
		Storage:       storage.ConnectS3(ctx),
		Notifier:      dispatcher,
		Hub:           realtime.NewHub(),
		JWTSecret:     secret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Hub == nil {
		deps.Hub = realtime.NewHub()
	}
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	orderUseCase := usecase.NewOrderUseCase(deps.Orders, deps.Storage, deps.Notifier, deps.Hub)
	messageUseCase := usecase.NewMessageUseCase(deps.Orders, deps.Messages, deps.Storage, deps.Notifier, deps.Hub)
	reviewUseCase := usecase.NewReviewUseCase(deps.Orders, deps.Reviews, deps.Notifier)
	notificationUseCase := usecase.NewNotificationUseCase(deps.Notifications)
	profileUseCase := usecase.NewProfileUseCase(deps.Users)
	joinUseCase := usecase.NewJoinUseCase(deps.Notifier)

	h := routeHandlers{
		orders:        handlers.NewOrderHandler(orderUseCase),
		admin:         handlers.NewAdminHandler(orderUseCase),
		messages:      handlers.NewMessageHandler(messageUseCase),
		reviews:       handlers.NewReviewHandler(reviewUseCase),
		notifications: handlers.NewNotificationHandler(notificationUseCase),
		ws:            handlers.NewWSHandler(orderUseCase, deps.Hub),
		profile:       handlers.NewProfileHandler(profileUseCase),
		join:          handlers.NewJoinHandler(joinUseCase),
	}
	auth := middleware.NewAuthenticator(deps.JWTSecret, session.NewManager(deps.Users))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1, auth, h)

	private := v1.Group("", auth.RequireAuth())
	addClientRoutes(private, h)
	addAdminRoutes(private, h)

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
