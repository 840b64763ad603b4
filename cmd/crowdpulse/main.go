package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/crowdpulse/internal/pkg/circuitbreaker"
	"github.com/piresc/crowdpulse/internal/pkg/config"
	"github.com/piresc/crowdpulse/internal/pkg/connection"
	"github.com/piresc/crowdpulse/internal/pkg/constants"
	"github.com/piresc/crowdpulse/internal/pkg/database"
	"github.com/piresc/crowdpulse/internal/pkg/health"
	httpclient "github.com/piresc/crowdpulse/internal/pkg/http"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/middleware"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	natstransport "github.com/piresc/crowdpulse/internal/pkg/nats"
	"github.com/piresc/crowdpulse/internal/pkg/retry"
	"github.com/piresc/crowdpulse/internal/pkg/server"
	"github.com/piresc/crowdpulse/internal/pkg/websocket"
	"github.com/piresc/crowdpulse/internal/utils"
	chatGateway "github.com/piresc/crowdpulse/services/chat/gateway"
	chatHandler "github.com/piresc/crowdpulse/services/chat/handler"
	chatUsecase "github.com/piresc/crowdpulse/services/chat/usecase"
	"github.com/piresc/crowdpulse/services/crowd"
	crowdGateway "github.com/piresc/crowdpulse/services/crowd/gateway"
	crowdHandler "github.com/piresc/crowdpulse/services/crowd/handler"
	crowdRepository "github.com/piresc/crowdpulse/services/crowd/repository"
	crowdUsecase "github.com/piresc/crowdpulse/services/crowd/usecase"
	eventsGateway "github.com/piresc/crowdpulse/services/events/gateway"
	eventsHandler "github.com/piresc/crowdpulse/services/events/handler"
	eventsUsecase "github.com/piresc/crowdpulse/services/events/usecase"
	notificationGateway "github.com/piresc/crowdpulse/services/notification/gateway"
	notificationHandler "github.com/piresc/crowdpulse/services/notification/handler"
	notificationUsecase "github.com/piresc/crowdpulse/services/notification/usecase"
	sharingGateway "github.com/piresc/crowdpulse/services/sharing/gateway"
	sharingHandler "github.com/piresc/crowdpulse/services/sharing/handler"
	sharingUsecase "github.com/piresc/crowdpulse/services/sharing/usecase"
)

// events browser clients may publish through the websocket relay
var clientEvents = []string{
	constants.EventRequestCrowdData,
	constants.EventJoinChat,
	constants.EventSendMessage,
	constants.EventTypingStart,
	constants.EventTypingStop,
	constants.EventMarkMessagesRead,
	constants.EventSubscribeEvents,
	constants.EventUnsubscribeEvents,
	constants.EventEventCheckin,
	constants.EventEventComment,
	constants.EventEventShare,
	constants.EventEventRate,
	constants.EventShareLocation,
	constants.EventStopLocationSharing,
	constants.EventSendLocationRequest,
	constants.EventRespondLocationRequest,
	constants.EventPushSubscription,
	constants.EventPushUnsubscribe,
	constants.EventNotificationSettingsUpdate,
}

// lifecycle is implemented by every bus handler
type lifecycle interface {
	Init() error
	Dispose()
}

func main() {
	configPath := os.Getenv("CROWDPULSE_CONFIG")
	if configPath == "" {
		configPath = "config/crowdpulse.env"
	}
	configs, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Close()

	shutdown := server.NewShutdownManager(zapLogger)
	healthSvc := health.NewService()

	// Push channel
	manager := connection.NewManager(newTransport(configs), configs.Connection)
	manager.OnStateChange(func(state models.ConnectionState) {
		logger.Info("Connection state changed",
			logger.String("status", string(state.Status)),
			logger.Int("reconnect_attempts", state.ReconnectAttempts))
	})
	shutdown.Register("connection", func(context.Context) error { return manager.Close() })
	healthSvc.AddChecker("transport", health.TransportChecker(manager))

	// Snapshot store
	var crowdRepo crowd.CrowdRepo
	if configs.Redis.Enabled {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })
		healthSvc.AddChecker("redis", health.RedisChecker(redisClient))
		crowdRepo = crowdRepository.NewCrowdRepository(redisClient)
	}

	// Crowd
	var analytics *httpclient.Client
	if configs.Crowd.AnalyticsURL != "" {
		breaker := circuitbreaker.New(circuitbreaker.DefaultConfig("crowd-analytics"), zapLogger)
		analytics = httpclient.NewClient(httpclient.Config{
			BaseURL:     configs.Crowd.AnalyticsURL,
			ServiceName: "crowd-analytics",
		}, breaker)
	}
	crowdUC := crowdUsecase.NewCrowdUC(crowdGateway.NewCrowdGW(manager, analytics), crowdRepo, configs.Crowd)
	warmCtx, cancelWarm := context.WithTimeout(context.Background(), 5*time.Second)
	if err := crowdUC.WarmStart(warmCtx); err != nil {
		logger.Warn("Crowd warm start failed", logger.Err(err))
	}
	cancelWarm()

	// Chat, events, sharing, notifications
	userID := configs.App.UserID
	chatUC := chatUsecase.NewChatUC(chatGateway.NewChatGW(manager), userID)
	eventsUC := eventsUsecase.NewEventsUC(eventsGateway.NewEventsGW(manager), userID)

	positions := sharingGateway.NewPositionFeed()
	sharingUC := sharingUsecase.NewSharingUC(sharingGateway.NewSharingGW(manager), positions, userID, configs.Sharing)

	vapidKeys, err := notificationGateway.EnsureVAPIDKeys(configs.Push)
	if err != nil {
		logger.Fatal("Failed to prepare VAPID keys", logger.Err(err))
	}
	notificationUC := notificationUsecase.NewNotificationUC(
		notificationGateway.NewNotificationGW(manager),
		notificationGateway.NewWebPushSurface(vapidKeys, configs.Push),
		userID,
		configs.Notification,
	)

	busHandlers := []lifecycle{
		crowdHandler.NewCrowdBusHandler(crowdUC, manager, manager, configs.Crowd),
		chatHandler.NewChatBusHandler(chatUC, manager),
		eventsHandler.NewEventsBusHandler(eventsUC, manager),
		sharingHandler.NewSharingBusHandler(sharingUC, manager, manager, configs.Sharing),
		notificationHandler.NewNotificationBusHandler(notificationUC, manager, manager, configs.Notification),
	}
	for _, h := range busHandlers {
		if err := h.Init(); err != nil {
			logger.Fatal("Failed to initialize bus handler", logger.Err(err))
		}
	}
	shutdown.Register("bus-handlers", func(context.Context) error {
		for i := len(busHandlers) - 1; i >= 0; i-- {
			busHandlers[i].Dispose()
		}
		return nil
	})

	relay := websocket.NewManager(configs.JWT, manager, clientEvents)
	relay.Init()
	shutdown.Register("websocket", func(context.Context) error {
		relay.Dispose()
		return nil
	})

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), connectTimeout(configs.Connection))
	if err := manager.Connect(connectCtx); err != nil {
		// pollers resume and emits flow once the transport comes back
		logger.Error("Push channel unavailable at startup", logger.Err(err))
	}
	cancelConnect()

	// HTTP
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, configs.App.Name, configs.App.Version, healthSvc)
	e.GET("/ws", relay.HandleConnection)

	api := e.Group("/api/v1")
	api.GET("/connection", connectionStatus(manager))
	crowdHandler.NewHTTPHandler(crowdUC).RegisterRoutes(api)
	chatHandler.NewHTTPHandler(chatUC).RegisterRoutes(api)
	eventsHandler.NewHTTPHandler(eventsUC).RegisterRoutes(api)
	sharingHandler.NewHTTPHandler(sharingUC, positions).RegisterRoutes(api)
	notificationHandler.NewHTTPHandler(notificationUC).RegisterRoutes(api)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server, shutdown)
	if err := srv.Start(); err != nil {
		logger.Error("Server stopped with error", logger.Err(err))
		os.Exit(1)
	}
}

func newTransport(configs *models.Config) connection.Transport {
	if configs.NATS.URL == "" {
		logger.Warn("No NATS URL configured, using in-process loopback transport")
		return connection.NewMemoryTransport(true)
	}

	backoff := retry.New(retry.Config{
		BaseDelay:  configs.Connection.BackoffBase,
		MaxDelay:   configs.Connection.BackoffMax,
		Multiplier: 2.0,
		Jitter:     true,
	}, logger.GetGlobalLogger())
	return natstransport.NewTransport(natstransport.Config{
		URL:                  configs.NATS.URL,
		SubjectRoot:          configs.NATS.SubjectRoot,
		Name:                 fmt.Sprintf("%s-%s", configs.App.Name, configs.App.UserID),
		ConnectTimeout:       configs.Connection.ConnectTimeout,
		MaxReconnectAttempts: configs.Connection.MaxReconnectAttempts,
		Backoff:              backoff.Backoff,
	})
}

func connectTimeout(cfg models.ConnectionConfig) time.Duration {
	attempts := cfg.MaxReconnectAttempts
	if attempts <= 0 {
		attempts = connection.DefaultMaxReconnectAttempts
	}
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return time.Duration(attempts) * (timeout + cfg.BackoffMax)
}

func connectionStatus(manager *connection.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		return utils.SuccessResponse(c, http.StatusOK, "", manager.State())
	}
}
