package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"enthro-backend/domain/repository"
	"enthro-backend/infrastructure/cache"
	"enthro-backend/infrastructure/configuration"
	"enthro-backend/infrastructure/logger"
	"enthro-backend/infrastructure/persistence"
	"enthro-backend/infrastructure/pubsub"
	"enthro-backend/infrastructure/servicebus"
	httpHandler "enthro-backend/interfaces/http"
	"enthro-backend/server"
	"enthro-backend/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	mongoDb, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
		configuration.C.Database.Mongo.Name,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot connect to MongoDB")
		os.Exit(1)
	}
	if err := mongoDb.Ping(ctx, nil); err != nil {
		logger.GetLogger().WithField("error", err).Error("MongoDB ping failed")
		os.Exit(1)
	}
	logger.GetLogger().Info("MongoDB connected successfully")

	notifier := initiateNotifier(ctx)

	redisClient, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - continuing without lookup cache")
		redisClient = nil
	}
	lookupCache := cache.NewCatalogCache(redisClient, time.Duration(configuration.C.Catalog.LookupCacheSeconds)*time.Second)

	dbName := configuration.C.Database.Mongo.Name
	accountRepository := persistence.NewAccountRepository(mongoDb, dbName)
	channelRepository := persistence.NewChannelRepository(mongoDb, dbName)
	streamRepository := persistence.NewStreamRepository(mongoDb, dbName)
	videoRepository := persistence.NewVideoRepository(mongoDb, dbName)

	lifecycleUsecase := usecase.NewLifecycleUsecase(accountRepository, channelRepository, streamRepository, videoRepository, notifier, lookupCache)
	engagementUsecase := usecase.NewEngagementUsecase(accountRepository, streamRepository, videoRepository)
	queryUsecase := usecase.NewQueryUsecase(accountRepository, channelRepository, streamRepository, videoRepository, lookupCache, configuration.C.Catalog.PageSize)

	accountHandler := httpHandler.NewAccountHandler(lifecycleUsecase, engagementUsecase, queryUsecase)
	channelHandler := httpHandler.NewChannelHandler(lifecycleUsecase, queryUsecase)
	streamHandler := httpHandler.NewStreamHandler(lifecycleUsecase, engagementUsecase, queryUsecase)
	videoHandler := httpHandler.NewVideoHandler(lifecycleUsecase, engagementUsecase, queryUsecase)

	router := server.InitiateRouter(accountHandler, channelHandler, streamHandler, videoHandler, app.SecretKey)

	port := app.Port
	logger.GetLogger().WithFields(map[string]interface{}{"port": port, "tls": app.TLSEnabled}).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if app.TLSEnabled {
			cert := app.TLSCertFile
			key := app.TLSKeyFile
			if cert == "" || key == "" {
				logger.GetLogger().Error("TLS enabled but cert or key path empty; falling back to HTTP")
				if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			} else {
				logger.GetLogger().WithFields(map[string]interface{}{"cert": cert, "key": key}).Info("Serving HTTPS")
				if err := httpServer.ListenAndServeTLS(cert, key); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			}
		} else {
			if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}
	if err := mongoDb.Disconnect(shutdownCtx); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while disconnecting from MongoDB")
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

// initiateNotifier wires the configured stream-event queue backend. A nil
// notifier disables event submission; lifecycle transitions still succeed.
func initiateNotifier(ctx context.Context) repository.IStreamNotifier {
	switch configuration.C.Notifier.Backend {
	case "pubsub":
		pubSubClient, err := pubsub.NewPubSub(ctx, configuration.C.Pubsub.ProjectID)
		if err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while instantiate PubSub")
			return nil
		}
		return pubsub.NewStreamNotifier(pubSubClient, configuration.C.Notifier.Topic)
	case "servicebus":
		azServiceBusClient, err := servicebus.NewServiceBus(ctx, configuration.C.ServiceBus.Namespace)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Azure Service Bus not available - continuing without stream events")
			return nil
		}
		return servicebus.NewStreamNotifier(azServiceBusClient, configuration.C.Notifier.Queue)
	default:
		logger.GetLogger().Info("No notifier backend configured - stream events disabled")
		return nil
	}
}
