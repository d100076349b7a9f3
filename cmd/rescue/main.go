package main

import (
	"context"
	"log/slog"
	"os"

	"rescue/config"
	"rescue/internal/clock"
	"rescue/internal/delivery"
	"rescue/internal/delivery/api"
	apimiddleware "rescue/internal/delivery/api/middleware"
	"rescue/internal/delivery/api/router/handler"
	"rescue/internal/delivery/scheduler"
	"rescue/internal/domain/repository"
	"rescue/internal/domain/service"
	"rescue/internal/infra/auth"
	"rescue/internal/infra/eventbus"
	"rescue/internal/infra/locks"
	logs "rescue/internal/infra/log"
	"rescue/internal/infra/persistence/postgres"
	"rescue/internal/infra/pubsub"
	"rescue/internal/infra/ratelimit"
	"rescue/internal/infra/spatial"
	"rescue/internal/usecase"
	"rescue/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			registerEventSinks,
			loadSpatialIndex,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		clock.NewSystem,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewMerchantRepository,
			postgres.NewOfferRepository,
			postgres.NewReservationRepository,
			postgres.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			spatial.NewSpatialIndex,
			locks.NewOfferLocker,
			ratelimit.NewRateLimiter,
			pubsub.NewEventPublisher,
			pubsub.NewPushTransport,
			eventbus.NewBus,
			func(bus *eventbus.Bus) service.EventBus { return bus },
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMerchantService,
			impl.NewOfferService,
			impl.NewSearchService,
			impl.NewReservationService,
			impl.NewSubscriptionService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewRateLimitMiddleware,
			apimiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSearchHandler,
			handler.NewReservationHandler,
			handler.NewStreamHandler,
			handler.NewNotificationHandler,
			handler.NewMerchantHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewExpirySweeper,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// registerEventSinks persists notification events into recipients' inboxes before fan-out.
func registerEventSinks(bus *eventbus.Bus, notificationRepo repository.NotificationRepository, logger *slog.Logger) {
	bus.AddSink(impl.NewInboxRecorder(notificationRepo, logger))
}

func loadSpatialIndex(lc fx.Lifecycle, merchantUC usecase.MerchantUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			count, err := merchantUC.LoadIndex(ctx)
			if err != nil {
				return err
			}

			logger.InfoContext(ctx, "Spatial index loaded", slog.Int("merchants", count))

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
