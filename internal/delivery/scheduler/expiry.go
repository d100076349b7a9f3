package scheduler

import (
	"context"
	"log/slog"
	"time"

	"rescue/config"
	"rescue/internal/delivery"
	"rescue/internal/usecase"

	"go.uber.org/fx"
)

// ExpirySweeperParams holds dependencies for the expiry sweeper, injected by Fx.
type ExpirySweeperParams struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	Logger        *slog.Logger
	OfferUC       usecase.OfferUsecase
	ReservationUC usecase.ReservationUsecase
}

// ExpirySweeper periodically closes offers whose pickup window has ended and expires
// the pending reservations left on them. Reservations are swept after offers so one pass
// settles both.
type ExpirySweeper struct {
	interval      time.Duration
	logger        *slog.Logger
	offerUC       usecase.OfferUsecase
	reservationUC usecase.ReservationUsecase

	stop chan struct{}
}

// NewExpirySweeper creates the sweeper; it runs once per configured interval until the app stops.
func NewExpirySweeper(params ExpirySweeperParams) delivery.Delivery {
	s := newExpirySweeper(params.Cfg.Marketplace.WithDefaults().ExpirySweepInterval, params.Logger, params.OfferUC, params.ReservationUC)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			close(s.stop)

			return nil
		},
	})

	return s
}

func newExpirySweeper(interval time.Duration, logger *slog.Logger, offerUC usecase.OfferUsecase, reservationUC usecase.ReservationUsecase) *ExpirySweeper {
	return &ExpirySweeper{
		interval:      interval,
		logger:        logger,
		offerUC:       offerUC,
		reservationUC: reservationUC,
		stop:          make(chan struct{}),
	}
}

// Serve sweeps immediately and then on every tick
func (s *ExpirySweeper) Serve(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Starting expiry sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.Sweep(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-s.stop:
			return nil
		case <-ticker.C:
		}
	}
}

// Sweep runs one pass. Failures are logged and retried on the next tick.
func (s *ExpirySweeper) Sweep(ctx context.Context) {
	offers, err := s.offerUC.ExpireOffers(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to expire offers", slog.Any("error", err))
	}

	reservations, err := s.reservationUC.ExpireReservations(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to expire reservations", slog.Any("error", err))
	}

	if offers > 0 || reservations > 0 {
		s.logger.InfoContext(ctx, "Expiry sweep finished",
			slog.Int("offers", offers),
			slog.Int64("reservations", reservations),
		)
	}
}
