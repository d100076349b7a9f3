package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"rescue/config"
	"rescue/internal/clock"
	deliverycontext "rescue/internal/delivery/context"
	"rescue/internal/domain/constants"
	"rescue/internal/domain/entity"
	domainerrors "rescue/internal/domain/errors"
	"rescue/internal/domain/repository"
	"rescue/internal/domain/service"
	"rescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type searchService struct {
	offerRepo    repository.OfferRepository
	merchantRepo repository.MerchantRepository
	index        service.SpatialIndex
	clock        clock.Clock
	marketplace  *config.MarketplaceConfig
	logger       *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	OfferRepo    repository.OfferRepository
	MerchantRepo repository.MerchantRepository
	Index        service.SpatialIndex
	Clock        clock.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSearchService creates a new proximity search service
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		offerRepo:    params.OfferRepo,
		merchantRepo: params.MerchantRepo,
		index:        params.Index,
		clock:        params.Clock,
		marketplace:  params.Config.Marketplace.WithDefaults(),
		logger:       params.Logger,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SearchOffers runs a nearby or all-mode search
func (srv *searchService) SearchOffers(ctx context.Context, input *usecase.SearchInput) ([]*usecase.SearchResult, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("search input is required")
	}
	if !input.Center.IsValid() {
		return nil, domainerrors.ErrInvalidPoint
	}

	mode := input.Mode
	if mode == "" {
		mode = constants.SearchModeNearby
	}

	var radius float64
	switch mode {
	case constants.SearchModeNearby:
		radius = srv.marketplace.DefaultRadiusMeters
		if input.RadiusMeters != nil {
			radius = *input.RadiusMeters
		}
		if !(radius > 0) {
			return nil, domainerrors.ErrInvalidRadius
		}
		radius = min(radius, srv.marketplace.MaxNearbyRadiusMeters)
	case constants.SearchModeAll:
		radius = srv.marketplace.AllModeRadiusMeters
	default:
		return nil, domainerrors.ErrInvalidSearchMode.WithDetails("mode must be nearby or all")
	}

	ctx, cancel := context.WithTimeout(ctx, srv.marketplace.SearchTimeout)
	defer cancel()

	matches, err := srv.index.Query(input.Center, radius)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query spatial index")
	}
	if len(matches) == 0 {
		return []*usecase.SearchResult{}, nil
	}

	distances := make(map[uuid.UUID]float64, len(matches))
	merchantIDs := make([]uuid.UUID, 0, len(matches))
	for _, match := range matches {
		distances[match.MerchantID] = match.DistanceMeters
		merchantIDs = append(merchantIDs, match.MerchantID)
	}

	now := srv.clock.Now()
	var offers []*entity.Offer
	if mode == constants.SearchModeAll {
		offers, err = srv.offerRepo.FindRecentAvailableOffersByMerchants(ctx, merchantIDs, now, srv.marketplace.AllModeResultCap)
	} else {
		offers, err = srv.offerRepo.FindAvailableOffersByMerchants(ctx, merchantIDs, now)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find available offers")
	}
	if len(offers) == 0 {
		return []*usecase.SearchResult{}, nil
	}

	merchants, err := srv.findMerchants(ctx, offers)
	if err != nil {
		return nil, err
	}

	results := make([]*usecase.SearchResult, 0, len(offers))
	for _, offer := range offers {
		// The row may have changed since the index snapshot; re-check against the same instant.
		if !offer.IsEffectivelyAvailable(now) {
			continue
		}
		merchant, ok := merchants[offer.MerchantID]
		if !ok || !merchant.IsActive {
			continue
		}

		results = append(results, &usecase.SearchResult{
			Offer:           offer,
			Merchant:        merchant,
			DistanceMeters:  distances[offer.MerchantID],
			DiscountPercent: offer.DiscountPercent(),
		})
	}

	if mode == constants.SearchModeAll {
		slices.SortFunc(results, compareNewest)
		if len(results) > srv.marketplace.AllModeResultCap {
			results = results[:srv.marketplace.AllModeResultCap]
		}
	} else {
		slices.SortFunc(results, compareNearest)
	}

	srv.log(ctx).DebugContext(ctx, "Offer search completed",
		slog.String("mode", mode),
		slog.Float64("radiusMeters", radius),
		slog.Int("merchants", len(matches)),
		slog.Int("results", len(results)),
	)

	return results, nil
}

func (srv *searchService) findMerchants(ctx context.Context, offers []*entity.Offer) (map[uuid.UUID]*entity.Merchant, error) {
	seen := make(map[uuid.UUID]struct{}, len(offers))
	ids := make([]uuid.UUID, 0, len(offers))
	for _, offer := range offers {
		if _, ok := seen[offer.MerchantID]; ok {
			continue
		}
		seen[offer.MerchantID] = struct{}{}
		ids = append(ids, offer.MerchantID)
	}

	merchants, err := srv.merchantRepo.FindMerchantsByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find merchants by IDs")
	}

	byID := make(map[uuid.UUID]*entity.Merchant, len(merchants))
	for _, merchant := range merchants {
		byID[merchant.ID] = merchant
	}

	return byID, nil
}

// compareNearest orders by distance, then soonest end of window, then newest, then ID.
func compareNearest(a, b *usecase.SearchResult) int {
	if c := cmp.Compare(a.DistanceMeters, b.DistanceMeters); c != 0 {
		return c
	}
	if c := a.Offer.AvailableUntil.Compare(b.Offer.AvailableUntil); c != 0 {
		return c
	}
	if c := b.Offer.CreatedAt.Compare(a.Offer.CreatedAt); c != 0 {
		return c
	}

	return cmp.Compare(a.Offer.ID.String(), b.Offer.ID.String())
}

// compareNewest orders by creation time descending, then ID.
func compareNewest(a, b *usecase.SearchResult) int {
	if c := b.Offer.CreatedAt.Compare(a.Offer.CreatedAt); c != 0 {
		return c
	}

	return cmp.Compare(a.Offer.ID.String(), b.Offer.ID.String())
}
