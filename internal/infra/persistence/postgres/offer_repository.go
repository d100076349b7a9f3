package postgres

import (
	"context"
	"time"

	"rescue/internal/domain/entity"
	domainerrors "rescue/internal/domain/errors"
	"rescue/internal/domain/repository"
	"rescue/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// availableOfferClause selects offers a client can reserve at a given instant.
const availableOfferClause = "is_active = ? AND is_deleted = ? AND quantity > 0 AND available_from <= ? AND available_until >= ?"

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

// CreateOffer persists a new offer.
func (repo *offerRepository) CreateOffer(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("offer violates a table constraint")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMerchantNotFound.WrapMessage("invalid merchant reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt

	return nil
}

// FindOfferByID retrieves a non-deleted offer by its unique ID.
func (repo *offerRepository) FindOfferByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	return repo.findOne(repo.db.WithContext(ctx), id)
}

// FindOfferByIDForUpdate retrieves an offer with a row-level lock (SELECT ... FOR UPDATE).
func (repo *offerRepository) FindOfferByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *offerRepository) findOne(db *gorm.DB, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := db.
		Where("id = ? AND is_deleted = ?", id, false).
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by ID")
	}

	return toOfferDomain(&offerM), nil
}

// FindOffersByMerchant retrieves all non-deleted offers owned by a merchant, newest first.
func (repo *offerRepository) FindOffersByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	if err := repo.db.WithContext(ctx).
		Where("merchant_id = ? AND is_deleted = ?", merchantID, false).
		Order("created_at DESC").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find offers by merchant")
	}

	return toOfferDomains(offerModels), nil
}

// FindAvailableOffersByMerchants retrieves effectively available offers of the given merchants.
func (repo *offerRepository) FindAvailableOffersByMerchants(ctx context.Context, merchantIDs []uuid.UUID, now time.Time) ([]*entity.Offer, error) {
	if len(merchantIDs) == 0 {
		return []*entity.Offer{}, nil
	}

	var offerModels []*model.OfferModel

	if err := repo.db.WithContext(ctx).
		Where("merchant_id IN ?", merchantIDs).
		Where(availableOfferClause, true, false, now, now).
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find available offers")
	}

	return toOfferDomains(offerModels), nil
}

// FindRecentAvailableOffersByMerchants retrieves the newest available offers of the given merchants.
func (repo *offerRepository) FindRecentAvailableOffersByMerchants(ctx context.Context, merchantIDs []uuid.UUID, now time.Time, limit int) ([]*entity.Offer, error) {
	if len(merchantIDs) == 0 {
		return []*entity.Offer{}, nil
	}

	var offerModels []*model.OfferModel

	query := repo.db.WithContext(ctx).
		Where("merchant_id IN ?", merchantIDs).
		Where(availableOfferClause, true, false, now, now).
		Order("created_at DESC").
		Order("id")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent available offers")
	}

	return toOfferDomains(offerModels), nil
}

// UpdateOffer persists the mutable fields of an offer.
func (repo *offerRepository) UpdateOffer(ctx context.Context, offer *entity.Offer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ? AND is_deleted = ?", offer.ID, false).
		Updates(map[string]any{
			"title":           offer.Title,
			"description":     offer.Description,
			"image_url":       offer.ImageURL,
			"price_before":    offer.PriceBefore,
			"price_after":     offer.PriceAfter,
			"quantity":        offer.Quantity,
			"available_from":  offer.AvailableFrom,
			"available_until": offer.AvailableUntil,
			"is_active":       offer.IsActive,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("offer violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update offer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// SetOfferActive toggles the is_active flag.
func (repo *offerRepository) SetOfferActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_active", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update offer status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// SoftDeleteOffer marks an offer as deleted and inactive.
func (repo *offerRepository) SoftDeleteOffer(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{
			"is_deleted": true,
			"is_active":  false,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete offer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// DecrementQuantity runs a guarded UPDATE so stock can never go below zero,
// even when two writers race past their own checks.
func (repo *offerRepository) DecrementQuantity(ctx context.Context, id uuid.UUID, amount int) (int, error) {
	var rows []model.OfferModel

	result := repo.db.WithContext(ctx).
		Model(&rows).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "quantity"}}}).
		Where("id = ? AND is_deleted = ? AND quantity >= ?", id, false, amount).
		Update("quantity", gorm.Expr("quantity - ?", amount))

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement offer quantity")
	}

	if result.RowsAffected == 0 || len(rows) == 0 {
		return 0, repository.ErrInsufficientStock
	}

	return rows[0].Quantity, nil
}

// DeactivateEndedOffers switches off active offers whose window closed before now.
func (repo *offerRepository) DeactivateEndedOffers(ctx context.Context, now time.Time) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	result := repo.db.WithContext(ctx).
		Model(&offerModels).
		Clauses(clause.Returning{}).
		Where("is_active = ? AND is_deleted = ? AND available_until < ?", true, false, now).
		Update("is_active", false)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to deactivate ended offers")
	}

	return toOfferDomains(offerModels), nil
}

// --- Mapper Functions ---

// toOfferDomain converts a GORM OfferModel to a domain Offer entity.
func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	return &entity.Offer{
		ID:             data.ID,
		MerchantID:     data.MerchantID,
		Title:          data.Title,
		Description:    data.Description,
		ImageURL:       data.ImageURL,
		PriceBefore:    data.PriceBefore,
		PriceAfter:     data.PriceAfter,
		Quantity:       data.Quantity,
		AvailableFrom:  data.AvailableFrom,
		AvailableUntil: data.AvailableUntil,
		IsActive:       data.IsActive,
		IsDeleted:      data.IsDeleted,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toOfferDomains(models []*model.OfferModel) []*entity.Offer {
	offers := make([]*entity.Offer, 0, len(models))
	for _, offerM := range models {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers
}

// fromOfferDomain converts a domain Offer entity to a GORM OfferModel.
func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	if data == nil {
		return nil
	}

	return &model.OfferModel{
		ID:             data.ID,
		MerchantID:     data.MerchantID,
		Title:          data.Title,
		Description:    data.Description,
		ImageURL:       data.ImageURL,
		PriceBefore:    data.PriceBefore,
		PriceAfter:     data.PriceAfter,
		Quantity:       data.Quantity,
		AvailableFrom:  data.AvailableFrom,
		AvailableUntil: data.AvailableUntil,
		IsActive:       data.IsActive,
		IsDeleted:      data.IsDeleted,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
