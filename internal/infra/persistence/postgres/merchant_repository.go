package postgres

import (
	"context"

	"rescue/internal/domain/entity"
	domainerrors "rescue/internal/domain/errors"
	"rescue/internal/domain/repository"
	"rescue/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// merchantRepository implements the repository.MerchantRepository interface.
type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository is the constructor for merchantRepository.
func NewMerchantRepository(db *gorm.DB) repository.MerchantRepository {
	return &merchantRepository{
		db: db,
	}
}

// UpsertMerchant creates the merchant row or updates its profile columns.
// The stored location is left untouched; it is managed by UpdateMerchantLocation.
func (repo *merchantRepository) UpsertMerchant(ctx context.Context, merchant *entity.Merchant) error {
	merchantM := fromMerchantDomain(merchant)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "street", "city", "postal_code", "phone", "logo_url", "is_active", "updated_at"}),
		}).
		Omit("latitude", "longitude").
		Create(merchantM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required merchant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert merchant")
	}

	merchant.CreatedAt = merchantM.CreatedAt
	merchant.UpdatedAt = merchantM.UpdatedAt

	return nil
}

// FindMerchantByID retrieves a merchant by its unique ID.
func (repo *merchantRepository) FindMerchantByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error) {
	var merchantM model.MerchantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&merchantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant by ID")
	}

	return toMerchantDomain(&merchantM), nil
}

// FindMerchantsByIDs retrieves the merchants with the given IDs.
func (repo *merchantRepository) FindMerchantsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Merchant, error) {
	if len(ids) == 0 {
		return []*entity.Merchant{}, nil
	}

	var merchantModels []*model.MerchantModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&merchantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find merchants by IDs")
	}

	return toMerchantDomains(merchantModels), nil
}

// FindLocatedMerchants retrieves every active merchant that has a stored location.
func (repo *merchantRepository) FindLocatedMerchants(ctx context.Context) ([]*entity.Merchant, error) {
	var merchantModels []*model.MerchantModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", true).
		Find(&merchantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find located merchants")
	}

	return toMerchantDomains(merchantModels), nil
}

// UpdateMerchantLocation stores a merchant's coordinates.
func (repo *merchantRepository) UpdateMerchantLocation(ctx context.Context, id uuid.UUID, location entity.GeoPoint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MerchantModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"latitude":  location.Lat,
			"longitude": location.Lng,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update merchant location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMerchantNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMerchantDomain converts a GORM MerchantModel to a domain Merchant entity.
func toMerchantDomain(data *model.MerchantModel) *entity.Merchant {
	if data == nil {
		return nil
	}

	merchant := &entity.Merchant{
		ID:         data.ID,
		Name:       data.Name,
		Street:     data.Street,
		City:       data.City,
		PostalCode: data.PostalCode,
		Phone:      data.Phone,
		LogoURL:    data.LogoURL,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.Latitude != nil && data.Longitude != nil {
		merchant.Location = &entity.GeoPoint{Lat: *data.Latitude, Lng: *data.Longitude}
	}

	return merchant
}

func toMerchantDomains(models []*model.MerchantModel) []*entity.Merchant {
	merchants := make([]*entity.Merchant, 0, len(models))
	for _, merchantM := range models {
		merchants = append(merchants, toMerchantDomain(merchantM))
	}

	return merchants
}

// fromMerchantDomain converts a domain Merchant entity to a GORM MerchantModel.
func fromMerchantDomain(data *entity.Merchant) *model.MerchantModel {
	if data == nil {
		return nil
	}

	merchantM := &model.MerchantModel{
		ID:         data.ID,
		Name:       data.Name,
		Street:     data.Street,
		City:       data.City,
		PostalCode: data.PostalCode,
		Phone:      data.Phone,
		LogoURL:    data.LogoURL,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.Location != nil {
		lat, lng := data.Location.Lat, data.Location.Lng
		merchantM.Latitude = &lat
		merchantM.Longitude = &lng
	}

	return merchantM
}
