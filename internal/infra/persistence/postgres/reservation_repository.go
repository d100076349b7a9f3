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
)

// reservationRepository implements the repository.ReservationRepository interface.
type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository is the constructor for reservationRepository.
func NewReservationRepository(db *gorm.DB) repository.ReservationRepository {
	return &reservationRepository{
		db: db,
	}
}

// CreateReservation persists a new reservation.
func (repo *reservationRepository) CreateReservation(ctx context.Context, reservation *entity.Reservation) error {
	reservationM := fromReservationDomain(reservation)

	if err := repo.db.WithContext(ctx).Create(reservationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOfferNotFound.WrapMessage("invalid offer reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidQuantity.WrapMessage("reservation violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reservation")
	}

	reservation.ID = reservationM.ID
	reservation.CreatedAt = reservationM.CreatedAt
	reservation.UpdatedAt = reservationM.UpdatedAt

	return nil
}

// FindReservationByID retrieves a reservation by its unique ID.
func (repo *reservationRepository) FindReservationByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	var reservationM model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reservationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find reservation by ID")
	}

	return toReservationDomain(&reservationM), nil
}

// FindReservationsByClient retrieves the reservations made by a client, newest first.
func (repo *reservationRepository) FindReservationsByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Reservation, error) {
	return repo.findBy(ctx, "client_id = ?", clientID)
}

// FindReservationsByMerchant retrieves the reservations placed against a merchant's offers, newest first.
func (repo *reservationRepository) FindReservationsByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Reservation, error) {
	return repo.findBy(ctx, "merchant_id = ?", merchantID)
}

func (repo *reservationRepository) findBy(ctx context.Context, condition string, id uuid.UUID) ([]*entity.Reservation, error) {
	var reservationModels []*model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Where(condition, id).
		Order("created_at DESC").
		Find(&reservationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reservations")
	}

	reservations := make([]*entity.Reservation, 0, len(reservationModels))
	for _, reservationM := range reservationModels {
		reservations = append(reservations, toReservationDomain(reservationM))
	}

	return reservations, nil
}

// UpdateReservationStatus moves a reservation from one status to another.
func (repo *reservationRepository) UpdateReservationStatus(ctx context.Context, id uuid.UUID, from, to entity.ReservationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Update("status", to.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update reservation status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReservationStatusConflict
	}

	return nil
}

// ExpirePendingReservations marks pending reservations on ended offers as expired.
func (repo *reservationRepository) ExpirePendingReservations(ctx context.Context, now time.Time) (int64, error) {
	ended := repo.db.Model(&model.OfferModel{}).
		Select("id").
		Where("available_until < ?", now)

	result := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("status = ? AND offer_id IN (?)", entity.ReservationStatusPending.String(), ended).
		Update("status", entity.ReservationStatusExpired.String())

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to expire pending reservations")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toReservationDomain converts a GORM ReservationModel to a domain Reservation entity.
func toReservationDomain(data *model.ReservationModel) *entity.Reservation {
	if data == nil {
		return nil
	}

	return &entity.Reservation{
		ID:         data.ID,
		OfferID:    data.OfferID,
		ClientID:   data.ClientID,
		MerchantID: data.MerchantID,
		Quantity:   data.Quantity,
		Status:     entity.ReservationStatus(data.Status),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromReservationDomain converts a domain Reservation entity to a GORM ReservationModel.
func fromReservationDomain(data *entity.Reservation) *model.ReservationModel {
	if data == nil {
		return nil
	}

	return &model.ReservationModel{
		ID:         data.ID,
		OfferID:    data.OfferID,
		ClientID:   data.ClientID,
		MerchantID: data.MerchantID,
		Quantity:   data.Quantity,
		Status:     data.Status.String(),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
