package handler

import (
	"context"
	"log/slog"
	"net/http"

	"rescue/internal/delivery/api/middleware"
	"rescue/internal/delivery/api/response"
	"rescue/internal/domain/entity"
	"rescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReservationHandlerParams holds dependencies for ReservationHandler, injected by Fx.
type ReservationHandlerParams struct {
	fx.In

	ReservationUC usecase.ReservationUsecase
	Logger        *slog.Logger
}

// ReservationHandler holds dependencies for reservation-related handlers
type ReservationHandler struct {
	reservationUC usecase.ReservationUsecase
	logger        *slog.Logger
}

// NewReservationHandler is the constructor for ReservationHandler
func NewReservationHandler(params ReservationHandlerParams) *ReservationHandler {
	return &ReservationHandler{
		reservationUC: params.ReservationUC,
		logger:        params.Logger,
	}
}

// ReserveRequest represents the request body for reserving an offer
type ReserveRequest struct {
	OfferID  uuid.UUID `json:"offer_id" validate:"required"`
	Quantity int       `json:"quantity"`
}

// Reserve handles POST /reservations
func (h *ReservationHandler) Reserve(c echo.Context) error {
	clientID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ReserveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.reservationUC.Reserve(c.Request().Context(), clientID, req.OfferID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// ListClientReservations handles GET /reservations
func (h *ReservationHandler) ListClientReservations(c echo.Context) error {
	clientID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reservations, err := h.reservationUC.ListClientReservations(c.Request().Context(), clientID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reservations)
}

// ListMerchantReservations handles GET /merchant/reservations
func (h *ReservationHandler) ListMerchantReservations(c echo.Context) error {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reservations, err := h.reservationUC.ListMerchantReservations(c.Request().Context(), merchantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reservations)
}

// CompleteReservation handles POST /merchant/reservations/:id/complete
func (h *ReservationHandler) CompleteReservation(c echo.Context) error {
	return h.transition(c, h.reservationUC.CompleteReservation)
}

// CancelReservation handles POST /reservations/:id/cancel
func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	return h.transition(c, h.reservationUC.CancelReservation)
}

// ArchiveReservation handles POST /reservations/:id/archive
func (h *ReservationHandler) ArchiveReservation(c echo.Context) error {
	return h.transition(c, h.reservationUC.ArchiveReservation)
}

type reservationTransition func(ctx context.Context, userID, reservationID uuid.UUID) (*entity.Reservation, error)

func (h *ReservationHandler) transition(c echo.Context, apply reservationTransition) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid reservation ID")
	}

	reservation, err := apply(c.Request().Context(), userID, reservationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reservation)
}
