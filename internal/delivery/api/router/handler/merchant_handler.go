package handler

import (
	"log/slog"
	"net/http"
	"time"

	"rescue/internal/delivery/api/middleware"
	"rescue/internal/delivery/api/response"
	"rescue/internal/domain/entity"
	"rescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MerchantHandlerParams holds dependencies for MerchantHandler, injected by Fx.
type MerchantHandlerParams struct {
	fx.In

	MerchantUC usecase.MerchantUsecase
	OfferUC    usecase.OfferUsecase
	Logger     *slog.Logger
}

// MerchantHandler serves merchant onboarding and offer management
type MerchantHandler struct {
	merchantUC usecase.MerchantUsecase
	offerUC    usecase.OfferUsecase
	logger     *slog.Logger
}

// NewMerchantHandler is the constructor for MerchantHandler
func NewMerchantHandler(params MerchantHandlerParams) *MerchantHandler {
	return &MerchantHandler{
		merchantUC: params.MerchantUC,
		offerUC:    params.OfferUC,
		logger:     params.Logger,
	}
}

// ProfileRequest represents the merchant onboarding form
type ProfileRequest struct {
	Name       string `json:"name" validate:"required"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
	LogoURL    string `json:"logo_url"`
}

// LocationRequest carries coordinates already resolved by the geocoding collaborator
type LocationRequest struct {
	Lat *float64 `json:"lat" validate:"required"`
	Lng *float64 `json:"lng" validate:"required"`
}

// OfferRequest represents an offer create or update
type OfferRequest struct {
	Title          string    `json:"title" validate:"required"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"image_url"`
	PriceBefore    float64   `json:"price_before"`
	PriceAfter     float64   `json:"price_after"`
	Quantity       int       `json:"quantity"`
	AvailableFrom  time.Time `json:"available_from" validate:"required"`
	AvailableUntil time.Time `json:"available_until" validate:"required"`
}

// StatusRequest toggles an offer or the merchant itself
type StatusRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// SaleRequest records an in-store sale
type SaleRequest struct {
	Quantity int `json:"quantity"`
}

func (req *OfferRequest) toInput() *usecase.OfferInput {
	return &usecase.OfferInput{
		Title:          req.Title,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		PriceBefore:    req.PriceBefore,
		PriceAfter:     req.PriceAfter,
		Quantity:       req.Quantity,
		AvailableFrom:  req.AvailableFrom,
		AvailableUntil: req.AvailableUntil,
	}
}

// GetProfile handles GET /merchant/profile
func (h *MerchantHandler) GetProfile(c echo.Context) error {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	merchant, err := h.merchantUC.GetProfile(c.Request().Context(), merchantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, merchant)
}

// UpsertProfile handles PUT /merchant/profile
func (h *MerchantHandler) UpsertProfile(c echo.Context) error {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	merchant, err := h.merchantUC.UpsertProfile(c.Request().Context(), merchantID, &usecase.MerchantProfileInput{
		Name:       req.Name,
		Street:     req.Street,
		City:       req.City,
		PostalCode: req.PostalCode,
		Phone:      req.Phone,
		LogoURL:    req.LogoURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, merchant)
}

// UpdateLocation handles PUT /merchant/location
func (h *MerchantHandler) UpdateLocation(c echo.Context) error {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	merchant, err := h.merchantUC.UpdateLocation(c.Request().Context(), merchantID, entity.GeoPoint{Lat: *req.Lat, Lng: *req.Lng})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, merchant)
}

// SetStatus handles PATCH /merchant/status
func (h *MerchantHandler) SetStatus(c echo.Context) error {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	merchant, err := h.merchantUC.SetActive(c.Request().Context(), merchantID, *req.Active)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, merchant)
}

// CreateOffer handles POST /merchant/offers
func (h *MerchantHandler) CreateOffer(c echo.Context) error {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req OfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	offer, err := h.offerUC.CreateOffer(c.Request().Context(), merchantID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, offer)
}

// ListOffers handles GET /merchant/offers
func (h *MerchantHandler) ListOffers(c echo.Context) error {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	offers, err := h.offerUC.ListMerchantOffers(c.Request().Context(), merchantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offers)
}

// ListActiveOffers handles GET /merchant/offers/active
func (h *MerchantHandler) ListActiveOffers(c echo.Context) error {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	offers, err := h.offerUC.ListActiveMerchantOffers(c.Request().Context(), merchantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offers)
}

// UpdateOffer handles PUT /merchant/offers/:id
func (h *MerchantHandler) UpdateOffer(c echo.Context) error {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid offer ID")
	}

	var req OfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	offer, err := h.offerUC.UpdateOffer(c.Request().Context(), merchantID, offerID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offer)
}

// SetOfferStatus handles PATCH /merchant/offers/:id/status
func (h *MerchantHandler) SetOfferStatus(c echo.Context) error {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid offer ID")
	}

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	offer, err := h.offerUC.SetOfferActive(c.Request().Context(), merchantID, offerID, *req.Active)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offer)
}

// DeleteOffer handles DELETE /merchant/offers/:id
func (h *MerchantHandler) DeleteOffer(c echo.Context) error {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid offer ID")
	}

	if err := h.offerUC.DeleteOffer(c.Request().Context(), merchantID, offerID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Offer deleted"})
}

// RecordSale handles POST /merchant/offers/:id/sales
func (h *MerchantHandler) RecordSale(c echo.Context) error {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid offer ID")
	}

	var req SaleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}

	offer, err := h.offerUC.RecordSale(c.Request().Context(), merchantID, offerID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offer)
}
