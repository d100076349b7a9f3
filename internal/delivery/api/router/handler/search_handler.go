package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"rescue/internal/delivery/api/response"
	"rescue/internal/domain/entity"
	"rescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	OfferUC  usecase.OfferUsecase
	Logger   *slog.Logger
}

// SearchHandler serves offer discovery
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	offerUC  usecase.OfferUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		offerUC:  params.OfferUC,
		logger:   params.Logger,
	}
}

// SearchOffers handles GET /offers/search?lat&lng&radius&mode
func (h *SearchHandler) SearchOffers(c echo.Context) error {
	var lat, lng float64
	if err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &lat).
		MustFloat64("lng", &lng).
		BindError(); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "lat and lng are required numbers")
	}

	var radius *float64
	if raw := c.QueryParam("radius"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "radius must be a number")
		}
		radius = &value
	}

	results, err := h.searchUC.SearchOffers(c.Request().Context(), &usecase.SearchInput{
		Center:       entity.GeoPoint{Lat: lat, Lng: lng},
		RadiusMeters: radius,
		Mode:         c.QueryParam("mode"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results)
}

// GetOffer handles GET /offers/:id
func (h *SearchHandler) GetOffer(c echo.Context) error {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid offer ID")
	}

	offer, err := h.offerUC.GetOffer(c.Request().Context(), offerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offer)
}
