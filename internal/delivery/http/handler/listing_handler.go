package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/domain"
	apperrors "github.com/jet-charter-service/internal/pkg/errors"
	"github.com/jet-charter-service/internal/pkg/utils"
	"github.com/jet-charter-service/internal/pkg/validator"
	"github.com/jet-charter-service/internal/usecase"
	"github.com/jet-charter-service/internal/usecase/dto"
)

// Выдача свежая час и ещё два часа может отдаваться из CDN устаревшей
const (
	listingsFresh = time.Hour
	listingsStale = 2 * time.Hour
)

// ListingHandler - выдача маршрутов и предложений
type ListingHandler struct {
	listingUC *usecase.ListingUseCase
	logger    *zap.Logger
}

// NewListingHandler - создание нового ListingHandler
func NewListingHandler(listingUC *usecase.ListingUseCase, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{
		listingUC: listingUC,
		logger:    logger,
	}
}

// TopRoutes godoc
// @Summary Top routes for the visitor's continent
// @Description Континент определяется по IP клиента; при сбое геолокации используется Europe
// @Tags Listings
// @Produce json
// @Success 200 {object} domain.TopRoutesResult
// @Router /api/top-routes [get]
func (h *ListingHandler) TopRoutes(c *fiber.Ctx) error {
	ip := utils.ClientIP(c)

	result := h.listingUC.GetTopRoutes(c.UserContext(), ip)

	h.logger.Debug("Top routes served",
		zap.String("ip", ip),
		zap.String("continent", string(result.Continent)),
		zap.Int("routes", len(result.Routes)),
	)

	utils.SetSharedCache(c, listingsFresh, listingsStale)
	return c.JSON(result)
}

// EmptyLegs godoc
// @Summary Empty leg offers
// @Tags Listings
// @Produce json
// @Param continent query string false "Continent name or slug"
// @Param count query int false "Number of offers (1-50)"
// @Param city query string false "Prioritize departures from this city"
// @Param sort query string false "default | discount"
// @Success 200 {object} dto.ListingsResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/empty-legs [get]
func (h *ListingHandler) EmptyLegs(c *fiber.Ctx) error {
	return h.listings(c, domain.RouteKindEmptyLeg)
}

// JetSharing godoc
// @Summary Jet sharing seats
// @Tags Listings
// @Produce json
// @Param continent query string false "Continent name or slug"
// @Param count query int false "Number of offers (1-50)"
// @Param city query string false "Prioritize departures from this city"
// @Param sort query string false "default | discount"
// @Success 200 {object} dto.ListingsResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/jet-sharing [get]
func (h *ListingHandler) JetSharing(c *fiber.Ctx) error {
	return h.listings(c, domain.RouteKindJetSharing)
}

func (h *ListingHandler) listings(c *fiber.Ctx, kind domain.RouteKind) error {
	var req dto.ListingsRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithDetails(validator.FieldErrors(err)))
	}

	resp, err := h.listingUC.GetListings(c.UserContext(), kind, req)
	if err != nil {
		h.logger.Error("Failed to build listings", zap.String("type", string(kind)), zap.Error(err))
		return utils.SendError(c, err)
	}

	utils.SetSharedCache(c, listingsFresh, listingsStale)
	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.Total, Continent: string(resp.Continent)})
}
