package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/pkg/utils"
	"github.com/jet-charter-service/internal/usecase"
)

// CatalogHandler - справочники самолётов и направлений
type CatalogHandler struct {
	catalogUC *usecase.CatalogUseCase
	logger    *zap.Logger
}

// NewCatalogHandler - создание нового CatalogHandler
func NewCatalogHandler(catalogUC *usecase.CatalogUseCase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// Aircraft godoc
// @Summary Aircraft categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/aircraft [get]
func (h *CatalogHandler) Aircraft(c *fiber.Ctx) error {
	aircraft := h.catalogUC.Aircraft()

	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return utils.SendSuccess(c, aircraft, &utils.Meta{Total: len(aircraft)})
}

// Destinations godoc
// @Summary Countries and cities of a continent
// @Tags Catalog
// @Produce json
// @Param continent query string false "Continent name or slug"
// @Success 200 {object} dto.DestinationsResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/destinations [get]
func (h *CatalogHandler) Destinations(c *fiber.Ctx) error {
	resp, err := h.catalogUC.Destinations(c.UserContext(), c.Query("continent"))
	if err != nil {
		h.logger.Error("Failed to list destinations", zap.Error(err))
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderCacheControl, "public, s-maxage=3600")
	return utils.SendSuccess(c, resp, &utils.Meta{Total: len(resp.Destinations)})
}
