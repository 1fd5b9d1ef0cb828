package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/jet-charter-service/internal/pkg/errors"
	"github.com/jet-charter-service/internal/pkg/utils"
	"github.com/jet-charter-service/internal/usecase"
)

// GeolocationHandler - определение местоположения клиента
type GeolocationHandler struct {
	geoUC  *usecase.GeolocationUseCase
	logger *zap.Logger
}

// NewGeolocationHandler - создание нового GeolocationHandler
func NewGeolocationHandler(geoUC *usecase.GeolocationUseCase, logger *zap.Logger) *GeolocationHandler {
	return &GeolocationHandler{
		geoUC:  geoUC,
		logger: logger,
	}
}

// Geolocation godoc
// @Summary Resolve the caller's location
// @Tags Geolocation
// @Produce json
// @Success 200 {object} domain.Geolocation
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/geolocation [get]
func (h *GeolocationHandler) Geolocation(c *fiber.Ctx) error {
	ip := utils.ClientIP(c)

	geo := h.geoUC.Resolve(c.UserContext(), ip)
	if geo == nil {
		return utils.SendError(c, apperrors.ErrGeolocationUnavailable)
	}

	c.Set(fiber.HeaderCacheControl, "private, max-age=3600")
	return c.JSON(geo)
}
