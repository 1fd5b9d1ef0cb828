package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/pkg/utils"
	"github.com/jet-charter-service/internal/usecase"
)

// StatsHandler - статистика наполненности каталога
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Catalog statistics
// @Description Количество стран и городов (в т.ч. без фото), маршрутов и заявок; refresh=true пересчитывает в обход кеша
// @Tags Statistics
// @Produce json
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} domain.Statistics
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	var (
		stats *domain.Statistics
		err   error
	)
	if c.QueryBool("refresh") {
		stats, err = h.statsUC.RefreshStatistics(c.UserContext())
	} else {
		stats, err = h.statsUC.GetStatistics(c.UserContext())
	}
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}
