package utils

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jet-charter-service/internal/pkg/errors"
)

// SuccessResponse - конверт {data, meta} для JSON API
type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	Total     int    `json:"total"`
	Continent string `json:"continent,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendCreated - 201 с тем же конвертом
func SendCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(SuccessResponse{Data: data})
}

// SendError рендерит AppError; прочие ошибки скрываются за 500 INTERNAL_SERVER_ERROR
func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}

// SetSharedCache - Cache-Control для CDN: свежий ответ fresh, устаревший ещё stale
func SetSharedCache(c *fiber.Ctx, fresh, stale time.Duration) {
	c.Set(fiber.HeaderCacheControl, fmt.Sprintf(
		"public, s-maxage=%d, stale-while-revalidate=%d",
		int(fresh.Seconds()), int(stale.Seconds()),
	))
}
