package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/domain/repository"
	"github.com/jet-charter-service/internal/pkg/utils"
)

// GeolocationUseCase определяет местоположение клиента по IP
type GeolocationUseCase struct {
	provider  repository.GeolocationProvider
	cacheRepo repository.CacheRepository
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewGeolocationUseCase - создание use case геолокации
func NewGeolocationUseCase(
	provider repository.GeolocationProvider,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *GeolocationUseCase {
	return &GeolocationUseCase{
		provider:  provider,
		cacheRepo: cacheRepo,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Resolve возвращает геолокацию или nil, если провайдер недоступен
// или адрес клиента не указан (0.0.0.0, ::).
// Ошибки наружу не выходят: вызывающий подставляет континент по умолчанию.
func (uc *GeolocationUseCase) Resolve(ctx context.Context, ip string) *domain.Geolocation {
	if utils.IsUnspecifiedIP(ip) {
		return nil
	}

	cacheable := uc.cacheRepo != nil && utils.IsPublicIP(ip)

	// 1. Кеш
	if cacheable {
		cached, err := uc.cacheRepo.GetGeolocation(ctx, ip)
		if err != nil {
			uc.logger.Warn("Failed to read geolocation from cache", zap.String("ip", ip), zap.Error(err))
		} else if cached != nil {
			return cached
		}
	}

	// 2. Провайдер; приватные адреса он определяет сам по адресу вызывающего
	lookupIP := ip
	if !utils.IsPublicIP(ip) {
		lookupIP = ""
	}

	geo, err := uc.provider.Lookup(ctx, lookupIP)
	if err != nil {
		uc.logger.Warn("Geolocation lookup failed", zap.String("ip", ip), zap.Error(err))
		return nil
	}

	// 3. Кешируем только публичные адреса
	if cacheable {
		if err := uc.cacheRepo.SetGeolocation(ctx, ip, geo, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache geolocation", zap.String("ip", ip), zap.Error(err))
		}
	}

	return geo
}
