package promos

import (
	"context"
	"fmt"

	"github.com/m04kA/experience-booking/internal/domain"
	"github.com/m04kA/experience-booking/internal/service/promos/models"
)

// Service сервис администрирования промокодов
type Service struct {
	promoRepo PromoRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса промокодов
func NewService(promoRepo PromoRepository, logger Logger) *Service {
	return &Service{
		promoRepo: promoRepo,
		logger:    logger,
	}
}

// Create создает промокод или обновляет существующий с тем же кодом.
// Код нормализуется к верхнему регистру, размер скидки проверяется:
// percent в (0, 100], flat > 0.
func (s *Service) Create(ctx context.Context, req *models.CreatePromoRequest) (*models.PromoResponse, error) {
	s.logger.Info("Create: promo code=%q, type=%s, amount=%v", req.Code, req.Type, req.Amount)

	promoType, err := domain.ParsePromoType(req.Type)
	if err != nil {
		s.logger.Warn("Create: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	promo := &domain.Promo{
		Code:   domain.NormalizePromoCode(req.Code),
		Type:   promoType,
		Amount: req.Amount,
	}
	if err := promo.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.promoRepo.Upsert(ctx, promo)
	if err != nil {
		s.logger.Error("Create: failed to save promo %s: %v", promo.Code, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: promo %s saved", saved.Code)
	return models.FromDomainPromo(saved), nil
}
