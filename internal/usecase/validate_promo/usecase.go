package validate_promo

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/experience-booking/internal/domain"
	promoRepo "github.com/m04kA/experience-booking/internal/infra/storage/promo"
)

// UseCase use case для предварительной проверки промокода.
// Ничего не резервирует и не изменяет.
type UseCase struct {
	promoRepo PromoRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(promoRepo PromoRepository, logger Logger) *UseCase {
	return &UseCase{
		promoRepo: promoRepo,
		logger:    logger,
	}
}

// Execute выполняет use case проверки промокода
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	code := domain.NormalizePromoCode(req.Code)
	if code == "" {
		uc.logger.Warn("ValidatePromo: empty code")
		return nil, ErrEmptyCode
	}

	promo, err := uc.promoRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, promoRepo.ErrPromoNotFound) {
			uc.logger.Info("ValidatePromo: code %q not found", code)
			return &Response{Valid: false, Message: MsgInvalidCode}, nil
		}
		uc.logger.Error("ValidatePromo: failed to get promo %q: %v", code, err)
		return nil, fmt.Errorf("%w: failed to get promo: %v", ErrInternal, err)
	}

	uc.logger.Info("ValidatePromo: code %q valid, type=%s, amount=%v", code, promo.Type, promo.Amount)

	promoType := promo.Type
	amount := promo.Amount
	return &Response{
		Valid:   true,
		Type:    &promoType,
		Amount:  &amount,
		Message: promo.Message(),
	}, nil
}
