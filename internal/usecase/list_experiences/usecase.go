package list_experiences

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/m04kA/experience-booking/internal/domain"
)

// UseCase use case для получения каталога впечатлений
type UseCase struct {
	experienceRepo ExperienceRepository
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(experienceRepo ExperienceRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		experienceRepo: experienceRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case получения каталога
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	var experiences []*domain.Experience
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		experiences, err = uc.experienceRepo.List(txCtx)
		return err
	})
	if err != nil {
		uc.logger.Error("ListExperiences: failed to list experiences: %v", err)
		return nil, fmt.Errorf("%w: failed to list experiences: %v", ErrInternal, err)
	}

	uc.logger.Info("ListExperiences: found %d experiences", len(experiences))

	return &Response{
		Items: lo.Map(experiences, func(e *domain.Experience, _ int) Item {
			return Item{
				ID:        e.ID,
				Title:     e.Title,
				PriceFrom: e.Price,
				Thumbnail: e.Thumbnail(),
				Capacity:  e.RemainingCapacity(),
			}
		}),
	}, nil
}
