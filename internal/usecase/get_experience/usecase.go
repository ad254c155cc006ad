package get_experience

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/m04kA/experience-booking/internal/domain"
	experienceRepo "github.com/m04kA/experience-booking/internal/infra/storage/experience"
)

// UseCase use case для получения детальной информации о впечатлении
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

// Execute выполняет use case получения впечатления
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetExperience: id=%s", req.ExperienceID)

	var experience *domain.Experience
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		experience, err = uc.experienceRepo.GetByID(txCtx, req.ExperienceID)
		return err
	})
	if err != nil {
		if errors.Is(err, experienceRepo.ErrExperienceNotFound) {
			uc.logger.Warn("GetExperience: experience id=%s not found", req.ExperienceID)
			return nil, ErrNotFound
		}
		uc.logger.Error("GetExperience: failed to get experience id=%s: %v", req.ExperienceID, err)
		return nil, fmt.Errorf("%w: failed to get experience: %v", ErrInternal, err)
	}

	groups := domain.GroupSlotsByDate(experience.Slots)

	return &Response{
		ID:          experience.ID,
		Title:       experience.Title,
		Description: experience.Description,
		Images:      experience.Images,
		Price:       experience.Price,
		Dates: lo.Map(groups, func(g domain.SlotGroup, _ int) DateSlots {
			return DateSlots{
				Date: g.Date,
				Times: lo.Map(g.Slots, func(s domain.Slot, _ int) TimeSlot {
					return TimeSlot{Time: s.Time, Capacity: s.Capacity, Booked: s.Booked}
				}),
			}
		}),
	}, nil
}
