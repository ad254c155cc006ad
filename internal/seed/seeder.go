// Package seed загружает демо-каталог впечатлений и промокодов
package seed

import (
	"context"
	"fmt"
)

// Options параметры загрузки
type Options struct {
	// Reset удаляет существующие впечатления и промокоды перед загрузкой
	Reset bool
}

// Result итог загрузки
type Result struct {
	ExperiencesCreated int
	PromosUpserted     int
	Skipped            bool // Каталог не пуст и Reset не задан
}

// Seeder загружает демо-данные одной транзакцией
type Seeder struct {
	experienceRepo ExperienceRepository
	promoRepo      PromoRepository
	txManager      TransactionManager
	logger         Logger
}

// NewSeeder создает новый экземпляр Seeder
func NewSeeder(
	experienceRepo ExperienceRepository,
	promoRepo PromoRepository,
	txManager TransactionManager,
	logger Logger,
) *Seeder {
	return &Seeder{
		experienceRepo: experienceRepo,
		promoRepo:      promoRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Run загружает демо-каталог.
// Промокоды всегда upsert'ятся; впечатления создаются, только если каталог пуст или задан Reset.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Result, error) {
	experiences, err := DemoExperiences()
	if err != nil {
		return nil, err
	}
	promos := DemoPromos()

	for _, exp := range experiences {
		if err := exp.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
	}
	for _, p := range promos {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
	}

	result := &Result{}
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if opts.Reset {
			deletedExp, err := s.experienceRepo.DeleteAll(txCtx)
			if err != nil {
				return err
			}
			deletedPromos, err := s.promoRepo.DeleteAll(txCtx)
			if err != nil {
				return err
			}
			s.logger.Info("Seed: reset removed %d experiences and %d promos", deletedExp, deletedPromos)
		}

		for _, p := range promos {
			if _, err := s.promoRepo.Upsert(txCtx, p); err != nil {
				return err
			}
			result.PromosUpserted++
		}

		count, err := s.experienceRepo.Count(txCtx)
		if err != nil {
			return err
		}
		if count > 0 {
			s.logger.Warn("Seed: catalog already has %d experiences, use --reset to replace it", count)
			result.Skipped = true
			return nil
		}

		for _, exp := range experiences {
			if _, err := s.experienceRepo.Create(txCtx, exp); err != nil {
				return err
			}
			result.ExperiencesCreated++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeed, err)
	}

	s.logger.Info("Seed: created %d experiences, upserted %d promos", result.ExperiencesCreated, result.PromosUpserted)
	return result, nil
}
