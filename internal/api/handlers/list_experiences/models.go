package list_experiences

import (
	"github.com/samber/lo"

	listExperiences "github.com/m04kA/experience-booking/internal/usecase/list_experiences"
)

// ExperienceCard HTTP response model элемента каталога
type ExperienceCard struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	PriceFrom float64 `json:"priceFrom"`
	Thumbnail string  `json:"thumbnail"`
	Capacity  int     `json:"capacity"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *listExperiences.Response) []ExperienceCard {
	return lo.Map(resp.Items, func(item listExperiences.Item, _ int) ExperienceCard {
		return ExperienceCard{
			ID:        item.ID,
			Title:     item.Title,
			PriceFrom: item.PriceFrom,
			Thumbnail: item.Thumbnail,
			Capacity:  item.Capacity,
		}
	})
}
