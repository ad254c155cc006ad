package get_experience

import (
	"github.com/samber/lo"

	"github.com/m04kA/experience-booking/internal/domain"
	getExperience "github.com/m04kA/experience-booking/internal/usecase/get_experience"
)

// ExperienceResponse HTTP response model
type ExperienceResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Images      []string        `json:"images"`
	Price       float64         `json:"price"`
	Slots       []DateSlotsJSON `json:"slots"`
}

// DateSlotsJSON слоты одной даты
type DateSlotsJSON struct {
	Date  string         `json:"date"` // "2025-10-29"
	Times []TimeSlotJSON `json:"times"`
}

// TimeSlotJSON временной слот
type TimeSlotJSON struct {
	Time     string `json:"time"`
	Capacity int    `json:"capacity"`
	Booked   int    `json:"booked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getExperience.Response) *ExperienceResponse {
	images := resp.Images
	if images == nil {
		images = []string{}
	}

	return &ExperienceResponse{
		ID:          resp.ID,
		Title:       resp.Title,
		Description: resp.Description,
		Images:      images,
		Price:       resp.Price,
		Slots: lo.Map(resp.Dates, func(d getExperience.DateSlots, _ int) DateSlotsJSON {
			return DateSlotsJSON{
				Date: d.Date.Format(domain.DateFormat),
				Times: lo.Map(d.Times, func(t getExperience.TimeSlot, _ int) TimeSlotJSON {
					return TimeSlotJSON{Time: t.Time, Capacity: t.Capacity, Booked: t.Booked}
				}),
			}
		}),
	}
}
