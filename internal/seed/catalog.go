package seed

import (
	"fmt"

	"github.com/m04kA/experience-booking/internal/domain"
)

type slotData struct {
	date     string
	time     string
	capacity int
}

type experienceData struct {
	title       string
	description string
	price       float64
	images      []string
	slots       []slotData
}

var demoExperiences = []experienceData{
	{
		title:       "Highway Delite",
		description: "Roadside food and rest experience for travelers across India’s highways.",
		price:       1200,
		images: []string{
			"https://images.unsplash.com/photo-1563242152-568e5de6f2b8?auto=format&fit=crop&w=800&q=80",
			"https://images.unsplash.com/photo-1519125323398-675f0ddb6308?auto=format&fit=crop&w=800&q=80",
		},
		slots: []slotData{
			{"2025-10-29", "10:00 AM", 10},
			{"2025-10-29", "11:00 AM", 10},
			{"2025-10-30", "02:00 PM", 8},
			{"2025-10-31", "02:00 PM", 5},
		},
	},
	{
		title:       "LPU Journey",
		description: "Campus life exploration at Lovely Professional University with local food court experiences.",
		price:       1500,
		images: []string{
			"https://images.unsplash.com/photo-1506744038136-46273834b3fb?auto=format&fit=crop&w=800&q=80",
			"https://images.unsplash.com/photo-1465101162946-4377e57745c3?auto=format&fit=crop&w=800&q=80",
		},
		slots: []slotData{
			{"2025-10-28", "03:00 PM", 10},
			{"2025-10-31", "11:00 AM", 12},
			{"2025-10-31", "03:00 PM", 10},
			{"2025-10-31", "05:00 PM", 10},
			{"2025-10-31", "06:00 PM", 10},
		},
	},
	{
		title:       "Mountain Trekking",
		description: "A scenic trek through the lower Himalayas with a guide and local snacks.",
		price:       2500,
		images: []string{
			"https://images.unsplash.com/photo-1506744038136-46273834b3fb?auto=format&fit=crop&w=800&q=80",
			"https://images.unsplash.com/photo-1465101162946-4377e57745c3?auto=format&fit=crop&w=800&q=80",
		},
		slots: []slotData{
			{"2025-11-02", "07:00 AM", 15},
			{"2025-11-03", "08:00 AM", 15},
			{"2025-11-03", "09:00 AM", 15},
			{"2025-11-03", "10:00 AM", 15},
		},
	},
	{
		title:       "Backyard BBQ Night",
		description: "A cozy barbecue evening with live music and grilled delights under the stars.",
		price:       1800,
		images: []string{
			"https://images.unsplash.com/photo-1529626455594-4ff0802cfb7e?auto=format&fit=crop&w=800&q=80",
			"https://images.unsplash.com/photo-1465101046530-73398c7f28ca?auto=format&fit=crop&w=800&q=80",
		},
		slots: []slotData{
			{"2025-11-05", "06:00 PM", 20},
			{"2025-11-06", "06:00 PM", 20},
			{"2025-11-06", "7:00 PM", 20},
			{"2025-11-06", "8:00 PM", 20},
		},
	},
	{
		title:       "Art & Coffee Workshop",
		description: "A creative evening learning painting while enjoying freshly brewed coffee.",
		price:       1000,
		images: []string{
			"https://images.unsplash.com/photo-1515378791036-0648a3ef77b2?auto=format&fit=crop&w=800&q=80",
			"https://images.unsplash.com/photo-1513530171079-3c0b6ae2fb5e?auto=format&fit=crop&w=800&q=80",
		},
		slots: []slotData{
			{"2025-11-07", "04:00 PM", 10},
			{"2025-11-08", "04:00 PM", 10},
			{"2025-11-08", "05:00 PM", 10},
			{"2025-11-08", "06:00 PM", 10},
		},
	},
	{
		title:       "Sunset Boat Ride",
		description: "Relaxing sunset cruise with scenic views and light refreshments.",
		price:       2200,
		images: []string{
			"https://images.unsplash.com/photo-1519985176271-adb1088fa94c?auto=format&fit=crop&w=800&q=80",
			"https://images.unsplash.com/photo-1507525428034-b723cf961d3e?auto=format&fit=crop&w=800&q=80",
		},
		slots: []slotData{
			{"2025-11-09", "05:30 PM", 12},
			{"2025-11-10", "05:30 PM", 12},
			{"2025-11-10", "06:30 PM", 12},
			{"2025-11-10", "08:30 PM", 12},
		},
	},
}

// DemoPromos промокоды демо-каталога
func DemoPromos() []*domain.Promo {
	return []*domain.Promo{
		{Code: "ADNAN10", Type: domain.PromoTypePercent, Amount: 10},
		{Code: "ADNAN100", Type: domain.PromoTypeFlat, Amount: 100},
	}
}

// DemoExperiences возвращает демо-каталог из шести впечатлений
func DemoExperiences() ([]*domain.Experience, error) {
	result := make([]*domain.Experience, 0, len(demoExperiences))

	for _, data := range demoExperiences {
		exp := &domain.Experience{
			Title:       data.title,
			Description: data.description,
			Price:       data.price,
			Images:      append([]string(nil), data.images...),
			Slots:       make([]domain.Slot, 0, len(data.slots)),
		}

		for _, s := range data.slots {
			date, err := domain.ParseDate(s.date)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidCatalog, data.title, err)
			}
			exp.Slots = append(exp.Slots, domain.Slot{Date: date, Time: s.time, Capacity: s.capacity})
		}

		result = append(result, exp)
	}

	return result, nil
}
