package get_experience

import "time"

// Request модель запроса на получение впечатления
type Request struct {
	ExperienceID string
}

// Response детальная информация о впечатлении со слотами, сгруппированными по дате
type Response struct {
	ID          string
	Title       string
	Description string
	Images      []string
	Price       float64
	Dates       []DateSlots // Даты в порядке первого появления
}

// DateSlots слоты одной даты
type DateSlots struct {
	Date  time.Time
	Times []TimeSlot // В исходном порядке
}

// TimeSlot модель временного слота
type TimeSlot struct {
	Time     string
	Capacity int
	Booked   int
}
