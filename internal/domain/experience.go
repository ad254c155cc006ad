package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Experience represents a bookable activity with its dated slots
type Experience struct {
	ID          string
	Title       string
	Description string
	Price       float64  // Цена за одного участника
	Images      []string // Первое изображение - превью
	Slots       []Slot   // В порядке создания
	CreatedAt   time.Time
}

// Slot represents a specific date/time offering with finite capacity
type Slot struct {
	Date     time.Time // Календарная дата (время суток не используется)
	Time     string    // Метка времени, например "10:00 AM"
	Capacity int
	Booked   int
}

// SlotGroup слоты одной даты в исходном порядке
type SlotGroup struct {
	Date  time.Time
	Slots []Slot
}

// Thumbnail returns the first image or an empty string
func (e *Experience) Thumbnail() string {
	if len(e.Images) == 0 {
		return ""
	}
	return e.Images[0]
}

// RemainingCapacity returns the sum of free places across all slots
func (e *Experience) RemainingCapacity() int {
	return lo.SumBy(e.Slots, func(s Slot) int {
		return s.Remaining()
	})
}

// FindSlot returns the slot whose date and time label match exactly.
// There is no fallback to a neighbouring slot.
func (e *Experience) FindSlot(date time.Time, timeLabel string) (*Slot, bool) {
	for i := range e.Slots {
		if e.Slots[i].Matches(date, timeLabel) {
			return &e.Slots[i], true
		}
	}
	return nil, false
}

// Validate проверяет данные впечатления перед созданием
func (e *Experience) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidExperience)
	}
	if e.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidExperience)
	}

	seen := make(map[string]struct{}, len(e.Slots))
	for _, s := range e.Slots {
		if s.Date.IsZero() || strings.TrimSpace(s.Time) == "" {
			return fmt.Errorf("%w: slot date and time are required", ErrInvalidExperience)
		}
		if s.Capacity < 0 || s.Booked < 0 || s.Booked > s.Capacity {
			return fmt.Errorf("%w: slot %s %s violates 0 <= booked <= capacity", ErrInvalidExperience, s.DateKey(), s.Time)
		}
		key := s.DateKey() + " " + s.Time
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: duplicate slot %s", ErrInvalidExperience, key)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// DateKey returns the slot date in YYYY-MM-DD form
func (s Slot) DateKey() string {
	return s.Date.Format(DateFormat)
}

// Remaining returns the number of free places in the slot
func (s Slot) Remaining() int {
	return s.Capacity - s.Booked
}

// CanAdmit reports whether quantity more places fit into the slot.
// Сравнение с остатком, а не booked+quantity: сумма может переполнить int.
func (s Slot) CanAdmit(quantity int) bool {
	return quantity >= 0 && quantity <= s.Remaining()
}

// Matches compares the calendar date and the time label by exact string equality
func (s Slot) Matches(date time.Time, timeLabel string) bool {
	return s.DateKey() == date.Format(DateFormat) && s.Time == timeLabel
}

// GroupSlotsByDate группирует слоты по дате.
// Даты идут в порядке первого появления, внутри группы сохраняется исходный порядок.
func GroupSlotsByDate(slots []Slot) []SlotGroup {
	groups := make([]SlotGroup, 0)
	index := make(map[string]int)

	for _, s := range slots {
		key := s.DateKey()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, SlotGroup{Date: s.Date})
		}
		groups[i].Slots = append(groups[i].Slots, s)
	}

	return groups
}

// ParseDate parses a YYYY-MM-DD calendar date in UTC
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateFormat, strings.TrimSpace(value))
}
