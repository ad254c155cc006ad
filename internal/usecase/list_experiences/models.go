package list_experiences

// Response список карточек каталога
type Response struct {
	Items []Item
}

// Item карточка впечатления в каталоге
type Item struct {
	ID        string
	Title     string
	PriceFrom float64
	Thumbnail string // Первое изображение или пустая строка
	Capacity  int    // Сумма свободных мест по всем слотам
}
