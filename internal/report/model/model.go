package model

// Columns — привязка смысловых полей листа к индексам колонок шапки.
// -1 означает "колонка не найдена": даунстрим обязан обращаться с этим
// как с нормальным значением (фильтры просто не пропустят строки).
type Columns struct {
	Status     int
	ID         int
	Complex    int
	Rooms      int
	Area       int
	PricePerM2 int
	TotalPrice int
}

// NoColumn — маркер отсутствующей колонки.
const NoColumn = -1

// Unresolved — все поля "не найдено"; стартовое значение для резолвера.
func Unresolved() Columns {
	return Columns{
		Status:     NoColumn,
		ID:         NoColumn,
		Complex:    NoColumn,
		Rooms:      NoColumn,
		Area:       NoColumn,
		PricePerM2: NoColumn,
		TotalPrice: NoColumn,
	}
}

// Record — одна принятая к учёту квартира. Создаётся экстрактором и дальше
// не меняется. Цены опциональны, но хотя бы одна всегда присутствует.
type Record struct {
	Group      string   `json:"group"`
	Rooms      int      `json:"rooms"`
	ID         string   `json:"id"`
	Area       float64  `json:"area"`
	PricePerM2 *float64 `json:"pricePerM2,omitempty"`
	TotalPrice *float64 `json:"totalPrice,omitempty"`
}

// SummaryRow — одна строка сводки по ключу (ЖК, комнатность).
// Значения уже отформатированы для вывода.
type SummaryRow struct {
	Group         string `json:"group"`
	Rooms         int    `json:"rooms"`
	MinArea       string `json:"minArea"`
	MaxArea       string `json:"maxArea"`
	MinPricePerM2 string `json:"minPricePerM2"`
	MaxPricePerM2 string `json:"maxPricePerM2"`
	MinTotalPrice string `json:"minTotalPrice"`
}

// SheetStats — диагностика обработки одного листа.
type SheetStats struct {
	Sheet   string `json:"sheet"`
	Rows    int    `json:"rows"`
	Records int    `json:"records"`
	Skipped bool   `json:"skipped,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Result — итог прогона: сводка плюс постатейная статистика по листам.
type Result struct {
	Summary []SummaryRow `json:"summary"`
	Sheets  []SheetStats `json:"sheets"`
	Total   int          `json:"total"`
}
