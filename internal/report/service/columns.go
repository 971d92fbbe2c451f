package service

import (
	"strings"

	"apt-report/internal/report/model"
)

// Правила сопоставления колонок. Для каждого смыслового поля — упорядоченный
// список предикатов, первый сработавший выигрывает; поля разрешаются
// независимо друг от друга. Предикат видит сырое (обрезанное) и
// нормализованное имя колонки.
type headerRule func(raw, norm string) bool

// Цена за метр: нужна штатная цена продажи, а не скидочная/базовая.
var pricePerM2Rules = []headerRule{
	// точное "ціна за метр" (хвостовые пробелы съедает нормализация)
	func(_, norm string) bool { return norm == "ціна за метр" },
	// вариант с пометкой "не видаляти" в тексте шапки
	func(_, norm string) bool {
		return strings.Contains(norm, "ціна за 1 м") && strings.Contains(norm, "видаляти")
	},
	// общий запасной: цена+м+продаж, но не базовая и не стартовая
	func(_, norm string) bool {
		return strings.Contains(norm, "ціна") &&
			strings.Contains(norm, "м") &&
			strings.Contains(norm, "продаж") &&
			!strings.Contains(norm, "базов") &&
			!strings.Contains(norm, "старт")
	},
}

// Полная стоимость. У запасных правил нет исключений "базов"/"старт",
// в отличие от цены за метр — поведение исходных правил сохранено,
// расхождение видно в debug-диагностике по номеру сработавшего правила.
var totalPriceRules = []headerRule{
	func(_, norm string) bool { return strings.Contains(norm, "вартість для продажу") },
	func(_, norm string) bool {
		return strings.Contains(norm, "вартість") && strings.Contains(norm, "видаляти")
	},
	func(_, norm string) bool { return strings.Contains(norm, "вартість продажу") },
}

// Комнатность: только точные имена, чтобы не зацепить "Націнка за розмір".
var roomsExact = map[string]bool{
	"Розмір":       true,
	"Rooms":        true,
	"К-сть кімнат": true,
	"Кімнат":       true,
}

var roomsRules = []headerRule{
	func(raw, _ string) bool { return roomsExact[raw] },
	func(_, norm string) bool { return norm == "розмір" },
}

// Площадь: только точное "площа" — "площа оновлена" и прочие украшенные
// варианты не подходят.
var areaRules = []headerRule{
	func(_, norm string) bool { return norm == "площа" },
}

// Группы ключевых слов для общего матчера, по убыванию приоритета.
var (
	statusGroups  = [][]string{{"статус"}, {"стан", "state"}}
	idGroups      = [][]string{{"id", "номер"}}
	complexGroups = [][]string{{"жк", "complex", "building"}}
)

// Resolution — номера сработавших правил по полям (0-based; -1 — поле не
// найдено). Идёт в debug-лог листа: по номеру видно, точным или запасным
// правилом взята колонка.
type Resolution struct {
	PricePerM2Rule int
	TotalPriceRule int
	RoomsRule      int
	AreaRule       int
}

// ResolveColumns строит привязку смысловых полей к колонкам строки-шапки.
// Отсутствие колонки — не ошибка: поле остаётся model.NoColumn, а фильтры
// экстрактора разбираются с этим сами.
func ResolveColumns(headers []string) (model.Columns, Resolution) {
	c := model.Unresolved()
	var d Resolution
	c.PricePerM2, d.PricePerM2Rule = matchFirst(headers, pricePerM2Rules)
	c.TotalPrice, d.TotalPriceRule = matchFirst(headers, totalPriceRules)
	c.Rooms, d.RoomsRule = matchFirst(headers, roomsRules)
	c.Area, d.AreaRule = matchFirst(headers, areaRules)
	c.Status = matchKeywords(headers, statusGroups, nil)
	c.ID = matchKeywords(headers, idGroups, nil)
	c.Complex = matchKeywords(headers, complexGroups, nil)
	return c, d
}

// matchFirst перебирает правила по приоритету, внутри правила — колонки
// слева направо. Возвращает индекс колонки и номер сработавшего правила
// (для диагностики), либо NoColumn.
func matchFirst(headers []string, rules []headerRule) (col, rule int) {
	for ri, r := range rules {
		for ci, h := range headers {
			if r(strings.TrimSpace(h), Normalize(h)) {
				return ci, ri
			}
		}
	}
	return model.NoColumn, -1
}

// matchKeywords — общий матчер для status/id/complex: первая колонка, чьё
// нормализованное имя содержит любое слово текущей группы и ни одного
// слова-исключения.
func matchKeywords(headers []string, groups [][]string, exclude []string) int {
	norm := make([]string, len(headers))
	for i, h := range headers {
		norm[i] = Normalize(h)
	}
	for _, group := range groups {
		for i, h := range norm {
			if h == "" || !containsAny(h, group) {
				continue
			}
			if len(exclude) > 0 && containsAny(h, exclude) {
				continue
			}
			return i
		}
	}
	return model.NoColumn
}

// headerName — имя колонки для логов; для ненайденной — "-".
func headerName(headers []string, idx int) string {
	if idx == model.NoColumn || idx >= len(headers) {
		return "-"
	}
	return strings.TrimSpace(headers[idx])
}
