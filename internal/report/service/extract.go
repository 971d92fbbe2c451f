package service

import (
	"strings"

	"github.com/rs/zerolog"

	"apt-report/internal/config"
	"apt-report/internal/report/model"
)

// токен доступности в колонке статуса; всё прочее (продано, резерв,
// пусто) отсекается
const availableToken = "вільно"

// ExtractSheet находит шапку листа, привязывает колонки и прогоняет строки
// данных через конвейер фильтров. Чистая функция от сетки и правил:
// повторный прогон даёт побайтово тот же результат.
func ExtractSheet(grid [][]string, sheetName string, rules config.Rules, log zerolog.Logger) []model.Record {
	if len(grid) == 0 {
		return nil
	}

	headerIdx := FindHeaderRow(grid, nil)
	headers := grid[headerIdx]
	cols, diag := ResolveColumns(headers)

	log.Debug().
		Str("sheet", sheetName).
		Int("header_row", headerIdx).
		Str("price_per_m2", headerName(headers, cols.PricePerM2)).
		Int("price_per_m2_rule", diag.PricePerM2Rule).
		Str("total_price", headerName(headers, cols.TotalPrice)).
		Int("total_price_rule", diag.TotalPriceRule).
		Str("rooms", headerName(headers, cols.Rooms)).
		Int("rooms_rule", diag.RoomsRule).
		Str("area", headerName(headers, cols.Area)).
		Int("area_rule", diag.AreaRule).
		Str("status", headerName(headers, cols.Status)).
		Str("id", headerName(headers, cols.ID)).
		Str("complex", headerName(headers, cols.Complex)).
		Msg("columns resolved")

	if cols.Status == model.NoColumn {
		// фильтр статуса никогда не пройдёт — лист даст ноль строк
		log.Warn().Str("sheet", sheetName).Msg("status column not found, sheet yields no records")
	}

	mixed := containsAnyFold(sheetName, rules.MixedSheetKeywords)

	var out []model.Record
	for _, row := range grid[headerIdx+1:] {
		if rec, ok := extractRow(row, sheetName, cols, rules, mixed); ok {
			out = append(out, rec)
		}
	}
	return out
}

// cell — безопасное чтение ячейки: вне диапазона или без колонки — "".
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// extractRow — конвейер фильтров одной строки; строка проходит дальше
// только если прошла каждый шаг.
func extractRow(row []string, sheetName string, cols model.Columns, rules config.Rules, mixed bool) (model.Record, bool) {
	// 1. статус: только доступные к продаже
	if !strings.Contains(Normalize(cell(row, cols.Status)), availableToken) {
		return model.Record{}, false
	}

	// 2. комнатность 1–3
	rooms, ok := ExtractRooms(cell(row, cols.Rooms))
	if !ok {
		return model.Record{}, false
	}

	// 3. площадь: число строго больше нуля
	area, ok := parseArea(cell(row, cols.Area))
	if !ok || area <= 0 {
		return model.Record{}, false
	}

	// 4. хотя бы одна из цен обязана распарситься
	var pricePerM2, totalPrice *float64
	if v, ok := CleanCurrency(cell(row, cols.PricePerM2)); ok {
		pricePerM2 = &v
	}
	if v, ok := CleanCurrency(cell(row, cols.TotalPrice)); ok {
		totalPrice = &v
	}
	if pricePerM2 == nil && totalPrice == nil {
		return model.Record{}, false
	}

	// 5. имя ЖК: колонка, иначе имя листа
	group := strings.TrimSpace(cell(row, cols.Complex))
	if group == "" {
		group = sheetName
	}

	id := strings.TrimSpace(cell(row, cols.ID))

	// 6. маркеры-исключения по ID
	idUpper := strings.ToUpper(id)
	for _, m := range rules.ExcludedIDMarkers {
		if m != "" && strings.Contains(idUpper, strings.ToUpper(m)) {
			return model.Record{}, false
		}
	}

	// 7. смешанный лист: ЖК определяется по фрагменту ID
	if mixed {
		for _, r := range rules.IDToComplex {
			if r.IDContains != "" && strings.Contains(idUpper, strings.ToUpper(r.IDContains)) {
				group = r.Complex
				break
			}
		}
	}

	// 8. правила по имени листа применяются всегда и перекрывают шаги 5 и 7
	sheetLower := strings.ToLower(sheetName)
	for _, r := range rules.SheetToComplex {
		if r.SheetContains != "" && strings.Contains(sheetLower, strings.ToLower(r.SheetContains)) {
			group = r.Complex
			break
		}
	}

	return model.Record{
		Group:      group,
		Rooms:      rooms,
		ID:         id,
		Area:       area,
		PricePerM2: pricePerM2,
		TotalPrice: totalPrice,
	}, true
}
