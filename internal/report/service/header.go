package service

import "strings"

// DefaultHeaderKeywords — признаки настоящей строки-шапки. Над ней в файлах
// бывают строки-титулы, логотипы текстом и объединённые ячейки.
var DefaultHeaderKeywords = []string{"id", "статус", "площа", "ціна"}

// FindHeaderRow ищет строку-шапку сверху вниз: первая строка, в которой
// хоть одна нормализованная ячейка содержит любое из ключевых слов.
// Ничего не нашли — считаем шапкой первую строку.
func FindHeaderRow(grid [][]string, keywords []string) int {
	if len(keywords) == 0 {
		keywords = DefaultHeaderKeywords
	}
	for i, row := range grid {
		for _, c := range row {
			norm := Normalize(c)
			if norm == "" {
				continue
			}
			for _, kw := range keywords {
				if strings.Contains(norm, Normalize(kw)) {
					return i
				}
			}
		}
	}
	return 0
}
