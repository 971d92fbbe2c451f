package service

import (
	"regexp"
	"strconv"
	"strings"
)

// вычищаем пробелы (включая NBSP/NNBSP), знак доллара и "грн"
var currencyStrip = strings.NewReplacer(
	" ", "", " ", "", " ", "", "\t", "",
	"$", "", "грн", "",
)

// CleanCurrency парсит денежную строку вида "1 234,56 грн" или "$25000".
// Любой мусор, который после чистки не является числом, даёт absent —
// наверх ошибка не поднимается никогда.
func CleanCurrency(v string) (float64, bool) {
	s := currencyStrip.Replace(strings.TrimSpace(v))
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseArea — строгое число для площади: допускаем десятичную кому, но не
// валютные пометки — "45 грн" площадью не является.
func parseArea(v string) (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

var rxDigits = regexp.MustCompile(`\d+`)

// ExtractRooms достаёт комнатность из свободного текста ("2к", "1М").
// В учёте только 1–3-комнатные квартиры: всё остальное (0, 4+, коды
// многоуровневых юнитов) — absent.
func ExtractRooms(v string) (int, bool) {
	m := rxDigits.FindString(v)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil || n < 1 || n > 3 {
		return 0, false
	}
	return n, true
}
