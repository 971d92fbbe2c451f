package service

import "strings"

// Normalize приводит текст шапки/ячейки к виду для сравнения: нижний
// регистр, обрезка краёв, схлопывание любых пробельных прогонов (включая
// NBSP/NNBSP — strings.Fields режет по unicode.IsSpace) в один пробел.
// Тотальная функция: на любом входе возвращает строку, пустой вход — "".
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// containsAny — есть ли хоть одно из слов в строке.
func containsAny(s string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// containsAnyFold — то же, но без учёта регистра (для имён листов и ID).
func containsAnyFold(s string, words []string) bool {
	low := strings.ToLower(s)
	for _, w := range words {
		if w != "" && strings.Contains(low, strings.ToLower(w)) {
			return true
		}
	}
	return false
}
