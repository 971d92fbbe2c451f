package config

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"
)

// IDRule — правило "фрагмент ID → имя ЖК" (только для смешанных листов).
type IDRule struct {
	IDContains string `toml:"id_contains"`
	Complex    string `toml:"complex"`
}

// SheetRule — правило "фрагмент имени листа → имя ЖК" (применяется всегда).
type SheetRule struct {
	SheetContains string `toml:"sheet_contains"`
	Complex       string `toml:"complex"`
}

// Rules — бизнес-правила прогона. Загружаются один раз при старте и дальше
// не меняются: пайплайн получает их по значению.
type Rules struct {
	// Листы, которые обрабатываем, в этом порядке.
	Sheets []string `toml:"sheets"`
	// Если ID квартиры содержит маркер — строка выбрасывается.
	ExcludedIDMarkers []string `toml:"excluded_id_markers"`
	// Ключевые слова имени листа, означающие "смешанный" лист
	// (ЖК определяется по ID).
	MixedSheetKeywords []string `toml:"mixed_sheet_keywords"`
	IDToComplex        []IDRule `toml:"id_to_complex"`
	SheetToComplex     []SheetRule `toml:"sheet_to_complex"`
}

var ErrNoSheets = errors.New("rules: sheet list is empty")

// DefaultRules — встроенные значения по умолчанию. Бизнес-правила всегда
// зависят от конкретного файла продаж, поэтому по умолчанию все списки
// пустые (шаблон полей — rules.example.toml): Validate() на них вернёт
// ErrNoSheets, пока деплой не подставит свои значения.
func DefaultRules() Rules {
	return Rules{
		Sheets:             []string{},
		ExcludedIDMarkers:  []string{},
		MixedSheetKeywords: []string{},
		IDToComplex:        []IDRule{},
		SheetToComplex:     []SheetRule{},
	}
}

// Validate проверяет минимум, без которого прогон не имеет смысла.
func (r Rules) Validate() error {
	if len(r.Sheets) == 0 {
		return ErrNoSheets
	}
	return nil
}

// LoadRules читает TOML-файл правил. Отсутствующий файл — это ошибка
// конфигурации: без списка листов обрабатывать нечего.
func LoadRules(path string) (Rules, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, err
	}
	return ParseRules(b)
}

// ParseRules — разбор TOML из памяти (HTTP-режим принимает правила частью формы).
func ParseRules(b []byte) (Rules, error) {
	var r Rules
	if err := toml.Unmarshal(b, &r); err != nil {
		return Rules{}, err
	}
	return r, nil
}
