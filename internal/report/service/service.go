package service

import (
	"errors"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"apt-report/internal/config"
	"apt-report/internal/fileio"
	"apt-report/internal/report/model"
)

// SummaryHeaders — колонки сводной таблицы в порядке вывода.
var SummaryHeaders = []string{
	"GROUP", "ROOMS", "MIN_AREA", "MAX_AREA",
	"MIN_PRICE_PER_M2", "MAX_PRICE_PER_M2", "MIN_TOTAL_PRICE",
}

var (
	ErrNoRecords    = errors.New("no records extracted from any sheet")
	ErrEmptySummary = errors.New("summary is empty")
)

// ProcessWorkbook — основной конвейер: настроенные листы → записи → сводка.
// Сетки читаются последовательно, извлечение идёт параллельно, но записи
// склеиваются строго в порядке списка листов (внутри листа — в порядке
// строк), поэтому результат не зависит от планировщика.
func ProcessWorkbook(wb fileio.Workbook, rules config.Rules, log zerolog.Logger) (model.Result, error) {
	if err := rules.Validate(); err != nil {
		return model.Result{}, err
	}

	available := map[string]bool{}
	for _, name := range wb.SheetNames() {
		available[name] = true
	}

	perSheet := make([][]model.Record, len(rules.Sheets))
	stats := make([]model.SheetStats, len(rules.Sheets))

	var g errgroup.Group
	for i, name := range rules.Sheets {
		stats[i].Sheet = name

		if !available[name] {
			stats[i].Skipped = true
			log.Warn().Str("sheet", name).Msg("sheet not found, skipping")
			continue
		}

		grid, err := wb.Grid(name)
		if err != nil {
			// ошибка одного листа не валит прогон
			stats[i].Skipped = true
			stats[i].Error = err.Error()
			log.Warn().Err(err).Str("sheet", name).Msg("sheet read failed, skipping")
			continue
		}

		stats[i].Rows = len(grid)
		g.Go(func() error {
			recs := ExtractSheet(grid, name, rules, log)
			perSheet[i] = recs
			stats[i].Records = len(recs)
			log.Info().Str("sheet", name).Int("records", len(recs)).Msg("sheet processed")
			return nil
		})
	}
	_ = g.Wait()

	var all []model.Record
	for _, recs := range perSheet {
		all = append(all, recs...)
	}
	if len(all) == 0 {
		return model.Result{Sheets: stats}, ErrNoRecords
	}

	summary := Summarize(all)
	if len(summary) == 0 {
		return model.Result{Sheets: stats, Total: len(all)}, ErrEmptySummary
	}

	return model.Result{Summary: summary, Sheets: stats, Total: len(all)}, nil
}

// SummaryTable — строки сводки как текстовая таблица под SummaryHeaders
// (для записи в файл и консольного предпросмотра).
func SummaryTable(rows []model.SummaryRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Group, strconv.Itoa(r.Rooms), r.MinArea, r.MaxArea,
			r.MinPricePerM2, r.MaxPricePerM2, r.MinTotalPrice,
		})
	}
	return out
}
