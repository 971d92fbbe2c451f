package service

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"apt-report/internal/report/model"
)

type groupKey struct {
	group string
	rooms int
}

// Summarize строит сводку по ключу (ЖК, комнатность). В сводку идут только
// записи с обеими ценами. При равенстве экстремумов побеждает первая
// запись в порядке входа: сравнения строгие, порядок склейки листов
// детерминирован, поэтому и сводка детерминирована.
func Summarize(records []model.Record) []model.SummaryRow {
	type bucket struct {
		minArea, maxArea model.Record
		minPPM, maxPPM   model.Record
		minTotal         model.Record
	}

	buckets := map[groupKey]*bucket{}
	for _, r := range records {
		if r.PricePerM2 == nil || r.TotalPrice == nil {
			continue
		}
		k := groupKey{r.Group, r.Rooms}
		b, ok := buckets[k]
		if !ok {
			buckets[k] = &bucket{minArea: r, maxArea: r, minPPM: r, maxPPM: r, minTotal: r}
			continue
		}
		if r.Area < b.minArea.Area {
			b.minArea = r
		}
		if r.Area > b.maxArea.Area {
			b.maxArea = r
		}
		if *r.PricePerM2 < *b.minPPM.PricePerM2 {
			b.minPPM = r
		}
		if *r.PricePerM2 > *b.maxPPM.PricePerM2 {
			b.maxPPM = r
		}
		if *r.TotalPrice < *b.minTotal.TotalPrice {
			b.minTotal = r
		}
	}

	keys := make([]groupKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	// ЖК лексикографически, комнатность — числом
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].group != keys[j].group {
			return keys[i].group < keys[j].group
		}
		return keys[i].rooms < keys[j].rooms
	})

	out := make([]model.SummaryRow, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		out = append(out, model.SummaryRow{
			Group:         k.group,
			Rooms:         k.rooms,
			MinArea:       fmt.Sprintf("%.1f", b.minArea.Area),
			MaxArea:       fmt.Sprintf("%.1f", b.maxArea.Area),
			MinPricePerM2: moneyWithID(*b.minPPM.PricePerM2, b.minPPM.ID),
			MaxPricePerM2: moneyWithID(*b.maxPPM.PricePerM2, b.maxPPM.ID),
			MinTotalPrice: moneyWithID(*b.minTotal.TotalPrice, b.minTotal.ID),
		})
	}
	return out
}

var moneyPrinter = message.NewPrinter(language.English)

// moneyWithID: "18,000 (X2)" — целое с разделителями тысяч плюс ID
// источника. Половинки округляются от нуля: 20000.5 → 20,001.
func moneyWithID(v float64, id string) string {
	return moneyPrinter.Sprintf("%d (%s)", int64(math.Round(v)), id)
}
