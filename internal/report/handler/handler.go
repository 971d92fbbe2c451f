package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"apt-report/internal/config"
	"apt-report/internal/fileio"
	"apt-report/internal/middleware"
	recSvc "apt-report/internal/report/service"
)

// Summary возвращает http.HandlerFunc для роутера:
// r.Post("/summary", recHnd.Summary(cfg, rules, logger)).
// Принимает multipart: файл книги в поле "file", опционально TOML с
// правилами в поле "rules" (иначе берутся правила сервера).
func Summary(cfg config.Config, defaultRules config.Rules, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// привяжем req_id, если middleware его проставил
		log := logger
		if reqID := middleware.GetRequestID(r); reqID != "" {
			log = logger.With().Str("req_id", reqID).Logger()
		}

		defer r.Body.Close()
		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		rules := defaultRules
		if rf, _, err := r.FormFile("rules"); err == nil {
			defer rf.Close()
			b, err := io.ReadAll(rf)
			if err != nil {
				http.Error(w, "failed to read rules: "+err.Error(), http.StatusBadRequest)
				return
			}
			rules, err = config.ParseRules(b)
			if err != nil {
				http.Error(w, "bad rules: "+err.Error(), http.StatusBadRequest)
				return
			}
		}
		if err := rules.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		wb, err := fileio.OpenReader(file, header.Filename)
		if err != nil {
			http.Error(w, "failed to open workbook: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer wb.Close()

		res, err := recSvc.ProcessWorkbook(wb, rules, log)
		if err != nil {
			if errors.Is(err, recSvc.ErrNoRecords) || errors.Is(err, recSvc.ErrEmptySummary) {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			log.Error().Err(err).Msg("process workbook")
			http.Error(w, "processing failed: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			log.Error().Err(err).Msg("write json")
			return
		}

		log.Info().
			Str("file", header.Filename).
			Int("records", res.Total).
			Int("summary_rows", len(res.Summary)).
			Dur("elapsed", time.Since(start)).
			Msg("summary done")
	}
}
