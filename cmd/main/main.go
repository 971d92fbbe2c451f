package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"

	"apt-report/internal/config"
	"apt-report/internal/fileio"
	"apt-report/internal/report/model"
	"apt-report/internal/report/service"
	serverhttp "apt-report/server/http"
)

func main() {
	if runtime.GOMAXPROCS(0) < runtime.NumCPU() {
		runtime.GOMAXPROCS(runtime.NumCPU())
	}

	var (
		output  string
		verbose bool
		preview bool
		rules   string
		serve   bool
	)
	flag.StringVar(&output, "o", "Summary_Report.xlsx", "path to the output report")
	flag.StringVar(&output, "output", "Summary_Report.xlsx", "path to the output report")
	flag.BoolVar(&verbose, "v", false, "print per-sheet column resolution diagnostics")
	flag.BoolVar(&verbose, "verbose", false, "print per-sheet column resolution diagnostics")
	flag.BoolVar(&preview, "preview", false, "print the summary table to the console before saving")
	flag.StringVar(&rules, "rules", "", "path to the TOML rules file (default $RULES_FILE or rules.toml)")
	flag.BoolVar(&serve, "serve", false, "run the HTTP service instead of a batch run")
	flag.Usage = usage
	flag.Parse()

	cfg := config.Load()
	if rules != "" {
		cfg.RulesFile = rules
	}
	logger := config.SetupLogger(cfg, verbose)

	if serve {
		runServer(cfg, logger)
		return
	}

	input := flag.Arg(0)
	if input == "" {
		usage()
		os.Exit(2)
	}

	if err := run(input, output, cfg, logger, preview); err != nil {
		// пользователю одна внятная строка; трассировки — только в логе
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(input, output string, cfg config.Config, logger zerolog.Logger, preview bool) error {
	rules, err := config.LoadRules(cfg.RulesFile)
	if err != nil {
		return fmt.Errorf("rules %s: %w", cfg.RulesFile, err)
	}
	// проверка конфигурации — до любого I/O по входному файлу
	if err := rules.Validate(); err != nil {
		return err
	}

	if _, err := os.Stat(input); err != nil {
		return fmt.Errorf("input file not found: %s", input)
	}

	wb, err := fileio.Open(input)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer wb.Close()

	res, err := service.ProcessWorkbook(wb, rules, logger)
	if err != nil {
		return err
	}
	logger.Info().
		Int("records", res.Total).
		Int("summary_rows", len(res.Summary)).
		Msg("summary generated")

	if preview {
		printSummary(os.Stdout, res.Summary)
	}

	if err := fileio.WriteTable(output, "Summary", service.SummaryHeaders, service.SummaryTable(res.Summary)); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	logger.Info().Str("output", output).Msg("report saved")
	return nil
}

func printSummary(w io.Writer, rows []model.SummaryRow) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(service.SummaryHeaders, "\t"))
	for _, r := range service.SummaryTable(rows) {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	_ = tw.Flush()
}

func runServer(cfg config.Config, logger zerolog.Logger) {
	// без файла правил сервер стартует на встроенных значениях по
	// умолчанию: клиент может прислать правила частью формы
	rules, err := config.LoadRules(cfg.RulesFile)
	if err != nil {
		logger.Warn().Err(err).Str("file", cfg.RulesFile).Msg("rules not loaded, expecting rules per request")
		rules = config.DefaultRules()
	}

	r := serverhttp.NewRouter(cfg, rules, logger)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] input.xlsx\n\nflags:\n", os.Args[0])
	flag.PrintDefaults()
}
