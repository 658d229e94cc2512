package main

import (
	"os"

	"lrc/config"
	"lrc/experiments"
	"lrc/experiments/report"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Str("run_id", uuid.NewString()).Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	level, _ := cfg.Level() // Validated by Load
	zerolog.SetGlobalLevel(level)

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}
}

func run(cfg config.Config) error {
	options := []experiments.Option{}
	if cfg.Metrics {
		options = append(options, experiments.WithMetrics())
	}

	e, err := experiments.NewExperiment(cfg, options...)
	if err != nil {
		return err
	}
	summaries := e.Run()

	w := report.NewWriter(os.Stdout, cfg.RoundingDigits)
	switch cfg.ReportFormat {
	case config.FormatCSV:
		return w.WriteCSV(summaries)
	default:
		return w.WriteText(cfg.NumGames, summaries)
	}
}
