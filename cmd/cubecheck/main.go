package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/domino14/cubalt/config"
	"github.com/domino14/cubalt/verify"
)

func setupLogging(level string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	logger := zerolog.New(output).Level(lvl).With().Timestamp().Logger()
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
}

// writeReport encodes report as YAML. Close flushes the encoder, so its
// error matters as much as Encode's.
func writeReport(w io.Writer, report *verify.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.GetString(config.ConfigLogLevel))
	log.Info().Msgf("Loaded config: %v", cfg.SanitizedSettings())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := verify.Run(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("verification failed to run")
	}

	if err := writeReport(os.Stdout, report); err != nil {
		log.Fatal().Err(err).Msg("could not write report")
	}
	if cfg.GetInt(config.ConfigHistogramBins) > 0 {
		if err := report.FprintHistograms(os.Stderr); err != nil {
			log.Fatal().Err(err).Msg("could not draw histograms")
		}
	}

	if !report.Passed() {
		for _, c := range report.Failed() {
			log.Error().Str("check", c.Name).Int("failures", c.Failures).Str("example", c.Example).Msg("check failed")
		}
		os.Exit(1)
	}
}
