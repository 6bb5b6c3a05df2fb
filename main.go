package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/danielhkuo/votetally/cliparse"
	"github.com/danielhkuo/votetally/report"
	"github.com/danielhkuo/votetally/tally"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Logs go to stderr so stdout stays clean for the summary.
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	data, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		slog.Error("input read failed", "error", err)
		os.Exit(1)
	}

	rows, stats, err := tally.ParseAndReport(string(data), tally.Options{
		Strict:         cfg.Strict,
		Lenient:        cfg.Lenient,
		IncludeUnvoted: cfg.IncludeUnvoted,
	})
	if err != nil {
		slog.Error("processing failed", "error", err, "input", cfg.InputPath)
		os.Exit(1)
	}

	report.WriteSummary(os.Stdout, stats, rows)

	if err := report.WriteCSVFile(cfg.OutputPath, rows); err != nil {
		slog.Error("output write failed", "error", err, "output", cfg.OutputPath)
		os.Exit(1)
	}

	slog.Info("report written", "output", cfg.OutputPath, "rows", stats.Rows)
	fmt.Printf("Results saved to %s\n", cfg.OutputPath)
}
