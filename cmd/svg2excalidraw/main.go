// Command svg2excalidraw converts a directory of SVG icons into
// Excalidraw documents.
//
// Usage:
//
//	svg2excalidraw [input-dir [output-dir]]
//
// The other settings are read from SVG2EXCALIDRAW_* environment variables.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/benoitkugler/svg2excalidraw/internal/batch"
	"github.com/benoitkugler/svg2excalidraw/internal/config"
	"github.com/benoitkugler/svg2excalidraw/svgicon"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)
	svgicon.SetLogger(logger)

	args := os.Args[1:]
	if len(args) > 2 {
		fmt.Fprintln(os.Stderr, "usage: svg2excalidraw [input-dir [output-dir]]")
		os.Exit(2)
	}
	if len(args) >= 1 {
		cfg.InputDir = args[0]
	}
	if len(args) == 2 {
		cfg.OutputDir = args[1]
	}

	opts, err := cfg.Options()
	if err != nil {
		slog.Error("options", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := batch.Run(ctx, batch.Config{
		InputDir:       cfg.InputDir,
		OutputDir:      cfg.OutputDir,
		PreserveColors: cfg.PreserveColors,
		Workers:        cfg.Workers,
		Options:        opts,
		NewIDs:         cfg.NewIDs,
		Logger:         logger,
	})
	if err != nil {
		slog.Error("batch", "input", cfg.InputDir, "error", err)
		os.Exit(1)
	}
	fmt.Println(res.Summary(cfg.InputDir))
}
