package main

import (
	"Go2TrafficStats/internal/config"
	"Go2TrafficStats/internal/engine/manager"
	"Go2TrafficStats/internal/factory"
	"Go2TrafficStats/internal/model"
	"Go2TrafficStats/pkg/countlog"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}

// run summarizes the count log named by the single positional argument.
// Nothing is written to stdout unless the whole log was consumed successfully.
func run(args []string, stdout io.Writer) error {
	// 1. Get count log path from command-line arguments
	if len(args) != 1 {
		return model.ErrUsage
	}
	countLogPath := args[0]

	// 2. Load configuration
	cfg, err := config.LoadOrDefault(config.DefaultPath)
	if err != nil {
		return err
	}

	// 3. Open the count log
	reader, err := countlog.NewReader(countLogPath, cfg.DelimiterRune())
	if err != nil {
		return err
	}
	defer reader.Close()

	// 4. Stream every record through the accumulators
	summary, err := manager.NewManager(cfg).Run(context.Background(), reader)
	if err != nil {
		return err
	}

	// 5. Hand the finished summary to the writers
	writers := factory.CreateWriters(cfg, stdout)
	defer writers.Close()
	return writers.WriteAll(summary)
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrUsage):
		return "Please enter a filename"
	case errors.Is(err, model.ErrInsufficientData):
		return "Not enough data for top 3"
	default:
		return "Error: " + err.Error()
	}
}
