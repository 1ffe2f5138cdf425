package factory

import (
	"Go2TrafficStats/internal/config"
	"Go2TrafficStats/internal/model"
	"Go2TrafficStats/internal/probe"
	"Go2TrafficStats/internal/writer"
	"fmt"
	"io"
	"log"
)

// WriterGroup is the set of writers a finished summary is handed to.
type WriterGroup struct {
	Writers []model.Writer
	closers []func()
}

// CreateWriters builds every enabled writer declared in cfg. Text writers render to stdout.
// Writers that cannot be created are skipped with a warning so that the report
// itself is never lost to an unreachable broker.
func CreateWriters(cfg *config.Config, stdout io.Writer) *WriterGroup {
	group := &WriterGroup{}

	for _, writerDef := range cfg.Writers {
		if !writerDef.Enabled {
			continue
		}

		switch writerDef.Type {
		case "text":
			group.Writers = append(group.Writers, writer.NewTextWriter(stdout))
		case "nats":
			pub, err := probe.NewPublisher(writerDef.NATS)
			if err != nil {
				log.Printf("Warning: failed to create writer type '%s': %v, skipping.", writerDef.Type, err)
				continue
			}
			group.Writers = append(group.Writers, pub)
			group.closers = append(group.closers, pub.Close)
		default:
			log.Printf("Warning: unknown writer type '%s' in config, skipping.", writerDef.Type)
		}
	}

	return group
}

// WriteAll hands the summary to every writer in order and stops at the first failure.
func (g *WriterGroup) WriteAll(summary *model.Summary) error {
	for _, w := range g.Writers {
		if err := w.Write(summary); err != nil {
			return fmt.Errorf("writer %s: %w", w.Name(), err)
		}
	}
	return nil
}

// Close releases the connections held by the writers.
func (g *WriterGroup) Close() {
	for _, closeFn := range g.closers {
		closeFn()
	}
}
