package probe

import (
	"Go2TrafficStats/internal/config"
	"Go2TrafficStats/internal/model"
	"encoding/json"
	"fmt"
	"log"

	"github.com/nats-io/nats.go"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Publisher publishes finished summaries to a NATS subject.
type Publisher struct {
	nc      *nats.Conn
	subject string
}

// NewPublisher creates a new NATS publisher.
func NewPublisher(cfg config.NATSConfig) (*Publisher, error) {
	if cfg.Subject == "" {
		return nil, fmt.Errorf("nats subject must not be empty")
	}
	nc, err := nats.Connect(cfg.URL)
	if err != nil {
		return nil, err
	}
	log.Printf("Connected to NATS server at %s", cfg.URL)
	return &Publisher{nc: nc, subject: cfg.Subject}, nil
}

func (p *Publisher) Name() string {
	return "nats:" + p.subject
}

// Write serializes the summary to Protobuf and publishes it to the configured subject.
// It flushes so that a short-lived process does not exit before the message leaves.
func (p *Publisher) Write(summary *model.Summary) error {
	data, err := EncodeSummary(summary)
	if err != nil {
		return err
	}
	if err := p.nc.Publish(p.subject, data); err != nil {
		return fmt.Errorf("failed to publish summary: %w", err)
	}
	return p.nc.Flush()
}

// Close drains and closes the NATS connection.
func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Drain()
		log.Println("NATS connection drained and closed.")
	}
}

// EncodeSummary converts a summary into a binary google.protobuf.Struct.
// Field names follow the JSON tags of model.Summary; counts become number values.
func EncodeSummary(summary *model.Summary) ([]byte, error) {
	raw, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}
	st := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, st); err != nil {
		return nil, fmt.Errorf("failed to build summary struct: %w", err)
	}
	return proto.Marshal(st)
}

// DecodeSummary is the inverse of EncodeSummary.
func DecodeSummary(data []byte) (*model.Summary, error) {
	st := &structpb.Struct{}
	if err := proto.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("error unmarshalling protobuf: %w", err)
	}
	raw, err := protojson.Marshal(st)
	if err != nil {
		return nil, err
	}
	var summary model.Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode summary: %w", err)
	}
	return &summary, nil
}
