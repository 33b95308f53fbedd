package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Unbantucniak/FTMS/internal/logger"
	"github.com/segmentio/kafka-go"
)

const SeedEventType = "flights.seeded"

// SeedEvent announces that a batch of synthetic flights was loaded.
type SeedEvent struct {
	Type            string    `json:"type"`
	RunID           string    `json:"run_id"`
	Generated       int       `json:"generated"`
	Inserted        int       `json:"inserted"`
	Skipped         int       `json:"skipped"`
	Cleared         bool      `json:"cleared"`
	TotalFlights    int64     `json:"total_flights"`
	DepartureCities int64     `json:"departure_cities"`
	FinishedAt      time.Time `json:"finished_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	writer     messageWriter
	maxRetries int
	backoff    time.Duration
	log        logger.Logger
}

func NewProducer(brokers []string, log logger.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return newProducer(writer, log)
}

func newProducer(writer messageWriter, log logger.Logger) *Producer {
	return &Producer{
		writer:     writer,
		maxRetries: 3,
		backoff:    500 * time.Millisecond,
		log:        log,
	}
}

// Publish JSON-encodes payload and writes it to topic, retrying with a
// linear backoff.
func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	var lastErr error
	for i := 0; i < p.maxRetries; i++ {
		if lastErr = p.writer.WriteMessages(ctx, message); lastErr == nil {
			p.log.Debug("published to kafka", "topic", topic, "key", key)
			return nil
		}
		p.log.Warn("kafka publish attempt failed", "topic", topic, "attempt", i+1, "error", lastErr)

		if i < p.maxRetries-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(i+1) * p.backoff):
			}
		}
	}

	return fmt.Errorf("failed after %d retries: %w", p.maxRetries, lastErr)
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
