package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LakshyaxGupta/FlowBreak/config"
	"github.com/LakshyaxGupta/FlowBreak/internal/entity"
	"github.com/LakshyaxGupta/FlowBreak/pkg/utils"
	"github.com/segmentio/kafka-go"
)

// MessageReader is the subset of *kafka.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Ingester interface {
	Ingest(ctx context.Context, req entity.IngestRequest) (*entity.IngestResult, error)
}

// KafkaConsumer feeds JSON ingest batches from a topic into the session
// service.
type KafkaConsumer struct {
	reader   MessageReader
	ingester Ingester
	logger   *slog.Logger
	backoff  time.Duration
}

func NewKafkaConsumer(cfg config.KafkaConfig, ingester Ingester, logger *slog.Logger) (*KafkaConsumer, error) {
	if len(cfg.Brokers) == 0 || cfg.Topic == "" || cfg.GroupID == "" {
		return nil, errors.New("kafka requires brokers, topic, group_id")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		GroupID:  cfg.GroupID,
		MinBytes: 1e3,
		MaxBytes: 10e6,
	})
	return NewKafkaConsumerWithReader(reader, ingester, logger), nil
}

func NewKafkaConsumerWithReader(reader MessageReader, ingester Ingester, logger *slog.Logger) *KafkaConsumer {
	return &KafkaConsumer{
		reader:   reader,
		ingester: ingester,
		logger:   logger,
		backoff:  time.Second,
	}
}

// Run consumes until ctx is cancelled. Malformed batches are logged and
// committed so they are not redelivered. A batch that fails to store is
// retried until it succeeds, and nothing after it is fetched or committed
// meanwhile.
func (c *KafkaConsumer) Run(ctx context.Context) error {
	defer c.reader.Close()

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Warn("kafka read error", slog.Any("error", err))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(c.backoff):
			}
			continue
		}

		if !c.handleUntilStored(ctx, msg) {
			return nil
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			c.logger.Warn("kafka commit error", slog.Any("error", err))
		}
	}
}

// handleUntilStored retries msg with backoff until Handle succeeds. It
// returns false when ctx is cancelled first.
func (c *KafkaConsumer) handleUntilStored(ctx context.Context, msg kafka.Message) bool {
	for {
		err := c.Handle(ctx, msg)
		if err == nil {
			return true
		}
		if ctx.Err() != nil {
			return false
		}

		c.logger.Error("failed to ingest kafka message, retrying",
			slog.Int("partition", msg.Partition),
			slog.Int64("offset", msg.Offset),
			slog.Any("error", err),
		)
		select {
		case <-ctx.Done():
			return false
		case <-time.After(c.backoff):
		}
	}
}

// Handle ingests one message. It returns an error only when the batch was
// valid but could not be stored.
func (c *KafkaConsumer) Handle(ctx context.Context, msg kafka.Message) error {
	var req entity.IngestRequest
	if err := json.Unmarshal(msg.Value, &req); err != nil {
		c.logger.Warn("skipping malformed kafka message",
			slog.Int64("offset", msg.Offset),
			slog.Any("error", err),
		)
		return nil
	}

	res, err := c.ingester.Ingest(ctx, req)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidRequest) || errors.Is(err, utils.ErrInvalidTimestamp) {
			c.logger.Warn("skipping invalid kafka batch",
				slog.Int64("offset", msg.Offset),
				slog.Any("error", err),
			)
			return nil
		}
		return fmt.Errorf("failed to ingest batch at offset %d: %w", msg.Offset, err)
	}

	c.logger.Debug("kafka batch ingested",
		slog.String("session_id", res.SessionID.String()),
		slog.Int("events", res.EventsIngested),
	)
	return nil
}
