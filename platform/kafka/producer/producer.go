package producer

import (
	"context"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type producer struct {
	syncProducer sarama.SyncProducer
	topic        string
	headers      []sarama.RecordHeader
	logger       Logger
}

// NewProducer sends every message to topic with the given static headers.
func NewProducer(syncProducer sarama.SyncProducer, topic string, logger Logger, headers map[string]string) *producer {
	hs := make([]sarama.RecordHeader, 0, len(headers))
	for k, v := range headers {
		hs = append(hs, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	return &producer{
		syncProducer: syncProducer,
		topic:        topic,
		headers:      hs,
		logger:       logger,
	}
}

func (p *producer) Send(ctx context.Context, key, value []byte) error {
	partition, offset, err := p.syncProducer.SendMessage(&sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.ByteEncoder(key),
		Value:   sarama.ByteEncoder(value),
		Headers: p.headers,
	})
	if err != nil {
		p.logger.Error(ctx, "kafka send failed", zap.String("topic", p.topic), zap.Error(err))
		return err
	}

	p.logger.Info(ctx, "kafka message sent",
		zap.String("topic", p.topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
		zap.String("key", string(key)),
		zap.Int("value_bytes", len(value)),
	)

	return nil
}
