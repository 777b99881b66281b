package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/pulsesearch/lyricml/v1/observability"
)

// Publish writes one message keyed by key. Headers are attached as Kafka
// record headers. With Async enabled the call returns before delivery.
func (k *KafkaClient) Publish(ctx context.Context, key string, body []byte, headers map[string]string) (err error) {
	start := time.Now()
	defer func() {
		observability.Observe(k.observer, "kafka", "produce", k.cfg.Topic, start, err, int64(len(body)))
	}()

	msg := kafka.Message{
		Key:     []byte(key),
		Value:   body,
		Headers: toHeaders(headers),
		Time:    start.UTC(),
	}
	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write to %s: %w", k.cfg.Topic, err)
	}
	return nil
}

func toHeaders(headers map[string]string) []kafka.Header {
	if len(headers) == 0 {
		return nil
	}
	out := make([]kafka.Header, 0, len(headers))
	for k, v := range headers {
		out = append(out, kafka.Header{Key: k, Value: []byte(v)})
	}
	return out
}
