package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsesearch/lyricml/v1/observability"
)

type fakeWriter struct {
	mu       sync.Mutex
	messages []kafka.Message
	err      error
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

type recordingObserver struct {
	ops []observability.OperationContext
}

func (r *recordingObserver) ObserveOperation(op observability.OperationContext) {
	r.ops = append(r.ops, op)
}

func TestPublishWritesKeyedMessage(t *testing.T) {
	w := &fakeWriter{}
	obs := &recordingObserver{}
	client := (&KafkaClient{cfg: Config{}.withDefaults(), writer: w}).WithObserver(obs)

	err := client.Publish(context.Background(), "Queen/Bohemian Rhapsody", []byte(`{"type":"lyrics.analyzed"}`),
		map[string]string{"traceparent": "00-abc-def-01"})
	require.NoError(t, err)

	require.Len(t, w.messages, 1)
	msg := w.messages[0]
	assert.Equal(t, "Queen/Bohemian Rhapsody", string(msg.Key))
	assert.JSONEq(t, `{"type":"lyrics.analyzed"}`, string(msg.Value))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "traceparent", msg.Headers[0].Key)
	assert.Equal(t, "00-abc-def-01", string(msg.Headers[0].Value))

	require.Len(t, obs.ops, 1)
	assert.Equal(t, "kafka", obs.ops[0].Component)
	assert.Equal(t, "produce", obs.ops[0].Operation)
	assert.Equal(t, DefaultTopic, obs.ops[0].Resource)
}

func TestPublishWrapsWriterError(t *testing.T) {
	w := &fakeWriter{err: errors.New("leader not available")}
	client := &KafkaClient{cfg: Config{Topic: "t"}.withDefaults(), writer: w}

	err := client.Publish(context.Background(), "k", []byte("v"), nil)
	assert.ErrorContains(t, err, "write to t")
	assert.ErrorContains(t, err, "leader not available")
}

func TestCloseClosesWriter(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, (&KafkaClient{writer: w}).Close())
	assert.True(t, w.closed)
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(Config{}, nil)
	assert.ErrorIs(t, err, ErrNoBrokers)

	_, err = NewClient(Config{Brokers: []string{"localhost:9092"}, CompressionCodec: "brotli"}, nil)
	assert.ErrorContains(t, err, "unsupported compression codec")

	_, err = NewClient(Config{Brokers: []string{"localhost:9092"}, SASL: SASLConfig{Enabled: true, Mechanism: "GSSAPI"}}, nil)
	assert.ErrorContains(t, err, "unsupported SASL mechanism")

	client, err := NewClient(Config{
		Brokers:          []string{"localhost:9092"},
		CompressionCodec: "zstd",
		SASL:             SASLConfig{Enabled: true, Mechanism: "SCRAM-SHA-512", Username: "u", Password: "p"},
	}, nil)
	require.NoError(t, err)

	w, ok := client.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, DefaultTopic, w.Topic)
	assert.Equal(t, kafka.RequireAll, w.RequiredAcks)
	assert.Equal(t, kafka.Zstd, w.Compression)
	assert.NoError(t, client.Close())
}

func TestCompressionCodec(t *testing.T) {
	for name, want := range map[string]kafka.Compression{
		"":       0,
		"none":   0,
		"gzip":   kafka.Gzip,
		"Snappy": kafka.Snappy,
		"lz4":    kafka.Lz4,
	} {
		got, err := compressionCodec(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestNewEventSinkDisabled(t *testing.T) {
	b := NewEventSink(nil)
	assert.Equal(t, "kafka", b.Name)
	assert.Nil(t, b.Sink)
}
