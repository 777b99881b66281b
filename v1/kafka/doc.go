// Package kafka writes analysis events to a Kafka topic with
// github.com/segmentio/kafka-go.
//
// KafkaClient implements events.Sink: the event key ("artist/title") is the
// record key, so all analyses of one song land on the same partition, and
// string headers such as the W3C traceparent become record headers.
//
// TLS and SASL (PLAIN, SCRAM-SHA-256, SCRAM-SHA-512) are configured on the
// writer's transport. Connections are opened lazily on the first write.
//
// With fx:
//
//	app := fx.New(
//		kafka.FXModule,
//		events.FXModule,
//		fx.Provide(func() kafka.Config { return cfg.Kafka }),
//	)
package kafka
