// Package rabbit publishes analysis events to RabbitMQ.
//
// RabbitClient implements events.Sink. Each message goes to one durable
// exchange (default "lyricml.events", type topic) with the routing key
// "lyrics.analyzed". The event key ("artist/title") travels in the
// "message-key" header and trace context headers are copied as they are.
// Publishing waits for the broker's publisher confirm.
//
// With fx:
//
//	app := fx.New(
//		rabbit.FXModule,
//		events.FXModule,
//		fx.Provide(func() rabbit.Config { return cfg.Rabbit }),
//	)
//
// When the connection drops, a background loop started by the fx lifecycle
// re-dials and redeclares the exchange. Publishes during the gap fail with
// ErrNotConnected.
package rabbit
