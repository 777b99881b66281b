package rabbit

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// HeaderMessageKey carries the message key, since the routing key is fixed
// by configuration.
const HeaderMessageKey = "message-key"

// Publish sends body to the configured exchange and waits for the broker's
// confirm. Headers are copied into the AMQP header table; "content-type" and
// "event-id" also fill the matching message properties.
func (rb *RabbitClient) Publish(ctx context.Context, key string, body []byte, headers map[string]string) (err error) {
	start := time.Now()
	defer func() {
		rb.observeOperation("produce", rb.cfg.Channel.ExchangeName, rb.cfg.Channel.RoutingKey, time.Since(start), err, int64(len(body)))
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	table := amqp.Table{HeaderMessageKey: key}
	for k, v := range headers {
		table[k] = v
	}

	msg := amqp.Publishing{
		Headers:      table,
		ContentType:  headers["content-type"],
		MessageId:    headers["event-id"],
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	rb.mu.RLock()
	ch := rb.channel
	rb.mu.RUnlock()
	if ch == nil || ch.IsClosed() {
		return ErrNotConnected
	}

	confirm, err := ch.PublishWithDeferredConfirmWithContext(ctx,
		rb.cfg.Channel.ExchangeName,
		rb.cfg.Channel.RoutingKey,
		false, // Mandatory
		false, // Immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", rb.cfg.Channel.ExchangeName, TranslateError(err))
	}

	waitCtx, cancel := context.WithTimeout(ctx, rb.cfg.Channel.ConfirmTimeout)
	defer cancel()

	acked, err := confirm.WaitContext(waitCtx)
	if err != nil {
		return fmt.Errorf("waiting for publisher confirm: %w", err)
	}
	if !acked {
		return ErrMessageNacked
	}
	return nil
}
