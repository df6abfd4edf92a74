package alerting

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

const brokerName = "qoe-monitor"

// Handler answers a request subject. The result is sent back as JSON.
type Handler func(m *nats.Msg) (resp any)

// Broker is the NATS connection used for alert fan-out and request handlers.
type Broker struct {
	conn *nats.Conn
}

func NewBroker(url string) (broker *Broker, err error) {
	conn, err := nats.Connect(url,
		nats.Name(brokerName),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("NewBroker: disconnected")
			}
		}),
		nats.ReconnectHandler(func(conn *nats.Conn) {
			log.Info().Str("url", conn.ConnectedUrl()).Msg("NewBroker: reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("NewBroker: %w", err)
	}

	return &Broker{
		conn: conn,
	}, nil
}

func (b *Broker) Publish(subject string, data []byte) (err error) {
	if err = b.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("Publish: %w", err)
	}

	return nil
}

func (b *Broker) IsActive() bool {
	return b.conn.IsConnected()
}

// Serve subscribes handlers to their subjects until ctx is done.
func (b *Broker) Serve(ctx context.Context, routes map[string]Handler) (err error) {
	subscriptions := make([]*nats.Subscription, 0, len(routes))
	defer func() {
		for _, subscription := range subscriptions {
			if unsubErr := subscription.Unsubscribe(); unsubErr != nil {
				log.Error().Err(unsubErr).Str("subject", subscription.Subject).Msg("Serve: unsubscribe error")
			}
		}
	}()

	for subject, handler := range routes {
		subscription, err := b.conn.Subscribe(subject, func(m *nats.Msg) {
			b.reply(m, handler)
		})
		if err != nil {
			return fmt.Errorf("Serve: %w", err)
		}

		subscriptions = append(subscriptions, subscription)
	}

	<-ctx.Done()
	return nil
}

func (b *Broker) reply(m *nats.Msg, handler Handler) {
	resp := handler(m)
	if m.Reply == "" {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		log.Error().Err(err).Str("subject", m.Subject).Msg("reply: marshal error")
		return
	}

	if err = m.Respond(data); err != nil {
		log.Error().Err(err).Str("subject", m.Subject).Msg("reply: respond error")
	}
}

func (b *Broker) Close() {
	if err := b.conn.Drain(); err != nil {
		log.Error().Err(err).Msg("Close: drain error")
	}
}
