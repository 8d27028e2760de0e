package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/core/entities/event"
	"github.com/sergeii/enigma/internal/core/repositories"
)

const (
	channelFmt = "sessions:%s:events"
	bufferSize = 64
)

type Bus struct {
	client *redis.Client
	logger *zerolog.Logger
}

func New(client *redis.Client, logger *zerolog.Logger) *Bus {
	return &Bus{
		client: client,
		logger: logger,
	}
}

// Publish sends the events to the session channel in the given order
func (b *Bus) Publish(ctx context.Context, id uuid.UUID, events ...event.Event) error {
	if len(events) == 0 {
		return nil
	}
	channel := channelName(id)
	_, err := b.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, e := range events {
			payload, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("failed to marshal event: %w", err)
			}
			pipe.Publish(ctx, channel, payload)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to publish events: %w", err)
	}
	return nil
}

func (b *Bus) Subscribe(ctx context.Context, id uuid.UUID) (repositories.EventStream, error) {
	pubsub := b.client.Subscribe(ctx, channelName(id))
	// wait for the subscription to be confirmed so that no event published afterwards is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close() // nolint: errcheck
		return nil, fmt.Errorf("failed to subscribe to session events: %w", err)
	}
	s := &stream{
		pubsub: pubsub,
		events: make(chan event.Event, bufferSize),
		done:   make(chan struct{}),
		logger: b.logger,
	}
	go s.run()
	return s, nil
}

type stream struct {
	pubsub *redis.PubSub
	events chan event.Event
	done   chan struct{}
	once   sync.Once
	logger *zerolog.Logger
}

func (s *stream) Events() <-chan event.Event {
	return s.events
}

func (s *stream) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.pubsub.Close()
	})
	return err
}

func (s *stream) run() {
	defer close(s.events)
	messages := s.pubsub.Channel()
	for {
		select {
		case <-s.done:
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			var e event.Event
			if err := json.Unmarshal([]byte(msg.Payload), &e); err != nil {
				s.logger.Warn().Err(err).Str("channel", msg.Channel).Msg("Skipping malformed event")
				continue
			}
			select {
			case s.events <- e:
			case <-s.done:
				return
			}
		}
	}
}

func channelName(id uuid.UUID) string {
	return fmt.Sprintf(channelFmt, id)
}
