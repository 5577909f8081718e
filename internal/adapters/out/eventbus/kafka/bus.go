// Package kafka carries order notifications between service instances over
// Kafka. Every channel is a topic. Each instance reads every partition from
// the newest offset, so a subscriber never sees messages published before
// the service started.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"eats/internal/adapters/out/eventbus"
	"eats/internal/core/domain/model/event"
	"eats/internal/core/ports"

	"github.com/IBM/sarama"
)

// TopicPrefix namespaces the topics of this service.
const TopicPrefix = "eats."

// TopicName returns the topic for channel.
func TopicName(channel event.Channel) string {
	return TopicPrefix + string(channel)
}

// NewConfig returns the sarama settings used by the bus.
func NewConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Retry.Backoff = 100 * time.Millisecond
	config.Producer.Return.Successes = true
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Net.DialTimeout = 30 * time.Second
	config.Net.ReadTimeout = 30 * time.Second
	config.Net.WriteTimeout = 30 * time.Second
	return config
}

// Bus publishes to Kafka and serves subscriptions from a local hub.
type Bus struct {
	producer   sarama.SyncProducer
	consumer   sarama.Consumer
	partitions []sarama.PartitionConsumer

	hub    *eventbus.Hub
	logger *slog.Logger
	wg     sync.WaitGroup
}

var _ ports.EventBus = (*Bus)(nil)

// Dial connects to brokers and starts reading every channel topic.
func Dial(brokers []string, hub *eventbus.Hub, logger *slog.Logger) (*Bus, error) {
	config := NewConfig()

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	consumer, err := sarama.NewConsumer(brokers, config)
	if err != nil {
		_ = producer.Close()
		return nil, fmt.Errorf("failed to create kafka consumer: %w", err)
	}

	b, err := start(producer, consumer, hub, logger)
	if err != nil {
		return nil, err
	}

	b.logger.Info("Kafka event bus connected", "brokers", brokers)
	return b, nil
}

func start(producer sarama.SyncProducer, consumer sarama.Consumer, hub *eventbus.Hub, logger *slog.Logger) (*Bus, error) {
	b := &Bus{
		producer: producer,
		consumer: consumer,
		hub:      hub,
		logger:   logger.With("component", "KafkaEventBus"),
	}

	for _, channel := range event.Channels() {
		if err := b.consume(channel); err != nil {
			_ = b.Close()
			return nil, err
		}
	}
	return b, nil
}

func (b *Bus) consume(channel event.Channel) error {
	topic := TopicName(channel)
	partitions, err := b.consumer.Partitions(topic)
	if err != nil {
		return fmt.Errorf("list partitions of %s: %w", topic, err)
	}
	for _, partition := range partitions {
		pc, err := b.consumer.ConsumePartition(topic, partition, sarama.OffsetNewest)
		if err != nil {
			return fmt.Errorf("consume %s/%d: %w", topic, partition, err)
		}
		b.partitions = append(b.partitions, pc)
		b.wg.Add(1)
		go b.forward(channel, pc)
	}
	return nil
}

func (b *Bus) forward(channel event.Channel, pc sarama.PartitionConsumer) {
	defer b.wg.Done()
	for {
		select {
		case m, ok := <-pc.Messages():
			if !ok {
				return
			}
			msg, err := eventbus.Decode(channel, m.Value)
			if err != nil {
				b.logger.Error("Dropping malformed message", "topic", m.Topic, "offset", m.Offset, "error", err)
				continue
			}
			if err = b.hub.Publish(context.Background(), msg); err != nil {
				b.logger.Error("Failed to hand message to hub", "channel", channel, "error", err)
			}
		case consumerErr, ok := <-pc.Errors():
			if !ok {
				return
			}
			b.logger.Error("Kafka consumer error", "channel", channel, "error", consumerErr)
		}
	}
}

func (b *Bus) Publish(_ context.Context, msg event.Message) error {
	body, err := eventbus.Encode(msg)
	if err != nil {
		return err
	}

	_, _, err = b.producer.SendMessage(&sarama.ProducerMessage{
		Topic: TopicName(msg.Channel),
		Key:   sarama.StringEncoder(fmt.Sprint(msg.Order.ID)),
		Value: sarama.ByteEncoder(body),
	})
	if err != nil {
		return fmt.Errorf("send to %s: %w", TopicName(msg.Channel), err)
	}
	return nil
}

func (b *Bus) Subscribe(ctx context.Context, channel event.Channel) (ports.Subscription, error) {
	return b.hub.Subscribe(ctx, channel)
}

// Close stops the partition readers, the producer and local subscriptions.
func (b *Bus) Close() error {
	var errList []error
	for _, pc := range b.partitions {
		pc.AsyncClose()
	}
	b.wg.Wait()
	if b.consumer != nil {
		errList = append(errList, b.consumer.Close())
	}
	if b.producer != nil {
		errList = append(errList, b.producer.Close())
	}
	errList = append(errList, b.hub.Close())
	return errors.Join(errList...)
}
