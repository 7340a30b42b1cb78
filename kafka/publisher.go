package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/kelvinmusselli/favoriteProducts/pkg/logger"
)

// Publisher wraps Kafka producer
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.MaxMessageBytes = 1000000

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{
		producer: producer,
		brokers:  brokers,
	}, nil
}

// PublishCustomerCreated publishes a customer created event
func (p *Publisher) PublishCustomerCreated(ctx context.Context, customerID uint, email string) error {
	event := CustomerCreatedEvent{
		EventID:    uuid.NewString(),
		EventType:  EventTypeCustomerCreated,
		CustomerID: customerID,
		Email:      email,
		Timestamp:  time.Now(),
	}
	return p.publish(ctx, TopicCustomerCreated, event.EventType, event.EventID,
		fmt.Sprintf("customer_%d", customerID), event,
		attribute.Int64("customer.id", int64(customerID)))
}

// PublishCustomerDeleted publishes a customer deleted event
func (p *Publisher) PublishCustomerDeleted(ctx context.Context, customerID uint) error {
	event := CustomerDeletedEvent{
		EventID:    uuid.NewString(),
		EventType:  EventTypeCustomerDeleted,
		CustomerID: customerID,
		Timestamp:  time.Now(),
	}
	return p.publish(ctx, TopicCustomerDeleted, event.EventType, event.EventID,
		fmt.Sprintf("customer_%d", customerID), event,
		attribute.Int64("customer.id", int64(customerID)))
}

// PublishProductFavorited publishes a product favorited event
func (p *Publisher) PublishProductFavorited(ctx context.Context, customerID, productID uint) error {
	event := ProductFavoritedEvent{
		EventID:    uuid.NewString(),
		EventType:  EventTypeProductFavorited,
		CustomerID: customerID,
		ProductID:  productID,
		Timestamp:  time.Now(),
	}
	return p.publish(ctx, TopicProductFavorited, event.EventType, event.EventID,
		fmt.Sprintf("customer_%d", customerID), event,
		attribute.Int64("customer.id", int64(customerID)),
		attribute.Int64("product.id", int64(productID)))
}

// publish sends one event with tracing and trace context propagation
func (p *Publisher) publish(ctx context.Context, topic, eventType, eventID, key string, event interface{}, attrs ...attribute.KeyValue) error {
	tracer := otel.Tracer("kafka-publisher")
	spanAttrs := append([]attribute.KeyValue{
		attribute.String("messaging.system", "kafka"),
		attribute.String("messaging.destination", topic),
		attribute.String("messaging.destination_kind", "topic"),
		attribute.String("event.type", eventType),
		attribute.String("event.id", eventID),
	}, attrs...)

	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(spanAttrs...),
	)
	defer span.End()

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(eventID)},
	}
	for key, value := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(key),
			Value: []byte(value),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Logger.Error().
			Err(err).
			Str("topic", topic).
			Str("event_id", eventID).
			Str("trace_id", span.SpanContext().TraceID().String()).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	logger.Logger.Info().
		Str("event_id", eventID).
		Str("event_type", eventType).
		Str("topic", topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Str("trace_id", span.SpanContext().TraceID().String()).
		Msg("Event published")

	return nil
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
