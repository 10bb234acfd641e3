// Package events publishes domain events to Kafka as CloudEvents JSON envelopes.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"github.com/pkordes/studiobook/backend/internal/domain"
)

// TypeReservationCreated is the CloudEvents type of a committed reservation.
const TypeReservationCreated = "reservation.created.v1"

const defaultSource = "app://studiobook"

// Envelope is the CloudEvents 1.0 structured-mode wrapper around event data.
type Envelope struct {
	SpecVersion     string    `json:"specversion"`
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	Source          string    `json:"source"`
	Subject         string    `json:"subject,omitempty"`
	Time            time.Time `json:"time"`
	DataContentType string    `json:"datacontenttype"`
	Data            any       `json:"data"`
}

// ReservationCreated is the data of a reservation.created event.
type ReservationCreated struct {
	ReservationID uuid.UUID `json:"reservationId"`
	ListingID     uuid.UUID `json:"listingId"`
	UserID        uuid.UUID `json:"userId"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	TotalHours    float64   `json:"totalHours"`
	TotalPrice    float64   `json:"totalPrice"`
}

// KafkaPublisher sends events through a synchronous sarama producer.
// Messages are keyed by listing id so one listing's events stay ordered.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	source   string
	now      func() time.Time
}

// NewKafkaPublisher wraps an existing producer. Tests pass a sarama mock.
func NewKafkaPublisher(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic, source: defaultSource, now: time.Now}
}

// DialKafka connects an idempotent producer that waits for all in-sync replicas.
func DialKafka(brokers []string, topic string) (*KafkaPublisher, error) {
	cfg := sarama.NewConfig()
	cfg.ClientID = "studiobook-api"
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	cfg.Net.MaxOpenRequests = 1
	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("events.DialKafka: %w", err)
	}
	return NewKafkaPublisher(producer, topic), nil
}

// ReservationCreated publishes a reservation.created event for res.
func (p *KafkaPublisher) ReservationCreated(ctx context.Context, res domain.Reservation) error {
	data := ReservationCreated{
		ReservationID: res.ID,
		ListingID:     res.ListingID,
		UserID:        res.UserID,
		StartDate:     res.StartDate.String(),
		EndDate:       res.EndDate.String(),
		StartTime:     res.StartTime.String(),
		EndTime:       res.EndTime.String(),
		TotalHours:    res.TotalHours,
		TotalPrice:    res.TotalPrice,
	}
	if err := p.publish(ctx, TypeReservationCreated, res.ListingID.String(), res.ID.String(), data); err != nil {
		return fmt.Errorf("events.KafkaPublisher.ReservationCreated: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType, key, subject string, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(Envelope{
		SpecVersion:     "1.0",
		ID:              uuid.NewString(),
		Type:            eventType,
		Source:          p.source,
		Subject:         subject,
		Time:            p.now().UTC(),
		DataContentType: "application/json",
		Data:            data,
	})
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("content-type"), Value: []byte("application/cloudevents+json")},
			{Key: []byte("ce_type"), Value: []byte(eventType)},
		},
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	return nil
}

// Close flushes and closes the producer.
func (p *KafkaPublisher) Close() error {
	if p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
