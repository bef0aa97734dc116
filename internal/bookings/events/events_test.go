package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dogbooking/pkg/kafka"
	"dogbooking/pkg/middleware"
	"dogbooking/pkg/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockProducer struct {
	PublishFunc func(ctx context.Context, msg kafka.Message) error
	published   []kafka.Message
	closed      bool
}

func (m *mockProducer) Publish(ctx context.Context, msg kafka.Message) error {
	m.published = append(m.published, msg)
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, msg)
	}
	return nil
}

func (m *mockProducer) Close() error {
	m.closed = true
	return nil
}

func TestBookingCreated(t *testing.T) {
	start := time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)
	booking := &model.Booking{
		ID:                primitive.NewObjectID(),
		OwnerID:           primitive.NewObjectID(),
		StartTime:         start,
		DurationInMinutes: 45,
	}

	event := BookingCreated(booking)

	if event.Type != TypeBookingCreated {
		t.Errorf("type = %q", event.Type)
	}
	if event.Key != booking.ID.Hex() {
		t.Errorf("key = %q, want %q", event.Key, booking.ID.Hex())
	}
	payload, ok := event.Payload.(BookingPayload)
	if !ok {
		t.Fatalf("payload type = %T", event.Payload)
	}
	if !payload.EndTime.Equal(start.Add(45 * time.Minute)) {
		t.Errorf("end time = %v", payload.EndTime)
	}
	if payload.OwnerID != booking.OwnerID.Hex() {
		t.Errorf("owner id = %q", payload.OwnerID)
	}
}

func TestOwnerCreated_PhoneE164(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		wantE164 string
	}{
		{"national format", "(650) 253-0000", "+16502530000"},
		{"unparseable", "ring the bell", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner := &model.Owner{ID: primitive.NewObjectID(), Name: "Jane  Doe", Phone: tt.phone, Address: "12\tBark  Lane"}

			event := OwnerCreated(owner)

			payload, ok := event.Payload.(OwnerPayload)
			if !ok {
				t.Fatalf("payload type = %T", event.Payload)
			}
			if payload.PhoneE164 != tt.wantE164 {
				t.Errorf("phone_e164 = %q, want %q", payload.PhoneE164, tt.wantE164)
			}
			if owner.Phone != tt.phone || owner.Name != "Jane  Doe" {
				t.Error("owner must not be modified")
			}

			data, err := json.Marshal(payload)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			var decoded map[string]any
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if decoded["phone"] != tt.phone {
				t.Errorf("phone = %v, want stored value %q", decoded["phone"], tt.phone)
			}
		})
	}
}

func TestEntityKeys(t *testing.T) {
	owner := &model.Owner{ID: primitive.NewObjectID(), Name: "Ada"}
	dog := &model.Dog{ID: primitive.NewObjectID(), OwnerID: owner.ID}
	id := primitive.NewObjectID()

	tests := []struct {
		name     string
		event    Event
		wantType string
		wantKey  string
	}{
		{"owner", OwnerCreated(owner), TypeOwnerCreated, owner.ID.Hex()},
		{"dog", DogCreated(dog), TypeDogCreated, dog.ID.Hex()},
		{"cancel", BookingCancelled(id, time.Now()), TypeBookingCancelled, id.Hex()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.event.Type != tt.wantType || tt.event.Key != tt.wantKey {
				t.Errorf("got (%q, %q), want (%q, %q)", tt.event.Type, tt.event.Key, tt.wantType, tt.wantKey)
			}
		})
	}
}

func TestKafkaPublisher_Publish(t *testing.T) {
	producer := &mockProducer{}
	pub := newKafkaPublisher(producer)

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-1")
	id := primitive.NewObjectID()
	if err := pub.Publish(ctx, BookingCancelled(id, time.Now())); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if len(producer.published) != 1 {
		t.Fatalf("expected 1 message, got %d", len(producer.published))
	}
	msg := producer.published[0]
	if msg.Key != id.Hex() {
		t.Errorf("key = %q", msg.Key)
	}
	if msg.GetEventType() != TypeBookingCancelled {
		t.Errorf("event type = %q", msg.GetEventType())
	}
	if msg.GetCorrelationID() != "req-1" {
		t.Errorf("correlation id = %q", msg.GetCorrelationID())
	}

	var payload BookingCancelledPayload
	if err := msg.DecodeValue(&payload); err != nil {
		t.Fatalf("DecodeValue() error = %v", err)
	}
	if payload.ID != id.Hex() {
		t.Errorf("payload id = %q", payload.ID)
	}
}

func TestKafkaPublisher_PublishError(t *testing.T) {
	brokerErr := errors.New("broker unavailable")
	pub := newKafkaPublisher(&mockProducer{
		PublishFunc: func(ctx context.Context, msg kafka.Message) error { return brokerErr },
	})

	err := pub.Publish(context.Background(), OwnerCreated(&model.Owner{ID: primitive.NewObjectID()}))
	if !errors.Is(err, brokerErr) {
		t.Errorf("expected wrapped broker error, got %v", err)
	}
}

func TestKafkaPublisher_Close(t *testing.T) {
	producer := &mockProducer{}
	if err := newKafkaPublisher(producer).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !producer.closed {
		t.Error("expected producer to be closed")
	}
}

func TestNopPublisher(t *testing.T) {
	pub := NewNopPublisher()
	if err := pub.Publish(context.Background(), Event{Type: TypeOwnerCreated}); err != nil {
		t.Errorf("Publish() error = %v", err)
	}
	if err := pub.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
