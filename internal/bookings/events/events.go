// Package events publishes owner, dog and booking lifecycle events.
package events

import (
	"context"
	"time"

	"dogbooking/pkg/model"
	"dogbooking/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TypeOwnerCreated     = "owner.created"
	TypeDogCreated       = "dog.created"
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"

	SchemaVersion = "1"
)

// Event is a domain event. Key is the hex id of the entity it describes.
type Event struct {
	Type    string
	Key     string
	Payload any
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// OwnerPayload is the stored owner plus its phone in E.164 form when the
// stored value parses as a valid number.
type OwnerPayload struct {
	*model.Owner
	PhoneE164 string `json:"phone_e164,omitempty"`
}

type BookingPayload struct {
	ID                string    `json:"id"`
	OwnerID           string    `json:"owner_id"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	DurationInMinutes int       `json:"duration_in_minutes"`
}

type BookingCancelledPayload struct {
	ID          string    `json:"id"`
	CancelledAt time.Time `json:"cancelled_at"`
}

func OwnerCreated(owner *model.Owner) Event {
	payload := OwnerPayload{Owner: owner}
	if e164, ok := sanitizer.PhoneE164(owner.Phone); ok {
		payload.PhoneE164 = e164
	}
	return Event{Type: TypeOwnerCreated, Key: owner.ID.Hex(), Payload: payload}
}

func DogCreated(dog *model.Dog) Event {
	return Event{Type: TypeDogCreated, Key: dog.ID.Hex(), Payload: dog}
}

func BookingCreated(booking *model.Booking) Event {
	return Event{
		Type: TypeBookingCreated,
		Key:  booking.ID.Hex(),
		Payload: BookingPayload{
			ID:                booking.ID.Hex(),
			OwnerID:           booking.OwnerID.Hex(),
			StartTime:         booking.StartTime,
			EndTime:           booking.EndTime(),
			DurationInMinutes: booking.DurationInMinutes,
		},
	}
}

func BookingCancelled(id primitive.ObjectID, at time.Time) Event {
	return Event{
		Type:    TypeBookingCancelled,
		Key:     id.Hex(),
		Payload: BookingCancelledPayload{ID: id.Hex(), CancelledAt: at.UTC()},
	}
}

type nopPublisher struct{}

// NewNopPublisher returns a Publisher that drops every event.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, Event) error { return nil }

func (nopPublisher) Close() error { return nil }
