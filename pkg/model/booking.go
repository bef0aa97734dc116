package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MinDurationInMinutes = 1
	MaxDurationInMinutes = 255
)

type Booking struct {
	ID                primitive.ObjectID `json:"id" bson:"_id"`
	OwnerID           primitive.ObjectID `json:"owner_id" bson:"owner_id"`
	StartTime         time.Time          `json:"start_time" bson:"start_time"`
	DurationInMinutes int                `json:"duration_in_minutes" bson:"duration_in_minutes"`
	Cancelled         bool               `json:"cancelled" bson:"cancelled"`
}

// BookingRequest carries untrusted input; Owner and StartTime are parsed, never trusted.
// New bookings always start active, so there is no Cancelled field.
type BookingRequest struct {
	Owner             string `json:"owner"`
	StartTime         string `json:"start_time"`
	DurationInMinutes int    `json:"duration_in_minutes" validate:"required,min=1,max=255"`
}

// FullBooking is the read-side projection of a booking joined with its owner and the owner's dogs.
// It is never persisted.
type FullBooking struct {
	ID                primitive.ObjectID `json:"id" bson:"_id"`
	OwnerID           primitive.ObjectID `json:"owner_id" bson:"owner_id"`
	Owner             *Owner             `json:"owner,omitempty" bson:"owner,omitempty"`
	Dogs              []Dog              `json:"dogs" bson:"dogs"`
	StartTime         time.Time          `json:"start_time" bson:"start_time"`
	DurationInMinutes int                `json:"duration_in_minutes" bson:"duration_in_minutes"`
	Cancelled         bool               `json:"cancelled" bson:"cancelled"`
}

func (b *Booking) EndTime() time.Time {
	return b.StartTime.Add(time.Duration(b.DurationInMinutes) * time.Minute)
}
