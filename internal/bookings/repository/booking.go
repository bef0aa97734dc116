package repository

import (
	"context"
	"fmt"
	"time"

	bookingserrors "dogbooking/internal/bookings/errors"
	"dogbooking/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (r *mongoRepository) CreateBooking(ctx context.Context, booking *model.Booking) (primitive.ObjectID, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.bookings.InsertOne(ctx, booking)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create booking: %w", err)
	}

	return insertedObjectID(result, booking.ID), nil
}

// CancelBooking flags the booking as cancelled. Cancelling twice matches the document
// without modifying it and still succeeds.
func (r *mongoRepository) CancelBooking(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"cancelled": true}}

	result, err := r.bookings.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	if result.MatchedCount == 0 {
		return bookingserrors.ErrNotFound
	}

	return nil
}

func (r *mongoRepository) FindUpcomingBookings(ctx context.Context, now time.Time) ([]*model.FullBooking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.bookings.Aggregate(ctx, upcomingBookingsPipeline(now))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := make([]*model.FullBooking, 0)
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	for _, b := range bookings {
		if b.Dogs == nil {
			b.Dogs = []model.Dog{}
		}
	}

	return bookings, nil
}
