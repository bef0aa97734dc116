package service

import (
	"context"
	"time"

	"dogbooking/internal/bookings/events"
	"dogbooking/internal/bookings/validator"
	"dogbooking/pkg/model"
)

func (s *bookingService) CreateBooking(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	booking, err := s.validator.BookingFromRequest(req)
	if err != nil {
		return nil, mapError(err, "Booking", "")
	}

	id, err := s.repo.CreateBooking(ctx, booking)
	if err != nil {
		s.cfg.Log.Error("Failed to create booking", "owner_id", booking.OwnerID.Hex(), "error", err)
		return nil, mapError(err, "Booking", booking.ID.Hex())
	}
	booking.ID = id

	s.cfg.Log.Info("Booking created successfully",
		"id", id.Hex(),
		"owner_id", booking.OwnerID.Hex(),
		"start_time", booking.StartTime,
		"duration_in_minutes", booking.DurationInMinutes,
	)
	s.publish(ctx, events.BookingCreated(booking))
	return booking, nil
}

// CancelBooking is idempotent: cancelling an already cancelled booking succeeds.
func (s *bookingService) CancelBooking(ctx context.Context, id string) error {
	bookingID, err := validator.ParseID(id)
	if err != nil {
		return mapError(err, "Booking", id)
	}

	if err := s.repo.CancelBooking(ctx, bookingID); err != nil {
		s.cfg.Log.Warn("Failed to cancel booking", "id", id, "error", err)
		return mapError(err, "Booking", id)
	}

	s.cfg.Log.Info("Booking cancelled", "id", id)
	s.publish(ctx, events.BookingCancelled(bookingID, s.now()))
	return nil
}

// GetUpcoming returns active bookings starting at or after now, each joined with
// its owner and the owner's dogs.
func (s *bookingService) GetUpcoming(ctx context.Context, now time.Time) ([]*model.FullBooking, error) {
	if now.IsZero() {
		now = ceilMillisecond(s.now())
	}

	bookings, err := s.repo.FindUpcomingBookings(ctx, now)
	if err != nil {
		s.cfg.Log.Error("Failed to query upcoming bookings", "now", now, "error", err)
		return nil, mapError(err, "upcoming bookings", "")
	}

	return bookings, nil
}

// ceilMillisecond rounds t up to the next millisecond, the precision of a stored
// start_time. A booking stored at floor_ms(t) started before t and is not upcoming.
func ceilMillisecond(t time.Time) time.Time {
	truncated := t.Truncate(time.Millisecond)
	if truncated.Equal(t) {
		return t
	}
	return truncated.Add(time.Millisecond)
}
