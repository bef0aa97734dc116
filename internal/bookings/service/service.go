package service

import (
	"context"
	"errors"
	"time"

	bookingserrors "dogbooking/internal/bookings/errors"
	"dogbooking/internal/bookings/events"
	"dogbooking/internal/bookings/repository"
	"dogbooking/internal/bookings/validator"
	"dogbooking/pkg/config"
	apperrors "dogbooking/pkg/errors"
	"dogbooking/pkg/model"
)

type BookingService interface {
	CreateOwner(ctx context.Context, req *model.OwnerRequest) (*model.Owner, error)
	CreateDog(ctx context.Context, req *model.DogRequest) (*model.Dog, error)
	CreateBooking(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)
	CancelBooking(ctx context.Context, id string) error
	GetUpcoming(ctx context.Context, now time.Time) ([]*model.FullBooking, error)
}

type bookingService struct {
	repo      repository.Repository
	validator *validator.RequestValidator
	publisher events.Publisher
	cfg       *config.Config
	now       func() time.Time
}

func NewBookingService(
	repo repository.Repository,
	validator *validator.RequestValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	if publisher == nil {
		publisher = events.NewNopPublisher()
	}
	return &bookingService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

// mapError translates converter and repository failures into application errors.
func mapError(err error, resource, id string) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return apperrors.Validation("Validation failed", map[string]any{"errors": validationErrs})
	}

	switch {
	case errors.Is(err, bookingserrors.ErrInvalidIdentifier):
		return apperrors.InvalidInput("Invalid identifier", err)
	case errors.Is(err, bookingserrors.ErrInvalidTimestamp):
		return apperrors.InvalidInput("Invalid start_time, expected RFC3339", err)
	case errors.Is(err, bookingserrors.ErrNotFound):
		return apperrors.NotFoundWithID(resource, id)
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.Timeout("Database operation timed out", err)
	default:
		return apperrors.Internal("Failed to process "+resource, err)
	}
}

// publish logs and swallows event failures; the write they describe has already happened.
func (s *bookingService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.cfg.Log.Warn("Failed to publish domain event",
			"event_type", event.Type,
			"key", event.Key,
			"error", err,
		)
	}
}
