package service

import (
	"context"

	"dogbooking/internal/bookings/events"
	"dogbooking/pkg/model"
)

func (s *bookingService) CreateDog(ctx context.Context, req *model.DogRequest) (*model.Dog, error) {
	dog, err := s.validator.DogFromRequest(req)
	if err != nil {
		return nil, mapError(err, "Dog", "")
	}

	id, err := s.repo.CreateDog(ctx, dog)
	if err != nil {
		s.cfg.Log.Error("Failed to create dog", "owner_id", dog.OwnerID.Hex(), "error", err)
		return nil, mapError(err, "Dog", dog.ID.Hex())
	}
	dog.ID = id

	s.cfg.Log.Info("Dog created successfully", "id", id.Hex(), "owner_id", dog.OwnerID.Hex())
	s.publish(ctx, events.DogCreated(dog))
	return dog, nil
}
