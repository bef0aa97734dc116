package service

import (
	"context"

	"dogbooking/internal/bookings/events"
	"dogbooking/pkg/model"
)

func (s *bookingService) CreateOwner(ctx context.Context, req *model.OwnerRequest) (*model.Owner, error) {
	owner, err := s.validator.OwnerFromRequest(req)
	if err != nil {
		return nil, mapError(err, "Owner", "")
	}

	id, err := s.repo.CreateOwner(ctx, owner)
	if err != nil {
		s.cfg.Log.Error("Failed to create owner", "error", err)
		return nil, mapError(err, "Owner", owner.ID.Hex())
	}
	owner.ID = id

	s.cfg.Log.Info("Owner created successfully", "id", id.Hex())
	s.publish(ctx, events.OwnerCreated(owner))
	return owner, nil
}
