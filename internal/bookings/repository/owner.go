package repository

import (
	"context"
	"fmt"

	"dogbooking/pkg/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (r *mongoRepository) CreateOwner(ctx context.Context, owner *model.Owner) (primitive.ObjectID, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.owners.InsertOne(ctx, owner)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create owner: %w", err)
	}

	return insertedObjectID(result, owner.ID), nil
}
