package repository

import (
	"context"
	"fmt"

	"dogbooking/pkg/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (r *mongoRepository) CreateDog(ctx context.Context, dog *model.Dog) (primitive.ObjectID, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.dogs.InsertOne(ctx, dog)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create dog: %w", err)
	}

	return insertedObjectID(result, dog.ID), nil
}
