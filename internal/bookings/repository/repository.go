package repository

import (
	"context"
	"time"

	"dogbooking/pkg/config"
	"dogbooking/pkg/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	BookingCollectionName = "booking"
	DogCollectionName     = "dog"
	OwnerCollectionName   = "owner"
)

// Repository owns the owner, dog and booking collections.
type Repository interface {
	CreateOwner(ctx context.Context, owner *model.Owner) (primitive.ObjectID, error)
	CreateDog(ctx context.Context, dog *model.Dog) (primitive.ObjectID, error)
	CreateBooking(ctx context.Context, booking *model.Booking) (primitive.ObjectID, error)
	CancelBooking(ctx context.Context, id primitive.ObjectID) error
	FindUpcomingBookings(ctx context.Context, now time.Time) ([]*model.FullBooking, error)
}

// mongoRepository only holds collection handles, so one instance can be shared by every request.
type mongoRepository struct {
	cfg      *config.Config
	bookings *mongo.Collection
	dogs     *mongo.Collection
	owners   *mongo.Collection
}

func NewMongoRepository(cfg *config.Config, db *mongo.Database) Repository {
	return &mongoRepository{
		cfg:      cfg,
		bookings: db.Collection(BookingCollectionName),
		dogs:     db.Collection(DogCollectionName),
		owners:   db.Collection(OwnerCollectionName),
	}
}

// withTimeout bounds a store call by timeout, or by the caller's deadline when that is sooner.
func (r *mongoRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Until(deadline) < timeout {
		return context.WithDeadline(ctx, deadline)
	}

	return context.WithTimeout(ctx, timeout)
}

func insertedObjectID(result *mongo.InsertOneResult, fallback primitive.ObjectID) primitive.ObjectID {
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid
	}
	return fallback
}
