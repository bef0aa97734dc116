package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	bookingserrors "dogbooking/internal/bookings/errors"
	"dogbooking/internal/bookings/repository"
	"dogbooking/pkg/config"
	"dogbooking/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 3 * time.Second

// newTestDatabase connects to MONGO_URI and returns a throwaway database.
// Without MONGO_URI it tries the local default and skips when nothing answers.
// An explicit MONGO_URI that cannot be reached fails the test.
func newTestDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping Mongo integration test in short mode")
	}

	uri, explicit := os.LookupEnv(config.EnvMongoURI)
	if uri == "" {
		uri, explicit = config.DefaultMongoURI, false
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerSelectionTimeout(connectTimeout))
	require.NoError(t, err)
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		if explicit {
			t.Fatalf("MongoDB not reachable at %s=%s: %v", config.EnvMongoURI, uri, err)
		}
		t.Skipf("MongoDB not reachable at %s: %v", uri, err)
	}

	db := client.Database("dog_booking_test_" + primitive.NewObjectID().Hex())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Drop(ctx); err != nil {
			t.Logf("warning: failed to drop %s: %v", db.Name(), err)
		}
		_ = client.Disconnect(ctx)
	})
	return db
}

func strPtr(s string) *string { return &s }

func TestMongoRepository_UpcomingBookings(t *testing.T) {
	db := newTestDatabase(t)
	repo := repository.NewMongoRepository(&config.Config{ReadTimeout: 5 * time.Second, WriteTimeout: 5 * time.Second}, db)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Millisecond)
	future := now.Add(24 * time.Hour)

	withDogs := &model.Owner{ID: primitive.NewObjectID(), Name: "Ada", Phone: "+16502530000", Address: "1 Analytical Way"}
	withoutDogs := &model.Owner{ID: primitive.NewObjectID(), Name: "Grace", Phone: "+16502530001", Address: "2 Compiler Rd"}
	for _, owner := range []*model.Owner{withDogs, withoutDogs} {
		_, err := repo.CreateOwner(ctx, owner)
		require.NoError(t, err)
	}

	rex := &model.Dog{ID: primitive.NewObjectID(), OwnerID: withDogs.ID, Name: strPtr("Rex")}
	fido := &model.Dog{ID: primitive.NewObjectID(), OwnerID: withDogs.ID, Name: strPtr("Fido")}
	for _, dog := range []*model.Dog{rex, fido} {
		_, err := repo.CreateDog(ctx, dog)
		require.NoError(t, err)
	}

	active := &model.Booking{ID: primitive.NewObjectID(), OwnerID: withDogs.ID, StartTime: future, DurationInMinutes: 60}
	noDogs := &model.Booking{ID: primitive.NewObjectID(), OwnerID: withoutDogs.ID, StartTime: future.Add(time.Hour), DurationInMinutes: 30}
	past := &model.Booking{ID: primitive.NewObjectID(), OwnerID: withDogs.ID, StartTime: now.Add(-time.Hour), DurationInMinutes: 30}
	cancelled := &model.Booking{ID: primitive.NewObjectID(), OwnerID: withDogs.ID, StartTime: future, DurationInMinutes: 30, Cancelled: true}
	orphan := &model.Booking{ID: primitive.NewObjectID(), OwnerID: primitive.NewObjectID(), StartTime: future, DurationInMinutes: 30}
	for _, booking := range []*model.Booking{active, noDogs, past, cancelled, orphan} {
		id, err := repo.CreateBooking(ctx, booking)
		require.NoError(t, err)
		require.Equal(t, booking.ID, id)
	}

	upcoming, err := repo.FindUpcomingBookings(ctx, now)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)

	byID := make(map[primitive.ObjectID]*model.FullBooking, len(upcoming))
	for _, b := range upcoming {
		byID[b.ID] = b
	}

	got := byID[active.ID]
	require.NotNil(t, got, "active booking missing from results")
	assert.Equal(t, withDogs.ID, got.OwnerID)
	assert.True(t, got.StartTime.Equal(future))
	assert.Equal(t, 60, got.DurationInMinutes)
	assert.False(t, got.Cancelled)
	require.NotNil(t, got.Owner)
	assert.Equal(t, "Ada", got.Owner.Name)
	require.Len(t, got.Dogs, 2)
	assert.ElementsMatch(t, []primitive.ObjectID{rex.ID, fido.ID}, []primitive.ObjectID{got.Dogs[0].ID, got.Dogs[1].ID})

	got = byID[noDogs.ID]
	require.NotNil(t, got, "booking of owner without dogs missing from results")
	assert.NotNil(t, got.Dogs)
	assert.Empty(t, got.Dogs)

	require.NoError(t, repo.CancelBooking(ctx, active.ID))
	require.NoError(t, repo.CancelBooking(ctx, active.ID), "cancel must be idempotent")
	require.ErrorIs(t, repo.CancelBooking(ctx, primitive.NewObjectID()), bookingserrors.ErrNotFound)

	upcoming, err = repo.FindUpcomingBookings(ctx, now)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, noDogs.ID, upcoming[0].ID)
}

func TestMongoRepository_BoundaryIsInclusive(t *testing.T) {
	db := newTestDatabase(t)
	repo := repository.NewMongoRepository(&config.Config{ReadTimeout: 5 * time.Second, WriteTimeout: 5 * time.Second}, db)
	ctx := context.Background()

	owner := &model.Owner{ID: primitive.NewObjectID(), Name: "Ada", Phone: "+16502530000", Address: "1 Way"}
	_, err := repo.CreateOwner(ctx, owner)
	require.NoError(t, err)

	start := time.Date(2031, 3, 1, 9, 0, 0, 0, time.UTC)
	booking := &model.Booking{ID: primitive.NewObjectID(), OwnerID: owner.ID, StartTime: start, DurationInMinutes: 15}
	_, err = repo.CreateBooking(ctx, booking)
	require.NoError(t, err)

	upcoming, err := repo.FindUpcomingBookings(ctx, start)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)

	upcoming, err = repo.FindUpcomingBookings(ctx, start.Add(time.Millisecond))
	require.NoError(t, err)
	assert.Empty(t, upcoming)
	assert.NotNil(t, upcoming)
}
