package mongo

import (
	"context"
	"fmt"

	"dogbooking/internal/bookings/repository"
	"dogbooking/internal/migrations/mongo/validators"
	"dogbooking/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	OwnerIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "phone", Value: 1}}},
	}

	DogIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}

	// first index serves the upcoming bookings $match stage
	BookingIndexes = []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "cancelled", Value: 1},
			{Key: "start_time", Value: 1},
		}},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}
)

type collectionDefinition struct {
	Name      string
	Indexes   []mongo.IndexModel
	Validator bson.M
}

func collectionDefinitions() []collectionDefinition {
	return []collectionDefinition{
		{Name: repository.OwnerCollectionName, Indexes: OwnerIndexes, Validator: validators.OwnerValidator},
		{Name: repository.DogCollectionName, Indexes: DogIndexes, Validator: validators.DogValidator},
		{Name: repository.BookingCollectionName, Indexes: BookingIndexes, Validator: validators.BookingValidator},
	}
}

// RunMigration creates the owner, dog and booking collections with their schema
// validators and indexes. Running it again only refreshes validators and indexes.
func RunMigration(ctx context.Context, db *mongo.Database, log *logger.Logger) error {
	log.Info("Running Mongo migrations", "database", db.Name())

	for _, def := range collectionDefinitions() {
		if err := ensureCollection(ctx, db, def.Name, def.Validator, log); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", def.Name, err)
		}
		if err := ensureIndexes(ctx, db, def.Name, def.Indexes, log); err != nil {
			return fmt.Errorf("failed to ensure indexes for %s: %w", def.Name, err)
		}
	}

	log.Info("All migrations applied successfully", "database", db.Name())
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M, log *logger.Logger) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		log.Info("Creating collection", "collection", name)
		opts := options.CreateCollection().SetValidator(validator)
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed creating %s: %w", name, err)
		}
		return nil
	}

	log.Info("Collection already exists, updating validator", "collection", name)
	command := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
	}
	if err := db.RunCommand(ctx, command).Err(); err != nil {
		log.Warn("Failed updating validator", "collection", name, "error", err)
	}

	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, name string, models []mongo.IndexModel, log *logger.Logger) error {
	names, err := db.Collection(name).Indexes().CreateMany(ctx, models)
	if err != nil {
		return err
	}
	log.Info("Ensured indexes", "collection", name, "indexes", names)
	return nil
}
