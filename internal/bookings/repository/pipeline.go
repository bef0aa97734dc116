package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// upcomingBookingsPipeline selects active bookings starting at or after now and joins
// them with their owner and the owner's dogs.
//
// The $unwind drops bookings whose owner does not resolve; the dog $lookup keeps
// bookings with an empty dogs array. No $sort stage: results come back in the
// natural order of the match.
func upcomingBookingsPipeline(now time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "cancelled", Value: false},
			{Key: "start_time", Value: bson.D{{Key: "$gte", Value: now.UTC()}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: OwnerCollectionName},
			{Key: "localField", Value: "owner_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$owner"},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: DogCollectionName},
			{Key: "localField", Value: "owner._id"},
			{Key: "foreignField", Value: "owner_id"},
			{Key: "as", Value: "dogs"},
		}}},
	}
}
