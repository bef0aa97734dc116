package validators

import (
	"dogbooking/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
)

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"owner_id",
			"start_time",
			"duration_in_minutes",
			"cancelled",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"owner_id": bson.M{
				"bsonType": "objectId",
			},

			"start_time": bson.M{
				"bsonType": "date",
			},

			"duration_in_minutes": bson.M{
				"bsonType": bson.A{"int", "long"},
				"minimum":  model.MinDurationInMinutes,
				"maximum":  model.MaxDurationInMinutes,
			},

			"cancelled": bson.M{
				"bsonType": "bool",
			},
		},
	},
}
