package validators

import "go.mongodb.org/mongo-driver/bson"

var DogValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"owner_id"},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"owner_id": bson.M{
				"bsonType": "objectId",
			},

			"name": bson.M{
				"bsonType": "string",
			},

			"age": bson.M{
				"bsonType": bson.A{"int", "long"},
				"minimum":  0,
				"maximum":  255,
			},

			"breed": bson.M{
				"bsonType": "string",
			},
		},
	},
}
