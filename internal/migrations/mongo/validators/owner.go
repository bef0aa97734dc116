package validators

import "go.mongodb.org/mongo-driver/bson"

var OwnerValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"phone",
			"address",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"email": bson.M{
				"bsonType": "string",
			},

			"phone": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"address": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},
		},
	},
}
