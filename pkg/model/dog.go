package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Dog struct {
	ID      primitive.ObjectID `json:"id" bson:"_id"`
	OwnerID primitive.ObjectID `json:"owner_id" bson:"owner_id"`
	Name    *string            `json:"name,omitempty" bson:"name,omitempty"`
	Age     *int               `json:"age,omitempty" bson:"age,omitempty"`
	Breed   *string            `json:"breed,omitempty" bson:"breed,omitempty"`
}

// DogRequest only requires the owner reference; everything describing the dog is optional.
type DogRequest struct {
	Owner string  `json:"owner"`
	Name  *string `json:"name,omitempty"`
	Age   *int    `json:"age,omitempty" validate:"omitempty,min=0,max=255"`
	Breed *string `json:"breed,omitempty"`
}
