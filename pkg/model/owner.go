package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Owner struct {
	ID      primitive.ObjectID `json:"id" bson:"_id"`
	Name    string             `json:"name" bson:"name"`
	Email   *string            `json:"email,omitempty" bson:"email,omitempty"`
	Phone   string             `json:"phone" bson:"phone"`
	Address string             `json:"address" bson:"address"`
}

type OwnerRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   *string `json:"email,omitempty" validate:"omitempty"`
	Phone   string  `json:"phone" validate:"required"`
	Address string  `json:"address" validate:"required"`
}
