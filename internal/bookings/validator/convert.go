package validator

import (
	"dogbooking/pkg/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OwnerFromRequest copies the request verbatim. Only presence of name, phone and
// address is checked.
func (v *RequestValidator) OwnerFromRequest(req *model.OwnerRequest) (*model.Owner, error) {
	if err := v.validateStruct(req); err != nil {
		return nil, err
	}

	return &model.Owner{
		ID:      primitive.NewObjectID(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}, nil
}

func (v *RequestValidator) DogFromRequest(req *model.DogRequest) (*model.Dog, error) {
	ownerID, err := ParseID(req.Owner)
	if err != nil {
		return nil, err
	}
	if err := v.validateStruct(req); err != nil {
		return nil, err
	}

	return &model.Dog{
		ID:      primitive.NewObjectID(),
		OwnerID: ownerID,
		Name:    req.Name,
		Age:     req.Age,
		Breed:   req.Breed,
	}, nil
}

// BookingFromRequest checks the owner reference first, then the start time, then the
// remaining fields. Whether the owner exists is not checked here.
func (v *RequestValidator) BookingFromRequest(req *model.BookingRequest) (*model.Booking, error) {
	ownerID, err := ParseID(req.Owner)
	if err != nil {
		return nil, err
	}
	startTime, err := ParseStartTime(req.StartTime)
	if err != nil {
		return nil, err
	}
	if err := v.validateStruct(req); err != nil {
		return nil, err
	}

	return &model.Booking{
		ID:                primitive.NewObjectID(),
		OwnerID:           ownerID,
		StartTime:         startTime,
		DurationInMinutes: req.DurationInMinutes,
		Cancelled:         false,
	}, nil
}
