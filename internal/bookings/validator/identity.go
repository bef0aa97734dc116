package validator

import (
	"fmt"
	"time"

	bookingserrors "dogbooking/internal/bookings/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID decodes a 24 character hex string into an ObjectID.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", bookingserrors.ErrInvalidIdentifier, s)
	}
	return id, nil
}

// ParseStartTime parses an RFC 3339 timestamp and normalizes it to UTC.
// The result is truncated to milliseconds, the precision of a BSON datetime, so the
// value handed back to callers is exactly the value that gets stored.
func ParseStartTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q must be RFC3339", bookingserrors.ErrInvalidTimestamp, s)
	}
	return t.UTC().Truncate(time.Millisecond), nil
}
