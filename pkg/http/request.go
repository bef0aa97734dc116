package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	apperrors "dogbooking/pkg/errors"
)

// DecodeJSON reads a single JSON document from the request body into v.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return apperrors.InvalidInput("Request body is required", nil)
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return apperrors.New(apperrors.CodeInvalidInput,
				fmt.Sprintf("Request body exceeds %d bytes", maxBytesErr.Limit),
				http.StatusRequestEntityTooLarge,
			)
		}
		return apperrors.InvalidInput("Invalid request body", err)
	}
	return nil
}
