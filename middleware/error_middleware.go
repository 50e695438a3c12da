package middleware

import (
	"encoding/json"
	"log"
	"net/http"

	"geo-service/utils/errors"
)

// ErrorMiddleware recovers from handler panics and sends a standardized JSON
// response
func ErrorMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Printf("Panic recovered: %v", rec)
					WriteError(w, errors.ErrInternal)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// WriteError writes an APIError as a JSON response. Validation failures are
// written as the bare violation array; every other error keeps the APIError
// shape.
func WriteError(w http.ResponseWriter, err error) {
	apiErr, ok := err.(*errors.APIError)
	if !ok {
		apiErr = errors.Wrap(err, "UNKNOWN_ERROR", "Unexpected error", errors.ErrInternal.Status)
	}
	// Log server errors
	if apiErr.Status >= 500 {
		log.Printf("Server error %s (Details: %s)", apiErr.Error(), apiErr.Details)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	if len(apiErr.Violations) > 0 {
		json.NewEncoder(w).Encode(apiErr.Violations)
		return
	}
	json.NewEncoder(w).Encode(apiErr)
}
