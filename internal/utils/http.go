package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// MaxJSONBodySize caps the request bodies accepted by ReadJSON.
const MaxJSONBodySize = 1 << 20

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.Response{Success: true, Message: "Users found."}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ReadJSON decodes a single JSON value from the request body into dst.
//
// The body is limited to MaxJSONBodySize bytes. An empty body, a body with
// trailing data after the first value, or a body that does not match dst
// returns an error.
func ReadJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxJSONBodySize))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("error decoding request body: %w", err)
	}

	if _, err := decoder.Token(); err != io.EOF {
		return fmt.Errorf("error decoding request body: unexpected data after JSON value")
	}

	return nil
}
