package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-server/models"
)

// WriteJSON serializes data to JSON and writes it to the HTTP response
// with the given status code and "Content-Type: application/json".
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Returns the number of bytes written to the response body.
//
// Example usage:
//
//	WriteJSON(w, user.Public(), http.StatusCreated)
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

// WriteMessage writes a {"message": msg} body with the given status code.
// Every error response and the logout confirmation use this shape.
func WriteMessage(w http.ResponseWriter, msg string, statusCode int) (int, error) {
	return WriteJSON(w, models.MessageResponse{Message: msg}, statusCode)
}
