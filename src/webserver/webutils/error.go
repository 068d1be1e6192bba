// Package webutils contains the JSON response helpers shared by the HTTP
// handlers.
package webutils

import (
	"encoding/json"
	"log"
	"net/http"
)

// JSONError writes a JSON object with an error message and sets the HTTP status code.
func JSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	resp := jsonErrorMessage{
		Error: message,
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(&resp); err != nil {
		log.Printf("error writing JSON error body: %s", err)
	}
}

type jsonErrorMessage struct {
	Error string `json:"error"`
}

// JSONResponse writes v as the JSON body of a 200 OK response.
func JSONResponse(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		log.Printf("error writing JSON response: %s", err)
	}
}
