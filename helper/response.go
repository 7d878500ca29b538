package helper

import (
	"encoding/json"
	"errors"
	"net/http"
)

func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// StatusFor maps the error taxonomy onto HTTP status codes.
func StatusFor(err error) int {
	var ve ValidationError
	var nf NotFoundError
	switch {
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity
	case errors.As(err, &nf):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders err as {"success": false, "message": ...}. Infrastructure
// failures get a generic message so driver details do not leak to clients.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	body := map[string]interface{}{
		"success": false,
	}

	var ve ValidationError
	switch {
	case errors.As(err, &ve):
		body["message"] = ve.Message
		body["field"] = ve.Field
	case status == http.StatusNotFound:
		body["message"] = err.Error()
	default:
		body["message"] = "Internal server error"
	}

	WriteJSON(w, status, body)
}
