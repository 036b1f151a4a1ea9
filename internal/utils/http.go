package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// marshalFailureBody is sent when a response value cannot be encoded.
const marshalFailureBody = `{"detail":"internal server error"}`

// WriteJSON encodes data and writes it with statusCode. If data cannot be
// encoded the client gets a 500 with a {"detail": ...} body instead and the
// encoding error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("error encoding JSON response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return w.Write(body)
}

// WriteText writes body verbatim as text/plain with an explicit length.
func WriteText(w http.ResponseWriter, body string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(statusCode)
	return w.Write([]byte(body))
}
