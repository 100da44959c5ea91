package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/apex/log"
)

var (
	errBodyTooLarge = errors.New("request body is too large")
	errInvalidJSON  = errors.New("request body must be a JSON object")
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	if status == 0 {
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Error("Failed to write JSON response")
	}
}

func readJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, target interface{}) (int, error) {
	body := r.Body
	if maxBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	decoder := json.NewDecoder(body)
	if err := decoder.Decode(target); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return http.StatusRequestEntityTooLarge, errBodyTooLarge
		}

		return http.StatusBadRequest, errInvalidJSON
	}

	// a second value after the object means the body is not a single JSON object
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return http.StatusRequestEntityTooLarge, errBodyTooLarge
		}

		return http.StatusBadRequest, errInvalidJSON
	}

	return http.StatusOK, nil
}
