package server

import (
	"net/http"

	"sam-audio-server/src/application/separation"
)

type handler struct {
	separator       Separator
	reporter        HealthReporter
	maxRequestBytes int64
}

func (h handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.reporter.Status())
}

func (h handler) separateTarget(w http.ResponseWriter, r *http.Request) {
	var request separation.Request
	if !h.readRequest(w, r, &request) {
		return
	}

	response := h.separator.SeparateTarget(r.Context(), request)
	writeJSON(w, response.StatusCode, response)
}

func (h handler) separateResidual(w http.ResponseWriter, r *http.Request) {
	var request separation.Request
	if !h.readRequest(w, r, &request) {
		return
	}

	response := h.separator.SeparateResidual(r.Context(), request)
	writeJSON(w, response.StatusCode, response)
}

func (h handler) readRequest(w http.ResponseWriter, r *http.Request, request *separation.Request) bool {
	status, err := readJSON(w, r, h.maxRequestBytes, request)
	if err != nil {
		writeJSON(w, status, separation.Response{
			Success: false,
			Error:   err.Error(),
		})
		return false
	}

	return true
}
