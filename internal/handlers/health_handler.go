package handlers

import (
	"net/http"

	"lawmanBack/internal/models"
)

const livenessMessage = "Law-man server is running"

// Liveness answers GET requests on any path the router does not know.
// Other methods get a 404 envelope.
func Liveness(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		WriteEnvelope(w, http.StatusNotFound, models.Bad("Route Not Found."))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = w.Write([]byte(livenessMessage))
	}
}
