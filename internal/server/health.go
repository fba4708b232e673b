package server

import "net/http"

// Healthz always answers 200 with an empty body.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
