package handler

import "net/http"

// Health handles GET /api. It confirms the service is up; the body is the
// bare JSON string "OK".
func Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, "OK")
}
