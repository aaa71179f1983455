package app

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	r.Handle("/", http.RedirectHandler("/presence_weekday.html", http.StatusFound)).Methods("GET")

	// Users
	r.HandleFunc("/api/v1/users", deps.UserHandler.GetAvailableUsers).Methods("GET")
	r.HandleFunc("/api/v1/users/{userId}", deps.UserHandler.GetUser).Methods("GET")

	// Presence statistics
	r.HandleFunc("/api/v1/mean_time_weekday/{userId}", deps.PresenceHandler.MeanTimeWeekday).Methods("GET")
	r.HandleFunc("/api/v1/presence_weekday/{userId}", deps.PresenceHandler.PresenceWeekday).Methods("GET")
	r.HandleFunc("/api/v1/presence_start_end/{userId}", deps.PresenceHandler.PresenceStartEnd).Methods("GET")
	r.HandleFunc("/api/v1/reload", deps.PresenceHandler.Reload).Methods("POST")
}
