package routes

import (
	"pairwave_server/controllers"
	"pairwave_server/services"

	"github.com/gorilla/mux"
)

// RegisterCallRoutes sets up the call-history routes under /api/calls
func RegisterCallRoutes(r *mux.Router, callRecordService *services.CallRecordService) {
	controller := controllers.NewCallRecordController(callRecordService)

	callRouter := r.PathPrefix("/api/calls").Subrouter()
	callRouter.HandleFunc("/{userId}", controller.GetCallHistory).Methods("GET")
}
