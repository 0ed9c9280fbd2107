package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"pairwave_server/services"

	"github.com/gorilla/mux"
)

// CallRecordController serves the call-history ledger
type CallRecordController struct {
	CallRecordService *services.CallRecordService
}

// NewCallRecordController creates a new instance of CallRecordController
func NewCallRecordController(callRecordService *services.CallRecordService) *CallRecordController {
	return &CallRecordController{CallRecordService: callRecordService}
}

// GetCallHistory returns every call record naming the user, newest first
func (c *CallRecordController) GetCallHistory(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	records, err := c.CallRecordService.GetCallsForUser(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to fetch call history for %s: %v\n", userID, err)
		http.Error(w, "Failed to fetch call history", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"calls": records,
	})
}
