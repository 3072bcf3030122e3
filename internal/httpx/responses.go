package httpx

import (
	"encoding/json"
	"net/http"

	"bookreviews/internal/usecase"
)

// Response is the single envelope every endpoint answers with. Message is a
// string on most paths and a list of field-violation messages on validation
// failures.
type Response struct {
	Success    bool                `json:"success"`
	Data       any                 `json:"data,omitempty"`
	Message    any                 `json:"message,omitempty"`
	Pagination *usecase.Pagination `json:"pagination,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func JSONSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

func JSONSuccessCreated(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, Response{Success: true, Data: data})
}

// JSONSuccessPage attaches pagination metadata alongside the data slice.
func JSONSuccessPage(w http.ResponseWriter, data any, pagination usecase.Pagination) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: data, Pagination: &pagination})
}

func JSONSuccessMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, Response{Success: true, Message: message})
}

func JSONError(w http.ResponseWriter, statusCode int, message any) {
	writeJSON(w, statusCode, Response{Success: false, Message: message})
}
