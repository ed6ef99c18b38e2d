package utils

import (
	"encoding/json"
	"net/http"

	"github.com/petrosTsatsis/KilogBackend/internal/logger"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

// Error responds with message and logs the underlying cause. The cause never
// reaches the wire.
func Error(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		logger.Error("[%d] %s: %v", status, message, err)
	} else {
		logger.Error("[%d] %s", status, message)
	}
	JSON(w, status, APIResponse{Success: false, Error: message})
}

func ErrorSimple(w http.ResponseWriter, status int, message string) {
	Error(w, status, message, nil)
}

func Message(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Message: msg})
}
