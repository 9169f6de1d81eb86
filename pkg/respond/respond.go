package respond

import (
	"encoding/json"
	"net/http"
)

// ErrorBody - машиночитаемый код плюс сообщение для человека
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	JSON(w, r, status, map[string]ErrorBody{"error": {Code: code, Message: message}})
}
