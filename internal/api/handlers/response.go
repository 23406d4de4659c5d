package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Все ответы API используют конверт {"success": bool, ...}:
// транспортный слой назначает статус-коды, текст ошибки отдается как есть

// ErrEmptyBody возвращается при запросе без тела
var ErrEmptyBody = errors.New("handlers: request body is empty")

// errorResponse конверт ответа с ошибкой
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// messageResponse конверт ответа без данных
type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DecodeJSON декодирует тело запроса в v
// Неизвестные поля являются ошибкой, чтобы опечатки в ключах не терялись молча
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("handlers: failed to decode request body: %w", err)
	}
	return nil
}

// RespondJSON пишет v как JSON с указанным статус-кодом
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	// Тело уже не переписать, ошибку кодирования остается только проглотить
	_ = json.NewEncoder(w).Encode(v)
}

// RespondMessage пишет успешный ответ без данных
func RespondMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, messageResponse{Success: true, Message: message})
}

// RespondError пишет ответ с ошибкой в конверте {"success": false, "error": msg}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, errorResponse{Success: false, Error: message})
}

// RespondBadRequest пишет 400 Bad Request
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound пишет 404 Not Found
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict пишет 409 Conflict
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError пишет 500 Internal Server Error
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "internal server error")
}
