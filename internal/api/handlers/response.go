package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes ограничение размера тела запроса
const MaxBodyBytes = 1 << 20

var (
	// ErrEmptyBody тело запроса отсутствует или пустое
	ErrEmptyBody = errors.New("empty request body")

	// ErrBodyTooLarge тело запроса больше MaxBodyBytes
	ErrBodyTooLarge = errors.New("request body too large")
)

// ErrorResponse формат ответа с ошибкой
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError отправляет ответ с ошибкой
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondErrorDetail отправляет ответ с ошибкой и подробностями
func RespondErrorDetail(w http.ResponseWriter, status int, message, detail string) {
	RespondJSON(w, status, ErrorResponse{Error: message, Detail: detail})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondTooManyRequests 429
func RespondTooManyRequests(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusTooManyRequests, message)
}

// RespondInternalError 500
func RespondInternalError(w http.ResponseWriter, message, detail string) {
	RespondErrorDetail(w, http.StatusInternalServerError, message, detail)
}

// ReadBody читает тело запроса целиком
// Пустое тело (или только пробелы) возвращает ErrEmptyBody
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, ErrEmptyBody
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, maxErr.Limit)
		}
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	for _, b := range body {
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
			return body, nil
		}
	}
	return nil, ErrEmptyBody
}
