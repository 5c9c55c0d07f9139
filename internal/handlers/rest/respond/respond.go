// Package respond собирает общие для REST-ручек ответы: JSON тело,
// ошибки по категориям apperr и разбор id из пути.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"dispatch/internal/apperr"
	"dispatch/internal/generated/dto"
	"dispatch/pkg/logger"
)

var (
	ErrInvalidBody   = fmt.Errorf("%w: malformed JSON body", apperr.Invalid)
	ErrInvalidPathID = fmt.Errorf("%w: id must be a positive integer", apperr.Invalid)
)

type Logger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

func JSON(w http.ResponseWriter, log Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// Error пишет ошибку с кодом по её категории. Внутренние ошибки логируются,
// а клиенту уходит только общий текст.
func Error(w http.ResponseWriter, log Logger, err error) {
	status := apperr.HTTPStatus(err)
	body := dto.Error{
		Code:    apperr.Code(err),
		Message: err.Error(),
	}
	if status == http.StatusInternalServerError {
		log.With(
			logger.NewField("error", err),
		).Error("request failed")
		body.Message = "internal error"
	}
	JSON(w, log, status, body)
}

func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidBody, err.Error())
	}
	return nil
}

func PathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidPathID
	}
	return id, nil
}
