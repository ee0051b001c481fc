package game

import (
	"errors"
	"net/http"
	"quantum_slots/internal/service"
	"quantum_slots/pkg/resp"
)

// writeError код ответа по классу ошибки сервиса
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		resp.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidArgument), errors.Is(err, service.ErrPreconditionFailed):
		resp.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
