package spinner

import (
	"errors"
	spinnerServ "lucky_spinner/internal/service/spinner"
	"lucky_spinner/pkg/resp"
	"net/http"

	"go.uber.org/zap"
)

// коды ошибок в поле "error"
const (
	codeBadRequest   = "bad_request"
	codeNotFound     = "not_found"
	codeSpinning     = "spin_in_progress"
	codeNotConfirmed = "confirmation_required"
	codeEmptyPool    = "empty_selection_pool"
	codeTooLarge     = "payload_too_large"
	codeInternal     = "internal_error"
)

// writeServiceError переводит ошибку сервиса в HTTP-статус
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		resp.WriteError(w, http.StatusRequestEntityTooLarge, codeTooLarge, "request body is too large")
	case errors.Is(err, spinnerServ.ErrImportParse):
		resp.WriteError(w, http.StatusBadRequest, codeBadRequest, err.Error())
	case errors.Is(err, spinnerServ.ErrOptionNotFound):
		resp.WriteError(w, http.StatusNotFound, codeNotFound, err.Error())
	case errors.Is(err, spinnerServ.ErrSpinInProgress):
		resp.WriteError(w, http.StatusConflict, codeSpinning, err.Error())
	case errors.Is(err, spinnerServ.ErrNotConfirmed):
		resp.WriteError(w, http.StatusPreconditionFailed, codeNotConfirmed, err.Error())
	case errors.Is(err, spinnerServ.ErrEmptySelectionPool):
		resp.WriteError(w, http.StatusUnprocessableEntity, codeEmptyPool, err.Error())
	default:
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		resp.WriteError(w, http.StatusInternalServerError, codeInternal, "storage failure")
	}
}

func writeBadRequest(w http.ResponseWriter, err error) {
	resp.WriteError(w, http.StatusBadRequest, codeBadRequest, err.Error())
}
