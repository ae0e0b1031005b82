package spinner

import (
	"errors"
	dto "lucky_spinner/internal/api/dto/spinner"
	"lucky_spinner/internal/converter"
	"lucky_spinner/internal/model"
	"lucky_spinner/internal/service"
	spinnerServ "lucky_spinner/internal/service/spinner"
	"lucky_spinner/pkg/req"
	"lucky_spinner/pkg/resp"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv   service.SpinnerService
	Logger *zap.Logger
}

type Handler struct {
	serv   service.SpinnerService
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, logger: logger.Named("http")}
}

// confirmed подтверждение опасных операций приходит в ?confirm=true
func confirmed(r *http.Request) bool {
	ok, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	return ok
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// ListOptions все опции в порядке списка и счётчики
func (h *Handler) ListOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.serv.Options(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToOptionsResponse(options))
}

// AddOption 201 если опция добавлена, 200 если текст пустой или колесо заполнено
func (h *Handler) AddOption(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.OptionRequest](r.Body)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	opt, added, err := h.serv.AddOption(r.Context(), payload.Text)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	resp.WriteJSONResponse(w, status, converter.ToAddOptionResponse(opt, added))
}

func (h *Handler) UpdateOption(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.OptionRequest](r.Body)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	id := model.OptionID(chi.URLParam(r, "id"))
	opt, err := h.serv.UpdateOption(r.Context(), id, payload.Text)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToOptionResponse(opt))
}

func (h *Handler) RemoveOption(w http.ResponseWriter, r *http.Request) {
	id := model.OptionID(chi.URLParam(r, "id"))
	if err := h.serv.RemoveOption(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SortOptions(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.SortOptions(r.Context()); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.ListOptions(w, r)
}

func (h *Handler) ShuffleOptions(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.ShuffleOptions(r.Context()); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.ListOptions(w, r)
}

func (h *Handler) ClearOptions(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.ClearOptions(r.Context(), confirmed(r)); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Spin запускает спин и сразу отдаёт билет; итог виден в /wheel и /results
// после окончания анимации
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.serv.Spin(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusAccepted, converter.ToSpinResponse(*ticket))
}

func (h *Handler) Wheel(w http.ResponseWriter, r *http.Request) {
	wheel, err := h.serv.Wheel(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWheelResponse(*wheel))
}

func (h *Handler) ResetWheel(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.ResetWheel(r.Context(), confirmed(r)); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.Wheel(w, r)
}

func (h *Handler) DismissWinner(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.DismissWinner(r.Context()); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Results(w http.ResponseWriter, r *http.Request) {
	results, err := h.serv.Results(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToResultsResponse(results))
}

func (h *Handler) ClearResults(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.ClearResults(r.Context(), confirmed(r)); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export отдаёт файл выгрузки как вложение
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+spinnerServ.ExportFileName+`"`)
	if err := h.serv.Export(r.Context(), w); err != nil {
		h.logger.Error("export failed", zap.Error(err))
	}
}

// maxImportBytes с запасом на 500 опций и длинную историю
const maxImportBytes = 4 << 20

// Import тело запроса это файл выгрузки
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Body == nil {
		writeBadRequest(w, errors.New("empty request body"))
		return
	}
	body := http.MaxBytesReader(w, r.Body, maxImportBytes)
	snapshot, err := h.serv.Import(r.Context(), body)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToImportResponse(*snapshot))
}

func (h *Handler) Theme(w http.ResponseWriter, r *http.Request) {
	dark, err := h.serv.DarkMode(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, dto.ThemeResponse{DarkMode: dark})
}

func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ThemeRequest](r.Body)
	if err != nil {
		writeBadRequest(w, err)
		return
	}
	if payload.DarkMode == nil {
		writeBadRequest(w, errors.New("dark_mode is required"))
		return
	}

	if err := h.serv.SetDarkMode(r.Context(), *payload.DarkMode); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, dto.ThemeResponse{DarkMode: *payload.DarkMode})
}
