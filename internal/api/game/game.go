package game

import (
	"net/http"
	dto "quantum_slots/internal/api/dto/game"
	"quantum_slots/internal/converter"
	"quantum_slots/internal/model"
	"quantum_slots/internal/service"
	"quantum_slots/pkg/req"
	"quantum_slots/pkg/resp"

	"github.com/go-chi/chi/v5"
)

// sessionIDParam имя параметра пути с id сессии
const sessionIDParam = "id"

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) NewSession(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.NewSessionRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.CreateSession(r.Context(), model.NewSession{EntryMode: payload.EntryMode})
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*result))
}

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.GetState(r.Context(), chi.URLParam(r, sessionIDParam))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*result))
}

func (h *Handler) StartLevel(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.StartLevel(r.Context(), chi.URLParam(r, sessionIDParam))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*result))
}

func (h *Handler) SelectEvent(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SelectEventRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.EventIndex == nil {
		resp.WriteError(w, http.StatusBadRequest, "event_index is required")
		return
	}

	result, err := h.serv.SelectEvent(r.Context(), chi.URLParam(r, sessionIDParam), *payload.EventIndex)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*result))
}

func (h *Handler) StartRound(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.StartRound(r.Context(), chi.URLParam(r, sessionIDParam))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*result))
}

func (h *Handler) SelectTurn(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SelectTurnRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.SelectTurn(r.Context(), chi.URLParam(r, sessionIDParam), model.TurnOption(payload.Option))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*result))
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Spin(r.Context(), chi.URLParam(r, sessionIDParam))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

func (h *Handler) BuyServant(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ServantRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.BuyServant(r.Context(), chi.URLParam(r, sessionIDParam), payload.ServantID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*result))
}

func (h *Handler) RefreshShop(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.RefreshShop(r.Context(), chi.URLParam(r, sessionIDParam))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*result))
}

func (h *Handler) ActivateServant(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ServantRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.ActivateServant(r.Context(), chi.URLParam(r, sessionIDParam), payload.ServantID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*result))
}

func (h *Handler) CompleteLevel(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.CompleteLevel(r.Context(), chi.URLParam(r, sessionIDParam))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLevelResponse(*result))
}

func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.GetReport(r.Context(), chi.URLParam(r, sessionIDParam))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToReportResponse(*result))
}

func (h *Handler) Settlements(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, sessionIDParam)
	result, err := h.serv.Settlements(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSettlementsResponse(id, result))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats(r.Context())))
}

// Routes маршруты игры, монтируются в /api
func (h *Handler) Routes(r chi.Router) {
	r.Post("/game/new", h.NewSession)
	r.Get("/stats", h.Stats)
	r.Route("/game/{"+sessionIDParam+"}", func(rr chi.Router) {
		rr.Get("/", h.GetState)
		rr.Post("/level/start", h.StartLevel)
		rr.Post("/event/select", h.SelectEvent)
		rr.Post("/round/start", h.StartRound)
		rr.Post("/turn/select", h.SelectTurn)
		rr.Post("/slot/spin", h.Spin)
		rr.Post("/servant/buy", h.BuyServant)
		rr.Post("/shop/refresh", h.RefreshShop)
		rr.Post("/servant/activate", h.ActivateServant)
		rr.Post("/level/complete", h.CompleteLevel)
		rr.Get("/report", h.Report)
		rr.Get("/settlements", h.Settlements)
	})
}
