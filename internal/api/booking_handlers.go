package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"mkpp-service/internal/auth"
	"mkpp-service/internal/entities"
	"mkpp-service/internal/service"
)

type BookingHandler struct {
	Service *service.BookingService
	log     *zap.Logger
}

func NewBookingHandler(svc *service.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, log: log}
}

func (h *BookingHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.Services())
}

func (h *BookingHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.Slots())
}

func (h *BookingHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.CalendarMonth(auth.VisitorID(r.Context()), r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.State(auth.VisitorID(r.Context())))
}

func (h *BookingHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	var req entities.ContactUpdateRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	resp, err := h.Service.UpdateContact(auth.VisitorID(r.Context()), req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) SelectDate(w http.ResponseWriter, r *http.Request) {
	var req entities.DateRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	resp, err := h.Service.SelectDate(auth.VisitorID(r.Context()), req.Date)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) ClearDate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.ClearDate(auth.VisitorID(r.Context())))
}

func (h *BookingHandler) SelectTime(w http.ResponseWriter, r *http.Request) {
	var req entities.TimeRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	resp, err := h.Service.SelectTime(auth.VisitorID(r.Context()), req.Time)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) OpenDialog(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.Open(auth.VisitorID(r.Context()), mux.Vars(r)["entry"])
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) CloseDialog(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.Close(auth.VisitorID(r.Context()), mux.Vars(r)["entry"])
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Submit answers 200 with the success toast or 422 with the error toast. The
// body has the same shape either way.
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.Submit(auth.VisitorID(r.Context()), mux.Vars(r)["entry"])
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	status := http.StatusOK
	if !resp.Accepted {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, resp)
}
