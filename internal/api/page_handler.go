package api

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"mkpp-service/internal/auth"
	"mkpp-service/internal/booking"
	"mkpp-service/internal/catalog"
	"mkpp-service/internal/entities"
	"mkpp-service/internal/service"
	"mkpp-service/internal/templates"
)

// dialogView is everything one booking dialog needs to render. Every dialog
// gets the same Session; only Entry and IDs differ.
type dialogView struct {
	Entry        string
	IDs          booking.FieldIDs
	Services     []catalog.Service
	Slots        []string
	Session      entities.SessionResponse
	SelectedDate string
	MinDate      string
}

type cardView struct {
	catalog.Service
	Dialog dialogView
}

type pageData struct {
	Contacts catalog.ContactInfo
	Features []catalog.Feature
	Cards    []cardView
	Header   dialogView
	Hero     dialogView
	Year     int
}

type PageHandler struct {
	Service *service.BookingService
	tmpl    *template.Template
	log     *zap.Logger
}

func NewPageHandler(svc *service.BookingService, log *zap.Logger) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templates.FS, "index.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &PageHandler{Service: svc, tmpl: tmpl, log: log}, nil
}

// Index renders the page. Loading it starts a new page session, so a reload
// comes back with an empty form and every dialog closed.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	state := h.Service.Begin(auth.VisitorID(r.Context()))

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, h.pageData(state)); err != nil {
		h.log.Error("Could not render page", zap.Error(err))
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func (h *PageHandler) pageData(state entities.SessionResponse) pageData {
	today := h.Service.Calendar.Today()

	dialog := func(e booking.EntryPoint) dialogView {
		v := dialogView{
			Entry:    e.String(),
			IDs:      e.FieldIDs(),
			Services: h.Service.Services(),
			Slots:    h.Service.Slots(),
			Session:  state,
			MinDate:  today.Format(booking.DayLayout),
		}
		if state.Date != nil {
			v.SelectedDate = *state.Date
		}
		return v
	}

	services := h.Service.Services()
	cards := make([]cardView, 0, len(services))
	for i, s := range services {
		cards = append(cards, cardView{Service: s, Dialog: dialog(booking.CardEntry(i))})
	}

	return pageData{
		Contacts: catalog.Contacts(),
		Features: catalog.Features(),
		Cards:    cards,
		Header:   dialog(booking.Header),
		Hero:     dialog(booking.Hero),
		Year:     today.Year(),
	}
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
