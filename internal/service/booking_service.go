package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"mkpp-service/internal/booking"
	"mkpp-service/internal/catalog"
	"mkpp-service/internal/entities"
	apperrors "mkpp-service/internal/errors"
	"mkpp-service/internal/metrics"
	"mkpp-service/internal/repository"
)

const monthLayout = "2006-01"

// ErrSessionExpired is reported when a visitor acts on a page session that
// the sweeper already dropped.
var ErrSessionExpired = errors.New("page session expired")

// BookingService is the booking controller behind the page's dialogs. The
// dialogs only offer catalog services and slots and only enable allowed days,
// so the same limits are checked here before anything reaches the session.
type BookingService struct {
	Repo     *repository.SessionRepository
	Calendar *booking.Calendar
	notifier *NotifyService
	metrics  *metrics.Metrics
	log      *zap.Logger
}

func NewBookingService(repo *repository.SessionRepository, cal *booking.Calendar, notifier *NotifyService, m *metrics.Metrics, log *zap.Logger) *BookingService {
	return &BookingService{
		Repo:     repo,
		Calendar: cal,
		notifier: notifier,
		metrics:  m,
		log:      log,
	}
}

func (s *BookingService) Services() []catalog.Service {
	return catalog.Services()
}

func (s *BookingService) Slots() []string {
	return catalog.Slots()
}

func (s *BookingService) State(visitorID string) entities.SessionResponse {
	return s.view(s.Repo.GetOrCreate(visitorID))
}

// Begin starts a new page session for the visitor, as on every page load.
// The previous booking and any open dialogs are discarded.
func (s *BookingService) Begin(visitorID string) entities.SessionResponse {
	return s.view(s.Repo.Reset(visitorID))
}

// Open shows the dialog of the entry point named by token. A card entry point
// preselects its service.
func (s *BookingService) Open(visitorID, token string) (entities.SessionResponse, error) {
	entry, err := parseEntry(token)
	if err != nil {
		return entities.SessionResponse{}, err
	}
	desk := s.Repo.GetOrCreate(visitorID)
	if err := desk.Open(entry); err != nil {
		return entities.SessionResponse{}, apperrors.ErrNotFound("Unknown entry point").WithErr(err)
	}
	s.metrics.DialogsOpened.WithLabelValues(string(entry.Kind)).Inc()
	return s.view(desk), nil
}

func (s *BookingService) Close(visitorID, token string) (entities.SessionResponse, error) {
	entry, err := parseEntry(token)
	if err != nil {
		return entities.SessionResponse{}, err
	}
	desk := s.Repo.GetOrCreate(visitorID)
	desk.Close(entry)
	return s.view(desk), nil
}

// UpdateContact applies the fields present in req. Name, phone and comment
// are stored as typed; a service must come from the catalog.
func (s *BookingService) UpdateContact(visitorID string, req entities.ContactUpdateRequest) (entities.SessionResponse, error) {
	if req.Service != nil && *req.Service != "" {
		if _, ok := catalog.LookupService(*req.Service); !ok {
			return entities.SessionResponse{}, apperrors.ErrBadRequest("Unknown service")
		}
	}

	desk := s.Repo.GetOrCreate(visitorID)
	sess := desk.Session()
	if req.Name != nil {
		sess.SetName(*req.Name)
	}
	if req.Phone != nil {
		sess.SetPhone(*req.Phone)
	}
	if req.Service != nil {
		sess.SetService(*req.Service)
	}
	if req.Comment != nil {
		sess.SetComment(*req.Comment)
	}
	return s.view(desk), nil
}

func (s *BookingService) SelectDate(visitorID, value string) (entities.SessionResponse, error) {
	day, err := s.Calendar.ParseDay(value)
	if err != nil {
		return entities.SessionResponse{}, apperrors.Wrap(http.StatusBadRequest, "Invalid date", err)
	}
	desk := s.Repo.GetOrCreate(visitorID)
	if err := s.Calendar.Select(desk.Session(), day); err != nil {
		return entities.SessionResponse{}, apperrors.Wrap(http.StatusBadRequest, "Date is in the past", err)
	}
	return s.view(desk), nil
}

func (s *BookingService) ClearDate(visitorID string) entities.SessionResponse {
	desk := s.Repo.GetOrCreate(visitorID)
	s.Calendar.Deselect(desk.Session())
	return s.view(desk)
}

func (s *BookingService) SelectTime(visitorID, slot string) (entities.SessionResponse, error) {
	if !catalog.IsSlot(slot) {
		return entities.SessionResponse{}, apperrors.ErrBadRequest("Unknown time slot")
	}
	desk := s.Repo.GetOrCreate(visitorID)
	desk.Session().SetTime(slot)
	return s.view(desk), nil
}

// Submit runs the submit of the dialog named by token. An incomplete booking
// is not an error: it comes back with Accepted false and the error toast.
// A page session that was swept is reported as a conflict, not recreated.
func (s *BookingService) Submit(visitorID, token string) (entities.SubmitResponse, error) {
	entry, err := parseEntry(token)
	if err != nil {
		return entities.SubmitResponse{}, err
	}
	desk, ok := s.Repo.Find(visitorID)
	if !ok {
		return entities.SubmitResponse{}, apperrors.ErrConflict("Page session expired").WithErr(ErrSessionExpired)
	}

	res, err := desk.Submit(entry, s.notifier.For(visitorID))
	if err != nil {
		if errors.Is(err, booking.ErrDialogClosed) {
			return entities.SubmitResponse{}, apperrors.ErrConflict("Dialog is not open").WithErr(err)
		}
		return entities.SubmitResponse{}, fmt.Errorf("submit booking: %w", err)
	}

	if res.Accepted {
		s.log.Info("Booking request accepted",
			zap.String("visitor", visitorID),
			zap.String("entry", entry.String()),
			zap.String("service", res.Request.Service),
			zap.String("date", res.Request.Date.Format(booking.DayLayout)),
			zap.String("time", res.Request.Time),
		)
	}

	return entities.SubmitResponse{
		Accepted: res.Accepted,
		Notification: entities.NotificationResponse{
			Title:       res.Notification.Title,
			Description: res.Notification.Description,
			Severity:    string(res.Notification.Severity),
		},
		Session: s.view(desk),
	}, nil
}

// CalendarMonth lays out a month for the date picker. An empty month means
// the current one.
func (s *BookingService) CalendarMonth(visitorID, month string) (entities.CalendarResponse, error) {
	first := s.Calendar.Today()
	if month != "" {
		t, err := time.ParseInLocation(monthLayout, month, s.Calendar.Location)
		if err != nil {
			return entities.CalendarResponse{}, apperrors.Wrap(http.StatusBadRequest, "Invalid month", err)
		}
		first = t
	}

	snap := s.Repo.GetOrCreate(visitorID).Session().Snapshot()
	days := s.Calendar.Month(first.Year(), first.Month(), snap.Date)

	resp := entities.CalendarResponse{
		Month: first.Format(monthLayout),
		Days:  make([]entities.CalendarDay, 0, len(days)),
	}
	for _, d := range days {
		resp.Days = append(resp.Days, entities.CalendarDay{
			Date:     d.Date.Format(booking.DayLayout),
			Today:    d.Today,
			Selected: d.Selected,
			Disabled: d.Disabled,
		})
	}
	return resp, nil
}

func (s *BookingService) view(desk *booking.Desk) entities.SessionResponse {
	snap := desk.Session().Snapshot()
	resp := entities.SessionResponse{
		Time:        snap.Time,
		Name:        snap.Name,
		Phone:       snap.Phone,
		Service:     snap.Service,
		Comment:     snap.Comment,
		OpenDialogs: []string{},
	}
	if snap.Date != nil {
		d := snap.Date.Format(booking.DayLayout)
		resp.Date = &d
	}
	for _, e := range desk.OpenDialogs() {
		resp.OpenDialogs = append(resp.OpenDialogs, e.String())
	}
	return resp
}

func parseEntry(token string) (booking.EntryPoint, error) {
	entry, err := booking.ParseEntryPoint(token)
	if err != nil {
		return booking.EntryPoint{}, apperrors.ErrNotFound("Unknown entry point").WithErr(err)
	}
	return entry, nil
}
