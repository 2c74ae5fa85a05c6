package api

import (
	"io"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"mkpp-service/internal/auth"
	"mkpp-service/internal/logger"
)

type RouterOptions struct {
	Booking        *BookingHandler
	Page           *PageHandler
	Visitors       *auth.Visitors
	Limiter        *SubmitLimiter
	Metrics        http.Handler
	AllowedOrigins []string
	Log            *zap.Logger
}

func NewRouter(o RouterOptions) http.Handler {
	r := mux.NewRouter()

	// Infrastructure endpoints, no visitor cookie
	r.HandleFunc("/healthz", Health).Methods("GET")
	if o.Metrics != nil {
		r.Handle("/metrics", o.Metrics).Methods("GET")
	}

	site := r.NewRoute().Subrouter()
	site.Use(o.Visitors.Middleware)
	site.HandleFunc("/", o.Page.Index).Methods("GET")

	// Public API
	a := site.PathPrefix("/api").Subrouter()
	a.HandleFunc("/services", o.Booking.ListServices).Methods("GET")
	a.HandleFunc("/slots", o.Booking.ListSlots).Methods("GET")
	a.HandleFunc("/calendar", o.Booking.Calendar).Methods("GET")
	a.HandleFunc("/booking", o.Booking.GetSession).Methods("GET")
	a.HandleFunc("/booking", o.Booking.UpdateSession).Methods("PATCH")
	a.HandleFunc("/booking/date", o.Booking.SelectDate).Methods("PUT")
	a.HandleFunc("/booking/date", o.Booking.ClearDate).Methods("DELETE")
	a.HandleFunc("/booking/time", o.Booking.SelectTime).Methods("PUT")
	a.HandleFunc("/booking/dialogs/{entry}", o.Booking.OpenDialog).Methods("POST")
	a.HandleFunc("/booking/dialogs/{entry}", o.Booking.CloseDialog).Methods("DELETE")
	a.Handle("/booking/dialogs/{entry}/submit", o.Limiter.Middleware(http.HandlerFunc(o.Booking.Submit))).Methods("POST")

	var h http.Handler = handlers.CompressHandler(r)
	if len(o.AllowedOrigins) > 0 {
		h = handlers.CORS(
			handlers.AllowedOrigins(o.AllowedOrigins),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
			handlers.AllowedHeaders([]string{"Content-Type"}),
			handlers.AllowCredentials(),
		)(h)
	}
	h = handlers.CustomLoggingHandler(io.Discard, h, accessLog(o.Log))
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(logger.PrintlnAdapter{L: o.Log}),
		handlers.PrintRecoveryStack(true),
	)(h)
}

func accessLog(log *zap.Logger) handlers.LogFormatter {
	return func(_ io.Writer, p handlers.LogFormatterParams) {
		log.Info("HTTP request",
			zap.String("method", p.Request.Method),
			zap.String("path", p.URL.Path),
			zap.Int("status", p.StatusCode),
			zap.Int("size", p.Size),
			zap.Duration("duration", time.Since(p.TimeStamp)),
		)
	}
}
