package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/raysh454/phishlens/docs/swagger" // registers the OpenAPI document
	"github.com/raysh454/phishlens/internal/events"
	"github.com/raysh454/phishlens/internal/logging"
)

// RequestIDHeader carries the per-request id in both directions.
const RequestIDHeader = "X-Request-ID"

type ctxKey int

const requestIDKey ctxKey = iota

// Server is the HTTP + WebSocket API surface for PhishLens.
type Server struct {
	cfg      Config
	router   chi.Router
	upgrader websocket.Upgrader
	logger   logging.Logger
	feed     *events.Feed
}

// NewServer creates a Server around the assessor and event store in cfg.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Assessor == nil {
		return nil, errors.New("server: assessor is required")
	}
	if cfg.Store == nil {
		return nil, errors.New("server: event store is required")
	}
	cfg.applyDefaults()

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewStdoutLogger("server")
	}
	feed := cfg.Feed
	if feed == nil {
		feed = events.NewFeed(16)
	}

	s := &Server{
		cfg:    cfg,
		router: chi.NewRouter(),
		logger: logger,
		feed:   feed,
		upgrader: websocket.Upgrader{
			// Matches the CORS policy: any origin may read the feed.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	s.routes()
	return s, nil
}

// Feed returns the feed that stored events are published on.
func (s *Server) Feed() *events.Feed {
	return s.feed
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.corsMiddleware)

	// CORS preflight
	r.Options("/health", s.optionsHandler("GET"))
	r.Options("/check", s.optionsHandler("POST"))
	r.Options("/events", s.optionsHandler("GET, POST"))
	r.Options("/ws/events", s.optionsHandler("GET"))

	r.Get("/health", s.handleHealth)
	r.Post("/check", s.handleCheck)
	r.Post("/events", s.handleAddEvent)
	r.Get("/events", s.handleListEvents)

	// Live feed of stored events
	r.Get("/ws/events", s.handleEventsWS)

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+RequestIDHeader)
		w.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)
		w.Header().Set("Access-Control-Max-Age", "86400")

		next.ServeHTTP(w, r)
	})
}

func (s *Server) optionsHandler(methods string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", methods)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ServeHTTP implements http.Handler. It tags the request with an id,
// logs it and hands it to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(RequestIDHeader, id)
	r = r.WithContext(context.WithValue(r.Context(), requestIDKey, id))

	fields := []logging.Field{
		{Key: "request_id", Value: id},
		{Key: "method", Value: r.Method},
		{Key: "path", Value: r.URL.Path},
	}
	if q := r.URL.Query(); len(q) > 0 {
		fields = append(fields, logging.Field{Key: "query", Value: q})
	}
	if r.ContentLength > 0 {
		fields = append(fields, logging.Field{Key: "content_length", Value: r.ContentLength})
	}

	s.logger.Info("http_request", fields...)

	s.router.ServeHTTP(w, r)
}

// RequestID returns the id ServeHTTP attached to ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func (s *Server) reqLogger(r *http.Request) logging.Logger {
	return s.logger.With(logging.Field{Key: "request_id", Value: RequestID(r.Context())})
}

// Close ends live feed subscriptions. The assessor and store belong to the
// caller.
func (s *Server) Close() {
	if s.feed != nil {
		s.feed.Close()
	}
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: 0, // allow streaming
	}
}

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return fmt.Errorf("request body exceeds %d bytes", tooBig.Limit)
		}
		return errors.New("invalid JSON")
	}
	return nil
}

// --- HTTP handlers ---

// handleHealth reports liveness.
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", TS: events.Now()})
}

// handleCheck assesses a page, records the result and publishes it.
//
// @Summary Assess a page
// @Description Scores the supplied URL and HTML for phishing risk and explains the score.
// @Tags check
// @Accept json
// @Produce json
// @Param request body CheckRequest true "Page to assess"
// @Success 200 {object} CheckResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /check [post]
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	log := s.reqLogger(r)

	var body CheckRequest
	if err := s.decodeBody(w, r, &body); err != nil {
		log.Warn("decoding check body", logging.Err(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if body.URL == "" || body.HTML == "" {
		writeError(w, http.StatusBadRequest, "Missing 'url' or 'html'")
		return
	}

	res, err := s.cfg.Assessor.Assess(r.Context(), body.URL, body.HTML)
	if err != nil {
		log.Error("assessing page", logging.Err(err))
		writeError(w, http.StatusInternalServerError, "assessment failed")
		return
	}

	now := events.Now()
	stored, err := s.cfg.Store.Add(r.Context(), &events.Event{
		URL:       body.URL,
		RiskScore: res.RiskScore,
		Reasons:   res.Reasons,
		TS:        now,
	})
	if err != nil {
		log.Error("storing check event", logging.Err(err))
		writeError(w, http.StatusInternalServerError, "failed to store event")
		return
	}
	s.feed.Publish(*stored)

	log.Info("checked page",
		logging.Field{Key: "domain", Value: res.Domain},
		logging.Field{Key: "risk_score", Value: res.RiskScore},
		logging.Field{Key: "event_id", Value: stored.ID})

	writeJSON(w, http.StatusOK, CheckResponse{
		RiskScore:  res.RiskScore,
		Reasons:    res.Reasons,
		Highlights: res.Highlights,
		Meta: CheckMeta{
			Domain:         res.Domain,
			TS:             now,
			ScoringVersion: res.Version,
		},
		Evidence:      res.Evidence,
		Features:      res.Features,
		Contributions: res.Contributions,
	})
}

// handleAddEvent records an externally produced assessment.
//
// @Summary Record an event
// @Tags events
// @Accept json
// @Produce json
// @Param request body AddEventRequest true "Event to record"
// @Success 200 {object} events.Event
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events [post]
func (s *Server) handleAddEvent(w http.ResponseWriter, r *http.Request) {
	log := s.reqLogger(r)

	var body AddEventRequest
	if err := s.decodeBody(w, r, &body); err != nil {
		log.Warn("decoding event body", logging.Err(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if body.URL == "" {
		writeError(w, http.StatusBadRequest, "Missing 'url'")
		return
	}

	stored, err := s.cfg.Store.Add(r.Context(), &events.Event{
		URL:       body.URL,
		RiskScore: body.RiskScore,
		Reasons:   body.Reasons,
		TS:        body.TS,
	})
	if err != nil {
		log.Error("storing event", logging.Err(err))
		writeError(w, http.StatusInternalServerError, "failed to store event")
		return
	}
	s.feed.Publish(*stored)

	log.Info("stored event", logging.Field{Key: "event_id", Value: stored.ID})
	writeJSON(w, http.StatusOK, stored)
}

// handleListEvents returns recent events, newest first.
//
// @Summary List events
// @Tags events
// @Produce json
// @Param limit query int false "Maximum number of events" default(100)
// @Success 200 {array} events.Event
// @Failure 500 {object} ErrorResponse
// @Router /events [get]
func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	limit := s.eventsLimit(r.URL.Query().Get("limit"))

	list, err := s.cfg.Store.List(r.Context(), limit)
	if err != nil {
		s.reqLogger(r).Error("listing events", logging.Err(err))
		writeError(w, http.StatusInternalServerError, "failed to list events")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// eventsLimit parses the limit query value. Missing, malformed or
// non-positive values give the default; large values are capped.
func (s *Server) eventsLimit(raw string) int {
	limit := s.cfg.DefaultEventsLimit
	if raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > s.cfg.MaxEventsLimit {
		limit = s.cfg.MaxEventsLimit
	}
	return limit
}

// handleEventsWS streams every newly stored event to the client.
//
// @Summary Live event feed
// @Description Upgrades to a WebSocket that receives each stored event as a JSON message.
// @Tags events
// @Router /ws/events [get]
func (s *Server) handleEventsWS(w http.ResponseWriter, r *http.Request) {
	log := s.reqLogger(r)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("upgrading to websocket", logging.Err(err))
		return
	}
	defer conn.Close()

	ch := s.feed.Subscribe()
	defer s.feed.Unsubscribe(ch)
	log.Info("event feed subscribed")

	// The client never sends data; reading only detects the disconnect.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-gone:
			log.Info("event feed client disconnected")
			return
		case e, ok := <-ch:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
				return
			}
			if err := conn.WriteJSON(e); err != nil {
				log.Warn("writing event to websocket", logging.Err(err))
				return
			}
		}
	}
}
