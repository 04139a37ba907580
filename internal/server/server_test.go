package server_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/raysh454/phishlens/internal/assessor"
	"github.com/raysh454/phishlens/internal/events"
	"github.com/raysh454/phishlens/internal/server"
	"github.com/raysh454/phishlens/internal/testutil"
)

const loginPage = `<html><head><title>PayPal</title></head><body>
<form action="http://evil.test/collect"><input type="password"></form></body></html>`

type testEnv struct {
	srv   *server.Server
	store *testutil.MemoryStore
}

func newTestServer(t *testing.T, mutate ...func(*server.Config)) *testEnv {
	t.Helper()

	logger := &testutil.DummyLogger{}
	a, err := assessor.NewHeuristicsAssessor(assessor.DefaultConfig(), logger)
	if err != nil {
		t.Fatalf("NewHeuristicsAssessor: %v", err)
	}
	store := &testutil.MemoryStore{}

	cfg := server.Config{
		ListenAddr:         ":0",
		DefaultEventsLimit: 100,
		MaxEventsLimit:     500,
		Assessor:           a,
		Store:              store,
		Logger:             logger,
	}
	for _, m := range mutate {
		m(&cfg)
	}

	s, err := server.NewServer(cfg)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return &testEnv{srv: s, store: store}
}

func doJSON(t *testing.T, s http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode JSON response: %v (body: %s)", err, rec.Body.String())
	}
}

func checkBody(t *testing.T, url, html string) string {
	t.Helper()
	b, err := json.Marshal(server.CheckRequest{URL: url, HTML: html})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

// ─── Construction ──────────────────────────────────────────────────────

func TestNewServer_RequiresCollaborators(t *testing.T) {
	t.Parallel()
	if _, err := server.NewServer(server.Config{Store: &testutil.MemoryStore{}}); err == nil {
		t.Errorf("expected error without assessor")
	}
	if _, err := server.NewServer(server.Config{Assessor: &testutil.DummyAssessor{}}); err == nil {
		t.Errorf("expected error without store")
	}
}

// ─── CORS & request ids ────────────────────────────────────────────────

func TestServer_CORS_HeaderPresent(t *testing.T) {
	t.Parallel()
	env := newTestServer(t)

	rec := doJSON(t, env.srv, "GET", "/health", "")

	if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("expected CORS origin *, got %q", origin)
	}
}

func TestServer_Preflight(t *testing.T) {
	t.Parallel()
	env := newTestServer(t)

	rec := doJSON(t, env.srv, "OPTIONS", "/events", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if m := rec.Header().Get("Access-Control-Allow-Methods"); m != "GET, POST" {
		t.Errorf("unexpected allowed methods %q", m)
	}
}

func TestServer_RequestID(t *testing.T) {
	t.Parallel()
	env := newTestServer(t)

	rec := doJSON(t, env.srv, "GET", "/health", "")
	if rec.Header().Get(server.RequestIDHeader) == "" {
		t.Errorf("expected a generated request id")
	}

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set(server.RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	env.srv.ServeHTTP(rec, req)
	if got := rec.Header().Get(server.RequestIDHeader); got != "abc-123" {
		t.Errorf("expected request id echoed, got %q", got)
	}
}

// ─── Health ────────────────────────────────────────────────────────────

func TestServer_Health(t *testing.T) {
	t.Parallel()
	env := newTestServer(t)

	rec := doJSON(t, env.srv, "GET", "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body server.HealthResponse
	decodeJSON(t, rec, &body)
	if body.Status != "ok" || body.TS <= 0 {
		t.Errorf("unexpected health body %+v", body)
	}
}

// ─── Check ─────────────────────────────────────────────────────────────

func TestServer_Check_MissingFields(t *testing.T) {
	t.Parallel()
	env := newTestServer(t)

	cases := []string{
		`{}`,
		`{"url":"http://a.test/"}`,
		`{"html":"<p>x</p>"}`,
		`{"url":"","html":"<p>x</p>"}`,
	}
	for _, body := range cases {
		rec := doJSON(t, env.srv, "POST", "/check", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, rec.Code)
			continue
		}
		var e server.ErrorResponse
		decodeJSON(t, rec, &e)
		if e.Error != "Missing 'url' or 'html'" {
			t.Errorf("%s: unexpected error %q", body, e.Error)
		}
	}
	if len(env.store.Events) != 0 {
		t.Errorf("rejected checks must not be stored")
	}
}

func TestServer_Check_InvalidJSON(t *testing.T) {
	t.Parallel()
	env := newTestServer(t)

	rec := doJSON(t, env.srv, "POST", "/check", `{"url":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestServer_Check_BodyTooLarge(t *testing.T) {
	t.Parallel()
	env := newTestServer(t, func(c *server.Config) { c.MaxBodyBytes = 64 })

	rec := doJSON(t, env.srv, "POST", "/check", checkBody(t, "http://a.test/", strings.Repeat("x", 500)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestServer_Check_ScoresStoresAndPublishes(t *testing.T) {
	t.Parallel()
	env := newTestServer(t)
	sub := env.srv.Feed().Subscribe()

	rec := doJSON(t, env.srv, "POST", "/check", checkBody(t, "http://login.example.com/", loginPage))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body server.CheckResponse
	decodeJSON(t, rec, &body)

	if body.RiskScore <= 0 || body.RiskScore > 1 {
		t.Errorf("risk score out of range: %v", body.RiskScore)
	}
	if len(body.Reasons) == 0 || body.Reasons[0] != "Form submits to a different domain" {
		t.Errorf("unexpected reasons %v", body.Reasons)
	}
	if len(body.Highlights) == 0 || body.Highlights[0] != "form" {
		t.Errorf("unexpected highlights %v", body.Highlights)
	}
	if body.Meta.Domain != "example.com" {
		t.Errorf("expected meta domain example.com, got %q", body.Meta.Domain)
	}
	if body.Meta.TS <= 0 || body.Meta.ScoringVersion == "" {
		t.Errorf("incomplete meta %+v", body.Meta)
	}
	if body.Features.NumPwInputs != 1 {
		t.Errorf("expected features in response, got %+v", body.Features)
	}

	if len(env.store.Events) != 1 {
		t.Fatalf("expected 1 stored event, got %d", len(env.store.Events))
	}
	stored := env.store.Events[0]
	if stored.URL != "http://login.example.com/" || stored.RiskScore != body.RiskScore {
		t.Errorf("stored event mismatch: %+v", stored)
	}

	select {
	case e := <-sub:
		if e.ID != stored.ID {
			t.Errorf("published id %d, stored id %d", e.ID, stored.ID)
		}
	default:
		t.Errorf("expected the stored event to be published")
	}
}

func TestServer_Check_StoreFailure(t *testing.T) {
	t.Parallel()
	env := newTestServer(t)
	env.store.AddErr = errors.New("disk full")

	rec := doJSON(t, env.srv, "POST", "/check", checkBody(t, "http://a.test/", "<p>x</p>"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestServer_Check_AssessorFailure(t *testing.T) {
	t.Parallel()
	env := newTestServer(t, func(c *server.Config) {
		c.Assessor = &testutil.DummyAssessor{Err: errors.New("boom")}
	})

	rec := doJSON(t, env.srv, "POST", "/check", checkBody(t, "http://a.test/", "<p>x</p>"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

// ─── Events ────────────────────────────────────────────────────────────

func TestServer_AddEvent(t *testing.T) {
	t.Parallel()
	env := newTestServer(t)

	rec := doJSON(t, env.srv, "POST", "/events", `{"url":"http://a.test/","risk_score":0.4,"reasons":["x"],"ts":12.5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var e events.Event
	decodeJSON(t, rec, &e)
	if e.ID == 0 || e.URL != "http://a.test/" || e.RiskScore != 0.4 || e.TS != 12.5 {
		t.Errorf("unexpected stored event %+v", e)
	}
	if len(e.Reasons) != 1 || e.Reasons[0] != "x" {
		t.Errorf("unexpected reasons %v", e.Reasons)
	}
}

func TestServer_AddEvent_MissingURL(t *testing.T) {
	t.Parallel()
	env := newTestServer(t)

	rec := doJSON(t, env.srv, "POST", "/events", `{"risk_score":0.4}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestServer_ListEvents_NewestFirstAndLimit(t *testing.T) {
	t.Parallel()
	env := newTestServer(t, func(c *server.Config) {
		c.DefaultEventsLimit = 3
		c.MaxEventsLimit = 4
	})

	for i := 1; i <= 6; i++ {
		body := `{"url":"http://a.test/` + strconv.Itoa(i) + `","ts":` + strconv.Itoa(i) + `}`
		if rec := doJSON(t, env.srv, "POST", "/events", body); rec.Code != http.StatusOK {
			t.Fatalf("add event %d: %d", i, rec.Code)
		}
	}

	cases := []struct {
		query string
		want  int
	}{
		{"", 3},
		{"?limit=2", 2},
		{"?limit=abc", 3},
		{"?limit=-1", 3},
		{"?limit=100", 4},
	}
	for _, tc := range cases {
		rec := doJSON(t, env.srv, "GET", "/events"+tc.query, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%q: expected 200, got %d", tc.query, rec.Code)
		}
		var list []events.Event
		decodeJSON(t, rec, &list)
		if len(list) != tc.want {
			t.Errorf("%q: expected %d events, got %d", tc.query, tc.want, len(list))
			continue
		}
		if list[0].TS != 6 {
			t.Errorf("%q: expected newest first, got ts %v", tc.query, list[0].TS)
		}
	}
}

func TestServer_ListEvents_Empty(t *testing.T) {
	t.Parallel()
	env := newTestServer(t)

	rec := doJSON(t, env.srv, "GET", "/events", "")
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("expected empty JSON array, got %s", rec.Body.String())
	}
}

// ─── WebSocket feed ────────────────────────────────────────────────────

func TestServer_EventsWebSocket(t *testing.T) {
	t.Parallel()
	env := newTestServer(t)

	ts := httptest.NewServer(env.srv)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/events"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for env.srv.Feed().Subscribers() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("websocket never subscribed")
		}
		time.Sleep(10 * time.Millisecond)
	}

	resp, err := http.Post(ts.URL+"/events", "application/json",
		strings.NewReader(`{"url":"http://ws.test/","risk_score":0.9}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var e events.Event
	if err := conn.ReadJSON(&e); err != nil {
		t.Fatalf("read: %v", err)
	}
	if e.URL != "http://ws.test/" || e.RiskScore != 0.9 {
		t.Errorf("unexpected event %+v", e)
	}
}

// ─── Swagger ───────────────────────────────────────────────────────────

func TestServer_SwaggerDoc(t *testing.T) {
	t.Parallel()
	env := newTestServer(t)

	rec := doJSON(t, env.srv, "GET", "/swagger/doc.json", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/check") {
		t.Errorf("expected /check in swagger doc")
	}
}
