package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	perr "moviesearch/internal/platform/errors"
	mw "moviesearch/internal/platform/net/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type envelope struct {
	StatusCode int            `json:"status_code"`
	Code       perr.ErrorCode `json:"code"`
	Error      string         `json:"error"`
	RequestID  string         `json:"request_id"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return env
}

func ok(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(`{"ok":true}`)) }

func TestRecoverJSON(t *testing.T) {
	r := chi.NewRouter()
	r.Use(mw.RequestID(), mw.RecoverJSON)
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("kaboom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("X-Request-ID", "rid-panic")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decode(t, rec)
	if env.Code != perr.ErrorCodePanic || env.RequestID != "rid-panic" || strings.Contains(env.Error, "kaboom") {
		t.Fatalf("envelope = %+v", env)
	}
	if rec.Header().Get("X-Request-ID") != "rid-panic" {
		t.Fatalf("request id header missing")
	}
}

func TestRecoverJSON_AbortHandler(t *testing.T) {
	h := mw.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic(http.ErrAbortHandler) }))
	defer func() {
		if v := recover(); v != http.ErrAbortHandler {
			t.Fatalf("recovered %v, want ErrAbortHandler", v)
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestAccessLog_PassesThrough(t *testing.T) {
	r := chi.NewRouter()
	r.Use(mw.RequestID(), mw.AccessLog(mw.AccessLogOptions{Slow: time.Nanosecond}))
	r.Get("/movies/{id}", ok)
	r.Get("/fail", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusServiceUnavailable) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies/7?x=1", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != `{"ok":true}` {
		t.Fatalf("GET = %d %q", rec.Code, rec.Body)
	}
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("GET /fail = %d", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	h := mw.RateLimit(1, 2)(http.HandlerFunc(ok))
	codes := make([]int, 0, 3)
	for range 3 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, rec.Code)
		if rec.Code == http.StatusTooManyRequests {
			if env := decode(t, rec); env.Code != perr.ErrorCodeTooManyRequests {
				t.Fatalf("envelope = %+v", env)
			}
			if rec.Header().Get("Retry-After") != "1" {
				t.Fatalf("Retry-After = %q", rec.Header().Get("Retry-After"))
			}
		}
	}
	if codes[0] != 200 || codes[1] != 200 || codes[2] != 429 {
		t.Fatalf("codes = %v", codes)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	h := mw.RateLimit(0, 0)(http.HandlerFunc(ok))
	for range 50 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("disabled limiter rejected a request")
		}
	}
}

func TestHTTPMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := mw.NewHTTPMetrics(reg)

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/movies/{id}", ok)

	for _, p := range []string{"/movies/1", "/movies/2", "/nope"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	want := `
# HELP moviesearch_http_requests_total HTTP requests by route pattern, method and status.
# TYPE moviesearch_http_requests_total counter
moviesearch_http_requests_total{method="GET",route="/movies/{id}",status="200"} 2
moviesearch_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(want), "moviesearch_http_requests_total"); err != nil {
		t.Fatal(err)
	}
}

func TestCORS_Preflight(t *testing.T) {
	h := mw.CORS(mw.CORSOptions{AllowedOrigins: []string{"https://movies.example"}})(http.HandlerFunc(ok))
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/movies/search", nil)
	req.Header.Set("Origin", "https://movies.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://movies.example" {
		t.Fatalf("allow origin = %q", got)
	}
}

func TestDefaults_Chain(t *testing.T) {
	r := chi.NewRouter()
	r.Use(mw.Defaults(time.Second)...)
	r.Use(mw.StripSlashes(), mw.Heartbeat("/ping"))
	r.Get("/movies", ok)

	for _, p := range []string{"/movies", "/movies/", "/ping"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s = %d", p, rec.Code)
		}
	}
}
