package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"project-monitor/config"
	"project-monitor/internal/model"
	"project-monitor/pkg/log"
)

func newTestMiddleware(required bool, ratePerMin int) Middleware {
	return New(log.NewNop(),
		config.SessionConfig{TTL: time.Hour, CookieName: "pm_session", HeaderName: "X-Session-ID"},
		config.AuthConfig{Required: required, IdentityHeader: "X-Forwarded-User"},
		ratePerMin, false)
}

func newTestRouter(mw Middleware, got *model.Scope) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.Identity(), mw.Session())
	r.GET("/", func(c *gin.Context) {
		*got = GetScope(c)
		c.Status(http.StatusOK)
	})
	r.POST("/upload", mw.UploadRateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestSessionIssuesID(t *testing.T) {
	var sc model.Scope
	r := newTestRouter(newTestMiddleware(false, 0), &sc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if _, err := uuid.Parse(sc.SessionID); err != nil {
		t.Fatalf("session id %q is not a uuid", sc.SessionID)
	}
	if got := w.Header().Get("X-Session-ID"); got != sc.SessionID {
		t.Errorf("X-Session-ID header = %q, want %q", got, sc.SessionID)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != sc.SessionID || !cookies[0].HttpOnly {
		t.Errorf("cookies = %+v, want one HttpOnly pm_session cookie", cookies)
	}
}

func TestSessionReusesID(t *testing.T) {
	var sc model.Scope
	r := newTestRouter(newTestMiddleware(false, 0), &sc)
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "pm_session", Value: id})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if sc.SessionID != id {
		t.Errorf("cookie session = %q, want %q", sc.SessionID, id)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Errorf("existing session must not be reissued")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Session-ID", "not-a-uuid")
	r.ServeHTTP(httptest.NewRecorder(), req)
	if sc.SessionID == "not-a-uuid" {
		t.Errorf("malformed session id was accepted")
	}
}

func TestIdentity(t *testing.T) {
	var sc model.Scope
	r := newTestRouter(newTestMiddleware(true, 0), &sc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status without identity = %d, want 401", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-User", "  alice ")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || sc.UserID != "alice" {
		t.Errorf("status = %d user = %q, want 200 alice", w.Code, sc.UserID)
	}

	sc = model.Scope{}
	r = newTestRouter(newTestMiddleware(false, 0), &sc)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if sc.UserID != "" || sc.SessionID == "" {
		t.Errorf("anonymous scope = %+v", sc)
	}
}

func TestUploadRateLimit(t *testing.T) {
	var sc model.Scope
	r := newTestRouter(newTestMiddleware(false, 10), &sc)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v, want first allowed and burst of 1 exhausted", codes)
	}
}

func TestRateLimiterConcurrentFirstRequests(t *testing.T) {
	rl := newRateLimiter(60) // burst 6, one token per second
	start := time.Now()

	var allowed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("10.0.0.1") == nil {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	limit := int64(rl.burst) + int64(time.Since(start).Seconds()) + 1
	if got := allowed.Load(); got < int64(rl.burst) || got > limit {
		t.Errorf("allowed = %d, want between %d and %d", got, rl.burst, limit)
	}
	if rl.limiters.Len() != 1 {
		t.Errorf("limiters = %d, want one per key", rl.limiters.Len())
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	if newRateLimiter(0) != nil {
		t.Errorf("non-positive rate must disable the limiter")
	}
}
