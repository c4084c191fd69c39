package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-monitor/config"
	"project-monitor/internal/dashboard/repository/memory"
	"project-monitor/internal/dashboard/usecase"
	"project-monitor/internal/middleware"
	"project-monitor/pkg/datemath"
	"project-monitor/pkg/log"
)

const fixtureCSV = "KONTRAK,JENIS PEKERJAAN,STATUS,START,FINISH,% COMPLETE,BOBOT,AREA PEKERJAAN\n" +
	"P1,1 Persiapan,SELESAI,2024-01-01,2024-01-10,1,1,Block-1C\n" +
	"P1,1.1 Galian,TUNDA,2024-02-01,2024-03-01,0.5,1,Block-1C\n" +
	"P1,1.2 Urugan,BELUM MULAI,2024-03-05,2024-03-15,0,2,Pond Area\n" +
	"P2,Pagar,DALAM PROSES,2024-03-01,2024-03-20,40,1,\n"

type testResp struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Errors    json.RawMessage `json:"errors"`
}

type testServer struct {
	t         *testing.T
	r         *gin.Engine
	sessionID string
}

func newTestServer(t *testing.T, maxUploadBytes int64) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	dates, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	today := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	uc := usecase.New(memory.New(time.Hour, time.Minute, l), l, dates, usecase.Config{
		MaxUploadBytes:     1 << 20,
		UpcomingWindowDays: 7,
		CurveStepDays:      7,
	}, usecase.WithClock(func() time.Time { return today }))

	mw := middleware.New(l,
		config.SessionConfig{TTL: time.Hour, CookieName: "pm_session", HeaderName: "X-Session-ID"},
		config.AuthConfig{IdentityHeader: "X-Forwarded-User"},
		0, false)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/dashboard"), New(l, uc, mw, maxUploadBytes), mw)
	return &testServer{t: t, r: r, sessionID: uuid.NewString()}
}

func (s *testServer) do(req *http.Request) (*httptest.ResponseRecorder, testResp) {
	s.t.Helper()
	req.Header.Set("X-Session-ID", s.sessionID)
	w := httptest.NewRecorder()
	s.r.ServeHTTP(w, req)

	var resp testResp
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func (s *testServer) get(path string) (*httptest.ResponseRecorder, testResp) {
	return s.do(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard"+path, nil))
}

func (s *testServer) upload(name, content string) (*httptest.ResponseRecorder, testResp) {
	s.t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", name)
	require.NoError(s.t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(s.t, err)
	require.NoError(s.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dashboard/uploads", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return s.do(req)
}

func TestUploadAndOverview(t *testing.T) {
	s := newTestServer(t, 1<<20)

	w, resp := s.upload("jadwal.csv", fixtureCSV)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var load loadResp
	require.NoError(t, json.Unmarshal(resp.Data, &load))
	assert.Equal(t, s.sessionID, load.SessionID)
	assert.Equal(t, 4, load.Stats.Rows)
	assert.Empty(t, load.ParseErrors)

	w, resp = s.get("/overview?project=P1")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var ov struct {
		AsOf             string         `json:"as_of"`
		Filtered         int            `json:"filtered"`
		WeightedProgress float64        `json:"weighted_progress"`
		StatusCounts     map[string]int `json:"status_counts"`
		Late             int            `json:"late_tasks"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &ov))
	assert.Equal(t, "2024-03-10", ov.AsOf)
	assert.Equal(t, 3, ov.Filtered)
	assert.Equal(t, 37.5, ov.WeightedProgress)
	assert.Equal(t, 1, ov.StatusCounts["DELAYED"])
	assert.Equal(t, 1, ov.Late)
}

func TestViewsWithoutUpload(t *testing.T) {
	s := newTestServer(t, 1<<20)

	for _, path := range []string{"/overview", "/scurve", "/zones", "/late", "/priority", "/gantt", "/contracts", "/sheets"} {
		w, _ := s.get(path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestUploadErrors(t *testing.T) {
	s := newTestServer(t, 64)

	w, _ := s.upload("jadwal.csv", fixtureCSV)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	s = newTestServer(t, 1<<20)
	w, resp := s.upload("jadwal.csv", "KONTRAK,STATUS\nP1,SELESAI\n")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, string(resp.Errors), "missing_columns")

	w, _ = s.upload("notes.bin", "\x00\x01\x02")
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dashboard/uploads", nil)
	w, _ = s.do(req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueryValidation(t *testing.T) {
	s := newTestServer(t, 1<<20)
	s.upload("jadwal.csv", fixtureCSV)

	w, _ := s.get("/overview?column=STATUS")
	assert.Equal(t, http.StatusBadRequest, w.Code, "column without value")

	w, _ = s.get("/overview?as_of=not-a-date")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.get("/filters?column=NOPE")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.get("/exports/gantt")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.get("/exports/table?format=pdf")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFiltersAndZones(t *testing.T) {
	s := newTestServer(t, 1<<20)
	s.upload("jadwal.csv", fixtureCSV)

	w, resp := s.get("/filters?column=STATUS")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var f filtersResp
	require.NoError(t, json.Unmarshal(resp.Data, &f))
	assert.Equal(t, []string{"BELUM MULAI", "DALAM PROSES", "SELESAI", "TUNDA"}, f.Values)
	assert.Equal(t, []string{"P1", "P2"}, f.Projects)

	w, resp = s.get("/zones")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var z struct {
		Mode  string     `json:"mode"`
		Zones []zoneResp `json:"zones"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &z))
	assert.Equal(t, "area", z.Mode)
	require.Len(t, z.Zones, 2)
	assert.Equal(t, "BLOCK-1C", z.Zones[0].Zone)
	assert.Equal(t, 75.0, z.Zones[0].Progress)
	assert.True(t, strings.HasPrefix(z.Zones[0].Fill, "rgba("))
}

func TestPriorityRanks(t *testing.T) {
	s := newTestServer(t, 1<<20)
	s.upload("jadwal.csv", fixtureCSV)

	w, resp := s.get("/priority?limit=2")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var p struct {
		Tasks []struct {
			Rank  int     `json:"rank"`
			Score float64 `json:"score"`
		} `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &p))
	require.Len(t, p.Tasks, 2)
	assert.Equal(t, 1, p.Tasks[0].Rank)
	assert.GreaterOrEqual(t, p.Tasks[0].Score, p.Tasks[1].Score)
}

func TestExportDownload(t *testing.T) {
	s := newTestServer(t, 1<<20)
	s.upload("jadwal.csv", fixtureCSV)

	w, _ := s.get("/exports/late")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "late-2024-03-10.csv")
	assert.Contains(t, w.Body.String(), "TUNDA")
}

func TestCloseSession(t *testing.T) {
	s := newTestServer(t, 1<<20)
	s.upload("jadwal.csv", fixtureCSV)

	w, _ := s.do(httptest.NewRequest(http.MethodDelete, "/api/v1/dashboard/session", nil))
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Less(t, cookies[0].MaxAge, 0)

	w, _ = s.get("/overview")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
