package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"project-monitor/internal/dashboard"
	"project-monitor/internal/dashboard/repository/memory"
	"project-monitor/internal/model"
	"project-monitor/internal/report"
	"project-monitor/internal/schema"
	"project-monitor/pkg/datemath"
	"project-monitor/pkg/gsheets"
	"project-monitor/pkg/log"
	"project-monitor/pkg/sheet"
)

const fixtureCSV = "KONTRAK,JENIS PEKERJAAN,STATUS,START,FINISH,% COMPLETE,BOBOT,AREA PEKERJAAN\n" +
	"P1,1 Persiapan,SELESAI,2024-01-01,2024-01-10,1,1,Block-1C\n" +
	"P1,1.1 Galian,TUNDA,2024-02-01,2024-03-01,0.5,1,Block-1C\n" +
	"P1,1.2 Urugan,BELUM MULAI,2024-03-05,2024-03-15,0,2,Pond Area\n" +
	"P2,Pagar,DALAM PROSES,2024-03-01,2024-03-20,40,1,\n"

var today = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, opts ...Option) *implUseCase {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	repo := memory.New(time.Hour, time.Minute, log.NewNop())
	opts = append([]Option{WithClock(func() time.Time { return today })}, opts...)
	return New(repo, log.NewNop(), dates, Config{
		MaxUploadBytes:     1 << 20,
		UpcomingWindowDays: 7,
		CurveStepDays:      7,
	}, opts...)
}

func upload(t *testing.T, uc *implUseCase, sc model.Scope) dashboard.LoadOutput {
	t.Helper()
	out, err := uc.Upload(context.Background(), sc, dashboard.UploadInput{FileName: "jadwal.csv", Data: []byte(fixtureCSV)})
	require.NoError(t, err)
	return out
}

var alice = model.Scope{SessionID: "s-alice", UserID: "alice"}

func TestUpload(t *testing.T) {
	uc := newTestUseCase(t)
	out := upload(t, uc, alice)

	assert.Equal(t, "s-alice", out.SessionID)
	assert.Equal(t, []string{"jadwal"}, out.Sheets)
	assert.Equal(t, "jadwal", out.Sheet)
	assert.Equal(t, 4, out.Stats.Rows)
	assert.Empty(t, out.ParseErrors)
}

func TestUploadErrors(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Upload(ctx, alice, dashboard.UploadInput{FileName: "a.csv"})
	assert.ErrorIs(t, err, dashboard.ErrEmptyUpload)

	_, err = uc.Upload(ctx, alice, dashboard.UploadInput{FileName: "a.bin", Data: []byte{0, 1, 2}})
	assert.ErrorIs(t, err, dashboard.ErrUnsupportedFormat)

	_, err = uc.Upload(ctx, alice, dashboard.UploadInput{FileName: "a.csv", Data: []byte(fixtureCSV), Sheet: "Other"})
	assert.ErrorIs(t, err, dashboard.ErrSheetNotFound)

	_, err = uc.Upload(ctx, alice, dashboard.UploadInput{FileName: "a.csv", Data: []byte("KONTRAK,STATUS\nP1,SELESAI\n")})
	var se *schema.SchemaError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, se.Missing, "BOBOT")

	uc.cfg.MaxUploadBytes = 10
	_, err = uc.Upload(ctx, alice, dashboard.UploadInput{FileName: "a.csv", Data: []byte(fixtureCSV)})
	assert.ErrorIs(t, err, dashboard.ErrUploadTooLarge)
}

func TestUploadSkipRows(t *testing.T) {
	uc := newTestUseCase(t)
	skip := 2
	data := "LAPORAN MINGGUAN,,\nPERIODE MARET 2024,,\n" + fixtureCSV
	out, err := uc.Upload(context.Background(), alice, dashboard.UploadInput{FileName: "a.csv", Data: []byte(data), SkipRows: &skip})
	require.NoError(t, err)
	assert.Equal(t, 4, out.Stats.Rows)
}

func TestSessionIsolation(t *testing.T) {
	uc := newTestUseCase(t)
	upload(t, uc, alice)
	ctx := context.Background()

	_, err := uc.Overview(ctx, model.Scope{SessionID: "s-bob", UserID: "bob"}, dashboard.QueryInput{})
	assert.ErrorIs(t, err, dashboard.ErrSessionNotFound)

	_, err = uc.Overview(ctx, model.Scope{SessionID: "s-alice", UserID: "mallory"}, dashboard.QueryInput{})
	assert.ErrorIs(t, err, dashboard.ErrSessionNotFound, "a session id alone does not grant access")

	_, err = uc.Overview(ctx, model.Scope{}, dashboard.QueryInput{})
	assert.ErrorIs(t, err, dashboard.ErrSessionNotFound)

	mallory := model.Scope{SessionID: "s-alice", UserID: "mallory"}
	_, err = uc.Upload(ctx, mallory, dashboard.UploadInput{FileName: "other.csv", Data: []byte(fixtureCSV)})
	assert.ErrorIs(t, err, dashboard.ErrSessionNotFound, "another user's session cannot be replaced")

	sheets, err := uc.Sheets(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, "jadwal", sheets.Sheet, "the owner's data is untouched")
	_, err = uc.Overview(ctx, alice, dashboard.QueryInput{})
	assert.NoError(t, err)

	upload(t, uc, alice)
}

func TestOverview(t *testing.T) {
	uc := newTestUseCase(t)
	upload(t, uc, alice)

	out, err := uc.Overview(context.Background(), alice, dashboard.QueryInput{Filter: schema.Filter{Project: "p1"}})
	require.NoError(t, err)

	assert.Equal(t, 4, out.Total)
	assert.Equal(t, 3, out.Filtered)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), out.AsOf)
	assert.InDelta(t, (100+50+0)/4.0, out.WeightedProgress, 1e-9)
	assert.Equal(t, 1, out.StatusCounts[model.StatusDelayed])
	assert.Equal(t, 1, out.Late)
	assert.Equal(t, 1, out.Upcoming, "Urugan ends within the window")
	require.Len(t, out.Projects, 1)
	assert.Equal(t, "P1", out.Projects[0].Project)
}

func TestAsOfOverride(t *testing.T) {
	uc := newTestUseCase(t)
	upload(t, uc, alice)
	ctx := context.Background()

	out, err := uc.Late(ctx, alice, dashboard.QueryInput{AsOf: "2024-03-10"})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, 9, out.Tasks[0].LateDays)

	out, err = uc.Late(ctx, alice, dashboard.QueryInput{AsOf: "2024-01-05"})
	require.NoError(t, err)
	assert.Empty(t, out.Tasks)

	ov, err := uc.Overview(ctx, alice, dashboard.QueryInput{AsOf: "2024-01-05"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), ov.AsOf)
	assert.Less(t, ov.PlannedProgress, 20.0, "planned progress follows the as-of day")

	_, err = uc.Late(ctx, alice, dashboard.QueryInput{AsOf: "someday"})
	assert.ErrorIs(t, err, dashboard.ErrInvalidAsOf)
}

func TestViews(t *testing.T) {
	uc := newTestUseCase(t)
	upload(t, uc, alice)
	ctx := context.Background()
	q := dashboard.QueryInput{}

	sc, err := uc.SCurve(ctx, alice, q)
	require.NoError(t, err)
	assert.False(t, sc.Curve.Empty())
	assert.Equal(t, 4, sc.Curve.Tasks)

	z, err := uc.Zones(ctx, alice, q)
	require.NoError(t, err)
	assert.Equal(t, []string{"BLOCK-1C", "POND AREA"}, z.Result.Zones)
	assert.Equal(t, 1, z.Result.Skipped)

	g, err := uc.Gantt(ctx, alice, q)
	require.NoError(t, err)
	assert.Len(t, g.Rows, 4)

	c, err := uc.Contracts(ctx, alice, q)
	require.NoError(t, err)
	assert.Len(t, c.Summary.Rows, 4)

	p, err := uc.Priority(ctx, alice, dashboard.PriorityInput{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, p.Tasks, 2)

	_, err = uc.Priority(ctx, alice, dashboard.PriorityInput{Limit: -1})
	assert.ErrorIs(t, err, dashboard.ErrInvalidInput)

	f, err := uc.Filters(ctx, alice, dashboard.FiltersInput{Column: "area"})
	require.NoError(t, err)
	assert.Equal(t, []string{"BLOCK-1C", "POND AREA"}, f.Values)
	assert.Equal(t, []string{"P1", "P2"}, f.Projects)

	_, err = uc.Filters(ctx, alice, dashboard.FiltersInput{Column: "nope"})
	assert.ErrorIs(t, err, schema.ErrUnknownColumn)
}

func TestExport(t *testing.T) {
	uc := newTestUseCase(t)
	upload(t, uc, alice)

	out, err := uc.Export(context.Background(), alice, dashboard.ExportInput{Kind: report.KindLate, Format: sheet.FormatXLSX})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Rows)
	assert.Equal(t, "late-2024-03-10.xlsx", out.File.Name)
	assert.Equal(t, sheet.FormatXLSX.ContentType(), out.File.ContentType)

	out, err = uc.Export(context.Background(), alice, dashboard.ExportInput{Kind: report.KindStatus})
	require.NoError(t, err)
	assert.Equal(t, "status-2024-03-10.csv", out.File.Name)

	_, err = uc.Export(context.Background(), alice, dashboard.ExportInput{Kind: "gantt"})
	assert.ErrorIs(t, err, report.ErrUnknownKind)
}

func TestClose(t *testing.T) {
	uc := newTestUseCase(t)
	upload(t, uc, alice)
	ctx := context.Background()

	require.NoError(t, uc.Close(ctx, alice))
	_, err := uc.Sheets(ctx, alice)
	assert.ErrorIs(t, err, dashboard.ErrSessionNotFound)
	assert.ErrorIs(t, uc.Close(ctx, alice), dashboard.ErrSessionNotFound)
}

type fakeSource struct {
	names []string
	table sheet.Table
	err   error
	req   gsheets.ReadTableRequest
}

func (f *fakeSource) SheetNames(ctx context.Context, id string) ([]string, error) {
	return f.names, f.err
}

func (f *fakeSource) ReadTable(ctx context.Context, req gsheets.ReadTableRequest) (sheet.Table, error) {
	f.req = req
	return f.table, f.err
}

func TestImportGoogleSheet(t *testing.T) {
	wb, err := sheet.Decode(sheet.FormatCSV, "Jadwal", []byte(fixtureCSV), sheet.ReadOptions{})
	require.NoError(t, err)
	tbl, _ := wb.Sheet("")
	src := &fakeSource{names: []string{"Cover", "Jadwal"}, table: tbl}
	uc := newTestUseCase(t, WithSheetSource(src))
	ctx := context.Background()

	out, err := uc.ImportGoogleSheet(ctx, alice, dashboard.ImportInput{SpreadsheetID: "abc", Sheet: "Jadwal"})
	require.NoError(t, err)
	assert.Equal(t, "abc", out.Source)
	assert.Equal(t, "Jadwal", src.req.SheetName)
	assert.Equal(t, 4, out.Stats.Rows)

	_, err = uc.ImportGoogleSheet(ctx, alice, dashboard.ImportInput{SpreadsheetID: "abc", Sheet: "Missing"})
	assert.ErrorIs(t, err, dashboard.ErrSheetNotFound)

	_, err = uc.ImportGoogleSheet(ctx, alice, dashboard.ImportInput{})
	assert.ErrorIs(t, err, dashboard.ErrInvalidInput)

	src.err = &googleapi.Error{Code: http.StatusNotFound}
	_, err = uc.ImportGoogleSheet(ctx, alice, dashboard.ImportInput{SpreadsheetID: "gone"})
	assert.ErrorIs(t, err, dashboard.ErrSheetNotFound)

	src.err = errors.New("boom")
	_, err = uc.ImportGoogleSheet(ctx, alice, dashboard.ImportInput{SpreadsheetID: "abc"})
	assert.ErrorIs(t, err, dashboard.ErrSourceFailed)

	_, err = newTestUseCase(t).ImportGoogleSheet(ctx, alice, dashboard.ImportInput{SpreadsheetID: "abc"})
	assert.ErrorIs(t, err, dashboard.ErrSourceUnavailable)
}

func TestSelectSheet(t *testing.T) {
	uc := newTestUseCase(t)
	upload(t, uc, alice)
	ctx := context.Background()

	_, err := uc.SelectSheet(ctx, alice, dashboard.SelectSheetInput{Sheet: "nope"})
	assert.ErrorIs(t, err, dashboard.ErrSheetNotFound)

	out, err := uc.SelectSheet(ctx, alice, dashboard.SelectSheetInput{Sheet: "jadwal"})
	require.NoError(t, err)
	assert.Equal(t, "jadwal", out.Sheet)

	s, err := uc.Sheets(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, "jadwal.csv", s.Source)
}
