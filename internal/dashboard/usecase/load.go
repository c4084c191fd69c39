package usecase

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"

	"google.golang.org/api/googleapi"

	"project-monitor/internal/dashboard"
	"project-monitor/internal/model"
	"project-monitor/internal/schema"
	"project-monitor/pkg/gsheets"
	"project-monitor/pkg/sheet"
)

// Upload decodes a CSV or XLSX file, loads the selected sheet and makes it the
// session's table.
func (uc *implUseCase) Upload(ctx context.Context, sc model.Scope, input dashboard.UploadInput) (dashboard.LoadOutput, error) {
	if len(input.Data) == 0 {
		return dashboard.LoadOutput{}, dashboard.ErrEmptyUpload
	}
	if uc.cfg.MaxUploadBytes > 0 && int64(len(input.Data)) > uc.cfg.MaxUploadBytes {
		return dashboard.LoadOutput{}, dashboard.ErrUploadTooLarge
	}

	format, err := sheet.DetectFormat(input.FileName, head(input.Data))
	if err != nil {
		return dashboard.LoadOutput{}, dashboard.ErrUnsupportedFormat
	}

	name := sheetNameFromFile(input.FileName)
	wb, err := sheet.Decode(format, name, input.Data, sheet.ReadOptions{SkipRows: uc.skipRows(input.SkipRows)})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Upload Decode %s: %v", input.FileName, err)
		return dashboard.LoadOutput{}, dashboard.ErrUnsupportedFormat
	}

	return uc.loadWorkbook(ctx, sc, input.FileName, wb, input.Sheet)
}

// ImportGoogleSheet reads one sheet of a Google spreadsheet as the session's table.
func (uc *implUseCase) ImportGoogleSheet(ctx context.Context, sc model.Scope, input dashboard.ImportInput) (dashboard.LoadOutput, error) {
	if uc.source == nil {
		return dashboard.LoadOutput{}, dashboard.ErrSourceUnavailable
	}
	if input.SpreadsheetID == "" {
		return dashboard.LoadOutput{}, dashboard.ErrInvalidInput
	}

	names, err := uc.source.SheetNames(ctx, input.SpreadsheetID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ImportGoogleSheet SheetNames: %v", err)
		return dashboard.LoadOutput{}, sourceError(err)
	}
	if len(names) == 0 {
		return dashboard.LoadOutput{}, dashboard.ErrSheetNotFound
	}

	want := uc.pickSheet(names, input.Sheet)
	if want == "" {
		return dashboard.LoadOutput{}, dashboard.ErrSheetNotFound
	}

	tbl, err := uc.source.ReadTable(ctx, gsheets.ReadTableRequest{
		SpreadsheetID: input.SpreadsheetID,
		SheetName:     want,
		SkipRows:      uc.skipRows(input.SkipRows),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ImportGoogleSheet ReadTable: %v", err)
		return dashboard.LoadOutput{}, sourceError(err)
	}

	wb := sheet.Workbook{Names: []string{want}, Tables: map[string]sheet.Table{want: tbl}}
	return uc.loadWorkbook(ctx, sc, input.SpreadsheetID, wb, want)
}

// SelectSheet switches the session to another sheet of the loaded workbook.
func (uc *implUseCase) SelectSheet(ctx context.Context, sc model.Scope, input dashboard.SelectSheetInput) (dashboard.LoadOutput, error) {
	sess, err := uc.session(ctx, sc)
	if err != nil {
		return dashboard.LoadOutput{}, err
	}
	if _, ok := sess.Workbook.Sheet(input.Sheet); !ok || input.Sheet == "" {
		return dashboard.LoadOutput{}, dashboard.ErrSheetNotFound
	}
	return uc.loadWorkbook(ctx, sc, sess.Source, sess.Workbook, input.Sheet)
}

// Sheets lists the sheets of the loaded workbook.
func (uc *implUseCase) Sheets(ctx context.Context, sc model.Scope) (dashboard.SheetsOutput, error) {
	sess, err := uc.session(ctx, sc)
	if err != nil {
		return dashboard.SheetsOutput{}, err
	}
	return dashboard.SheetsOutput{Source: sess.Source, Sheets: sess.Workbook.Names, Sheet: sess.Sheet}, nil
}

// Close tears the session down.
func (uc *implUseCase) Close(ctx context.Context, sc model.Scope) error {
	if _, err := uc.session(ctx, sc); err != nil {
		return err
	}
	if err := uc.repo.DeleteSession(ctx, sc.SessionID); err != nil {
		uc.l.Errorf(ctx, "uc.Close DeleteSession: %v", err)
		return err
	}
	uc.l.Infof(ctx, "uc.Close: session closed")
	return nil
}

func (uc *implUseCase) loadWorkbook(ctx context.Context, sc model.Scope, source string, wb sheet.Workbook, want string) (dashboard.LoadOutput, error) {
	if sc.SessionID == "" {
		return dashboard.LoadOutput{}, dashboard.ErrSessionNotFound
	}
	existing, err := uc.repo.GetSession(ctx, sc.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.loadWorkbook GetSession: %v", err)
		return dashboard.LoadOutput{}, err
	}
	if existing.ID != "" && existing.UserID != sc.UserID {
		uc.l.Warnf(ctx, "uc.loadWorkbook: session belongs to another user")
		return dashboard.LoadOutput{}, dashboard.ErrSessionNotFound
	}

	name := uc.pickSheet(wb.Names, want)
	raw, ok := wb.Sheet(name)
	if !ok || name == "" {
		return dashboard.LoadOutput{}, dashboard.ErrSheetNotFound
	}

	tbl, err := uc.loader.Load(raw, uc.now())
	if err != nil {
		var se *schema.SchemaError
		if errors.As(err, &se) {
			uc.l.Warnf(ctx, "uc.loadWorkbook %s/%s: %v", source, name, err)
		} else {
			uc.l.Errorf(ctx, "uc.loadWorkbook Load: %v", err)
		}
		return dashboard.LoadOutput{}, err
	}

	stats := tbl.Stats()
	if stats.Undated > 0 || stats.ParseErrors > 0 {
		uc.l.Warnf(ctx, "uc.loadWorkbook %s/%s: %d rows, %d without schedule, %d unparseable cells",
			source, name, stats.Rows, stats.Undated, stats.ParseErrors)
	}

	sess := dashboard.Session{
		ID:       sc.SessionID,
		UserID:   sc.UserID,
		Source:   source,
		Workbook: wb,
		Sheet:    name,
		Table:    tbl,
		LoadedAt: uc.now(),
	}
	if err := uc.repo.SaveSession(ctx, sess); err != nil {
		uc.l.Errorf(ctx, "uc.loadWorkbook SaveSession: %v", err)
		return dashboard.LoadOutput{}, err
	}

	uc.l.Infof(ctx, "uc.loadWorkbook: loaded %s/%s with %d rows", source, name, stats.Rows)
	return dashboard.LoadOutput{
		SessionID:   sess.ID,
		Source:      source,
		Sheets:      wb.Names,
		Sheet:       name,
		Columns:     tbl.Source.Headers,
		Stats:       stats,
		ParseErrors: tbl.ParseErrors,
	}, nil
}

// pickSheet resolves the requested sheet, then the configured default, then
// the first sheet. A requested sheet that does not exist yields "".
func (uc *implUseCase) pickSheet(names []string, want string) string {
	if want != "" {
		for _, n := range names {
			if n == want {
				return n
			}
		}
		return ""
	}
	if uc.cfg.DefaultSheet != "" {
		for _, n := range names {
			if n == uc.cfg.DefaultSheet {
				return n
			}
		}
	}
	if len(names) > 0 {
		return names[0]
	}
	return ""
}

func (uc *implUseCase) skipRows(v *int) int {
	if v != nil && *v >= 0 {
		return *v
	}
	return uc.cfg.SkipRows
}

func head(data []byte) []byte {
	if len(data) > 512 {
		return data[:512]
	}
	return data
}

func sheetNameFromFile(fileName string) string {
	base := filepath.Base(fileName)
	if name := base[:len(base)-len(filepath.Ext(base))]; name != "" && name != "." {
		return name
	}
	return "Sheet1"
}

// sourceError keeps "not found" distinguishable from other remote failures.
func sourceError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound {
		return dashboard.ErrSheetNotFound
	}
	return dashboard.ErrSourceFailed
}
